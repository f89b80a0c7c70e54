package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientGet(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/spec", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("spec body"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(5*time.Second, testLogger())
	body, err := c.Get(context.Background(), srv.URL+"/spec", "")
	require.NoError(t, err)
	assert.Equal(t, "spec body", string(body))
}

func TestClientSendsAcceptHeader(t *testing.T) {
	var gotAccept string
	r := chi.NewRouter()
	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("{}"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(5*time.Second, testLogger())
	_, err := c.Get(context.Background(), srv.URL+"/api", "application/vnd.csswg.shepherd.v1+json")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.csswg.shepherd.v1+json", gotAccept)
}

func TestClientNotFoundFailsWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "gone", http.StatusNotFound)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(5*time.Second, testLogger())
	_, err := c.Get(context.Background(), srv.URL+"/missing", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.Get("/flaky", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := NewClient(5*time.Second, testLogger())
	body, err := c.Get(context.Background(), srv.URL+"/flaky", "")
	require.NoError(t, err)
	assert.Equal(t, "recovered", string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClientCancelledContextStopsRetry(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/down", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(5*time.Second, testLogger())
	_, err := c.Get(ctx, srv.URL+"/down", "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	for attempt := 0; attempt < 8; attempt++ {
		d := Backoff(attempt)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 45*time.Second)
	}
}
