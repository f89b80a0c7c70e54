// Package fetch is the HTTP front door for the update commands: one shared
// client with timeouts, explicit Accept headers, and retry on transient
// failures. Only network fetches retry; the extraction pipeline itself stays
// abort-on-first-error.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client wraps an http.Client for the remote spec data sources.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Get fetches url and returns the response body. accept, when non-empty, is
// sent as the Accept header. Network errors and 5xx/429 responses are retried
// with backoff up to MaxRetries; other non-200 statuses fail immediately.
func (c *Client) Get(ctx context.Context, url, accept string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			c.log.Warn("retrying fetch", "url", url, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(Backoff(attempt - 1)):
			}
		}
		body, retryable, err := c.get(ctx, url, accept)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch %s: giving up after %d retries: %w", url, MaxRetries, lastErr)
}

func (c *Client) get(ctx context.Context, url, accept string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("fetch %s: status %d: %s", url, resp.StatusCode, string(respBody))
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, err
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read %s: %w", url, err)
	}
	return body, false, nil
}
