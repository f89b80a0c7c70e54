package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/servo/spectool/internal/config"
	"github.com/servo/spectool/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runnerSpec = `<div>
<h3>Tokenization</h3>
<h5><dfn>Data state</dfn></h5>
<p>Switch to the RAWTEXT state. Otherwise, switch to the Data state.</p>
<h5><dfn>RAWTEXT state</dfn></h5>
<p>Nothing.</p>
</div>`

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Section = "Tokenization"
	cfg.HeadingTag = "h5"
	cfg.MarkerTag = "dfn"
	cfg.ExcludedTitle = "Tokenizing character references"
	cfg.StatesPackage = "tokenizer"
	return cfg
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunnerRun(t *testing.T) {
	path := writeSpec(t, runnerSpec)
	r := NewRunner(testConfig(), discardLogger())

	res, err := r.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Summary.States)
	assert.Equal(t, 2, res.Summary.Edges)
	assert.Equal(t, []extract.TransitionEdge{
		{Source: "Data", Target: "Rawtext"},
		{Source: "Data", Target: "Data"},
	}, res.Graph.Edges)
}

func TestRunnerMissingSectionFails(t *testing.T) {
	path := writeSpec(t, `<div><h3>Parsing</h3></div>`)
	r := NewRunner(testConfig(), discardLogger())

	_, err := r.Run(context.Background(), path)
	var notFound *extract.SectionNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRunnerMissingFileFails(t *testing.T) {
	r := NewRunner(testConfig(), discardLogger())
	_, err := r.Run(context.Background(), filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)
}

func TestRunnerWritesArtifacts(t *testing.T) {
	path := writeSpec(t, runnerSpec)
	r := NewRunner(testConfig(), discardLogger())

	res, err := r.Run(context.Background(), path)
	require.NoError(t, err)

	dir := t.TempDir()
	graphPath := filepath.Join(dir, "build", "states.dot")
	statesPath := filepath.Join(dir, "states.go")
	require.NoError(t, r.WriteGraph(res, graphPath))
	require.NoError(t, r.WriteStates(res, statesPath))

	graph, err := os.ReadFile(graphPath)
	require.NoError(t, err)
	assert.Equal(t, `strict digraph {
    Data -> Rawtext;
    Data -> Data;
}
`, string(graph))

	states, err := os.ReadFile(statesPath)
	require.NoError(t, err)
	assert.Contains(t, string(states), "package tokenizer")
	assert.Contains(t, string(states), "Data State = iota")
	assert.Contains(t, string(states), "\tRawtext\n")
}

func TestRunnerMalformedStateNameAborts(t *testing.T) {
	path := writeSpec(t, `<div>
<h3>Tokenization</h3>
<h5><dfn>Overview</dfn></h5>
</div>`)
	r := NewRunner(testConfig(), discardLogger())

	_, err := r.Run(context.Background(), path)
	var malformed *extract.MalformedStateNameError
	require.ErrorAs(t, err, &malformed)
}

func TestRunnerDoubleRunIsByteIdentical(t *testing.T) {
	path := writeSpec(t, runnerSpec)
	r := NewRunner(testConfig(), discardLogger())

	dir := t.TempDir()
	first := filepath.Join(dir, "first.dot")
	second := filepath.Join(dir, "second.dot")

	res1, err := r.Run(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, r.WriteGraph(res1, first))

	res2, err := r.Run(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, r.WriteGraph(res2, second))

	b1, err := os.ReadFile(first)
	require.NoError(t, err)
	b2, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestRunnerHonorsCancelledContext(t *testing.T) {
	path := writeSpec(t, runnerSpec)
	r := NewRunner(testConfig(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}
