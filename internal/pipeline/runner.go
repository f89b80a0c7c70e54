package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/servo/spectool/internal/config"
	"github.com/servo/spectool/internal/emit"
	"github.com/servo/spectool/internal/extract"
	"github.com/servo/spectool/internal/markup"
)

// Runner executes one extraction run: load, locate, catalog, scan. Strictly
// sequential in a single goroutine; the first failure aborts the run and no
// artifact is written.
type Runner struct {
	cfg config.Config
	log *slog.Logger
}

func NewRunner(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Summary aggregates what a run produced, for operator logging.
type Summary struct {
	States  int
	Edges   int
	Elapsed time.Duration
}

// Result is the output of a successful run.
type Result struct {
	Graph   *extract.Graph
	Summary Summary
}

// Run extracts the state machine from the spec document at path. The context
// is only consulted between stages; the stages themselves have no suspension
// points.
func (r *Runner) Run(ctx context.Context, path string) (*Result, error) {
	start := time.Now()

	r.log.Debug("loading spec", "path", path)
	doc, err := markup.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.log.Debug("extracting", "section", r.cfg.Section, "heading", r.cfg.HeadingTag)
	graph, err := extract.Extract(doc, extract.Options{
		SectionTitle:  r.cfg.Section,
		HeadingTag:    r.cfg.HeadingTag,
		MarkerTag:     r.cfg.MarkerTag,
		ExcludedTitle: r.cfg.ExcludedTitle,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Graph: graph,
		Summary: Summary{
			States:  len(graph.States),
			Edges:   len(graph.Edges),
			Elapsed: time.Since(start),
		},
	}
	r.log.Info("extraction complete",
		"states", res.Summary.States,
		"edges", res.Summary.Edges,
		"elapsed", res.Summary.Elapsed)
	return res, nil
}

// WriteGraph serializes the transition digraph to path. Bytes are built in
// memory first so a failure never leaves a truncated artifact behind.
func (r *Runner) WriteGraph(res *Result, path string) error {
	var buf bytes.Buffer
	if err := emit.DOT(&buf, res.Graph.Edges); err != nil {
		return fmt.Errorf("render graph: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

// WriteStates serializes the state enum source to path.
func (r *Runner) WriteStates(res *Result, path string) error {
	var buf bytes.Buffer
	if err := emit.States(&buf, r.cfg.StatesPackage, res.Graph.States); err != nil {
		return fmt.Errorf("render states: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
