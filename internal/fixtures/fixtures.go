// Package fixtures reserializes tokenizer test fixtures. The upstream
// fixture files escape non-ASCII characters as \uXXXX sequences, which the
// consuming test harness cannot take; rewriting them through Go's JSON
// encoder with escaping off yields plain UTF-8.
package fixtures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const testExt = ".test"

// Reserialize rewrites every *.test file from the matching subdirectory of
// srcDir into dstDir. The subdirectory read is the base name of dstDir, so
// callers pass the fixture root and the destination names the suite. Files
// without the .test extension are skipped. Output has no \uXXXX escapes and
// no HTML escaping; object keys are sorted, so the output is deterministic.
func Reserialize(srcDir, dstDir string, log *slog.Logger) (int, error) {
	testDir := filepath.Join(srcDir, filepath.Base(dstDir))
	entries, err := os.ReadDir(testDir)
	if err != nil {
		return 0, fmt.Errorf("read fixture dir: %w", err)
	}

	written := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), testExt) {
			continue
		}
		src := filepath.Join(testDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())
		if err := reserializeFile(src, dst); err != nil {
			return written, err
		}
		log.Debug("fixture rewritten", "file", entry.Name())
		written++
	}
	return written, nil
}

func reserializeFile(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode fixture %s: %w", filepath.Base(src), err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode fixture %s: %w", filepath.Base(src), err)
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}
