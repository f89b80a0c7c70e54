// Package counterstyles scrapes the predefined counter-style names out of
// the CSS Counter Styles draft. The draft's source is line-oriented, and the
// markers this package keys on sit on single lines, so the scrape is a line
// scan rather than a tree parse.
package counterstyles

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/servo/spectool/internal/fetch"
)

// Definition lines carry a data-dfn-for attribute naming what the definition
// belongs to; predefined style names are defined for these two productions.
var markers = []string{
	`data-dfn-for="<counter-style-name>"`,
	`data-dfn-for="<counter-style>"`,
}

// namePattern pulls the style name out of a marker line: the text between
// the defining element's opening tag and either its close or its self-link.
var namePattern = regexp.MustCompile(`>([^>]+)(</dfn>|<a class="self-link")`)

// UnmatchedMarkerError means a line carried a definition marker but the name
// could not be extracted from it, so the draft's markup shape has drifted
// from what this scraper understands.
type UnmatchedMarkerError struct {
	Line string
}

func (e *UnmatchedMarkerError) Error() string {
	return fmt.Sprintf("counter-style marker line did not match name pattern: %q", e.Line)
}

// Updater fetches the draft and rewrites the predefined names file.
type Updater struct {
	client *fetch.Client
	log    *slog.Logger
}

func NewUpdater(client *fetch.Client, log *slog.Logger) *Updater {
	return &Updater{client: client, log: log}
}

// Update fetches url and writes every predefined counter-style name to path,
// one per line, in document order. Duplicates are kept; order is the draft's.
func (u *Updater) Update(ctx context.Context, url, path string) error {
	body, err := u.client.Get(ctx, url, "")
	if err != nil {
		return err
	}

	names, err := Scan(body)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write counter styles: %w", err)
	}
	u.log.Info("counter styles written", "path", path, "count", len(names))
	return nil
}

// Scan extracts the style names from the draft's raw bytes.
func Scan(body []byte) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !hasMarker(line) {
			continue
		}
		m := namePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &UnmatchedMarkerError{Line: line}
		}
		names = append(names, m[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan draft: %w", err)
	}
	return names, nil
}

func hasMarker(line string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
