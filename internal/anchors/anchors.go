// Package anchors maintains the local-names dataset: element and attribute
// identifiers collected from the CSSWG Shepherd anchors API. The dataset is
// cached on disk and reused until the cache file is removed by hand.
package anchors

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/servo/spectool/internal/fetch"
)

const (
	// AcceptHeader selects the v1 JSON representation of the Shepherd API.
	AcceptHeader = "application/vnd.csswg.shepherd.v1+json"

	cacheFile  = "anchors.json"
	outputFile = "local_names.txt"
)

// Anchor is one entry of the Shepherd anchors tree. Children nest
// recursively; the remaining fields are optional in the upstream data.
type Anchor struct {
	Type        string   `json:"type"`
	LinkingText []string `json:"linking_text"`
	Title       string   `json:"title"`
	Children    []Anchor `json:"children"`
}

// Spec is one specification's worth of anchors. Published and draft anchors
// are traversed alike.
type Spec struct {
	Anchors      []Anchor `json:"anchors"`
	DraftAnchors []Anchor `json:"draft_anchors"`
}

// Updater fetches, caches, and distills the anchors dataset.
type Updater struct {
	client *fetch.Client
	log    *slog.Logger
}

func NewUpdater(client *fetch.Client, log *slog.Logger) *Updater {
	return &Updater{client: client, log: log}
}

// Update ensures dir holds a current local_names.txt. The raw dataset is
// cached in dir as anchors.json; an existing cache is used as-is so repeated
// runs do not hammer the API.
func (u *Updater) Update(ctx context.Context, url, dir string) error {
	raw, err := u.loadDataset(ctx, url, filepath.Join(dir, cacheFile))
	if err != nil {
		return err
	}

	specs := map[string]Spec{}
	if err := json.Unmarshal(raw, &specs); err != nil {
		return fmt.Errorf("decode anchors dataset: %w", err)
	}

	names := LocalNames(specs)
	out := filepath.Join(dir, outputFile)
	if err := os.WriteFile(out, []byte(strings.Join(names, "\n")), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	u.log.Info("local names written", "path", out, "count", len(names))
	return nil
}

func (u *Updater) loadDataset(ctx context.Context, url, cachePath string) ([]byte, error) {
	if raw, err := os.ReadFile(cachePath); err == nil {
		u.log.Info("using cached anchors dataset, remove it to re-download", "path", cachePath)
		return raw, nil
	}

	raw, err := u.client.Get(ctx, url, AcceptHeader)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cachePath, raw, 0o644); err != nil {
		return nil, fmt.Errorf("cache anchors dataset: %w", err)
	}
	return raw, nil
}

// LocalNames collects the identifiers of every element and element-attr
// anchor in the dataset, sorted and de-duplicated. An anchor's identifier is
// its first linking text, falling back to its title. The upstream data
// mislabels some section titles as element-attr entries; identifiers that do
// not start with a lowercase letter are dropped as a filter of convenience
// over that irregularity. Identifiers that come back empty are skipped.
func LocalNames(specs map[string]Spec) []string {
	seen := map[string]struct{}{}
	for _, spec := range specs {
		collect(spec.Anchors, seen)
		collect(spec.DraftAnchors, seen)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collect(anchors []Anchor, seen map[string]struct{}) {
	for _, a := range anchors {
		collect(a.Children, seen)
		if a.Type != "element" && a.Type != "element-attr" {
			continue
		}
		ident := a.Title
		if len(a.LinkingText) > 0 {
			ident = a.LinkingText[0]
		}
		if ident == "" {
			continue
		}
		if r := []rune(ident)[0]; !unicode.IsLower(r) {
			continue
		}
		seen[ident] = struct{}{}
	}
}
