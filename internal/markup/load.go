package markup

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// ParseError reports input that could not be read into a tree. The underlying
// parser or reader error is wrapped, never masked.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse markup: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads HTML from r and builds the arena Document. Comment and doctype
// nodes are dropped; element and text nodes are kept in document order.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	d := &Document{nodes: []Node{{Type: ElementNode, Parent: NoNode}}}
	d.convert(root, d.Root())
	return d, nil
}

// convert appends n's children (and their subtrees) to the arena under
// parent, preserving document order.
func (d *Document) convert(n *html.Node, parent NodeID) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		var node Node
		switch c.Type {
		case html.ElementNode:
			node = Node{Type: ElementNode, Tag: c.Data, Parent: parent}
		case html.TextNode:
			node = Node{Type: TextNode, Text: c.Data, Parent: parent}
		default:
			continue
		}
		id := NodeID(len(d.nodes))
		d.nodes = append(d.nodes, node)
		d.nodes[parent].Children = append(d.nodes[parent].Children, id)
		d.convert(c, id)
	}
}

// ParseMarkdown renders Markdown to HTML with goldmark and parses the result.
// Raw HTML in the source is passed through, so inline definition markers
// (e.g. <dfn>) survive the conversion.
func ParseMarkdown(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	md := goldmark.New(goldmark.WithRendererOptions(ghtml.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("render markdown: %w", err)}
	}
	return Parse(&buf)
}

// Load opens path and parses it according to its extension.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spec: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		return Parse(f)
	case ".md", ".markdown":
		return ParseMarkdown(f)
	default:
		return nil, fmt.Errorf("unsupported spec extension: %q", ext)
	}
}
