// Package extract turns a parsed spec document into a state-machine
// description: the states a section defines and the transitions its prose
// references between them.
package extract

import "github.com/servo/spectool/internal/markup"

// Defaults for the WHATWG HTML spec's tokenizer section, the document this
// tooling was written against.
const (
	DefaultSectionTitle  = "Tokenization"
	DefaultHeadingTag    = "h5"
	DefaultMarkerTag     = "dfn"
	DefaultExcludedTitle = "Tokenizing character references"
)

// Options selects where and how extraction happens. Zero values fall back to
// the WHATWG defaults above.
type Options struct {
	// SectionTitle anchors the scope: the heading text of the section to
	// extract from, matched exactly.
	SectionTitle string
	// HeadingTag is the tier of headings that define and delimit states.
	HeadingTag string
	// MarkerTag is the element marking a state's defining occurrence.
	MarkerTag string
	// ExcludedTitle names the one heading whose prose does not follow the
	// transition phrasing and would contribute false edges.
	ExcludedTitle string
}

func (o Options) withDefaults() Options {
	if o.SectionTitle == "" {
		o.SectionTitle = DefaultSectionTitle
	}
	if o.HeadingTag == "" {
		o.HeadingTag = DefaultHeadingTag
	}
	if o.MarkerTag == "" {
		o.MarkerTag = DefaultMarkerTag
	}
	if o.ExcludedTitle == "" {
		o.ExcludedTitle = DefaultExcludedTitle
	}
	return o
}

// Graph is the extracted state machine: defined states plus the directed
// edges between state identifiers, both in document order of discovery.
type Graph struct {
	States []StateDefinition
	Edges  []TransitionEdge
}

// Extract runs the full pipeline over an already-loaded document: locate the
// scope, catalog the defined states, scan for transitions. The first failure
// aborts the run; there is no partial result.
func Extract(doc *markup.Document, opts Options) (*Graph, error) {
	opts = opts.withDefaults()

	scope, err := Section(doc, opts.SectionTitle)
	if err != nil {
		return nil, err
	}
	states, err := Catalog(doc, scope, opts.HeadingTag, opts.MarkerTag)
	if err != nil {
		return nil, err
	}
	edges, err := Transitions(doc, scope, opts.HeadingTag, opts.ExcludedTitle)
	if err != nil {
		return nil, err
	}
	return &Graph{States: states, Edges: edges}, nil
}
