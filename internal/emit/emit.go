// Package emit serializes an extracted state machine into its two artifact
// forms: a Graphviz digraph of the transitions and a generated Go source
// file enumerating the states. Pure formatting; both outputs are
// byte-identical across runs on the same input.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/servo/spectool/internal/extract"
)

// DOT writes the transition edges as a strict digraph, one edge per line.
func DOT(w io.Writer, edges []extract.TransitionEdge) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	for _, e := range edges {
		fmt.Fprintf(&b, "    %s -> %s;\n", e.Source, e.Target)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// States writes the state identifiers as a generated Go enum: a State type
// and one const block with one enumerant per identifier, in document order.
func States(w io.Writer, pkg string, states []extract.StateDefinition) error {
	var b strings.Builder
	b.WriteString("// Code generated by spectool; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// State identifies a tokenizer state from the specification.\n")
	b.WriteString("type State int\n\n")
	b.WriteString("const (\n")
	for i, s := range states {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s State = iota\n", s.Ident)
			continue
		}
		fmt.Fprintf(&b, "\t%s\n", s.Ident)
	}
	b.WriteString(")\n")

	_, err := io.WriteString(w, b.String())
	return err
}
