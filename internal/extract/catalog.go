package extract

import "github.com/servo/spectool/internal/markup"

// StateDefinition is one defined state: the literal text of its definition
// marker and the normalized identifier derived from it.
type StateDefinition struct {
	Raw   string
	Ident string
}

// Catalog collects the states defined inside scope: every heading at the
// defining tier whose direct child is a definition marker element yields one
// StateDefinition, in document order. Duplicate raw names are preserved as
// separate entries; identifier uniqueness is the source document's promise,
// not ours.
func Catalog(doc *markup.Document, scope markup.NodeID, headingTag, markerTag string) ([]StateDefinition, error) {
	var defs []StateDefinition
	for _, h := range doc.ElementsByTag(scope, headingTag) {
		for _, c := range doc.Node(h).Children {
			child := doc.Node(c)
			if child.Type != markup.ElementNode || child.Tag != markerTag {
				continue
			}
			raw := doc.Text(c)
			ident, err := StateIdent(raw)
			if err != nil {
				return nil, err
			}
			defs = append(defs, StateDefinition{Raw: raw, Ident: ident})
		}
	}
	return defs, nil
}
