package extract

import (
	"regexp"
	"strings"

	"github.com/servo/spectool/internal/markup"
)

// transitionPattern matches the spec's transition phrasing: "switch to the
// <name> state", with either capitalization of the leading word. The capture
// is minimal so two references in one stretch of text yield two matches
// rather than one spanning both. This is a deliberate narrow heuristic tied
// to the source document's phrasing convention, not language understanding.
var transitionPattern = regexp.MustCompile(`[sS]witch to the (.*? state)`)

// TransitionEdge is one directed edge of the extracted graph. Source and
// Target are normalized identifiers; self-loops are legitimate.
type TransitionEdge struct {
	Source string
	Target string
}

// Transitions scans every heading at the defining tier inside scope, in
// document order, and extracts the transition edges referenced by the text
// between it and the next same-tier heading. A heading whose full text equals
// excludedTitle is skipped outright; it still terminates the preceding
// heading's text like any other same-tier heading. Targets are not checked
// against the catalog: an edge may reference a state the document never
// defines, and that inconsistency is passed through, not corrected.
func Transitions(doc *markup.Document, scope markup.NodeID, headingTag, excludedTitle string) ([]TransitionEdge, error) {
	var edges []TransitionEdge
	for _, h := range doc.ElementsByTag(scope, headingTag) {
		name := doc.Text(h)
		if name == excludedTitle {
			continue
		}
		source, err := StateIdent(name)
		if err != nil {
			return nil, err
		}

		text := sectionText(doc, h, headingTag)
		for _, m := range transitionPattern.FindAllStringSubmatch(text, -1) {
			target, err := StateIdent(m[1])
			if err != nil {
				return nil, err
			}
			edges = append(edges, TransitionEdge{Source: source, Target: target})
		}
	}
	return edges, nil
}

// sectionText concatenates the text of every sibling after heading up to
// (not including) the next sibling with the same tag. Text siblings
// contribute their literal content, element siblings their full descendant
// text; an element sibling of a different tag never stops the walk even if it
// contains same-tier headings of its own.
func sectionText(doc *markup.Document, heading markup.NodeID, headingTag string) string {
	var b strings.Builder
	for _, sib := range doc.FollowingSiblings(heading) {
		n := doc.Node(sib)
		if n.Type == markup.ElementNode && n.Tag == headingTag {
			break
		}
		b.WriteString(doc.Text(sib))
	}
	return b.String()
}
