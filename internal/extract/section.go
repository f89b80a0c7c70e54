package extract

import "github.com/servo/spectool/internal/markup"

// sectionTag is the container element the spec document wraps sections in.
const sectionTag = "div"

// Section locates the scope for extraction: the nearest enclosing div of the
// first text node whose content equals title exactly (case-sensitive, no
// trimming). The match is against whole text nodes, so a heading like
// <h3><span>12.4</span> Tokenization</h3> is found through its own text node.
func Section(doc *markup.Document, title string) (markup.NodeID, error) {
	text := doc.FindText(title)
	if text == markup.NoNode {
		return markup.NoNode, &SectionNotFoundError{Title: title}
	}
	scope := doc.Ancestor(text, sectionTag)
	if scope == markup.NoNode {
		return markup.NoNode, &SectionNotFoundError{Title: title}
	}
	return scope, nil
}
