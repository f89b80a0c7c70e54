package markup

// NodeType distinguishes the two node kinds a Document stores.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// NodeID addresses a node within a Document's arena.
type NodeID int

// NoNode marks the absence of a node reference.
const NoNode NodeID = -1

// Node is one entry in the arena. Element nodes carry a lower-case Tag and
// ordered Children; text nodes carry the literal Text. Parent is NoNode for
// the root.
type Node struct {
	Type     NodeType
	Tag      string
	Text     string
	Parent   NodeID
	Children []NodeID
}

// Document is an immutable tree of nodes held in a flat arena, addressed by
// index. Node 0 is a synthetic root element (empty tag) whose children are
// the document's top-level nodes. The arena is append-only during load and
// read-only afterwards, so any number of traversals may share it.
type Document struct {
	nodes []Node
}

// Root returns the synthetic root node.
func (d *Document) Root() NodeID { return 0 }

// Len returns the number of nodes in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// Node returns the node addressed by id.
func (d *Document) Node(id NodeID) Node { return d.nodes[id] }

// Text returns the concatenated text of the subtree rooted at id: the literal
// content for a text node, and the depth-first concatenation of all text
// descendants for an element. No separators are inserted and no whitespace is
// trimmed; the result is exactly what the source markup contains.
func (d *Document) Text(id NodeID) string {
	n := d.nodes[id]
	if n.Type == TextNode {
		return n.Text
	}
	var b []byte
	d.appendText(&b, id)
	return string(b)
}

func (d *Document) appendText(b *[]byte, id NodeID) {
	n := d.nodes[id]
	if n.Type == TextNode {
		*b = append(*b, n.Text...)
		return
	}
	for _, c := range n.Children {
		d.appendText(b, c)
	}
}

// FindText returns the first text node, in document order, whose literal
// content equals s exactly. NoNode when absent.
func (d *Document) FindText(s string) NodeID {
	for i, n := range d.nodes {
		if n.Type == TextNode && n.Text == s {
			return NodeID(i)
		}
	}
	return NoNode
}

// ElementsByTag returns every element with the given tag in the subtree
// rooted at root (root itself excluded), in document order.
func (d *Document) ElementsByTag(root NodeID, tag string) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(id NodeID) {
		for _, c := range d.nodes[id].Children {
			n := d.nodes[c]
			if n.Type == ElementNode {
				if n.Tag == tag {
					out = append(out, c)
				}
				walk(c)
			}
		}
	}
	walk(root)
	return out
}

// Ancestor returns the nearest ancestor element of id with the given tag,
// or NoNode when no such ancestor exists.
func (d *Document) Ancestor(id NodeID, tag string) NodeID {
	for p := d.nodes[id].Parent; p != NoNode; p = d.nodes[p].Parent {
		n := d.nodes[p]
		if n.Type == ElementNode && n.Tag == tag {
			return p
		}
	}
	return NoNode
}

// FollowingSiblings returns id's siblings that come after it under the same
// parent, in document order. Empty for the root and for a last child.
func (d *Document) FollowingSiblings(id NodeID) []NodeID {
	p := d.nodes[id].Parent
	if p == NoNode {
		return nil
	}
	sibs := d.nodes[p].Children
	for i, s := range sibs {
		if s == id {
			return sibs[i+1:]
		}
	}
	return nil
}
