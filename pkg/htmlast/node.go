// Package htmlast defines the DOM-like tree the HTML to Markdown converter walks.
//
// The tree is deliberately small: element, text, comment and doctype nodes
// under a document root. Parsers (see pkg/parser/nethtml) map their own
// representation into it, which keeps the serializers independent of any
// particular HTML parser.
package htmlast

//go:generate stringer -type=NodeType -trimprefix=Node

// NodeType classifies an HTML node.
type NodeType uint8

// Node types.
const (
	NodeDocument NodeType = iota
	NodeElement
	NodeText
	NodeComment
	NodeDoctype
)

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Node is one node of an HTML fragment tree.
type Node struct {
	// Type identifies what kind of node this is.
	Type NodeType

	// Tag is the lower-case tag name for element nodes.
	Tag string

	// Data is the decoded text for text and comment nodes.
	Data string

	// Attrs holds element attributes in source order.
	Attrs []Attr

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// IsElement reports whether n is an element whose tag is one of tags.
// With no tags it reports whether n is any element.
func (n *Node) IsElement(tags ...string) bool {
	if n == nil || n.Type != NodeElement {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if n.Tag == tag {
			return true
		}
	}
	return false
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n != nil && n.Type == NodeText
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute or fallback when it is absent.
func (n *Node) AttrOr(key, fallback string) string {
	if val, ok := n.Attr(key); ok {
		return val
	}
	return fallback
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildElements returns the direct element children whose tag is one of tags.
func (n *Node) ChildElements(tags ...string) []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.IsElement(tags...) {
			children = append(children, child)
		}
	}
	return children
}

// HeadingLevel returns 1-6 for h1-h6 elements and 0 otherwise.
func (n *Node) HeadingLevel() int {
	if !n.IsElement() || len(n.Tag) != 2 || n.Tag[0] != 'h' {
		return 0
	}
	level := int(n.Tag[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}
