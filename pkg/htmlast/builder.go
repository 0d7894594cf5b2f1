package htmlast

import "strings"

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{Type: NodeDocument}
}

// NewElement creates an element node. The tag is lower-cased.
func NewElement(tag string, attrs ...Attr) *Node {
	return &Node{
		Type:  NodeElement,
		Tag:   strings.ToLower(tag),
		Attrs: attrs,
	}
}

// NewText creates a text node.
func NewText(data string) *Node {
	return &Node{Type: NodeText, Data: data}
}

// NewComment creates a comment node.
func NewComment(data string) *Node {
	return &Node{Type: NodeComment, Data: data}
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// Build appends children to parent and returns parent, for terse tree literals in tests
// and in parsers that assemble a node before attaching it.
func Build(parent *Node, children ...*Node) *Node {
	for _, child := range children {
		AppendChild(parent, child)
	}
	return parent
}
