package nethtml

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/mdbridge/pkg/htmlast"
)

// mapNode converts an x/net/html node and its descendants into an htmlast tree.
// Error and raw nodes have no htmlast counterpart and map to nil.
func mapNode(src *html.Node) *htmlast.Node {
	var node *htmlast.Node

	switch src.Type {
	case html.ElementNode:
		node = htmlast.NewElement(elementTag(src), mapAttrs(src.Attr)...)
		mapChildren(src, node)

	case html.TextNode:
		node = htmlast.NewText(src.Data)

	case html.CommentNode:
		node = htmlast.NewComment(src.Data)

	case html.DoctypeNode:
		node = &htmlast.Node{Type: htmlast.NodeDoctype, Data: src.Data}

	case html.DocumentNode:
		node = htmlast.NewDocument()
		mapChildren(src, node)

	default:
		return nil
	}

	return node
}

// mapChildren recursively maps all children of src onto parent.
func mapChildren(src *html.Node, parent *htmlast.Node) {
	for child := src.FirstChild; child != nil; child = child.NextSibling {
		if mapped := mapNode(child); mapped != nil {
			htmlast.AppendChild(parent, mapped)
		}
	}
}

// elementTag returns the tag name, prefixed with its namespace for foreign
// content so that an <a> inside <svg> is never mistaken for a link.
func elementTag(src *html.Node) string {
	if src.Namespace != "" {
		return src.Namespace + ":" + strings.ToLower(src.Data)
	}
	return src.Data
}

// mapAttrs copies attributes, skipping namespaced ones (xlink:href and friends).
func mapAttrs(attrs []html.Attribute) []htmlast.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]htmlast.Attr, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Namespace != "" {
			continue
		}
		out = append(out, htmlast.Attr{Key: attr.Key, Val: attr.Val})
	}
	return out
}
