package htmltomd

import (
	"strings"

	"github.com/yaklabco/mdbridge/pkg/escape"
	"github.com/yaklabco/mdbridge/pkg/htmlast"
)

// Inline renders node and its descendants as Markdown inline text.
//
// Unknown elements contribute only their children, so no markup is ever
// rejected. Comments and doctypes render as nothing.
func Inline(node *htmlast.Node) string {
	if node == nil {
		return ""
	}

	switch node.Type {
	case htmlast.NodeText:
		return escape.Spaces(node.Data)
	case htmlast.NodeComment, htmlast.NodeDoctype:
		return ""
	case htmlast.NodeDocument:
		return inlineChildren(node)
	case htmlast.NodeElement:
	}

	switch node.Tag {
	case "strong", "b":
		return wrapLines(inlineChildren(node), "**")
	case "em", "i":
		return wrapLines(inlineChildren(node), "_")
	case "a":
		return link(node)
	case "code":
		content := inlineChildren(node)
		if content == "" {
			return ""
		}
		return "`" + content + "`"
	case "br":
		return "\n"
	case "img":
		return image(node)
	case "p", "li":
		return strings.TrimSpace(inlineChildren(node))
	default:
		return inlineChildren(node)
	}
}

func inlineChildren(node *htmlast.Node) string {
	var out strings.Builder
	for child := node.FirstChild; child != nil; child = child.Next {
		out.WriteString(Inline(child))
	}
	return out.String()
}

// wrapLines surrounds content with marker. Multi-line content is wrapped one
// non-blank line at a time so a marker pair never spans a line break.
func wrapLines(content, marker string) string {
	if strings.TrimSpace(content) == "" {
		return content
	}
	if !strings.Contains(content, "\n") {
		return marker + content + marker
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = marker + line + marker
		}
	}
	return strings.Join(lines, "\n")
}

// link renders an anchor. A missing href leaves only the label; an empty
// label falls back to the href.
func link(node *htmlast.Node) string {
	label := inlineChildren(node)
	href := node.AttrOr("href", "")
	if href == "" {
		return label
	}
	if strings.TrimSpace(label) == "" {
		label = href
	}
	return "[" + label + "](" + href + ")"
}

// image renders an img element. Without a source there is nothing to link.
func image(node *htmlast.Node) string {
	src := node.AttrOr("src", "")
	if src == "" {
		return ""
	}
	return "![" + escape.Spaces(node.AttrOr("alt", "")) + "](" + src + ")"
}
