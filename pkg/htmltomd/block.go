// Package htmltomd converts an HTML node tree to the lightweight Markdown subset.
//
// The tree comes from an htmlast-producing parser; this package never parses
// HTML itself. Top-level children of the root become blocks, everything below
// them is serialized inline.
package htmltomd

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/mdbridge/pkg/escape"
	"github.com/yaklabco/mdbridge/pkg/htmlast"
)

const (
	blockSeparator = "\n\n"
	codeFence      = "```"
	languagePrefix = "language-"
)

// excessNewlines matches runs of blank lines left by empty blocks.
//
//nolint:gochecknoglobals // Compiled pattern is read-only and safe for concurrent use.
var excessNewlines = regexp.MustCompile(`\n{4,}`)

// Convert renders the children of root as Markdown blocks separated by a
// blank line. Runs of four or more newlines collapse to three and the result
// is trimmed.
func Convert(root *htmlast.Node) string {
	if root == nil {
		return ""
	}

	var blocks []string
	for child := root.FirstChild; child != nil; child = child.Next {
		if block, ok := Block(child); ok {
			blocks = append(blocks, block)
		}
	}

	out := strings.Join(blocks, blockSeparator)
	out = excessNewlines.ReplaceAllString(out, "\n\n\n")
	return strings.TrimSpace(out)
}

// Block renders one top-level node. ok is false for nodes that produce no
// block at all: comments, doctypes and whitespace-only text. Elements always
// produce a block, possibly empty.
func Block(node *htmlast.Node) (string, bool) {
	switch node.Type {
	case htmlast.NodeText:
		text := strings.TrimSpace(escape.Spaces(node.Data))
		return text, text != ""
	case htmlast.NodeElement:
	case htmlast.NodeDocument, htmlast.NodeComment, htmlast.NodeDoctype:
		return "", false
	}

	if level := node.HeadingLevel(); level > 0 {
		return strings.Repeat("#", level) + " " + strings.TrimSpace(inlineChildren(node)), true
	}

	switch node.Tag {
	case "ul", "ol":
		return list(node), true
	case "pre":
		return codeBlock(node), true
	default:
		return strings.TrimSpace(Inline(node)), true
	}
}

// list renders one line per direct li child.
func list(node *htmlast.Node) string {
	items := node.ChildElements("li")
	lines := make([]string, 0, len(items))
	for i, item := range items {
		prefix := "- "
		if node.Tag == "ol" {
			prefix = strconv.Itoa(i+1) + ". "
		}
		lines = append(lines, prefix+Inline(item))
	}
	return strings.Join(lines, "\n")
}

// codeBlock fences the literal text content of a pre element.
func codeBlock(node *htmlast.Node) string {
	text := strings.TrimSpace(escape.Spaces(htmlast.TextContent(node)))
	return codeFence + codeLanguage(node) + "\n" + text + "\n" + codeFence
}

// codeLanguage finds a language-* class on the first code child or on pre itself.
func codeLanguage(pre *htmlast.Node) string {
	if codes := pre.ChildElements("code"); len(codes) > 0 {
		if lang := classLanguage(codes[0]); lang != "" {
			return lang
		}
	}
	return classLanguage(pre)
}

func classLanguage(node *htmlast.Node) string {
	for class := range strings.FieldsSeq(node.AttrOr("class", "")) {
		if lang, ok := strings.CutPrefix(class, languagePrefix); ok && lang != "" {
			return lang
		}
	}
	return ""
}
