// Package bridge is the public entry point of the converter. It joins the
// Markdown→HTML scanner and the HTML→Markdown serializer behind two pure
// functions that never fail.
package bridge

import (
	"github.com/yaklabco/mdbridge/pkg/htmlast"
	"github.com/yaklabco/mdbridge/pkg/htmltomd"
	"github.com/yaklabco/mdbridge/pkg/mdtohtml"
	"github.com/yaklabco/mdbridge/pkg/parser/nethtml"
)

// Parser turns an HTML fragment into a node tree whose root children are the
// fragment's top-level nodes.
type Parser interface {
	ParseFragment(source string) (*htmlast.Node, error)
}

// Converter converts between Markdown and HTML. The zero value is not usable;
// construct one with New. A Converter is safe for concurrent use when its
// Parser is.
type Converter struct {
	parser Parser
}

// Option configures a Converter.
type Option func(*Converter)

// WithParser replaces the default x/net/html fragment parser.
func WithParser(parser Parser) Option {
	return func(c *Converter) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	conv := &Converter{parser: nethtml.New()}
	for _, opt := range opts {
		opt(conv)
	}
	return conv
}

// MarkdownToHTML renders markdown as an HTML fragment.
func (c *Converter) MarkdownToHTML(markdown string) string {
	if markdown == "" {
		return ""
	}
	return mdtohtml.Convert(markdown)
}

// HTMLToMarkdown renders an HTML fragment as Markdown. Parser errors and
// parser panics yield an empty string.
func (c *Converter) HTMLToMarkdown(html string) (markdown string) {
	if html == "" {
		return ""
	}

	defer func() {
		if recover() != nil {
			markdown = ""
		}
	}()

	root, err := c.parser.ParseFragment(html)
	if err != nil || root == nil {
		return ""
	}
	return htmltomd.Convert(root)
}

//nolint:gochecknoglobals // Shared default converter; it holds no mutable state.
var defaultConverter = New()

// MarkdownToHTML renders markdown with the default converter.
func MarkdownToHTML(markdown string) string {
	return defaultConverter.MarkdownToHTML(markdown)
}

// HTMLToMarkdown renders an HTML fragment with the default converter.
func HTMLToMarkdown(html string) string {
	return defaultConverter.HTMLToMarkdown(html)
}
