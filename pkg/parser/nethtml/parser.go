// Package nethtml provides an HTML fragment parser backed by golang.org/x/net/html.
package nethtml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/mdbridge/pkg/htmlast"
)

// Parser parses HTML fragments the way a browser parses innerHTML of a <body>.
// It is safe for concurrent use.
type Parser struct{}

// New creates a new fragment parser.
func New() *Parser {
	return &Parser{}
}

// ParseFragment parses source as body content and returns a document node
// whose children are the top-level nodes of the fragment.
//
// The underlying parser repairs malformed markup (unclosed tags, stray end
// tags) the same way browsers do, so the only errors are reader failures.
func (p *Parser) ParseFragment(source string) (*htmlast.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(source), bodyContext())
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	doc := htmlast.NewDocument()
	for _, node := range nodes {
		if mapped := mapNode(node); mapped != nil {
			htmlast.AppendChild(doc, mapped)
		}
	}
	return doc, nil
}

// bodyContext returns a fresh <body> element used as the fragment context.
// The parser attaches results to it, so it is never shared between calls.
func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}
