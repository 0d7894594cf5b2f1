// Package roundtrip checks that Markdown survives a trip through HTML.
//
// A document is converted md0 → h1 → md1 → h2 → md2. The first trip may
// normalize the source (bullet style, list numbering, blank lines); after
// that, output must be a fixed point.
package roundtrip

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/mdbridge/pkg/bridge"
)

// diffContext is the number of unchanged lines around each hunk.
const diffContext = 3

// Result is the outcome of one check.
type Result struct {
	// Source is the input Markdown.
	Source string

	// HTML is the first rendering of Source.
	HTML string

	// Normalized is Source after one trip through HTML.
	Normalized string

	// Stable is true when a second trip leaves Normalized unchanged.
	Stable bool

	// Lossless is true when Normalized renders to the same HTML as Source.
	Lossless bool

	// Diff is a unified diff from Source to Normalized, empty when equal.
	Diff string
}

// Changed reports whether the first trip rewrote the source.
func (r *Result) Changed() bool {
	return r.Source != r.Normalized
}

// Checker runs round-trip checks with a given converter.
type Checker struct {
	conv *bridge.Converter
}

// NewChecker creates a Checker. A nil converter uses the default one.
func NewChecker(conv *bridge.Converter) *Checker {
	if conv == nil {
		conv = bridge.New()
	}
	return &Checker{conv: conv}
}

// Check runs markdown through two round trips. name labels the diff headers.
func (c *Checker) Check(name, markdown string) *Result {
	html1 := c.conv.MarkdownToHTML(markdown)
	md1 := c.conv.HTMLToMarkdown(html1)
	html2 := c.conv.MarkdownToHTML(md1)
	md2 := c.conv.HTMLToMarkdown(html2)

	return &Result{
		Source:     markdown,
		HTML:       html1,
		Normalized: md1,
		Stable:     md1 == md2,
		Lossless:   html1 == html2,
		Diff:       Diff(name, markdown, md1),
	}
}

// Check runs markdown through two round trips with the default converter.
func Check(markdown string) *Result {
	return NewChecker(nil).Check("", markdown)
}

// Diff returns a unified diff between before and after, or "" when they are
// equal. Files are labelled name and name (round trip).
func Diff(name, before, after string) string {
	if before == after {
		return ""
	}
	if name == "" {
		name = "input"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(withTrailingNewline(before)),
		B:        difflib.SplitLines(withTrailingNewline(after)),
		FromFile: name,
		ToFile:   name + " (round trip)",
		Context:  diffContext,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return out
}

// withTrailingNewline keeps the last line from merging with diff markers.
func withTrailingNewline(text string) string {
	if text == "" || text[len(text)-1] == '\n' {
		return text
	}
	return text + "\n"
}
