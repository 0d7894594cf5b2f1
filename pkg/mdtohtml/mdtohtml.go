// Package mdtohtml converts the lightweight Markdown subset to HTML.
//
// The subset covers ATX headings, unordered and ordered lists, fenced code
// blocks, paragraphs, and a handful of inline constructs. Conversion is a
// line-oriented scan with no nesting and no lookahead past the current line.
package mdtohtml

import "strings"

// lineBreaks normalizes CRLF and lone CR line endings.
//
//nolint:gochecknoglobals // Replacer is read-only and safe for concurrent use.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Convert renders markdown as an HTML fragment. Blocks are concatenated
// without separators. Empty input yields an empty string.
func Convert(markdown string) string {
	if markdown == "" {
		return ""
	}

	var scan scanner
	for line := range strings.SplitSeq(lineBreaks.Replace(markdown), "\n") {
		scan.scanLine(line)
	}
	return scan.finish()
}
