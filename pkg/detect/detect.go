// Package detect decides whether a document is Markdown or HTML.
// It uses go-enry for extension and classifier lookups, with cheap pattern
// checks in front of the classifier.
package detect

import (
	"bytes"
	"regexp"

	"github.com/go-enry/go-enry/v2"
)

// Format is a document format understood by the converter.
type Format string

// Known formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatUnknown  Format = "unknown"
)

// enry language names.
const (
	enryMarkdown = "Markdown"
	enryHTML     = "HTML"
)

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// Opposite returns the conversion target for f.
func (f Format) Opposite() Format {
	switch f {
	case FormatMarkdown:
		return FormatHTML
	case FormatHTML:
		return FormatMarkdown
	case FormatUnknown:
	}
	return FormatUnknown
}

//nolint:gochecknoglobals // Compiled patterns are read-only and safe for concurrent use.
var (
	htmlTagPattern   = regexp.MustCompile(`(?i)</(p|h[1-6]|ul|ol|li|pre|code|strong|b|em|i|a|div|span)>|<(br|img)\b[^>]*>`)
	markdownPatterns = regexp.MustCompile("(?m)^(#{1,6}\\s|[-*]\\s|\\d+\\.\\s|```)|\\*\\*[^*]+\\*\\*|\\]\\([^)]+\\)")
)

// FromPath detects the format from the file extension alone.
//
// Some extensions map to several languages (.md is also GCC Machine
// Description), so every candidate is checked rather than only a safe match.
func FromPath(path string) Format {
	for _, lang := range enry.GetLanguagesByExtension(path, nil, nil) {
		if format := fromLanguage(lang); format != FormatUnknown {
			return format
		}
	}
	return FormatUnknown
}

// FromContent detects the format from the document body.
//
// Documents with a doctype or recognised HTML tags are HTML; documents with
// Markdown block or inline markers are Markdown. Text with angle brackets but
// neither is left to the enry classifier. Plain text is Markdown, since every
// line of it is a valid paragraph.
func FromContent(content []byte) Format {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return FormatUnknown
	}

	if isHTMLDocument(trimmed) || htmlTagPattern.Match(trimmed) {
		return FormatHTML
	}

	if markdownPatterns.Match(trimmed) {
		return FormatMarkdown
	}

	if !bytes.ContainsRune(trimmed, '<') {
		return FormatMarkdown
	}

	lang, _ := enry.GetLanguageByClassifier(trimmed, []string{enryMarkdown, enryHTML})
	if format := fromLanguage(lang); format != FormatUnknown {
		return format
	}
	return FormatMarkdown
}

// Detect tries the path first and falls back to the content.
func Detect(path string, content []byte) Format {
	if path != "" {
		if format := FromPath(path); format != FormatUnknown {
			return format
		}
	}
	return FromContent(content)
}

func fromLanguage(lang string) Format {
	switch lang {
	case enryMarkdown:
		return FormatMarkdown
	case enryHTML:
		return FormatHTML
	default:
		return FormatUnknown
	}
}

// isHTMLDocument checks for whole-document HTML markers.
func isHTMLDocument(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}
