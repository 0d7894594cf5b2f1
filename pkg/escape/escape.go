// Package escape holds the escaping and text normalization helpers shared by
// both conversion directions.
package escape

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nbsp is the non-breaking space rune editors emit for runs of spaces.
const nbsp = '\u00a0'

// htmlReplacer escapes the characters that change the meaning of HTML text.
// All three are replaced in one pass, so the & of a produced entity is never re-escaped.
//
//nolint:gochecknoglobals // Replacers are safe for concurrent use.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// quoteReplacer escapes double quotes for values that are already HTML-escaped.
//
//nolint:gochecknoglobals // Replacers are safe for concurrent use.
var quoteReplacer = strings.NewReplacer(`"`, "&quot;")

// HTML escapes &, < and > in text.
func HTML(text string) string {
	if !strings.ContainsAny(text, "&<>") {
		return text
	}
	return htmlReplacer.Replace(text)
}

// Attr escapes a value for use inside a double-quoted attribute.
// The value must already have passed through HTML; only quotes are added here.
func Attr(escaped string) string {
	if !strings.Contains(escaped, `"`) {
		return escaped
	}
	return quoteReplacer.Replace(escaped)
}

// Spaces replaces non-breaking spaces with regular spaces.
func Spaces(text string) string {
	if !strings.ContainsRune(text, nbsp) {
		return text
	}

	// runes.Map never reports an error for valid or invalid UTF-8 input.
	out, _, err := transform.String(nbspMapper(), text)
	if err != nil {
		return strings.ReplaceAll(text, string(nbsp), " ")
	}
	return out
}

// nbspMapper returns a transformer mapping NBSP to space.
// Transformers carry state, so each call gets its own.
func nbspMapper() transform.Transformer {
	return runes.Map(func(r rune) rune {
		if r == nbsp {
			return ' '
		}
		return r
	})
}
