// Package langdetect guesses the language of code snippets so unlabelled
// fenced code blocks can still be highlighted.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be guessed with confidence.
const Text = "text"

// classifierCandidates limits the enry classifier to languages that commonly
// appear in documentation.
//
//nolint:gochecknoglobals // read-only lookup table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// hint is a cheap textual signal that is more reliable than the classifier
// on short snippets.
type hint struct {
	lang  string
	match func(code, trimmed string) bool
}

//nolint:gochecknoglobals // read-only lookup table
var hints = []hint{
	{"go", func(_, t string) bool { return strings.HasPrefix(t, "package ") }},
	{"python", func(c, _ string) bool {
		return strings.Contains(c, "__main__") || (strings.Contains(c, "def ") && strings.Contains(c, "):"))
	}},
	{"html", func(_, t string) bool {
		lower := strings.ToLower(t)
		return strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html")
	}},
	{"json", func(_, t string) bool {
		return (strings.HasPrefix(t, "{") || strings.HasPrefix(t, "[")) && strings.Contains(t, `"`)
	}},
	{"dockerfile", func(_, t string) bool { return strings.HasPrefix(t, "FROM ") }},
	{"sql", func(_, t string) bool {
		upper := strings.ToUpper(t)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(c, _ string) bool { return strings.Contains(c, "fn main()") || strings.Contains(c, "println!") }},
	{"javascript", func(c, _ string) bool { return strings.Contains(c, "=>") || strings.Contains(c, "console.log") }},
}

// Detect returns a fence tag for code, or Text when unsure. Shebangs win,
// then textual hints, then the enry classifier when it is confident.
func Detect(code []byte) string {
	if len(code) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return fenceTag(lang)
	}

	src := string(code)
	trimmed := strings.TrimSpace(src)
	for _, h := range hints {
		if h.match(src, trimmed) {
			return h.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}
	return Text
}

// fenceTag converts an enry language name to the tag used after a fence.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
