// Package pipeline provides the per-file processors behind the convert and
// check commands.
package pipeline

import (
	"fmt"
	"strings"
)

// Direction selects which way a ConvertProcessor converts.
type Direction string

// Conversion directions.
const (
	DirectionAuto           Direction = "auto"
	DirectionMarkdownToHTML Direction = "md2html"
	DirectionHTMLToMarkdown Direction = "html2md"
)

// ParseDirection parses a direction name. Empty means auto.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case DirectionAuto, "":
		return DirectionAuto, nil
	case DirectionMarkdownToHTML:
		return DirectionMarkdownToHTML, nil
	case DirectionHTMLToMarkdown:
		return DirectionHTMLToMarkdown, nil
	default:
		return "", fmt.Errorf("unknown direction %q; valid directions: auto, md2html, html2md", s)
	}
}

// Engine selects the Markdown to HTML renderer.
type Engine string

// Rendering engines. HTML to Markdown always uses the lightweight converter.
const (
	EngineLite       Engine = "lite"
	EngineCommonMark Engine = "commonmark"
)

// ParseEngine parses an engine name. Empty means lite.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(s)) {
	case EngineLite, "":
		return EngineLite, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	default:
		return "", fmt.Errorf("unknown engine %q; valid engines: lite, commonmark", s)
	}
}

// ConvertOptions configures a ConvertProcessor.
type ConvertOptions struct {
	// Direction is the conversion direction.
	Direction Direction

	// Engine renders Markdown to HTML.
	Engine Engine

	// Flavor is the goldmark flavor for EngineCommonMark.
	Flavor string

	// Highlight enables syntax highlighting for EngineCommonMark.
	Highlight bool

	// Write writes each output next to its input with the target extension.
	Write bool

	// DryRun reports what would be written without touching the disk.
	DryRun bool

	// Backup copies an existing output aside before overwriting it.
	Backup bool

	// MarkdownExtensions and HTMLExtensions decide the source format in
	// auto mode before content detection is tried.
	MarkdownExtensions []string
	HTMLExtensions     []string
}

// DefaultConvertOptions returns options for an auto-direction lite conversion
// that prints instead of writing.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Direction:          DirectionAuto,
		Engine:             EngineLite,
		MarkdownExtensions: []string{".md", ".markdown"},
		HTMLExtensions:     []string{".html", ".htm"},
	}
}
