// Package config defines core configuration types for mdbridge.
// These types are pure data structures with no dependency on the loader.
package config

// Engine selects the Markdown to HTML renderer.
type Engine string

const (
	EngineLite       Engine = "lite"
	EngineCommonMark Engine = "commonmark"
)

// Flavor specifies the Markdown flavor for the commonmark engine.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Direction selects which way convert works.
type Direction string

const (
	DirectionAuto           Direction = "auto"
	DirectionMarkdownToHTML Direction = "md2html"
	DirectionHTMLToMarkdown Direction = "html2md"
)

// OutputFormat specifies the report format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// Extensions lists the file extensions treated as each format.
type Extensions struct {
	Markdown []string `json:"markdown" yaml:"markdown"`
	HTML     []string `json:"html"     yaml:"html"`
}

// Config is the root configuration structure for mdbridge.
type Config struct {
	// Engine renders Markdown to HTML ("lite" or "commonmark").
	Engine Engine `json:"engine" yaml:"engine"`

	// Flavor is the commonmark engine flavor ("commonmark" or "gfm").
	Flavor Flavor `json:"flavor" yaml:"flavor"`

	// Direction is the default convert direction ("auto", "md2html", "html2md").
	Direction Direction `json:"direction" yaml:"direction"`

	// Highlight enables syntax highlighting in the commonmark engine.
	Highlight bool `json:"highlight" yaml:"highlight"`

	// Backup copies existing outputs aside before overwriting them.
	Backup bool `json:"backup" yaml:"backup"`

	// Extensions decides which files are discovered and their format.
	Extensions Extensions `json:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `json:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the report format.
	Format OutputFormat `json:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `json:"-" yaml:"-"`

	// Write writes outputs next to their inputs.
	Write bool `json:"-" yaml:"-"`

	// DryRun shows what would be written without making changes.
	DryRun bool `json:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:    EngineLite,
		Flavor:    FlavorGFM,
		Direction: DirectionAuto,
		Extensions: Extensions{
			Markdown: []string{".md", ".markdown"},
			HTML:     []string{".html", ".htm"},
		},
		Ignore: nil,
		Format: FormatText,
		Jobs:   0, // 0 means use runtime.NumCPU
	}
}

// AllExtensions returns the Markdown and HTML extensions together.
func (c *Config) AllExtensions() []string {
	exts := make([]string, 0, len(c.Extensions.Markdown)+len(c.Extensions.HTML))
	exts = append(exts, c.Extensions.Markdown...)
	return append(exts, c.Extensions.HTML...)
}
