package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	return []byte(DefaultTemplateHeader() + `

# Markdown to HTML engine: lite (the built-in converter) or commonmark
engine: lite

# Flavor for the commonmark engine: commonmark or gfm
flavor: gfm

# Default convert direction: auto, md2html, or html2md
direction: auto

# Syntax highlighting for fenced code (commonmark engine only)
highlight: false

# Copy an existing output to <file>.mdbridge.bak before overwriting it
backup: false

# File extensions treated as each format
extensions:
  markdown:
    - .md
    - .markdown
  html:
    - .html
    - .htm

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`), nil
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(NewConfig(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdbridge configuration
# See: https://github.com/yaklabco/mdbridge`
}
