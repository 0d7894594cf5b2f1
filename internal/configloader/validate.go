package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdbridge/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "extensions.html[0]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Known values for the enumerated fields.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	knownEngines = map[config.Engine]bool{
		config.EngineLite:       true,
		config.EngineCommonMark: true,
	}
	knownFlavors = map[config.Flavor]bool{
		config.FlavorCommonMark: true,
		config.FlavorGFM:        true,
	}
	knownDirections = map[config.Direction]bool{
		config.DirectionAuto:           true,
		config.DirectionMarkdownToHTML: true,
		config.DirectionHTMLToMarkdown: true,
	}
	knownFormats = map[config.OutputFormat]bool{
		config.FormatText: true,
		config.FormatJSON: true,
		config.FormatDiff: true,
	}
)

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Engine != "" && !knownEngines[cfg.Engine] {
		result.fail("engine", cfg.Engine, "invalid engine %q; must be one of: lite, commonmark", cfg.Engine)
	}
	if cfg.Flavor != "" && !knownFlavors[cfg.Flavor] {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}
	if cfg.Direction != "" && !knownDirections[cfg.Direction] {
		result.fail("direction", cfg.Direction, "invalid direction %q; must be one of: auto, md2html, html2md", cfg.Direction)
	}
	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Highlight && cfg.Engine == config.EngineLite {
		result.warn("highlight", cfg.Highlight, "highlighting only applies to the commonmark engine")
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks extensions start with a dot and belong to one format.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]string)

	check := func(name string, exts []string) {
		for i, ext := range exts {
			field := fmt.Sprintf("extensions.%s[%d]", name, i)
			if len(ext) < 2 || ext[0] != '.' {
				result.fail(field, ext, "extension %q must start with '.'", ext)
				continue
			}
			key := strings.ToLower(ext)
			if other, ok := seen[key]; ok && other != name {
				result.fail(field, ext, "extension %q is listed as both %s and %s", ext, other, name)
			}
			seen[key] = name
		}
	}

	check("markdown", cfg.Extensions.Markdown)
	check("html", cfg.Extensions.HTML)
}

// validateIgnorePatterns checks that ignore patterns compile as globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
