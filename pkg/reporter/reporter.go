// Package reporter writes conversion and round-trip check results.
package reporter

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/mdbridge/pkg/runner"
)

// Format names an output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDiff Format = "diff"
)

var formats = []Format{FormatText, FormatJSON, FormatDiff}

// ParseFormat parses a format name. An empty name means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(name); f.IsValid() {
		return f, nil
	}

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(names, ", "))
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}

// Reporter writes run results.
type Reporter interface {
	// Report writes result and returns the number of problems in it
	// (errored plus unstable files).
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates the Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func problems(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesErrored + result.Stats.FilesUnstable
}
