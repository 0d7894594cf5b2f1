package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdbridge/pkg/runner"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string     `json:"path"`
	Source     string     `json:"source,omitempty"`
	Target     string     `json:"target,omitempty"`
	OutputPath string     `json:"outputPath,omitempty"`
	Written    bool       `json:"written,omitempty"`
	BackedUp   bool       `json:"backedUp,omitempty"`
	Skipped    string     `json:"skipped,omitempty"`
	Check      *JSONCheck `json:"check,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONCheck is a round-trip check outcome.
type JSONCheck struct {
	Stable   bool   `json:"stable"`
	Lossless bool   `json:"lossless"`
	Changed  bool   `json:"changed"`
	Diff     string `json:"diff,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesChanged    int `json:"filesChanged"`
	FilesUnstable   int `json:"filesUnstable"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(result)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return problems(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesProcessed:  stats.FilesProcessed,
		FilesWritten:    stats.FilesWritten,
		FilesSkipped:    stats.FilesSkipped,
		FilesErrored:    stats.FilesErrored,
		FilesChanged:    stats.FilesChanged,
		FilesUnstable:   stats.FilesUnstable,
	}

	for _, file := range result.Files {
		output.Files = append(output.Files, r.buildFile(file))
	}

	return output
}

func (r *JSONReporter) buildFile(file runner.FileOutcome) JSONFileResult {
	out := JSONFileResult{Path: relativePath(file.Path, r.opts.WorkingDir)}

	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}

	res := file.Result
	if res == nil {
		return out
	}

	if res.Skipped {
		out.Skipped = res.SkipReason
		return out
	}

	out.Source = res.Source.String()
	out.Target = res.Target.String()
	out.OutputPath = relativePath(res.OutputPath, r.opts.WorkingDir)
	out.Written = res.Written
	out.BackedUp = res.BackedUp

	if res.Check != nil {
		out.Check = &JSONCheck{
			Stable:   res.Check.Stable,
			Lossless: res.Check.Lossless,
			Changed:  res.Check.Changed(),
			Diff:     res.Check.Diff,
		}
	}

	return out
}
