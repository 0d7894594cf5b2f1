package runner

import (
	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/roundtrip"
)

// FileResult is what a Processor reports for one file.
type FileResult struct {
	// Path is the input file.
	Path string

	// Source and Target are the formats converted from and to.
	// Both are FormatMarkdown for round-trip checks.
	Source detect.Format
	Target detect.Format

	// Output is the converted document.
	Output string

	// OutputPath is where Output was or would be written. Empty when the
	// output is not written to disk.
	OutputPath string

	// Written is true when OutputPath was created or changed.
	Written bool

	// BackedUp is true when an existing OutputPath was copied aside first.
	BackedUp bool

	// Skipped is true when the file was not processed, e.g. its format
	// could not be detected.
	Skipped bool

	// SkipReason explains Skipped.
	SkipReason string

	// Check is set for round-trip checks.
	Check *roundtrip.Result
}

// Unstable reports whether a round-trip check failed.
func (r *FileResult) Unstable() bool {
	return r != nil && r.Check != nil && !r.Check.Stable
}

// FileOutcome pairs a path with its result or error.
type FileOutcome struct {
	Path   string
	Result *FileResult
	Error  error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int
	FilesWritten    int

	// FilesChanged counts checked files the first round trip rewrote.
	FilesChanged int

	// FilesUnstable counts checked files that are not a fixed point after
	// one round trip.
	FilesUnstable int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file errored or failed its check.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.FilesUnstable > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	res := outcome.Result
	if res == nil {
		return
	}
	if res.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	if res.Written {
		r.Stats.FilesWritten++
	}
	if res.Check != nil {
		if res.Check.Changed() {
			r.Stats.FilesChanged++
		}
		if !res.Check.Stable {
			r.Stats.FilesUnstable++
		}
	}
}

// NewResult builds a Result from outcomes that did not come from a Run,
// such as a single document read from stdin.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}
