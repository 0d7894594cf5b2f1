package pipeline

import (
	"context"
	"strings"

	"github.com/yaklabco/mdbridge/internal/logging"
	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
	"github.com/yaklabco/mdbridge/pkg/roundtrip"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// Compile-time interface check.
var _ runner.Processor = (*CheckProcessor)(nil)

// CheckProcessor runs a round-trip stability check on Markdown files.
type CheckProcessor struct {
	checker *roundtrip.Checker
}

// NewCheckProcessor creates a CheckProcessor. A nil checker uses the
// default converter.
func NewCheckProcessor(checker *roundtrip.Checker) *CheckProcessor {
	if checker == nil {
		checker = roundtrip.NewChecker(nil)
	}
	return &CheckProcessor{checker: checker}
}

// Process implements runner.Processor. HTML files are skipped.
func (p *CheckProcessor) Process(ctx context.Context, path string) (*runner.FileResult, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if format := detect.Detect(path, content); format != detect.FormatMarkdown {
		return &runner.FileResult{
			Path:       path,
			Skipped:    true,
			SkipReason: "not markdown (" + format.String() + ")",
		}, nil
	}

	check := p.Check(path, string(content))

	logging.FromContext(ctx).Debug("checked",
		logging.FieldPath, path,
		logging.FieldStable, check.Stable,
		logging.FieldChanged, check.Changed(),
	)

	return &runner.FileResult{
		Path:   path,
		Source: detect.FormatMarkdown,
		Target: detect.FormatMarkdown,
		Output: check.Normalized,
		Check:  check,
	}, nil
}

// Check runs the round trip on text labelled name. Trailing line breaks are
// dropped first since the converter never emits them.
func (p *CheckProcessor) Check(name, text string) *roundtrip.Result {
	return p.checker.Check(name, strings.TrimRight(text, "\r\n"))
}
