package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdbridge/internal/ui/pretty"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to process."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		r.writeFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return problems(result), nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome) {
	path := relativePath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return
	}

	res := file.Result
	if res == nil {
		return
	}

	if res.Skipped {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Dim.Render("skipped: "+res.SkipReason),
		)
		return
	}

	if res.Check != nil {
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.checkStatus(res))
		return
	}

	output := ""
	if res.OutputPath != "" {
		output = relativePath(res.OutputPath, r.opts.WorkingDir)
		if !res.Written {
			output += ", unchanged"
		}
	}
	fmt.Fprintln(r.bw, r.styles.FormatFileLine(path, res.Source.String(), res.Target.String(), output))
}

func (r *TextReporter) checkStatus(res *runner.FileResult) string {
	switch {
	case !res.Check.Stable:
		return r.styles.Failure.Render("unstable")
	case res.Check.Changed():
		return r.styles.Warning.Render("normalized")
	default:
		return r.styles.Success.Render("ok")
	}
}
