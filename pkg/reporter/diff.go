package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdbridge/internal/ui/pretty"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// DiffReporter prints the round-trip diff of every checked file that the
// first trip normalized.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// diffTotals accumulates counts across files.
type diffTotals struct {
	files, added, removed int
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var totals diffTotals
	for _, file := range result.Files {
		path := relativePath(file.Path, r.opts.WorkingDir)

		switch {
		case file.Error != nil:
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
		case file.Result != nil && file.Result.Check != nil && file.Result.Check.Diff != "":
			totals.files++
			r.writeDiff(path, file.Result.Check.Diff, &totals)
		}
	}

	if totals.files > 0 && r.opts.ShowSummary {
		r.writeSummary(totals)
	}
	return problems(result), nil
}

// writeDiff prints one unified diff under a git-style header.
func (r *DiffReporter) writeDiff(path, diff string, totals *diffTotals) {
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render("diff --git a/"+path+" b/"+path))

	for line := range strings.SplitSeq(strings.TrimSuffix(diff, "\n"), "\n") {
		isHeader := strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---")
		switch {
		case isHeader:
		case strings.HasPrefix(line, "+"):
			totals.added++
		case strings.HasPrefix(line, "-"):
			totals.removed++
		}
		fmt.Fprintln(r.bw, r.styles.FormatDiffLine(line))
	}
	fmt.Fprintln(r.bw)
}

// writeSummary prints "2 files normalized, 3 insertions(+), 1 deletion(-)".
func (r *DiffReporter) writeSummary(totals diffTotals) {
	parts := []string{countOf(totals.files, "file", "files") + " normalized"}
	if totals.added > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(countOf(totals.added, "insertion", "insertions")+"(+)"))
	}
	if totals.removed > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(countOf(totals.removed, "deletion", "deletions")+"(-)"))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func countOf(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
