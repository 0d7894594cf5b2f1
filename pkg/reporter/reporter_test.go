package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/reporter"
	"github.com/yaklabco/mdbridge/pkg/roundtrip"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/a.md",
				Result: &runner.FileResult{
					Path:       "/work/a.md",
					Source:     detect.FormatMarkdown,
					Target:     detect.FormatHTML,
					OutputPath: "/work/a.html",
					Written:    true,
				},
			},
			{
				Path:   "/work/b.txt",
				Result: &runner.FileResult{Path: "/work/b.txt", Skipped: true, SkipReason: "unknown format"},
			},
			{
				Path:  "/work/c.md",
				Error: errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  1,
			FilesWritten:    1,
			FilesSkipped:    1,
			FilesErrored:    1,
		},
	}
}

func checkResult() *runner.Result {
	check := roundtrip.NewChecker(nil).Check("list.md", "* a\n* b")
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/list.md",
				Result: &runner.FileResult{
					Path:   "/work/list.md",
					Source: detect.FormatMarkdown,
					Target: detect.FormatMarkdown,
					Check:  check,
				},
			},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesProcessed: 1, FilesChanged: 1},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "text", "json", "diff"} {
		format, err := reporter.ParseFormat(name)
		require.NoError(t, err, name)
		assert.True(t, format.IsValid())
	}

	_, err := reporter.ParseFormat("sarif")
	require.Error(t, err)
	assert.False(t, reporter.Format("sarif").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})
	require.NoError(t, err)

	problems, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, problems)

	out := buf.String()
	assert.Contains(t, out, "a.md: markdown -> html (a.html)")
	assert.Contains(t, out, "b.txt: skipped: unknown format")
	assert.Contains(t, out, "c.md: error: permission denied")
	assert.Contains(t, out, "1 file processed, 1 written, 1 skipped, 1 error")
	assert.NotContains(t, out, "/work/")
}

func TestTextReporter_Check(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	problems, err := rep.Report(context.Background(), checkResult())
	require.NoError(t, err)
	assert.Zero(t, problems)
	assert.Equal(t, "/work/list.md: normalized\n", buf.String())
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	problems, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, problems)
	assert.Equal(t, "No files to process.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: "/work"})

	problems, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, problems)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0.0", out.Version)
	require.Len(t, out.Files, 3)
	assert.Equal(t, "a.md", out.Files[0].Path)
	assert.Equal(t, "markdown", out.Files[0].Source)
	assert.Equal(t, "html", out.Files[0].Target)
	assert.Equal(t, "a.html", out.Files[0].OutputPath)
	assert.True(t, out.Files[0].Written)
	assert.Equal(t, "unknown format", out.Files[1].Skipped)
	assert.Equal(t, "permission denied", out.Files[2].Error)
	assert.Equal(t, 3, out.Summary.FilesDiscovered)
	assert.Equal(t, 1, out.Summary.FilesErrored)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), checkResult())
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "\n  ")
	assert.Contains(t, out, `"check":{"stable":true,"lossless":true,"changed":true`)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  "/work",
	})

	_, err := rep.Report(context.Background(), checkResult())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/list.md b/list.md")
	assert.Contains(t, out, "-* a")
	assert.Contains(t, out, "+- a")
	assert.Contains(t, out, "1 file normalized, 2 insertions(+), 2 deletions(-)")
}

func TestDiffReporter_NoChecks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "/work/c.md: error: permission denied\n", buf.String())
}
