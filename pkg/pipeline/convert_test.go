package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
	"github.com/yaklabco/mdbridge/pkg/pipeline"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want pipeline.Direction
	}{
		{"", pipeline.DirectionAuto},
		{"auto", pipeline.DirectionAuto},
		{"md2html", pipeline.DirectionMarkdownToHTML},
		{"HTML2MD", pipeline.DirectionHTMLToMarkdown},
	}

	for _, tt := range tests {
		got, err := pipeline.ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := pipeline.ParseDirection("sideways")
	require.Error(t, err)
}

func TestParseEngine(t *testing.T) {
	t.Parallel()

	got, err := pipeline.ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, pipeline.EngineLite, got)

	got, err = pipeline.ParseEngine("commonmark")
	require.NoError(t, err)
	assert.Equal(t, pipeline.EngineCommonMark, got)

	_, err = pipeline.ParseEngine("pandoc")
	require.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "docs/a.html", pipeline.OutputPath("docs/a.md", detect.FormatHTML))
	assert.Equal(t, "docs/a.md", pipeline.OutputPath("docs/a.htm", detect.FormatMarkdown))
	assert.Equal(t, "noext.html", pipeline.OutputPath("noext", detect.FormatHTML))
}

func TestConvertProcessor_PrintsWithoutWriting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "# Title\n")

	proc := pipeline.NewConvertProcessor(nil, pipeline.DefaultConvertOptions())
	res, err := proc.Process(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, detect.FormatMarkdown, res.Source)
	assert.Equal(t, detect.FormatHTML, res.Target)
	assert.Equal(t, "<h1>Title</h1>", res.Output)
	assert.Empty(t, res.OutputPath)
	assert.False(t, res.Written)
	assert.False(t, fsutil.Exists(filepath.Join(dir, "a.html")))
}

func TestConvertProcessor_WritesSibling(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", "<h2>Hi</h2><ul><li>One</li></ul>")

	opts := pipeline.DefaultConvertOptions()
	opts.Write = true
	proc := pipeline.NewConvertProcessor(nil, opts)

	res, err := proc.Process(context.Background(), path)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "page.md")
	assert.Equal(t, outPath, res.OutputPath)
	assert.True(t, res.Written)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "## Hi\n\n- One\n", string(got))

	// A second run leaves the identical output alone.
	res, err = proc.Process(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, res.Written)
}

func TestConvertProcessor_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "text")

	opts := pipeline.DefaultConvertOptions()
	opts.Write = true
	opts.DryRun = true

	res, err := pipeline.NewConvertProcessor(nil, opts).Process(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "a.html"), res.OutputPath)
	assert.False(t, res.Written)
	assert.False(t, fsutil.Exists(res.OutputPath))
}

func TestConvertProcessor_Backup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "new")
	outPath := writeFile(t, dir, "a.html", "<p>old</p>\n")

	opts := pipeline.DefaultConvertOptions()
	opts.Write = true
	opts.Backup = true

	res, err := pipeline.NewConvertProcessor(nil, opts).Process(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.BackedUp)
	assert.True(t, res.Written)

	backup, err := os.ReadFile(fsutil.BackupPath(outPath))
	require.NoError(t, err)
	assert.Equal(t, "<p>old</p>\n", string(backup))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>\n", string(got))
}

func TestConvertProcessor_FixedDirectionRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "<p>x</p>")

	opts := pipeline.DefaultConvertOptions()
	opts.Direction = pipeline.DirectionHTMLToMarkdown
	opts.Write = true

	res, err := pipeline.NewConvertProcessor(nil, opts).Process(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "x", res.Output)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(got))
}

func TestConvertProcessor_AutoDetectsContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "snippet.txt", "<p>x</p>")
	emptyPath := writeFile(t, dir, "empty.txt", "")

	proc := pipeline.NewConvertProcessor(nil, pipeline.DefaultConvertOptions())

	res, err := proc.Process(context.Background(), htmlPath)
	require.NoError(t, err)
	assert.Equal(t, detect.FormatHTML, res.Source)
	assert.Equal(t, "x", res.Output)

	res, err = proc.Process(context.Background(), emptyPath)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, pipeline.ErrUnknownFormat.Error(), res.SkipReason)
}

func TestConvertProcessor_CommonMarkEngine(t *testing.T) {
	t.Parallel()

	opts := pipeline.DefaultConvertOptions()
	opts.Engine = pipeline.EngineCommonMark
	opts.Flavor = "gfm"
	proc := pipeline.NewConvertProcessor(nil, opts)

	out, err := proc.Convert(context.Background(), detect.FormatMarkdown, "a\nb")
	require.NoError(t, err)
	assert.Equal(t, "<p>a\nb</p>\n", out)

	// HTML input still goes through the lightweight converter.
	out, err = proc.Convert(context.Background(), detect.FormatHTML, "<p>a</p>")
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestConvertProcessor_MissingFile(t *testing.T) {
	t.Parallel()

	proc := pipeline.NewConvertProcessor(nil, pipeline.DefaultConvertOptions())
	_, err := proc.Process(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestConvertProcessor_UnknownFormat(t *testing.T) {
	t.Parallel()

	proc := pipeline.NewConvertProcessor(nil, pipeline.DefaultConvertOptions())
	_, err := proc.Convert(context.Background(), detect.FormatUnknown, "x")
	require.ErrorIs(t, err, pipeline.ErrUnknownFormat)
}
