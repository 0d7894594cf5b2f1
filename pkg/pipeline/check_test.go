package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/pipeline"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

func TestCheckProcessor_Stable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.md", "# Title\n\n- One\n- Two\n")

	res, err := pipeline.NewCheckProcessor(nil).Process(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, res.Check)

	assert.True(t, res.Check.Stable)
	assert.False(t, res.Check.Changed(), "trailing newline should not count as a change")
	assert.False(t, res.Unstable())
}

func TestCheckProcessor_Normalizes(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.md", "* a\n* b\n")

	res, err := pipeline.NewCheckProcessor(nil).Process(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.Check.Changed())
	assert.Equal(t, "- a\n- b", res.Output)
	assert.Contains(t, res.Check.Diff, "--- "+path)
}

func TestCheckProcessor_SkipsHTML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.html", "<p>x</p>")

	res, err := pipeline.NewCheckProcessor(nil).Process(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "not markdown (html)", res.SkipReason)
}

func TestCheckProcessor_WithRunner(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "b.md", "* b\n")
	writeFile(t, dir, "c.html", "<p>c</p>")

	run := runner.New(pipeline.NewCheckProcessor(nil))
	result, err := run.Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		Extensions: []string{".md", ".html"},
		Jobs:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Zero(t, result.Stats.FilesUnstable)
	assert.False(t, result.HasFailures())
}
