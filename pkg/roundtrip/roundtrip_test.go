package roundtrip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/pkg/bridge"
	"github.com/yaklabco/mdbridge/pkg/roundtrip"
)

func TestCheck_Unchanged(t *testing.T) {
	t.Parallel()

	res := roundtrip.Check("# Title\n\n- One\n- Two")

	assert.True(t, res.Stable)
	assert.True(t, res.Lossless)
	assert.False(t, res.Changed())
	assert.Empty(t, res.Diff)
	assert.Equal(t, "<h1>Title</h1><ul><li>One</li><li>Two</li></ul>", res.HTML)
}

func TestCheck_NormalizesOnFirstTrip(t *testing.T) {
	t.Parallel()

	res := roundtrip.Check("* a\n* b\n\n5. x")

	require.True(t, res.Changed())
	assert.Equal(t, "- a\n- b\n\n1. x", res.Normalized)
	assert.True(t, res.Stable)
	assert.True(t, res.Lossless)
	assert.Contains(t, res.Diff, "-* a")
	assert.Contains(t, res.Diff, "+- a")
	assert.Contains(t, res.Diff, "--- input")
	assert.Contains(t, res.Diff, "+++ input (round trip)")
}

func TestCheck_TripleAsterisks(t *testing.T) {
	t.Parallel()

	res := roundtrip.Check("***x***")

	assert.Equal(t, "**_x_**", res.Normalized)
	assert.True(t, res.Stable)
}

func TestChecker_NamesDiff(t *testing.T) {
	t.Parallel()

	res := roundtrip.NewChecker(bridge.New()).Check("notes.md", "line one\nline two")

	assert.Equal(t, "line one\n\nline two", res.Normalized)
	assert.Contains(t, res.Diff, "--- notes.md")
	assert.Contains(t, res.Diff, "+++ notes.md (round trip)")
}

func TestDiff_Equal(t *testing.T) {
	t.Parallel()

	assert.Empty(t, roundtrip.Diff("x", "same", "same"))
}
