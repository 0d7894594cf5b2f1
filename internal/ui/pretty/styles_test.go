package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"), "No-color Bold should not add formatting")
	assert.Equal(t, "test", styles.Error.Render("test"), "No-color Error should not add formatting")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled(pretty.ColorAlways, &buf))
	assert.False(t, pretty.IsColorEnabled(pretty.ColorNever, os.Stdout))
	assert.False(t, pretty.IsColorEnabled(pretty.ColorAuto, &buf), "bytes.Buffer is not a TTY")
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled(pretty.ColorAuto, os.Stdout))
	assert.True(t, pretty.IsColorEnabled(pretty.ColorAlways, os.Stdout), "always overrides NO_COLOR")
}
