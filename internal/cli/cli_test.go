package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdbridge/internal/cli"
	"github.com/yaklabco/mdbridge/internal/configloader"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "mdbridge", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"md2html", "html2md", "convert", "check", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, subCmd.Name())
		}
	}
}

func TestConvertCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"md2html", "html2md", "convert"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err)

		for _, flag := range []string{"engine", "flavor", "highlight", "write", "dry-run", "backup", "format", "jobs", "ignore"} {
			assert.NotNil(t, subCmd.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}

	convertCmd, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)
	assert.NotNil(t, convertCmd.Flags().Lookup("direction"))

	md2html, _, err := cmd.Find([]string{"md2html"})
	require.NoError(t, err)
	assert.Nil(t, md2html.Flags().Lookup("direction"))
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "version=1.2.3")
	assert.Contains(t, out.String(), "commit=abc123")
}

func TestHelpIsStyled(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--color", "never", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Available Commands:")
	assert.Contains(t, out.String(), "md2html")
	assert.Contains(t, out.String(), "--debug")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"unstable", cli.ErrUnstable, cli.ExitFailures},
		{"failed files", cli.ErrFilesFailed, cli.ExitFailures},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", errors.Join(errors.New("load"), &configloader.ValidationError{Message: "x"}), cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"os not exist", fmt.Errorf("stat: %w", fs.ErrNotExist), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestIsQuiet(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsQuiet(cli.ErrUnstable))
	assert.True(t, cli.IsQuiet(cli.ErrFilesFailed))
	assert.False(t, cli.IsQuiet(cli.ErrUsage))
	assert.False(t, cli.IsQuiet(nil))
}
