package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdbridge/internal/configloader"
	"github.com/yaklabco/mdbridge/internal/logging"
	"github.com/yaklabco/mdbridge/pkg/config"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
	"github.com/yaklabco/mdbridge/pkg/reporter"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// commandContext returns the command's context or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig merges config files, environment and the flags in cliCfg.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	cfg := result.Config
	logger.Debug("configuration loaded",
		logging.FieldPaths, result.LoadedFrom,
		logging.FieldEngine, cfg.Engine,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldDirection, cfg.Direction,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, nil
}

// readStdin reads all of stdin when it is piped. It reports false when
// stdin is a terminal, meaning there is no input to read.
func readStdin(cmd *cobra.Command) ([]byte, bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, false, nil
	}

	data, err := fsutil.ReadAll(commandContext(cmd), in)
	if err != nil {
		return nil, true, fmt.Errorf("read stdin: %w", err)
	}
	return data, true, nil
}

// report writes result in the configured format.
func report(cmd *cobra.Command, cfg *config.Config, compact bool, result *runner.Result) error {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(commandContext(cmd), result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// writeOutput writes a converted document followed by a newline.
func writeOutput(w io.Writer, output string) error {
	if output == "" {
		return nil
	}
	if _, err := io.WriteString(w, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if output[len(output)-1] != '\n' {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
