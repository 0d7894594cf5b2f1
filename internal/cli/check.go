package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdbridge/pkg/config"
	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/pipeline"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// stdinName labels stdin in reports and diffs.
const stdinName = "<stdin>"

type checkFlags struct {
	format  string
	ignore  []string
	compact bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check that Markdown survives a round trip through HTML",
		Long: `Convert each Markdown file to HTML and back, twice.

The first trip may normalize a document (bullet markers, list numbering,
blank lines between paragraphs). After that the output must not change;
files where it does are reported as unstable and the command exits with
status 1. Use --format diff to see how each file would be normalized.`,
		Example: `  mdbridge check                 # Check the current directory
  mdbridge check --format diff   # Show normalization diffs
  mdbridge check --format json   # Machine-readable results
  cat notes.md | mdbridge check  # Check stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags) error {
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	cliCfg.Ignore = flags.ignore

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	proc := pipeline.NewCheckProcessor(nil)

	var result *runner.Result
	if len(args) == 0 {
		result, err = checkStdin(cmd, proc)
	}
	if result == nil && err == nil {
		result, err = runner.New(proc).Run(commandContext(cmd), runner.Options{
			Paths:        args,
			Extensions:   cfg.Extensions.Markdown,
			ExcludeGlobs: cfg.Ignore,
			Jobs:         cfg.Jobs,
		})
	}
	if err != nil {
		return err
	}

	if err := report(cmd, cfg, flags.compact, result); err != nil {
		return err
	}

	switch {
	case result.Stats.FilesErrored > 0:
		return ErrFilesFailed
	case result.Stats.FilesUnstable > 0:
		return ErrUnstable
	default:
		return nil
	}
}

// checkStdin checks a piped document. It returns a nil result when stdin
// is a terminal, so the working directory is checked instead.
func checkStdin(cmd *cobra.Command, proc *pipeline.CheckProcessor) (*runner.Result, error) {
	data, piped, err := readStdin(cmd)
	if err != nil || !piped {
		return nil, err
	}

	check := proc.Check(stdinName, string(data))
	return runner.NewResult(runner.FileOutcome{
		Path: stdinName,
		Result: &runner.FileResult{
			Path:   stdinName,
			Source: detect.FormatMarkdown,
			Target: detect.FormatMarkdown,
			Output: check.Normalized,
			Check:  check,
		},
	}), nil
}
