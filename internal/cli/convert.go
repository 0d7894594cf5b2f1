package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdbridge/internal/logging"
	"github.com/yaklabco/mdbridge/pkg/config"
	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/pipeline"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// Fixed directions for the md2html and html2md commands.
const (
	directionMarkdownToHTML = config.DirectionMarkdownToHTML
	directionHTMLToMarkdown = config.DirectionHTMLToMarkdown
)

type convertFlags struct {
	direction string
	engine    string
	flavor    string
	format    string
	ignore    []string
	compact   bool
}

func newConvertCommand() *cobra.Command {
	var cfg config.Config
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert files in either direction",
		Long: `Convert Markdown files to HTML and HTML files to Markdown.

The direction of each file is taken from its extension, falling back to its
content. Without --write, converted documents are printed to stdout. With
no paths, a document is read from stdin.`,
		Example: `  mdbridge convert README.md           # Print README.md as HTML
  mdbridge convert --write docs/        # Write .html/.md next to every file
  mdbridge convert --write --dry-run .  # Show what would be written
  cat page.html | mdbridge convert      # Detect and convert stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &cfg, flags, "")
		},
	}

	cmd.Flags().StringVar(&flags.direction, "direction", "auto", "conversion direction: auto, md2html, html2md")
	addConvertFlags(cmd, &cfg, flags)

	return cmd
}

func newDirectionCommand(direction config.Direction) *cobra.Command {
	var cfg config.Config
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:  string(direction) + " [paths...]",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &cfg, flags, direction)
		},
	}

	if direction == directionMarkdownToHTML {
		cmd.Short = "Convert Markdown to HTML"
		cmd.Example = `  mdbridge md2html README.md
  echo '# Title' | mdbridge md2html
  mdbridge md2html --engine commonmark --highlight notes.md`
	} else {
		cmd.Short = "Convert HTML to Markdown"
		cmd.Example = `  mdbridge html2md page.html
  curl -s https://example.com/fragment | mdbridge html2md
  mdbridge html2md --write site/`
	}

	addConvertFlags(cmd, &cfg, flags)

	return cmd
}

func addConvertFlags(cmd *cobra.Command, cfg *config.Config, flags *convertFlags) {
	cmd.Flags().StringVar(&flags.engine, "engine", "lite", "Markdown to HTML engine: lite, commonmark")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "commonmark engine flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&cfg.Highlight, "highlight", false, "highlight fenced code (commonmark engine)")
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "write output next to each input file")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show what would be written without writing")
	cmd.Flags().BoolVar(&cfg.Backup, "backup", false, "back up existing outputs before overwriting")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format with --write: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
}

// applyConvertFlags copies explicitly set flags onto cfg.
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config, flags *convertFlags, fixed config.Direction) {
	switch {
	case fixed != "":
		cfg.Direction = fixed
	case cmd.Flags().Changed("direction"):
		cfg.Direction = config.Direction(flags.direction)
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = config.Engine(flags.engine)
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Ignore = flags.ignore
}

func runConvert(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *convertFlags, fixed config.Direction) error {
	applyConvertFlags(cmd, cliCfg, flags, fixed)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	if cfg.Format == config.FormatDiff {
		return fmt.Errorf("%w: the diff format is only available for check", ErrUsage)
	}

	proc, err := newConvertProcessor(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return convertStdin(cmd, cfg, proc)
	}

	ctx := commandContext(cmd)
	result, err := runner.New(proc).Run(ctx, runner.Options{
		Paths:        args,
		Extensions:   sourceExtensions(cfg),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	})
	if err != nil {
		return fmt.Errorf("convert run failed: %w", err)
	}

	if cfg.Write || cfg.DryRun {
		if err := report(cmd, cfg, flags.compact, result); err != nil {
			return err
		}
	} else if err := printOutputs(cmd, result); err != nil {
		return err
	}

	if result.Stats.FilesErrored > 0 {
		return ErrFilesFailed
	}
	return nil
}

func newConvertProcessor(cfg *config.Config) (*pipeline.ConvertProcessor, error) {
	direction, err := pipeline.ParseDirection(string(cfg.Direction))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	engine, err := pipeline.ParseEngine(string(cfg.Engine))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return pipeline.NewConvertProcessor(nil, pipeline.ConvertOptions{
		Direction:          direction,
		Engine:             engine,
		Flavor:             string(cfg.Flavor),
		Highlight:          cfg.Highlight,
		Write:              cfg.Write || cfg.DryRun,
		DryRun:             cfg.DryRun,
		Backup:             cfg.Backup,
		MarkdownExtensions: cfg.Extensions.Markdown,
		HTMLExtensions:     cfg.Extensions.HTML,
	}), nil
}

// sourceExtensions returns the extensions to discover for cfg's direction.
func sourceExtensions(cfg *config.Config) []string {
	switch cfg.Direction {
	case config.DirectionMarkdownToHTML:
		return cfg.Extensions.Markdown
	case config.DirectionHTMLToMarkdown:
		return cfg.Extensions.HTML
	case config.DirectionAuto:
	}
	return cfg.AllExtensions()
}

func convertStdin(cmd *cobra.Command, cfg *config.Config, proc *pipeline.ConvertProcessor) error {
	if cfg.Write || cfg.DryRun {
		return fmt.Errorf("%w: --write needs file paths", ErrUsage)
	}

	data, piped, err := readStdin(cmd)
	if err != nil {
		return err
	}
	if !piped {
		return fmt.Errorf("%w: no input; pass paths or pipe a document on stdin", ErrUsage)
	}

	source := proc.SourceFormat("", data)
	if source == detect.FormatUnknown {
		return nil
	}

	ctx := commandContext(cmd)
	logging.FromContext(ctx).Debug("converting stdin",
		logging.FieldSource, source,
		logging.FieldTarget, source.Opposite(),
	)

	output, err := proc.Convert(ctx, source, string(data))
	if err != nil {
		return fmt.Errorf("convert stdin: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), output)
}

// printOutputs prints each converted document and logs skips and failures.
func printOutputs(cmd *cobra.Command, result *runner.Result) error {
	logger := logging.FromContext(commandContext(cmd))

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			logger.Error("conversion failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		case file.Result == nil:
		case file.Result.Skipped:
			logger.Warn("skipped", logging.FieldPath, file.Path, logging.FieldReason, file.Result.SkipReason)
		default:
			if err := writeOutput(cmd.OutOrStdout(), file.Result.Output); err != nil {
				return err
			}
		}
	}
	return nil
}
