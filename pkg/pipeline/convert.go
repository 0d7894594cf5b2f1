package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/mdbridge/internal/logging"
	"github.com/yaklabco/mdbridge/pkg/bridge"
	"github.com/yaklabco/mdbridge/pkg/detect"
	"github.com/yaklabco/mdbridge/pkg/fsutil"
	"github.com/yaklabco/mdbridge/pkg/render/commonmark"
	"github.com/yaklabco/mdbridge/pkg/runner"
)

// ErrUnknownFormat indicates the source format could not be determined.
var ErrUnknownFormat = errors.New("unknown source format")

// Output file extensions.
const (
	extHTML     = ".html"
	extMarkdown = ".md"
)

// Compile-time interface check.
var _ runner.Processor = (*ConvertProcessor)(nil)

// ConvertProcessor converts files between Markdown and HTML.
type ConvertProcessor struct {
	opts     ConvertOptions
	conv     *bridge.Converter
	renderer *commonmark.Renderer
}

// NewConvertProcessor creates a ConvertProcessor. A nil converter uses the
// default one.
func NewConvertProcessor(conv *bridge.Converter, opts ConvertOptions) *ConvertProcessor {
	if conv == nil {
		conv = bridge.New()
	}
	if opts.Direction == "" {
		opts.Direction = DirectionAuto
	}
	if opts.Engine == "" {
		opts.Engine = EngineLite
	}

	proc := &ConvertProcessor{opts: opts, conv: conv}
	if opts.Engine == EngineCommonMark {
		proc.renderer = commonmark.New(opts.Flavor, commonmark.WithHighlighting(opts.Highlight))
	}
	return proc
}

// Process implements runner.Processor.
func (p *ConvertProcessor) Process(ctx context.Context, path string) (*runner.FileResult, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	source := p.SourceFormat(path, content)
	if source == detect.FormatUnknown {
		return &runner.FileResult{
			Path:       path,
			Skipped:    true,
			SkipReason: ErrUnknownFormat.Error(),
		}, nil
	}

	output, err := p.Convert(ctx, source, string(content))
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	res := &runner.FileResult{
		Path:   path,
		Source: source,
		Target: source.Opposite(),
		Output: output,
	}

	logger := logging.FromContext(ctx)
	logger.Debug("converted",
		logging.FieldPath, path,
		logging.FieldSource, res.Source,
		logging.FieldTarget, res.Target,
	)

	if !p.opts.Write {
		return res, nil
	}

	res.OutputPath = OutputPath(path, res.Target)
	if res.OutputPath == path {
		res.Skipped = true
		res.SkipReason = "output would overwrite input"
		return res, nil
	}

	if p.opts.DryRun {
		logger.Debug("dry run, not writing", logging.FieldOutput, res.OutputPath)
		return res, nil
	}

	if err := p.write(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *ConvertProcessor) write(ctx context.Context, res *runner.FileResult) error {
	if p.opts.Backup {
		backedUp, err := fsutil.CreateBackup(ctx, res.OutputPath)
		if err != nil {
			return fmt.Errorf("backup %s: %w", res.OutputPath, err)
		}
		res.BackedUp = backedUp
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, res.OutputPath, []byte(withFinalNewline(res.Output)), 0)
	if err != nil {
		return fmt.Errorf("write %s: %w", res.OutputPath, err)
	}
	res.Written = written
	return nil
}

// SourceFormat decides the format of content read from path. Fixed
// directions win; auto mode tries the configured extensions and then
// content detection.
func (p *ConvertProcessor) SourceFormat(path string, content []byte) detect.Format {
	switch p.opts.Direction {
	case DirectionMarkdownToHTML:
		return detect.FormatMarkdown
	case DirectionHTMLToMarkdown:
		return detect.FormatHTML
	case DirectionAuto:
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == "":
	case slices.Contains(p.opts.MarkdownExtensions, ext):
		return detect.FormatMarkdown
	case slices.Contains(p.opts.HTMLExtensions, ext):
		return detect.FormatHTML
	}
	return detect.Detect(path, content)
}

// Convert converts text from source to the opposite format.
func (p *ConvertProcessor) Convert(ctx context.Context, source detect.Format, text string) (string, error) {
	switch source {
	case detect.FormatMarkdown:
		if p.renderer != nil {
			return p.renderer.Render(ctx, text)
		}
		return p.conv.MarkdownToHTML(text), nil
	case detect.FormatHTML:
		return p.conv.HTMLToMarkdown(text), nil
	case detect.FormatUnknown:
	}
	return "", ErrUnknownFormat
}

// OutputPath returns path with its extension replaced by the one for target.
func OutputPath(path string, target detect.Format) string {
	ext := extMarkdown
	if target == detect.FormatHTML {
		ext = extHTML
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func withFinalNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
