// Package commonmark renders Markdown with goldmark, a full CommonMark
// implementation. It is the reference engine the lightweight converter can
// be compared against; it is never used by the converter itself.
package commonmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/mdbridge/pkg/langdetect"
)

// Flavors supported by the renderer.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// ErrRender indicates goldmark failed to render a document.
var ErrRender = errors.New("commonmark render failed")

// Renderer converts Markdown to an HTML fragment. It is safe for concurrent use.
type Renderer struct {
	flavor    string
	highlight bool
	md        goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlighting adds chroma syntax highlighting to fenced code blocks,
// emitted as CSS classes rather than inline styles. Fences without a
// language get a guessed one.
func WithHighlighting(enabled bool) Option {
	return func(r *Renderer) {
		r.highlight = enabled
	}
}

// New creates a renderer for flavor. Unknown flavors fall back to commonmark.
func New(flavor string, opts ...Option) *Renderer {
	r := &Renderer{flavor: flavorOrDefault(flavor)}
	for _, opt := range opts {
		opt(r)
	}
	r.md = goldmark.New(goldmark.WithExtensions(r.extensions()...))
	return r
}

// Flavor returns the configured flavor.
func (r *Renderer) Flavor() string {
	return r.flavor
}

func (r *Renderer) extensions() []goldmark.Extender {
	var exts []goldmark.Extender
	if r.flavor == FlavorGFM {
		exts = append(exts, extension.GFM)
	}
	if r.highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		))
	}
	return exts
}

// Render converts markdown to HTML. goldmark has no cancellation hook, so the
// conversion runs in its own goroutine and ctx only bounds the wait.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.highlight {
		markdown = langdetect.LabelFences(markdown)
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

func flavorOrDefault(flavor string) string {
	if flavor == FlavorGFM {
		return FlavorGFM
	}
	return FlavorCommonMark
}
