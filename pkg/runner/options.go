// Package runner converts or checks many files concurrently.
package runner

// Options controls file discovery and concurrency.
type Options struct {
	// Paths are the files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore globs.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the lowercase extensions, with leading dot, that
	// discovery picks up inside directories. Files named explicitly in Paths
	// are always included.
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns use / as the
	// separator and support ** for any number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the number of concurrent workers. 0 or negative means runtime.NumCPU().
	Jobs int
}

// DefaultMarkdownExtensions are the extensions treated as Markdown.
func DefaultMarkdownExtensions() []string {
	return []string{".md", ".markdown"}
}

// DefaultHTMLExtensions are the extensions treated as HTML.
func DefaultHTMLExtensions() []string {
	return []string{".html", ".htm"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return append(DefaultMarkdownExtensions(), DefaultHTMLExtensions()...)
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
