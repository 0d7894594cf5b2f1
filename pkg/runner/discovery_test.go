package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/mdbridge/pkg/runner"
)

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func relative(t *testing.T, dir string, files []string) []string {
	t.Helper()

	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"readme.md",
		"docs/guide.md",
		"docs/api.markdown",
		"site/index.html",
		"site/old.htm",
		"src/main.go",
		"notes.txt",
		".hidden/secret.md",
		"docs/.draft.md",
	)

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"docs/api.markdown", "docs/guide.md", "readme.md", "site/index.html", "site/old.htm"}
	if got := relative(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_Extensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.md", "b.html")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: runner.DefaultHTMLExtensions(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if got := relative(t, dir, files); !slices.Equal(got, []string{"b.html"}) {
		t.Errorf("Discover() = %v", got)
	}
}

func TestDiscover_ExplicitFileAnyExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "notes.txt")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"notes.txt", "notes.txt"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "notes.txt") {
		t.Errorf("Discover() = %v", files)
	}
}

func TestDiscover_Excludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"keep.md",
		"vendor/lib.md",
		"docs/drafts/wip.md",
		"docs/final.md",
		"CHANGELOG.md",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/drafts/**", "CHANGELOG.md"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"docs/final.md", "keep.md"}
	if got := relative(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"[unclosed"},
	})
	if err == nil {
		t.Error("Discover() error = nil, want invalid pattern error")
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing"},
	})
	if err == nil {
		t.Error("Discover() error = nil, want stat error")
	}
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, "linked.md")
	writeTree(t, dir, "own.md")

	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("without follow: %v", files)
	}

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("with follow: %v", files)
	}
}
