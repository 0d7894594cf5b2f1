package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover returns the sorted, de-duplicated absolute paths selected by opts.
//
// Directories are walked recursively, skipping hidden entries and keeping
// files with a matching extension. Files named directly are kept whatever
// their extension, unless excluded.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   excludes,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		if !d.excluded(absPath) {
			d.add(absPath)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	workDir    string
	extensions []string
	excludes   []glob.Glob
	follow     bool
	seen       map[string]struct{}
	files      []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || d.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path)
		}

		if d.hasExtension(path) && !d.excluded(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a symlink met during a walk. Broken links are skipped;
// directory links are walked only when following is enabled, starting from
// the resolved target so WalkDir never loops on the link itself.
func (d *discoverer) symlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible targets are skipped.
	}

	if info.IsDir() {
		if !d.follow {
			return nil
		}
		return d.walk(ctx, target)
	}

	if d.hasExtension(path) && !d.excluded(path) {
		d.add(path)
	}
	return nil
}

func (d *discoverer) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range d.extensions {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}

// excluded matches path, relative to the working directory, and its base
// name against the exclude globs.
func (d *discoverer) excluded(path string) bool {
	if len(d.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range d.excludes {
		if pattern.Match(rel) || pattern.Match(base) {
			return true
		}
	}
	return false
}

// compileGlobs compiles exclude patterns. A trailing /** also matches the
// directory itself, so "vendor/**" prunes vendor without descending into it.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if dir, ok := strings.CutSuffix(pattern, "/**"); ok {
			pattern = "{" + dir + "," + dir + "/**}"
		}

		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}
