package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
)

// appName names the config directories under /etc and $XDG_CONFIG_HOME.
const appName = "mdbridge"

// ConfigPaths holds the config files found for each layer. Missing files
// are empty strings.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

//nolint:gochecknoglobals // read-only lookup tables
var (
	// projectConfigFiles are searched in each directory, first match wins.
	projectConfigFiles = []string{".mdbridge.yml", ".mdbridge.yaml", ".mdbridge.json", "mdbridge.yml", "mdbridge.yaml"}

	// layerConfigFiles are the names used inside system and user config dirs.
	layerConfigFiles = []string{"config.yaml", "config.yml"}

	// vcsRootMarkers end the upward project search.
	vcsRootMarkers = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project config files for workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), layerConfigFiles),
		User:    firstFile(userConfigDir(), layerConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, appName)
}

// userConfigDir follows XDG on every platform, so macOS users also get
// ~/.config/mdbridge.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig searches startDir and its parents for a project config
// file. The search ends at a VCS root, the home directory or the filesystem
// root. It returns "" when nothing is found.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for current := range searchDirs(dir) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(current, projectConfigFiles); path != "" {
			return path, nil
		}
	}
	return "", nil
}

// searchDirs yields dir and its ancestors up to the first stop point.
func searchDirs(dir string) iter.Seq[string] {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return func(yield func(string) bool) {
		for {
			if !yield(dir) || isVCSRoot(dir) || dir == home {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
