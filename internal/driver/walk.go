package driver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WalkOptions controls script discovery.
type WalkOptions struct {
	Recurse bool
	// RespectGitignore filters out git-ignored scripts when the root is a
	// git work tree and git is available.
	RespectGitignore bool
}

// Markers that identify generated build directories; trees under them are
// never checked.
var buildDirFileMarkers = []string{
	"CMakeCache.txt",
	"build.ninja",
	"compile_commands.json",
	".conan.db",
}

var buildDirSubdirMarkers = []string{
	"meson-info",
	"meson-logs",
	"meson-private",
}

// ListScriptFiles returns the sorted list of CMake scripts under root:
// CMakeLists.txt and *.cmake files, skipping build directories, git
// submodules and (optionally) git-ignored paths. A root that is itself a
// regular file is returned as-is.
func ListScriptFiles(root string, opts WalkOptions) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if st, err := os.Stat(root); err != nil {
		return nil, err
	} else if !st.IsDir() {
		return []string{root}, nil
	}
	inGitRepo := isGitRepo(root)

	var files []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsPermission(err) {
				return nil
			}
			return err
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if e.IsDir() {
				if !opts.Recurse {
					continue
				}
				if e.Name() == ".git" {
					continue
				}
				if inGitRepo && isGitSubmodule(path) {
					continue
				}
				if isBuildDir(path) {
					continue
				}
				if err := walk(path); err != nil {
					return err
				}
				continue
			}
			if !e.Type().IsRegular() {
				continue
			}
			if isScriptName(e.Name()) {
				files = append(files, path)
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	if opts.RespectGitignore && inGitRepo {
		files = filterGitIgnored(root, files)
	}
	sort.Strings(files)
	return files, nil
}

func isScriptName(name string) bool {
	lower := strings.ToLower(name)
	return lower == "cmakelists.txt" || strings.HasSuffix(lower, ".cmake")
}

func isGitRepo(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".git"))
	return err == nil
}

// A directory with its own .git entry is a submodule (or nested work
// tree); its scripts belong to another project.
func isGitSubmodule(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func isBuildDir(dir string) bool {
	for _, marker := range buildDirFileMarkers {
		if st, err := os.Stat(filepath.Join(dir, marker)); err == nil && st.Mode().IsRegular() {
			return true
		}
	}
	for _, marker := range buildDirSubdirMarkers {
		if st, err := os.Stat(filepath.Join(dir, marker)); err == nil && st.IsDir() {
			return true
		}
	}
	return false
}
