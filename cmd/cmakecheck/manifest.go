package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// checkManifest is an optional cmakecheck.toml found in the checked tree or
// one of its ancestors. Flags given explicitly on the command line win over
// manifest values.
type checkManifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Check  manifestCheckConfig  `toml:"check"`
	Pragma manifestPragmaConfig `toml:"pragma"`
}

type manifestCheckConfig struct {
	Limit     *int  `toml:"limit"`
	Recurse   *bool `toml:"recurse"`
	Gitignore *bool `toml:"gitignore"`
	Jobs      *int  `toml:"jobs"`
	// Exclude lists catalogue rule names to skip.
	Exclude []string `toml:"exclude"`
}

type manifestPragmaConfig struct {
	// Aliases are extra marker words accepted in suppression comments,
	// alongside the built-in nolint/nocheck family.
	Aliases []string `toml:"aliases"`
}

func findCmakecheckToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cmakecheck.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadCheckManifest(startDir string) (*checkManifest, bool, error) {
	manifestPath, ok, err := findCmakecheckToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &checkManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
