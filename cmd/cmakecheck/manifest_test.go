package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCheckManifest(t *testing.T) {
	dir := t.TempDir()
	content := `
[check]
limit = 25
recurse = false
jobs = 2

[pragma]
aliases = ["legacy-lint", "old-checker"]
`
	if err := os.WriteFile(filepath.Join(dir, "cmakecheck.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// The manifest is discovered from a subdirectory by walking up.
	sub := filepath.Join(dir, "src", "lib")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	manifest, ok, err := loadCheckManifest(sub)
	if err != nil {
		t.Fatalf("loadCheckManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if manifest.Root != dir {
		t.Errorf("Root = %s, want %s", manifest.Root, dir)
	}

	cfg := manifest.Config
	if cfg.Check.Limit == nil || *cfg.Check.Limit != 25 {
		t.Errorf("limit = %v, want 25", cfg.Check.Limit)
	}
	if cfg.Check.Recurse == nil || *cfg.Check.Recurse {
		t.Errorf("recurse = %v, want false", cfg.Check.Recurse)
	}
	if cfg.Check.Gitignore != nil {
		t.Errorf("gitignore should be unset, got %v", *cfg.Check.Gitignore)
	}
	if len(cfg.Pragma.Aliases) != 2 || cfg.Pragma.Aliases[0] != "legacy-lint" {
		t.Errorf("aliases = %v", cfg.Pragma.Aliases)
	}
}

func TestLoadCheckManifestMissing(t *testing.T) {
	_, ok, err := loadCheckManifest(t.TempDir())
	if err != nil {
		t.Fatalf("loadCheckManifest: %v", err)
	}
	if ok {
		t.Error("unexpected manifest in empty temp dir")
	}
}
