package version

import (
	"testing"
)

func TestVersionDefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate are optional and may be empty.
	_ = GitCommit
	_ = BuildDate
}

func TestVersionCanBeOverridden(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-01-15T10:30:00Z")
	}
}
