package driver

import (
	"cmakecheck/internal/diag"
	"cmakecheck/internal/observ"
	"cmakecheck/internal/source"
)

// FileResult is the outcome of checking one script.
type FileResult struct {
	Path   string
	FileID source.FileID
	// Bag holds the file's surviving diagnostics, sorted. Unlimited; the
	// run-level limit is applied during the merge.
	Bag *diag.Bag
	// Suppressed counts findings dropped by pragma comments.
	Suppressed int
	// FromCache marks results rehydrated from the disk cache.
	FromCache bool
}

// RunResult aggregates a whole tree check.
type RunResult struct {
	FileSet *source.FileSet
	Files   []FileResult
	// Bag is the merged, sorted, limit-applied view across all files.
	Bag *diag.Bag
	// CheckedFiles counts scripts that were read and evaluated.
	CheckedFiles int
	Timing       *observ.Report
}

// HasParseErrors reports whether any file failed to parse.
func (r *RunResult) HasParseErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasParseErrors() {
			return true
		}
	}
	return false
}

// Exit statuses for the process: finding counts are capped so they never
// collide with the distinguished parse and run failure codes.
const (
	ExitMaxFindings = 123
	ExitParseError  = 124
	ExitRunError    = 125
)

// ExitCode maps the result onto the process exit status.
func (r *RunResult) ExitCode() int {
	if r.HasParseErrors() {
		return ExitParseError
	}
	n := r.Bag.Total()
	if n > ExitMaxFindings {
		return ExitMaxFindings
	}
	return n
}
