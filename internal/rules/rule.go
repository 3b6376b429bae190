// Package rules holds the check catalogue. Each rule is an independent
// check keyed by the command names it inspects; rules never share state and
// can be added or removed without touching the rest of the catalogue.
package rules

import (
	"path/filepath"
	"strings"

	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

// Rule inspects single invocations. Commands() lists the lowercase command
// names the rule wants; nil means every invocation.
type Rule interface {
	Name() string
	Code() diag.Code
	Commands() []string
	Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic
}

// FileChecker is implemented by rules that need cross-invocation context,
// like ordering constraints. The engine calls CheckFile once per file
// instead of dispatching per invocation.
type FileChecker interface {
	Rule
	CheckFile(fc *FileContext) []diag.Diagnostic
}

// FileContext is the read-only view of one parsed file handed to rules.
type FileContext struct {
	FS           *source.FileSet
	File         *source.File
	IsCMakeLists bool
	Invocations  []cmdparse.Invocation
}

// NewFileContext builds the context; IsCMakeLists is derived from the file
// basename, case-insensitively.
func NewFileContext(fs *source.FileSet, file *source.File, invs []cmdparse.Invocation) *FileContext {
	return &FileContext{
		FS:           fs,
		File:         file,
		IsCMakeLists: strings.EqualFold(filepath.Base(file.Path), "CMakeLists.txt"),
		Invocations:  invs,
	}
}

// First returns the first invocation of the given lowercase command, or nil.
func (fc *FileContext) First(name string) *cmdparse.Invocation {
	for i := range fc.Invocations {
		if fc.Invocations[i].Name == name {
			return &fc.Invocations[i]
		}
	}
	return nil
}

// finding builds the common diagnostic shape used by every rule.
func finding(r Rule, sp source.Span, msg string, remedy *diag.Remedy) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     r.Code(),
		Message:  msg,
		Primary:  sp,
		Rule:     r.Name(),
		Remedy:   remedy,
	}
}
