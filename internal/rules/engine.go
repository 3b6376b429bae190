package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// Engine runs a catalogue over parsed files. Rules run in registration
// order; command rules are dispatched through a name index so a file with
// many invocations does not pay for rules it never triggers.
type Engine struct {
	rules     []Rule
	byCommand map[string][]Rule
	global    []Rule // rules with Commands() == nil
}

func NewEngine(rules ...Rule) *Engine {
	e := &Engine{
		rules:     rules,
		byCommand: make(map[string][]Rule),
	}
	for _, r := range rules {
		if _, isFile := r.(FileChecker); isFile {
			continue
		}
		cmds := r.Commands()
		if cmds == nil {
			e.global = append(e.global, r)
			continue
		}
		for _, c := range cmds {
			e.byCommand[c] = append(e.byCommand[c], r)
		}
	}
	return e
}

// Rules returns the catalogue in registration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Check evaluates every rule against the file and returns the raw findings.
// Suppression filtering and sorting happen in the caller.
func (e *Engine) Check(fc *FileContext) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, r := range e.rules {
		if fr, ok := r.(FileChecker); ok {
			out = append(out, fr.CheckFile(fc)...)
		}
	}

	for i := range fc.Invocations {
		inv := &fc.Invocations[i]
		out = append(out, e.checkInvocation(fc, inv)...)
	}
	return out
}

func (e *Engine) checkInvocation(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, r := range e.global {
		out = append(out, r.Check(fc, inv)...)
	}
	for _, r := range e.byCommand[inv.Name] {
		out = append(out, r.Check(fc, inv)...)
	}
	return out
}
