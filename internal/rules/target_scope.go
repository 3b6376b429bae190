package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// targetScopeRule requires a dependency scope keyword on the target_*
// family of commands.
type targetScopeRule struct{}

func (targetScopeRule) Name() string    { return "specify_scope_on_target_functions" }
func (targetScopeRule) Code() diag.Code { return diag.LntTargetScope }

func (targetScopeRule) Commands() []string {
	return []string{
		"target_link_options",
		"target_link_libraries",
		"target_compile_options",
		"target_compile_features",
		"target_compile_definitions",
		"target_include_directories",
		"target_link_directories",
	}
}

func (r targetScopeRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	if inv.HasArg("PRIVATE") || inv.HasArg("PUBLIC") || inv.HasArg("INTERFACE") {
		return nil
	}
	return []diag.Diagnostic{finding(r, inv.Span,
		inv.RawName+"() should specify at least one dependency scope (PRIVATE, INTERFACE or PUBLIC)",
		&diag.Remedy{MoreInfo: []diag.Link{linkScopes, linkEffectiveModernCMake}})}
}
