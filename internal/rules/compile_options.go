package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// compileOptionsRule flags add_compile_options() and the global
// CMAKE_C_FLAGS/CMAKE_CXX_FLAGS variables.
type compileOptionsRule struct{}

func (compileOptionsRule) Name() string       { return "use_target_compile_options" }
func (compileOptionsRule) Code() diag.Code    { return diag.LntCompileOptions }
func (compileOptionsRule) Commands() []string { return []string{"set", "add_compile_options"} }

func (r compileOptionsRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	const msg = "compiler options should be set on a per-target basis using target_compile_options()"
	remedy := &diag.Remedy{
		ReplaceWith: &linkTargetCompileOpts,
		MoreInfo:    []diag.Link{linkEffectiveModernCMake},
	}

	switch inv.Name {
	case "add_compile_options":
		return []diag.Diagnostic{finding(r, inv.NameSpan, msg, remedy)}

	case "set":
		if len(inv.Args) == 0 {
			return nil
		}
		first := &inv.Args[0]
		if first.IsKeyword("CMAKE_C_FLAGS") || first.IsKeyword("CMAKE_CXX_FLAGS") {
			return []diag.Diagnostic{finding(r, first.Span, msg, remedy)}
		}
	}
	return nil
}
