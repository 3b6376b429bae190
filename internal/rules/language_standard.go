package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// languageStandardRule flags raw standard-level properties: C_STANDARD or
// CXX_STANDARD in set_target_properties(), and the global
// CMAKE_C_STANDARD/CMAKE_CXX_STANDARD variables in set().
type languageStandardRule struct{}

func (languageStandardRule) Name() string       { return "use_target_compile_features_language_standard" }
func (languageStandardRule) Code() diag.Code    { return diag.LntLanguageStandard }
func (languageStandardRule) Commands() []string { return []string{"set", "set_target_properties"} }

func (r languageStandardRule) remedy() *diag.Remedy {
	return &diag.Remedy{
		ReplaceWith: &linkTargetCompileFeat,
		MoreInfo:    []diag.Link{linkCXXKnownFeatures, linkCKnownFeatures},
	}
}

const languageStandardMsg = "language standard level should be set on a per-target basis using target_compile_features()"

func (r languageStandardRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	switch inv.Name {
	case "set_target_properties":
		for i := range inv.Args {
			a := &inv.Args[i]
			if a.IsKeyword("C_STANDARD") || a.IsKeyword("CXX_STANDARD") {
				return []diag.Diagnostic{finding(r, inv.Span, languageStandardMsg, r.remedy())}
			}
		}

	case "set":
		if len(inv.Args) == 0 {
			return nil
		}
		first := &inv.Args[0]
		if first.IsKeyword("CMAKE_C_STANDARD") || first.IsKeyword("CMAKE_CXX_STANDARD") {
			return []diag.Diagnostic{finding(r, inv.Span, languageStandardMsg, r.remedy())}
		}
	}
	return nil
}
