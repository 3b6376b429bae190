package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// picRule flags the global CMAKE_POSITION_INDEPENDENT_CODE toggle.
type picRule struct{}

func (picRule) Name() string       { return "use_set_target_properties_pic" }
func (picRule) Code() diag.Code    { return diag.LntPIC }
func (picRule) Commands() []string { return []string{"set"} }

func (r picRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	for i := range inv.Args {
		if !inv.Args[i].IsKeyword("CMAKE_POSITION_INDEPENDENT_CODE") {
			continue
		}
		return []diag.Diagnostic{finding(r, inv.Args[i].Span,
			"position-independent code should be set per-target using set_target_properties() and POSITION_INDEPENDENT_CODE",
			&diag.Remedy{
				ReplaceWith: &linkSetTargetProperties,
				Example:     "set_target_properties(my_lib PROPERTIES POSITION_INDEPENDENT_CODE ON)",
				MoreInfo:    []diag.Link{linkPIC},
			})}
	}
	return nil
}
