package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// systemPlacementRule checks that SYSTEM in target_include_directories()
// comes directly after the target argument.
type systemPlacementRule struct{}

func (systemPlacementRule) Name() string       { return "target_include_directories_system" }
func (systemPlacementRule) Code() diag.Code    { return diag.LntSystemPlacement }
func (systemPlacementRule) Commands() []string { return []string{"target_include_directories"} }

func (r systemPlacementRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	idx := inv.ArgIndex("SYSTEM")
	if idx < 0 {
		return nil
	}
	if idx == 1 && len(inv.Args) > 2 {
		return nil
	}
	return []diag.Diagnostic{finding(r, inv.Args[idx].Span,
		"the SYSTEM specifier must be the first non-target argument passed to target_include_directories()",
		&diag.Remedy{
			Example: "target_include_directories(my_lib\n" +
				"\tSYSTEM\n" +
				"\tINTERFACE\n" +
				"\t\t$<INSTALL_INTERFACE:include>\n" +
				")",
			MoreInfo: []diag.Link{linkTargetIncludeDirs},
		})}
}
