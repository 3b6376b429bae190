package rules

import (
	"strings"

	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

const rpathFlag = "-Wl,-rpath="

// rpathRule flags raw linker rpath flags anywhere in an argument list.
type rpathRule struct{}

func (rpathRule) Name() string       { return "use_set_target_properties_rpath" }
func (rpathRule) Code() diag.Code    { return diag.LntRpath }
func (rpathRule) Commands() []string { return nil }

func (r rpathRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	var out []diag.Diagnostic
	for i := range inv.Args {
		arg := &inv.Args[i]
		idx := strings.Index(arg.Text, rpathFlag)
		if idx < 0 {
			continue
		}
		sp := source.Span{
			File:  arg.Span.File,
			Start: arg.Span.Start + uint32(idx),
			End:   arg.Span.Start + uint32(idx+len(rpathFlag)),
		}
		out = append(out, finding(r, sp,
			"rpaths should be set using set_target_properties() and INSTALL_RPATH",
			&diag.Remedy{
				ReplaceWith: &linkSetTargetProperties,
				Example: "get_target_property(my_current_rpaths my_lib INSTALL_RPATH)\n" +
					"list(APPEND my_current_rpaths \"/opt/lib\")\n" +
					"set_target_properties(my_lib PROPERTIES INSTALL_RPATH \"${my_current_rpaths}\")",
				MoreInfo: []diag.Link{linkInstallRpath},
			}))
	}
	return out
}
