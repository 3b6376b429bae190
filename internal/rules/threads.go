package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// threadsRule flags linking the raw pthread library instead of the
// Threads package's imported target.
type threadsRule struct{}

func (threadsRule) Name() string       { return "use_threads_package" }
func (threadsRule) Code() diag.Code    { return diag.LntThreadsPackage }
func (threadsRule) Commands() []string { return []string{"target_link_libraries"} }

func (r threadsRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	replace := diag.NewLinkDesc("", "Threads::Threads")
	var out []diag.Diagnostic
	for i := range inv.Args {
		if !inv.Args[i].IsKeyword("pthread") {
			continue
		}
		out = append(out, finding(r, inv.Args[i].Span,
			"support for threading should be provided by linking with Threads::Threads from the Threads package",
			&diag.Remedy{
				ReplaceWith: &replace,
				Example: "find_package(Threads REQUIRED)\n" +
					"target_link_libraries(my_lib PUBLIC Threads::Threads)",
				MoreInfo: []diag.Link{linkFindThreads, linkFindPackage},
			}))
	}
	return out
}
