package rules

import (
	"regexp"

	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

var defineNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+=`)

// externalProjectRule flags `-D NAME=value` (with whitespace) inside
// ExternalProject_Add() CMAKE_ARGS; the split form silently drops the
// definition when the value contains spaces.
type externalProjectRule struct{}

func (externalProjectRule) Name() string       { return "external_project_add_cmake_args" }
func (externalProjectRule) Code() diag.Code    { return diag.LntExternalProjectArgs }
func (externalProjectRule) Commands() []string { return []string{"externalproject_add"} }

func (r externalProjectRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	start := inv.ArgIndex("CMAKE_ARGS")
	if start < 0 {
		return nil
	}
	var out []diag.Diagnostic
	for i := start + 1; i+1 < len(inv.Args); i++ {
		flag, value := &inv.Args[i], &inv.Args[i+1]
		if !flag.IsKeyword("-D") {
			continue
		}
		m := defineNameRe.FindString(value.Text)
		if m == "" {
			continue
		}
		sp := source.Span{
			File:  flag.Span.File,
			Start: flag.Span.Start,
			End:   value.Span.Start + uint32(len(m)),
		}
		out = append(out, finding(r, sp,
			"ExternalProject_Add() variable definitions specified via CMAKE_ARGS must not have a space after -D (use quotes around the entire argument if the RHS might have whitespace)",
			&diag.Remedy{
				Example: "ExternalProject_Add(\n" +
					"\tsome_lib\n" +
					"\tSOURCE_DIR\n" +
					"\t\t\"some_lib/source\"\n" +
					"\tCMAKE_ARGS\n" +
					"\t\t\"-DCMAKE_CXX_COMPILER=${CMAKE_CXX_COMPILER}\"\n" +
					")",
				MoreInfo: []diag.Link{linkExternalProject},
			}))
	}
	return out
}
