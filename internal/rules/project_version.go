package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// projectVersionRule wants every project() to pin a VERSION.
type projectVersionRule struct{}

func (projectVersionRule) Name() string       { return "specify_project_version" }
func (projectVersionRule) Code() diag.Code    { return diag.LntProjectVersion }
func (projectVersionRule) Commands() []string { return []string{"project"} }

func (r projectVersionRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	if inv.HasArg("VERSION") {
		return nil
	}
	return []diag.Diagnostic{finding(r, inv.Span,
		"project() should specify a VERSION",
		&diag.Remedy{MoreInfo: []diag.Link{linkProject}})}
}
