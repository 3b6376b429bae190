package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// minimumVersionRule enforces the cmake_minimum_required()/project()
// ordering contract in CMakeLists.txt. It fires on three shapes: project()
// without cmake_minimum_required(), cmake_minimum_required() after
// project(), and cmake_minimum_required() with no project() at all.
type minimumVersionRule struct{}

func (minimumVersionRule) Name() string        { return "specify_minimum_cmake_version" }
func (minimumVersionRule) Code() diag.Code     { return diag.LntMinimumVersion }
func (minimumVersionRule) Commands() []string  { return []string{"project", "cmake_minimum_required"} }
func (minimumVersionRule) Check(*FileContext, *cmdparse.Invocation) []diag.Diagnostic { return nil }

func (r minimumVersionRule) remedy() *diag.Remedy {
	return &diag.Remedy{
		Example:  "cmake_minimum_required(VERSION 3.16)\n\nproject(\n    # ...\n)",
		MoreInfo: []diag.Link{linkMinimumRequired},
	}
}

func (r minimumVersionRule) CheckFile(fc *FileContext) []diag.Diagnostic {
	if !fc.IsCMakeLists {
		return nil
	}
	project := fc.First("project")
	minRequired := fc.First("cmake_minimum_required")

	switch {
	case project == nil && minRequired == nil:
		return nil

	case project != nil && minRequired == nil:
		return []diag.Diagnostic{finding(r, project.NameSpan,
			"scripts which contain a project() should specify a cmake_minimum_required() before it",
			r.remedy())}

	case project == nil:
		return []diag.Diagnostic{finding(r, minRequired.NameSpan,
			"scripts which specify a cmake_minimum_required() should also call project()",
			r.remedy())}

	case minRequired.Span.Start > project.Span.Start:
		d := finding(r, minRequired.NameSpan,
			"scripts which contain a project() should specify a cmake_minimum_required() before it",
			r.remedy())
		return []diag.Diagnostic{d.WithNote(project.NameSpan, "project() is called here")}
	}
	return nil
}
