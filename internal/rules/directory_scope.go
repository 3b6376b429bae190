package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

// legacyCommandRule flags any use of a directory-scoped command that has a
// target-scoped replacement. One value per flagged command family.
type legacyCommandRule struct {
	name     string
	code     diag.Code
	commands []string
	message  string
	remedy   diag.Remedy
}

func (l *legacyCommandRule) Name() string       { return l.name }
func (l *legacyCommandRule) Code() diag.Code    { return l.code }
func (l *legacyCommandRule) Commands() []string { return l.commands }

func (l *legacyCommandRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	remedy := l.remedy
	return []diag.Diagnostic{finding(l, inv.NameSpan, l.message, &remedy)}
}

func newCompileDefinitionsRule() Rule {
	return &legacyCommandRule{
		name:     "use_target_compile_definitions",
		code:     diag.LntCompileDefinitions,
		commands: []string{"add_definitions", "add_compile_definitions"},
		message:  "compiler defines should be set on a per-target basis using target_compile_definitions()",
		remedy: diag.Remedy{
			ReplaceWith: &linkTargetCompileDefs,
			MoreInfo:    []diag.Link{linkEffectiveModernCMake},
		},
	}
}

func newIncludeDirectoriesRule() Rule {
	return &legacyCommandRule{
		name:     "use_target_include_directories",
		code:     diag.LntIncludeDirectories,
		commands: []string{"include_directories"},
		message:  "include paths should be set on a per-target basis using target_include_directories()",
		remedy: diag.Remedy{
			ReplaceWith: &linkTargetIncludeDirs,
			MoreInfo:    []diag.Link{linkEffectiveModernCMake},
		},
	}
}

func newLinkDirectoriesRule() Rule {
	return &legacyCommandRule{
		name:     "use_target_link_libraries",
		code:     diag.LntLinkDirectories,
		commands: []string{"link_directories"},
		message:  "linker paths should be inherited from library targets using target_link_libraries()",
		remedy: diag.Remedy{
			ReplaceWith: &linkTargetLinkLibraries,
			MoreInfo:    []diag.Link{linkEffectiveModernCMake},
		},
	}
}
