package rules

import "strings"

// Default returns the full catalogue in its canonical registration order.
func Default() []Rule {
	return []Rule{
		minimumVersionRule{},
		systemPlacementRule{},
		projectVersionRule{},
		targetScopeRule{},
		rpathRule{},
		picRule{},
		newCompileDefinitionsRule(),
		languageStandardRule{},
		compileOptionsRule{},
		newIncludeDirectoriesRule(),
		newLinkDirectoriesRule(),
		threadsRule{},
		externalProjectRule{},
		libraryTypeRule{},
	}
}

// Exclude returns the catalogue without the named rules. Names are matched
// case-insensitively; unknown names are ignored.
func Exclude(catalogue []Rule, names []string) []Rule {
	if len(names) == 0 {
		return catalogue
	}
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	out := make([]Rule, 0, len(catalogue))
	for _, r := range catalogue {
		if _, skip := drop[strings.ToLower(r.Name())]; !skip {
			out = append(out, r)
		}
	}
	return out
}
