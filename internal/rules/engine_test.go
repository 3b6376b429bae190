package rules_test

import (
	"testing"

	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
	"cmakecheck/internal/lexer"
	"cmakecheck/internal/rules"
	"cmakecheck/internal/source"
)

// checkScript lexes, splits and runs the default catalogue over one file.
func checkScript(t *testing.T, name, input string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(input))
	file := fs.Get(id)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	invs, ok := cmdparse.Split(lx, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}

	engine := rules.NewEngine(rules.Default()...)
	return engine.Check(rules.NewFileContext(fs, file, invs))
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func requireSingle(t *testing.T, diags []diag.Diagnostic, code diag.Code) diag.Diagnostic {
	t.Helper()
	if len(diags) != 1 || diags[0].Code != code {
		t.Fatalf("want exactly one %s, got %v", code.ID(), codes(diags))
	}
	return diags[0]
}

const cleanHeader = "cmake_minimum_required(VERSION 3.20)\nproject(Foo VERSION 1.0)\n"

func TestCleanScriptHasNoFindings(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+`
add_library(bar STATIC bar.cpp)
target_link_libraries(bar PRIVATE fmt::fmt)
target_include_directories(bar SYSTEM INTERFACE include)
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestMissingMinimumRequired(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", "project(Foo VERSION 1.0)\n")
	requireSingle(t, diags, diag.LntMinimumVersion)
}

func TestMinimumRequiredAfterProject(t *testing.T) {
	input := "project(Foo VERSION 1.0)\ncmake_minimum_required(VERSION 3.20)\n"
	diags := checkScript(t, "CMakeLists.txt", input)
	d := requireSingle(t, diags, diag.LntMinimumVersion)
	start, _ := mustResolve(t, input, d.Primary)
	if start.Line != 2 {
		t.Fatalf("finding anchored on line %d, want 2", start.Line)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "project() is called here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
	noteStart, _ := mustResolve(t, input, d.Notes[0].Span)
	if noteStart.Line != 1 {
		t.Fatalf("note anchored on line %d, want 1", noteStart.Line)
	}
}

func TestMinimumRequiredWithoutProject(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", "cmake_minimum_required(VERSION 3.10)\n")
	requireSingle(t, diags, diag.LntMinimumVersion)
}

func TestOrderingRuleSkipsModuleFiles(t *testing.T) {
	diags := checkScript(t, "helpers.cmake", "cmake_minimum_required(VERSION 3.10)\n")
	if len(diags) != 0 {
		t.Fatalf("module file must not trigger ordering rule: %v", codes(diags))
	}
}

func TestProjectWithoutVersion(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt",
		"cmake_minimum_required(VERSION 3.20)\nproject(Foo)\n")
	requireSingle(t, diags, diag.LntProjectVersion)
}

func TestTargetScopeMissing(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_link_libraries(bar fmt::fmt)\n")
	requireSingle(t, diags, diag.LntTargetScope)
}

func TestTargetScopeLowercaseDoesNotCount(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_link_libraries(bar private fmt::fmt)\n")
	requireSingle(t, diags, diag.LntTargetScope)
}

func TestRpathFlag(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_link_options(bar PRIVATE \"-Wl,-rpath=/opt/lib\")\n")
	d := requireSingle(t, diags, diag.LntRpath)
	if d.Remedy == nil || d.Remedy.ReplaceWith == nil {
		t.Fatal("rpath finding must carry a replace-with suggestion")
	}
}

func TestGlobalPICToggle(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"set(CMAKE_POSITION_INDEPENDENT_CODE ON)\n")
	requireSingle(t, diags, diag.LntPIC)
}

func TestAddDefinitions(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"add_definitions(-DFOO=1)\n")
	requireSingle(t, diags, diag.LntCompileDefinitions)

	diags = checkScript(t, "CMakeLists.txt", cleanHeader+"add_compile_definitions(FOO=1)\n")
	requireSingle(t, diags, diag.LntCompileDefinitions)
}

func TestLanguageStandardViaProperties(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"set_target_properties(my_app PROPERTIES CXX_STANDARD 17)\n")
	d := requireSingle(t, diags, diag.LntLanguageStandard)
	if d.Remedy == nil || d.Remedy.ReplaceWith == nil ||
		d.Remedy.ReplaceWith.Description != "target_compile_features()" {
		t.Fatalf("remedy = %+v", d.Remedy)
	}
}

func TestLanguageStandardViaGlobalVariable(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"set(CMAKE_CXX_STANDARD 17)\n")
	requireSingle(t, diags, diag.LntLanguageStandard)

	// Only the first argument counts as the variable name.
	diags = checkScript(t, "CMakeLists.txt", cleanHeader+"set(notes CMAKE_CXX_STANDARD)\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestCompileOptions(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"add_compile_options(-Wall)\n")
	requireSingle(t, diags, diag.LntCompileOptions)

	diags = checkScript(t, "CMakeLists.txt", cleanHeader+"set(CMAKE_CXX_FLAGS \"-Wall\")\n")
	requireSingle(t, diags, diag.LntCompileOptions)

	// CMAKE_CXX_FLAGS_RELEASE is a different variable.
	diags = checkScript(t, "CMakeLists.txt", cleanHeader+"set(CMAKE_CXX_FLAGS_RELEASE \"-O3\")\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestIncludeDirectories(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"include_directories(my_app PRIVATE \"some/include/path\")\n")
	d := requireSingle(t, diags, diag.LntIncludeDirectories)
	if d.Remedy == nil || d.Remedy.ReplaceWith == nil ||
		d.Remedy.ReplaceWith.Description != "target_include_directories()" {
		t.Fatalf("remedy = %+v", d.Remedy)
	}
}

func TestLinkDirectories(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"link_directories(/opt/lib)\n")
	requireSingle(t, diags, diag.LntLinkDirectories)
}

func TestRawPthread(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_link_libraries(bar PUBLIC pthread)\n")
	requireSingle(t, diags, diag.LntThreadsPackage)

	// -lpthread and Threads::Threads are not the bare library name.
	diags = checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_link_libraries(bar PUBLIC Threads::Threads)\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestExternalProjectSplitDefine(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+`
ExternalProject_Add(some_lib
    SOURCE_DIR "some_lib/source"
    CMAKE_ARGS -D CMAKE_BUILD_TYPE=Release
)
`)
	requireSingle(t, diags, diag.LntExternalProjectArgs)

	diags = checkScript(t, "CMakeLists.txt", cleanHeader+`
ExternalProject_Add(some_lib
    CMAKE_ARGS "-DCMAKE_BUILD_TYPE=Release"
)
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestAddLibraryWithoutType(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"add_library(bar bar.cpp)\n")
	requireSingle(t, diags, diag.LntLibraryType)

	for _, typ := range []string{"STATIC", "SHARED", "MODULE", "OBJECT", "INTERFACE", "IMPORTED", "ALIAS"} {
		diags = checkScript(t, "CMakeLists.txt", cleanHeader+"add_library(bar "+typ+" bar.cpp)\n")
		if len(diags) != 0 {
			t.Fatalf("%s: unexpected findings: %v", typ, codes(diags))
		}
	}
}

func TestSystemPlacement(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_include_directories(bar INTERFACE SYSTEM include)\n")
	requireSingle(t, diags, diag.LntSystemPlacement)

	diags = checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_include_directories(bar SYSTEM INTERFACE include)\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %v", codes(diags))
	}
}

func TestMultipleRulesOnOneInvocation(t *testing.T) {
	// Missing scope and misplaced SYSTEM both fire; no first-match-wins.
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+
		"add_library(bar STATIC bar.cpp)\ntarget_include_directories(bar include SYSTEM more)\n")
	got := codes(diags)
	if len(got) != 2 {
		t.Fatalf("want 2 findings, got %v", got)
	}
	seen := map[diag.Code]bool{}
	for _, c := range got {
		seen[c] = true
	}
	if !seen[diag.LntTargetScope] || !seen[diag.LntSystemPlacement] {
		t.Fatalf("findings = %v", got)
	}
}

func TestCommandNameCaseInsensitive(t *testing.T) {
	diags := checkScript(t, "CMakeLists.txt", cleanHeader+"INCLUDE_DIRECTORIES(include)\n")
	requireSingle(t, diags, diag.LntIncludeDirectories)
}

func TestExcludeDropsNamedRules(t *testing.T) {
	full := rules.Default()
	catalogue := rules.Exclude(full, []string{"Specify_Library_Type", "unknown_rule"})
	if len(catalogue) != len(full)-1 {
		t.Fatalf("catalogue size = %d, want %d", len(catalogue), len(full)-1)
	}
	for _, r := range catalogue {
		if r.Name() == "specify_library_type" {
			t.Fatal("excluded rule still present")
		}
	}
}

func mustResolve(t *testing.T, input string, sp source.Span) (start, end source.LineCol) {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("CMakeLists.txt", []byte(input))
	return fs.Resolve(sp)
}
