package diag

import (
	"fmt"
	"sort"
	"strings"

	"cmakecheck/internal/source"
)

// FormatShortDiagnostics renders diagnostics in the compact line-per-entry
// form used by tests and machine consumers:
//
//	error LNT3007 CMakeLists.txt:3:1 avoid setting the language standard directly
func FormatShortDiagnostics(fs *source.FileSet, diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	sorted := append([]Diagnostic(nil), diags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		return di.Code < dj.Code
	})

	var sb strings.Builder
	for _, d := range sorted {
		pos := "<unknown>"
		if fs != nil && int(d.Primary.File) < fs.Len() {
			start, _ := fs.Resolve(d.Primary)
			f := fs.Get(d.Primary.File)
			path := f.FormatPath("basename", "")
			pos = fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
		}
		fmt.Fprintf(&sb, "%s %s %s %s\n", d.Severity.Label(), d.Code.ID(), pos, d.Message)
	}
	return sb.String()
}
