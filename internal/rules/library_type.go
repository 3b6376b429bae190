package rules

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
)

var libraryTypes = []string{"STATIC", "SHARED", "MODULE", "OBJECT", "INTERFACE", "IMPORTED", "ALIAS"}

// libraryTypeRule wants add_library() to name an explicit library type so
// the build does not flip with BUILD_SHARED_LIBS.
type libraryTypeRule struct{}

func (libraryTypeRule) Name() string       { return "specify_library_type" }
func (libraryTypeRule) Code() diag.Code    { return diag.LntLibraryType }
func (libraryTypeRule) Commands() []string { return []string{"add_library"} }

func (r libraryTypeRule) Check(fc *FileContext, inv *cmdparse.Invocation) []diag.Diagnostic {
	for _, typ := range libraryTypes {
		if inv.HasArg(typ) {
			return nil
		}
	}
	return []diag.Diagnostic{finding(r, inv.Span,
		"add_library() should specify the library type (one of STATIC, SHARED, MODULE, OBJECT, INTERFACE, IMPORTED, ALIAS)",
		&diag.Remedy{MoreInfo: []diag.Link{linkAddLibrary, linkEffectiveModernCMake}})}
}
