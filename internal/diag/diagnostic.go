package diag

import (
	"regexp"
	"strings"

	"cmakecheck/internal/source"
)

// Note attaches a secondary location to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Link is a reference URL with an optional human-readable description.
type Link struct {
	URI         string
	Description string
}

var linkCommandRe = regexp.MustCompile(`^(set_|target_|find_|project)[a-z_]*$`)

// NewLink builds a Link, deriving a description from the URL tail when it
// names a CMake command (target_*, set_*, find_*, project).
func NewLink(uri string) Link {
	l := Link{URI: uri}
	lastSlash := strings.LastIndexByte(uri, '/')
	lastDot := strings.LastIndexByte(uri, '.')
	if lastSlash == -1 || lastDot == -1 || lastDot < lastSlash {
		return l
	}
	desc := uri[lastSlash+1 : lastDot]
	if linkCommandRe.MatchString(desc) {
		desc += "()"
	}
	l.Description = desc
	return l
}

// NewLinkDesc builds a Link with an explicit description.
func NewLinkDesc(uri, description string) Link {
	return Link{URI: uri, Description: description}
}

func (l Link) String() string {
	switch {
	case l.Description != "" && l.URI != "":
		return l.Description + ": " + l.URI
	case l.Description != "":
		return l.Description
	default:
		return l.URI
	}
}

// Remedy carries the remediation guidance attached to a finding. The
// renderer prints these fields verbatim; rule-specific semantics never leak
// into formatting code.
type Remedy struct {
	// ReplaceWith names the suggested API, usually with a documentation URL.
	ReplaceWith *Link
	// Example is a ready-to-paste snippet showing the suggested form.
	Example string
	// MoreInfo lists additional reference URLs.
	MoreInfo []Link
}

// Diagnostic is one finding: a parse error or a rule violation.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Rule is the catalogue name of the producing rule, empty for
	// parse/I-O errors.
	Rule   string
	Notes  []Note
	Remedy *Remedy
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Span: sp, Msg: msg})
	return d
}
