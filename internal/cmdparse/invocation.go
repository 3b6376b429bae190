package cmdparse

import (
	"strings"

	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

// Arg is one argument of a command invocation. Nested parentheses inside an
// argument list are kept as arguments of kind LParen/RParen, matching how
// the language passes them through to the command.
type Arg struct {
	Text string
	Span source.Span
	Kind token.Kind
}

// IsKeyword reports whether the argument equals the given uppercase keyword.
// Keyword matching is case-sensitive, as in the language itself.
func (a Arg) IsKeyword(kw string) bool {
	return a.Kind != token.Quoted && a.Kind != token.Bracket && a.Text == kw
}

// Invocation is one `name(args...)` command.
type Invocation struct {
	// Name is the lowercased command name; command names are
	// case-insensitive.
	Name     string
	RawName  string
	NameSpan source.Span
	Args     []Arg
	// ArgsSpan covers everything between the parentheses.
	ArgsSpan source.Span
	// Span covers the whole invocation including both parentheses.
	Span source.Span
}

func newInvocation(name token.Token) Invocation {
	return Invocation{
		Name:     strings.ToLower(name.Text),
		RawName:  name.Text,
		NameSpan: name.Span,
	}
}

// HasArg reports whether any argument matches the uppercase keyword.
func (inv *Invocation) HasArg(kw string) bool {
	for i := range inv.Args {
		if inv.Args[i].IsKeyword(kw) {
			return true
		}
	}
	return false
}

// ArgIndex returns the index of the first argument matching the keyword,
// or -1.
func (inv *Invocation) ArgIndex(kw string) int {
	for i := range inv.Args {
		if inv.Args[i].IsKeyword(kw) {
			return i
		}
	}
	return -1
}
