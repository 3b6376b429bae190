package token

import (
	"cmakecheck/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsArgument reports whether the token can appear as a command argument.
func (t Token) IsArgument() bool {
	switch t.Kind {
	case Ident, Quoted, Bracket, Unquoted:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
