package token

import "cmakecheck/internal/source"

// TriviaKind classifies non-significant source text between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	// TriviaLineComment is a '#...' comment running to end of line.
	TriviaLineComment
	// TriviaBracketComment is a '#[=*[ ... ]=*]' comment.
	TriviaBracketComment
	// TriviaLineContinuation is a backslash immediately before a newline.
	TriviaLineContinuation
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBracketComment:
		return "BracketComment"
	case TriviaLineContinuation:
		return "LineContinuation"
	}
	return "Unknown"
}

// Trivia is a run of whitespace or comment text attached to the following
// significant token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or bracket comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBracketComment
}
