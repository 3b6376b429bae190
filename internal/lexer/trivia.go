package lexer

import (
	"cmakecheck/internal/diag"
	"cmakecheck/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
// - ' ' and '\t' coalesce into one TriviaSpace
// - consecutive '\n' coalesce into one TriviaNewline
// - '\' immediately before '\n' -> TriviaLineContinuation
// - '#...' to end of line -> TriviaLineComment
// - '#[=*[ ... ]=*]' -> TriviaBracketComment (unterminated -> report, cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// newlines (coalesced)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// backslash-newline continuation
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && b1 == '\n' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaLineContinuation,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// comments
		if b == '#' {
			lx.scanCommentIntoHold()
			continue
		}

		// no more trivia
		break
	}
}

// '#...' or '#[=*[ ... ]=*]'
func (lx *Lexer) scanCommentIntoHold() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	if level, ok := lx.tryBracketOpen(); ok {
		lx.consumeBracketBody(level, start, token.TriviaBracketComment)
		return
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	tr := token.Trivia{
		Kind: token.TriviaLineComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
	lx.hold = append(lx.hold, tr)
	lx.comments = append(lx.comments, tr)
}

// tryBracketOpen consumes '[' '='* '[' and returns the equals count. On a
// partial match the cursor is restored and ok is false.
func (lx *Lexer) tryBracketOpen() (level int, ok bool) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('[') {
		return 0, false
	}
	for lx.cursor.Eat('=') {
		level++
	}
	if !lx.cursor.Eat('[') {
		lx.cursor.Reset(start)
		return 0, false
	}
	return level, true
}

// consumeBracketBody scans until ']' '='*level ']' and appends trivia of the
// given kind. Missing terminator reports LexUnterminatedBracket.
func (lx *Lexer) consumeBracketBody(level int, start Mark, kind token.TriviaKind) {
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != ']' {
			lx.cursor.Bump()
			continue
		}
		save := lx.cursor.Mark()
		lx.cursor.Bump() // ']'
		eq := 0
		for lx.cursor.Eat('=') {
			eq++
		}
		if eq == level && lx.cursor.Eat(']') {
			closed = true
			break
		}
		lx.cursor.Reset(save)
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.errLex(diag.LexUnterminatedBracket, sp, "unterminated bracket comment")
	}
	tr := token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
	lx.hold = append(lx.hold, tr)
	lx.comments = append(lx.comments, tr)
}
