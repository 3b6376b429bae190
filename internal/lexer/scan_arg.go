package lexer

import (
	"cmakecheck/internal/diag"
	"cmakecheck/internal/token"
)

// scanQuoted reads a '"' argument. Escape pairs ('\"', '\\', '\n' and the
// rest) are consumed without validation; the argument may span lines.
func (lx *Lexer) scanQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.mkToken(token.Quoted, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF without closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated quoted argument")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanBracket reads a '[=*[ ... ]=*]' argument. No escapes inside.
func (lx *Lexer) scanBracket() token.Token {
	start := lx.cursor.Mark()
	level, _ := lx.tryBracketOpen()

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
		lx.errLex(diag.LexUnterminatedBracket, sp, "unterminated bracket argument")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return lx.mkToken(token.Bracket, start)
}

// scanUnquoted reads a run up to the next separator. '\X' escape pairs stay
// inside the run, except '\' before a newline which is left for the trivia
// collector. The token is an Ident when the whole run forms a command
// identifier.
func (lx *Lexer) scanUnquoted() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				break // line continuation
			}
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if isArgSeparator(b) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.Unquoted
	if isIdentText(text) {
		kind = token.Ident
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
