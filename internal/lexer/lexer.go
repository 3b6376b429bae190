package lexer

import (
	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     *token.Token   // one-token lookahead buffer
	hold     []token.Trivia // accumulated leading trivia
	comments []token.Trivia // every comment seen, in source order
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '(':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.mkToken(token.LParen, start)

	case ch == ')':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.mkToken(token.RParen, start)

	case ch == '"':
		tok = lx.scanQuoted()

	case ch == '[':
		// Bracket argument if '[=*[' opens here, legacy unquoted otherwise.
		if _, ok := lx.peekBracketOpen(); ok {
			tok = lx.scanBracket()
		} else {
			tok = lx.scanUnquoted()
		}

	default:
		tok = lx.scanUnquoted()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Comments returns every comment trivia encountered so far, in source order.
// Call after draining the token stream to get the whole file.
func (lx *Lexer) Comments() []token.Trivia {
	return lx.comments
}

func (lx *Lexer) mkToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) peekBracketOpen() (level int, ok bool) {
	save := lx.cursor.Mark()
	level, ok = lx.tryBracketOpen()
	lx.cursor.Reset(save)
	return level, ok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
