// Package cmdparse groups the token stream into command invocations. The
// grammar here is `ident ( args )` with nested parentheses kept as
// arguments; stray words at top level are skipped, but a malformed token
// (unterminated quote or bracket) aborts the file.
package cmdparse

import (
	"cmakecheck/internal/diag"
	"cmakecheck/internal/lexer"
	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

// Split drains the lexer and returns the file's invocations in source
// order. Any fatal shape error (unbalanced or unterminated parentheses,
// an invalid token from the lexer) makes ok false; the invocations
// gathered before the error are still returned.
func Split(lx *lexer.Lexer, rep diag.Reporter) (invs []Invocation, ok bool) {
	ok = true
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return invs, ok

		case token.Ident:
			if lx.Peek().Kind != token.LParen {
				continue // bare word outside an invocation
			}
			inv, invOK := parseInvocation(lx, tok, rep)
			if !invOK {
				return invs, false
			}
			invs = append(invs, inv)

		case token.RParen:
			report(rep, diag.SynUnbalancedParen, tok.Span, "unexpected ')'")
			ok = false
			return invs, false

		case token.Invalid:
			// Unterminated quote or bracket; the lexer already reported it.
			return invs, false

		default:
			// Stray argument token at top level; skip it.
		}
	}
}

func parseInvocation(lx *lexer.Lexer, name token.Token, rep diag.Reporter) (Invocation, bool) {
	inv := newInvocation(name)

	open := lx.Next() // '('
	argsStart := open.Span.End
	argsEnd := argsStart
	depth := 1

	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			sp := name.Span.Cover(source.Span{File: name.Span.File, Start: argsStart, End: argsEnd})
			report(rep, diag.SynUnterminatedCommand, sp, "missing ')' before end of file")
			return inv, false

		case token.LParen:
			depth++
			inv.Args = append(inv.Args, Arg{Text: tok.Text, Span: tok.Span, Kind: tok.Kind})

		case token.RParen:
			depth--
			if depth == 0 {
				inv.ArgsSpan = source.Span{File: name.Span.File, Start: argsStart, End: argsEnd}
				inv.Span = name.Span.Cover(tok.Span)
				return inv, true
			}
			inv.Args = append(inv.Args, Arg{Text: tok.Text, Span: tok.Span, Kind: tok.Kind})

		case token.Invalid:
			// The lexer already reported it; one diagnostic is enough.
			return inv, false

		default:
			inv.Args = append(inv.Args, Arg{Text: tok.Text, Span: tok.Span, Kind: tok.Kind})
		}
		argsEnd = tok.Span.End
	}
}

func report(rep diag.Reporter, code diag.Code, sp source.Span, msg string) {
	if rep != nil {
		rep.Report(code, diag.SevError, sp, msg)
	}
}
