package lexer_test

import (
	"testing"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/lexer"
	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

// testReporter collects every diagnostic emitted by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

// makeTestLexer builds a lexer over a virtual file.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("CMakeLists.txt", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens drains the lexer up to and including EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence (EOF excluded).
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v", len(expected), len(tokens), input, tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestSimpleInvocation(t *testing.T) {
	expectTokens(t, "project(Foo)", []token.Kind{
		token.Ident, token.LParen, token.Ident, token.RParen,
	})
}

func TestArgumentKinds(t *testing.T) {
	expectTokens(t, `set(msg "hello world" [[raw]] -DFOO=1 ${var})`, []token.Kind{
		token.Ident, token.LParen,
		token.Ident, token.Quoted, token.Bracket, token.Unquoted, token.Unquoted,
		token.RParen,
	})
}

func TestTokenTextAndSpan(t *testing.T) {
	lx, _ := makeTestLexer(`add_library(bar STATIC)`)
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "add_library" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if tok.Span.Start != 0 || tok.Span.End != 11 {
		t.Fatalf("span = [%d,%d)", tok.Span.Start, tok.Span.End)
	}
}

func TestQuotedEscapes(t *testing.T) {
	lx, rep := makeTestLexer(`set(x "a \" b \\")`)
	var quoted token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Quoted {
			quoted = tok
		}
	}
	if quoted.Text != `"a \" b \\"` {
		t.Fatalf("quoted text = %q", quoted.Text)
	}
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
}

func TestQuotedSpansLines(t *testing.T) {
	lx, rep := makeTestLexer("set(x \"first\nsecond\")")
	toks := collectAllTokens(lx)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
	// set ( x "..." ) EOF
	if len(toks) != 6 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if toks[3].Kind != token.Quoted {
		t.Fatalf("toks[3] = %v", toks[3].Kind)
	}
}

func TestUnterminatedQuoted(t *testing.T) {
	lx, rep := makeTestLexer(`set(x "oops`)
	collectAllTokens(lx)
	if rep.ErrorCount() != 1 {
		t.Fatalf("want 1 error, got %d", rep.ErrorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestBracketArgument(t *testing.T) {
	lx, rep := makeTestLexer("set(x [==[a ]] b ]=] c]==])")
	toks := collectAllTokens(lx)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
	var bracket token.Token
	for _, tok := range toks {
		if tok.Kind == token.Bracket {
			bracket = tok
		}
	}
	if bracket.Text != "[==[a ]] b ]=] c]==]" {
		t.Fatalf("bracket text = %q", bracket.Text)
	}
}

func TestUnterminatedBracketArgument(t *testing.T) {
	lx, rep := makeTestLexer("set(x [=[never closed)")
	collectAllTokens(lx)
	if rep.ErrorCount() != 1 {
		t.Fatalf("want 1 error, got %d", rep.ErrorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedBracket {
		t.Fatalf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestBracketLookalikeIsUnquoted(t *testing.T) {
	// '[' without a matching '[=*[' opener is a legacy unquoted argument.
	expectTokens(t, "set(x [abc)", []token.Kind{
		token.Ident, token.LParen, token.Ident, token.Unquoted, token.RParen,
	})
}

func TestLineCommentTrivia(t *testing.T) {
	lx, _ := makeTestLexer("# header\nproject(Foo) # trailing\n")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "project" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	foundComment := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "# header" {
			foundComment = true
		}
	}
	if !foundComment {
		t.Fatalf("leading trivia = %v", tok.Leading)
	}

	collectAllTokens(lx)
	comments := lx.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[1].Text != "# trailing" {
		t.Fatalf("comments[1] = %q", comments[1].Text)
	}
}

func TestBracketCommentTrivia(t *testing.T) {
	lx, rep := makeTestLexer("#[[ multi\nline ]]\nproject(Foo)")
	tok := lx.Next()
	if tok.Text != "project" {
		t.Fatalf("first token %q", tok.Text)
	}
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
	collectAllTokens(lx)
	comments := lx.Comments()
	if len(comments) != 1 || comments[0].Kind != token.TriviaBracketComment {
		t.Fatalf("comments = %v", comments)
	}
}

func TestUnterminatedBracketComment(t *testing.T) {
	lx, rep := makeTestLexer("#[=[ never closed\nproject(Foo)")
	collectAllTokens(lx)
	if rep.ErrorCount() != 1 {
		t.Fatalf("want 1 error, got %d", rep.ErrorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedBracket {
		t.Fatalf("code = %v", rep.diagnostics[0].Code)
	}
}

func TestLineContinuation(t *testing.T) {
	lx, _ := makeTestLexer("set(x \\\ny)")
	toks := collectAllTokens(lx)
	// set ( x y ) EOF
	if len(toks) != 6 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	if toks[3].Text != "y" {
		t.Fatalf("toks[3] = %q", toks[3].Text)
	}
	cont := false
	for _, tr := range toks[3].Leading {
		if tr.Kind == token.TriviaLineContinuation {
			cont = true
		}
	}
	if !cont {
		t.Fatal("expected line continuation trivia before 'y'")
	}
}

func TestEscapedSpaceStaysInUnquoted(t *testing.T) {
	lx, _ := makeTestLexer(`set(x a\ b)`)
	toks := collectAllTokens(lx)
	// set ( x "a\ b" ) EOF
	if len(toks) != 6 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	if toks[3].Text != `a\ b` {
		t.Fatalf("toks[3] = %q", toks[3].Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("project(Foo)")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek %v %q, Next %v %q", p.Kind, p.Text, n.Kind, n.Text)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: %v", i, tok.Kind)
		}
	}
}
