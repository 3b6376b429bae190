package driver

import (
	"cmakecheck/internal/diag"
	"cmakecheck/internal/lexer"
	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single script without running the splitter or rules.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
