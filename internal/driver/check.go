package driver

import (
	"cmakecheck/internal/cmdparse"
	"cmakecheck/internal/diag"
	"cmakecheck/internal/lexer"
	"cmakecheck/internal/pragma"
	"cmakecheck/internal/rules"
	"cmakecheck/internal/source"
)

// Checker runs the full per-file pipeline: lex, split, pragma resolution,
// rule evaluation, suppression filtering.
type Checker struct {
	Engine *rules.Engine
	// ExtraAliases are additional pragma marker words from the manifest.
	ExtraAliases []string
}

func NewChecker(engine *rules.Engine, extraAliases []string) *Checker {
	return &Checker{Engine: engine, ExtraAliases: extraAliases}
}

// CheckFile evaluates one loaded script. A parse failure yields only the
// parse diagnostics; rules never run over a partial invocation list.
func (c *Checker) CheckFile(fs *source.FileSet, id source.FileID) FileResult {
	file := fs.Get(id)
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	invs, ok := cmdparse.Split(lx, rep)
	// Lex errors inside trivia (an unterminated bracket comment) land in the
	// bag without failing the split; they are just as fatal.
	if !ok || bag.HasParseErrors() {
		bag.Sort()
		return FileResult{Path: file.Path, FileID: id, Bag: bag}
	}

	supp := pragma.Resolve(fs, lx.Comments(), c.ExtraAliases)

	findings := c.Engine.Check(rules.NewFileContext(fs, file, invs))
	suppressed := 0
	for _, d := range findings {
		if supp.Suppressed(fs, d.Primary) {
			suppressed++
			continue
		}
		bag.Add(d)
	}
	bag.Sort()
	return FileResult{Path: file.Path, FileID: id, Bag: bag, Suppressed: suppressed}
}
