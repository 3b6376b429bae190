// Package pragma resolves in-source suppression comments. A pragma is a
// line comment that ends its line and spells one of the accepted markers,
// e.g. `# nolint`, `# cmake-lint: disable` or `# check_cmake ignore`.
// Findings touching a suppressed line are dropped before reporting.
package pragma

import (
	"regexp"
	"strings"

	"cmakecheck/internal/source"
	"cmakecheck/internal/token"
)

// Marker spellings, matched case-insensitively against the comment body.
// Tool and language words join with space, underscore or dash; the verb is
// separated by a colon or whitespace.
const (
	toolWords = `(?:cmake[ _-]+(?:lint|check)|(?:lint|check)[ _-]+cmake)`
	verbs     = `(?:disable|ignore)`
	bareWords = `no(?:lint|check)`
)

var pragmaRe = regexp.MustCompile(`(?i)^#\s*(?:` + toolWords + `[:\s]+` + verbs + `|` + bareWords + `)\s*$`)

// extraAliasRe builds a matcher for one extra marker word from the
// manifest, accepted bare the way nolint is.
func extraAliasRe(alias string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^#\s*` + regexp.QuoteMeta(alias) + `\s*$`)
}

// Suppressions is the per-file set of pragma-carrying lines.
type Suppressions struct {
	lines map[uint32]struct{}
}

// Resolve scans the file's comments and collects suppressed lines. Only
// line comments count; bracket comments cannot end a line the way the
// markers require. extraAliases come from the project manifest.
func Resolve(fs *source.FileSet, comments []token.Trivia, extraAliases []string) *Suppressions {
	var extras []*regexp.Regexp
	for _, a := range extraAliases {
		a = strings.TrimSpace(a)
		if a != "" {
			extras = append(extras, extraAliasRe(a))
		}
	}

	s := &Suppressions{lines: make(map[uint32]struct{})}
	for _, c := range comments {
		if c.Kind != token.TriviaLineComment {
			continue
		}
		if !pragmaRe.MatchString(c.Text) && !matchAny(extras, c.Text) {
			continue
		}
		start, _ := fs.Resolve(c.Span)
		s.lines[start.Line] = struct{}{}
	}
	return s
}

func matchAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Empty reports whether no line is suppressed.
func (s *Suppressions) Empty() bool {
	return s == nil || len(s.lines) == 0
}

// Line reports whether the given 1-based line is suppressed.
func (s *Suppressions) Line(line uint32) bool {
	if s == nil {
		return false
	}
	_, ok := s.lines[line]
	return ok
}

// Suppressed reports whether a finding with this primary span should be
// dropped. The contract is anchored on the span's end line: a pragma
// trailing the last line of an invocation silences findings that end there.
func (s *Suppressions) Suppressed(fs *source.FileSet, sp source.Span) bool {
	if s.Empty() {
		return false
	}
	_, end := fs.Resolve(sp)
	return s.Line(end.Line)
}
