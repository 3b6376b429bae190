package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnterminatedString  Code = 1001
	LexUnterminatedBracket Code = 1002

	// Command splitting
	SynInfo                Code = 2000
	SynUnbalancedParen     Code = 2001
	SynUnterminatedCommand Code = 2002

	// Lint rules (one code per rule in the catalogue)
	LntInfo                Code = 3000
	LntMinimumVersion      Code = 3001
	LntProjectVersion      Code = 3002
	LntTargetScope         Code = 3003
	LntRpath               Code = 3004
	LntPIC                 Code = 3005
	LntCompileDefinitions  Code = 3006
	LntLanguageStandard    Code = 3007
	LntCompileOptions      Code = 3008
	LntIncludeDirectories  Code = 3009
	LntLinkDirectories     Code = 3010
	LntThreadsPackage      Code = 3011
	LntExternalProjectArgs Code = 3012
	LntLibraryType         Code = 3013
	LntSystemPlacement     Code = 3014

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnterminatedString:  "Unterminated quoted argument",
	LexUnterminatedBracket: "Unterminated bracket argument",
	SynInfo:                "Syntax information",
	SynUnbalancedParen:     "Unbalanced parenthesis",
	SynUnterminatedCommand: "Unterminated command invocation",
	LntInfo:                "Lint information",
	LntMinimumVersion:      "Missing or misordered cmake_minimum_required()",
	LntProjectVersion:      "project() without VERSION",
	LntTargetScope:         "Missing dependency scope on target command",
	LntRpath:               "Raw linker rpath flag",
	LntPIC:                 "Global position-independent-code toggle",
	LntCompileDefinitions:  "Directory-scoped compile definitions",
	LntLanguageStandard:    "Raw language standard property",
	LntCompileOptions:      "Directory-scoped compile options",
	LntIncludeDirectories:  "Directory-scoped include paths",
	LntLinkDirectories:     "Directory-scoped linker paths",
	LntThreadsPackage:      "Raw pthread link",
	LntExternalProjectArgs: "Whitespace inside ExternalProject_Add CMAKE_ARGS",
	LntLibraryType:         "add_library() without explicit type",
	LntSystemPlacement:     "Misplaced SYSTEM keyword",
	IOLoadFileError:        "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

// IsParseError reports whether the code belongs to the fatal-per-file
// lexer/splitter range.
func (c Code) IsParseError() bool {
	ic := int(c)
	return ic >= 1000 && ic < 3000 && c != LexInfo && c != SynInfo
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
