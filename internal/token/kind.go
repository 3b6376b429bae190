package token

// Kind represents the category of a CMake source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a command-name identifier ([A-Za-z_][A-Za-z0-9_]*).
	Ident
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// Quoted represents a quoted argument: "...".
	Quoted
	// Bracket represents a bracket argument: [=*[ ... ]=*].
	Bracket
	// Unquoted represents an unquoted argument (paths, flags, ${refs}).
	Unquoted
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Quoted:
		return "Quoted"
	case Bracket:
		return "Bracket"
	case Unquoted:
		return "Unquoted"
	}
	return "Unknown"
}
