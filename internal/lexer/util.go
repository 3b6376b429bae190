package lexer

// ASCII classifiers for CMake command identifiers.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// isArgSeparator reports whether b ends an unquoted argument.
func isArgSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '(', ')', '#', '"':
		return true
	}
	return false
}

// isIdentText reports whether s is a well-formed command identifier.
func isIdentText(s string) bool {
	if len(s) == 0 || !isIdentStartByte(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentContinueByte(s[i]) {
			return false
		}
	}
	return true
}
