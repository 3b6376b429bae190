package source

import (
	"path/filepath"
	"slices"
	"unicode/utf8"
)

// normalizeNewlines rewrites \r\n and lone \r to \n so the line index only
// ever deals with \n. Returns the (possibly new) slice and whether any
// replacement happened.
func normalizeNewlines(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	i := 0
	for i < len(content) {
		if content[i] == '\r' {
			out = append(out, '\n')
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
		} else {
			out = append(out, content[i])
		}
		i++
	}
	return out, true
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	// The 0-based line index is the number of newlines strictly before off;
	// a newline itself still belongs to the line it terminates.
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	// Columns count characters, not bytes.
	col := uint32(utf8.RuneCount(content[startOff:off])) + 1
	return LineCol{Line: uint32(line + 1), Col: col}
}

func normalizePath(p string) string {
	// One canonical form for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}
