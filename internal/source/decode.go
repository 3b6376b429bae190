package source

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeUTF16 transcodes UTF-16 content (detected by BOM) to UTF-8.
// Content without a UTF-16 BOM is returned untouched.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	if len(content) < 2 {
		return content, false, nil
	}

	var endian unicode.Endianness
	switch {
	case content[0] == 0xFF && content[1] == 0xFE:
		endian = unicode.LittleEndian
	case content[0] == 0xFE && content[1] == 0xFF:
		endian = unicode.BigEndian
	default:
		return content, false, nil
	}

	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, content)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
