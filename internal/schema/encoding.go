package schema

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// DecodeBytes converts a raw export to a UTF-8 string. A UTF-16-LE
// byte-order mark selects UTF-16; otherwise valid UTF-8 (with optional BOM)
// is accepted as-is; anything else falls back to Latin-1, which accepts all
// byte sequences, so decoding never fails.
func DecodeBytes(raw []byte) string {
	if bytes.HasPrefix(raw, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := decoder.Bytes(raw); err == nil {
			return string(decoded)
		}
		// Truncated UTF-16 still decodes through Latin-1 below.
	}

	trimmed := bytes.TrimPrefix(raw, bomUTF8)
	if utf8.Valid(trimmed) {
		return string(trimmed)
	}

	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}
