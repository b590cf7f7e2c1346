package tokenize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file contents into a string on a best-effort basis.
// A UTF-8 or UTF-16 byte order mark selects the encoding and is stripped.
// Without one the data is read as UTF-8 and invalid bytes become U+FFFD.
func Decode(data []byte) string {
	if utf8.Valid(data) && !hasBOM(data) {
		return string(data)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return string(out)
}

func hasBOM(data []byte) bool {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return true
	}
	if len(data) >= 2 && ((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE)) {
		return true
	}
	return false
}
