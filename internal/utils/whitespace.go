package utils

import (
	"strings"
	"unicode"
)

// formWhitespace is the regexp class for whitespace as browsers define it:
// ASCII whitespace including \v, every Unicode space separator, the line and
// paragraph separators and the byte order mark. Go's \s covers only the ASCII part.
const formWhitespace = `\t\n\x0B\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// IsFormSpace reports whether r is whitespace in the formWhitespace sense
func IsFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimFormSpace removes leading and trailing form whitespace, the way a
// browser trims a field value
func TrimFormSpace(s string) string {
	return strings.TrimFunc(s, IsFormSpace)
}
