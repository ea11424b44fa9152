package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isTrimSpace matches Unicode white space plus the zero width no-break space
// that some producers emit as a word separator.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TrimSpace removes leading and trailing white space
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

// IsBlank reports whether s contains nothing but white space
func IsBlank(s string) bool {
	return TrimSpace(s) == ""
}

// JoinRunText concatenates glyph texts into run text. The result is NFC
// normalized, so a base letter and a combining mark that arrived as separate
// glyph items compose into one character, and trimmed.
func JoinRunText(parts []string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
	}
	return TrimSpace(norm.NFC.String(sb.String()))
}
