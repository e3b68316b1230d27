package sanitizer

import (
	"strings"
	"unicode"
)

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes ANSI escape sequences and other control characters.
func RemoveControlSequences(s string) string {
	result := ansiRegex.ReplaceAllString(s, "")

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, result)
}

// PreventHeaderInjection removes characters that could be used for header injection.
// Use it on anything that ends up in a mail header (names, subjects, reply-to).
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", "")

	return RemoveNullBytes(result)
}
