package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims and HTML-escapes single-line user input.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeText trims and escapes multi-line text, dropping control
// characters except newlines and tabs. Used for free-text fields such as
// load descriptions and addresses.
func SanitizeText(input string) string {
	escaped := html.EscapeString(strings.TrimSpace(input))

	var result strings.Builder
	for _, r := range escaped {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
