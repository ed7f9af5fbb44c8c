package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares word text for identity comparison: NFC-composed,
// lowercased, trimmed, with every whitespace run collapsed to one space.
// Diacritics, hyphens, apostrophes and a leading "*" are preserved, so
// "Mōdor" and "mōdor" share a key while "modor" does not.
func NormalizeText(text string) string {
	fields := strings.Fields(norm.NFC.String(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
