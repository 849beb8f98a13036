package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord folds accents and case so that "Café" becomes "cafe".
// Decomposed combining marks are dropped, then the rest is recomposed
// and lowercased. Symbols without an ASCII base letter survive and are
// left for validation to reject.
func NormalizeWord(s string) (string, error) {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(normal), nil
}
