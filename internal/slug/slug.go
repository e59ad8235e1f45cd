// Package slug turns post titles into URL and path safe identifiers.
package slug

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a title has no character that survives slugification.
const Fallback = "untitled"

// Make lower-cases s, strips diacritics, transliterates the remaining letters
// to ASCII and joins the resulting [a-z0-9] runs with single hyphens.
func Make(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	// Letters without a decomposition (ß, ø, ł, Cyrillic...) are spelled out.
	stripped = strings.ToLower(strings.TrimSpace(unidecode.Unidecode(stripped)))

	var b strings.Builder
	prev := false
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}

	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return Fallback
	}
	return out
}
