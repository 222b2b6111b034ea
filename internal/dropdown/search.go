package dropdown

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Latin letters that do not decompose into a base letter plus marks.
var ligatures = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "Th",
	"ı", "i",
)

// Deburr strips diacritics from s: "Crème Brûlée" becomes "Creme Brulee".
func Deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return ligatures.Replace(stripped)
}

// DefaultSearch keeps options whose text contains query, ignoring case and,
// when deburr is set, diacritics on both sides.
func DefaultSearch(options []Option, query string, deburr bool) []Option {
	folder := cases.Fold()
	needle := query
	if deburr {
		needle = Deburr(needle)
	}
	needle = folder.String(needle)

	out := make([]Option, 0, len(options))
	for _, opt := range options {
		text := opt.Text
		if deburr {
			text = Deburr(text)
		}
		if strings.Contains(folder.String(text), needle) {
			out = append(out, opt)
		}
	}
	return out
}
