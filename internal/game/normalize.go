package game

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace and lowercases raw with the casing
// rules of lang. The result is NFC so equal letters compare equal.
func Normalize(raw, lang string) string {
	word := strings.TrimSpace(raw)
	if word == "" {
		return ""
	}
	word = cases.Lower(language.Make(lang)).String(word)
	return norm.NFC.String(word)
}

// Length counts user-perceived characters (grapheme clusters) in word.
func Length(word string) int {
	return uniseg.GraphemeClusterCount(word)
}

func letterCounts(word string) map[string]int {
	counts := map[string]int{}
	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		counts[gr.Str()]++
	}
	return counts
}
