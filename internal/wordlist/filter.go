package wordlist

import (
	"strings"

	"github.com/rivo/uniseg"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for root word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(string) bool { return true }
	}
}

// MinLength keeps words with at least n characters.
func MinLength(n int) FilterFunc {
	return func(word string) bool {
		return uniseg.GraphemeClusterCount(word) >= n
	}
}

// All keeps words that pass every filter. Nil filters are skipped.
func All(filters ...FilterFunc) FilterFunc {
	return func(word string) bool {
		for _, f := range filters {
			if f != nil && !f(word) {
				return false
			}
		}
		return true
	}
}

// Apply returns the words kept by filter. A nil filter keeps everything.
func Apply(words []string, filter FilterFunc) []string {
	if filter == nil {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if filter(w) {
			out = append(out, w)
		}
	}
	return out
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
