package wordlist

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/verte-zerg/scramble/internal/game"
)

// Dictionary is an in-memory word set for one language.
type Dictionary struct {
	tag   string
	words map[string]struct{}
}

// NewDictionary builds a dictionary from words, normalized for lang.
func NewDictionary(lang string, words []string) *Dictionary {
	d := &Dictionary{tag: lang, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if n := game.Normalize(w, lang); n != "" {
			d.words[n] = struct{}{}
		}
	}
	return d
}

// LoadDictionary reads a newline-separated dictionary file.
func LoadDictionary(path, lang string) (*Dictionary, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary from %s: %w", path, err)
	}
	return NewDictionary(lang, words), nil
}

// IsRealWord implements game.Dictionary. Words in another language are never
// recognized; regional variants of the same language are.
func (d *Dictionary) IsRealWord(word, lang string) bool {
	if d == nil {
		return false
	}
	if !SameLang(lang, d.tag) {
		return false
	}
	_, ok := d.words[game.Normalize(word, lang)]
	return ok
}

// SameLang reports whether a and b name the same base language, so regional
// variants match. Tags without an exactly known base language match nothing.
func SameLang(a, b string) bool {
	baseA, confA := language.Make(a).Base()
	baseB, confB := language.Make(b).Base()
	if confA != language.Exact || confB != language.Exact {
		return false
	}
	return baseA == baseB
}

// Lang returns the language tag the dictionary was built for.
func (d *Dictionary) Lang() string {
	return d.tag
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the dictionary contents in sorted order.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
