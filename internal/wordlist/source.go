package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed data/start.txt
var embeddedRoots string

//go:embed data/dictionary.txt
var embeddedDictionary string

// EmbeddedLang is the language of the bundled word lists.
const EmbeddedLang = "en"

// Static is an in-memory list of root words.
type Static []string

// RootWords implements game.WordSource.
func (s Static) RootWords() ([]string, error) {
	return []string(s), nil
}

// FileSource reads root words from a newline-separated file on every call.
type FileSource struct {
	Path   string
	Filter FilterFunc
}

// RootWords implements game.WordSource.
func (s FileSource) RootWords() ([]string, error) {
	words, err := LoadWords(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load root words from %s: %w", s.Path, err)
	}
	return Apply(words, s.Filter), nil
}

// Embedded returns the bundled root word list.
func Embedded() Static {
	words, err := ParseWords(strings.NewReader(embeddedRoots))
	if err != nil {
		return nil
	}
	return Static(words)
}

// EmbeddedDictionary returns the bundled English dictionary.
func EmbeddedDictionary() *Dictionary {
	words, err := ParseWords(strings.NewReader(embeddedDictionary))
	if err != nil {
		return NewDictionary(EmbeddedLang, nil)
	}
	return NewDictionary(EmbeddedLang, words)
}
