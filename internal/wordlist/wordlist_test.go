package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/scramble/internal/game"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestParseWordsSkipsBlanksAndComments(t *testing.T) {
	words, err := ParseWords(strings.NewReader("# roots\nsilkworm\n\n  elephant  \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(words) != 2 || words[0] != "silkworm" || words[1] != "elephant" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	if _, err := LoadWords(writeList(t, "\n\n")); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestFileSourceFeedsGame(t *testing.T) {
	src := FileSource{Path: writeList(t, "Co-op\nsilkworm\n"), Filter: FilterForLang("en")}
	words, err := src.RootWords()
	if err != nil {
		t.Fatalf("root words: %v", err)
	}
	if len(words) != 1 || words[0] != "silkworm" {
		t.Fatalf("unexpected words: %v", words)
	}
	g := game.New(game.Options{Rand: zeroRand{}})
	if err := g.Start(src); err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Root() != "silkworm" {
		t.Fatalf("expected silkworm, got %q", g.Root())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}
	g := game.New(game.Options{Rand: zeroRand{}})
	err := g.Start(src)
	if !errors.Is(err, game.ErrNoRootWords) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestEmbeddedLists(t *testing.T) {
	roots := Embedded()
	if len(roots) == 0 {
		t.Fatalf("expected embedded root words")
	}
	dict := EmbeddedDictionary()
	for _, root := range roots {
		if !dict.IsRealWord(root, EmbeddedLang) {
			t.Fatalf("embedded root %q missing from dictionary", root)
		}
	}
	for _, w := range []string{"silk", "worm", "milk"} {
		if !dict.IsRealWord(w, "en") {
			t.Fatalf("expected %q in embedded dictionary", w)
		}
	}
}

func TestDictionaryLanguageAndNormalization(t *testing.T) {
	dict := NewDictionary("en", []string{"Silk", " worm "})
	if !dict.IsRealWord("SILK", "en") {
		t.Fatalf("expected case-insensitive match")
	}
	if !dict.IsRealWord("worm", "en-GB") {
		t.Fatalf("expected regional variant to match")
	}
	if dict.IsRealWord("silk", "fr") {
		t.Fatalf("expected other language to miss")
	}
	if dict.Len() != 2 || dict.Words()[0] != "silk" {
		t.Fatalf("unexpected contents: %v", dict.Words())
	}
	var nilDict *Dictionary
	if nilDict.IsRealWord("silk", "en") {
		t.Fatalf("expected nil dictionary to miss")
	}
}

func TestLoadDictionary(t *testing.T) {
	dict, err := LoadDictionary(writeList(t, "silk\nworm\n"), "en")
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	g := game.New(game.Options{Rand: zeroRand{}})
	if err := g.Start(Static{"silkworm"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := g.Submit("silk", dict); err != nil {
		t.Fatalf("expected silk accepted, got %v", err)
	}
	if reason, _ := game.ReasonOf(submit(g, "milk", dict)); reason != game.NotAWord {
		t.Fatalf("expected NotAWord, got %s", reason)
	}
}

func submit(g *game.Game, raw string, dict game.Dictionary) error {
	_, err := g.Submit(raw, dict)
	return err
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func TestSameLang(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"en_US", "en", true},
		{"en-GB", "en-US", true},
		{"fr", "en", false},
		{"!!", "en", false},
		{"", "en", false},
	}
	for _, tc := range cases {
		if got := SameLang(tc.a, tc.b); got != tc.want {
			t.Fatalf("SameLang(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
