package alert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/verte-zerg/scramble/internal/game"
)

func TestForCoversEveryReason(t *testing.T) {
	seen := map[string]bool{}
	for _, reason := range []game.Reason{game.TooShort, game.IsRootWord, game.AlreadyUsed, game.NotSpellable, game.NotAWord} {
		a := For(reason, 3)
		if a.Title == "" || a.Message == "" {
			t.Fatalf("empty alert for %s", reason)
		}
		if seen[a.Title] {
			t.Fatalf("duplicate title %q", a.Title)
		}
		seen[a.Title] = true
	}
	if got := For(game.TooShort, 4).Message; got != "Words need at least 4 letters" {
		t.Fatalf("unexpected too-short message %q", got)
	}
}

func TestFromError(t *testing.T) {
	err := fmt.Errorf("submit: %w", &game.Rejection{Reason: game.IsRootWord, Word: "silkworm"})
	a, ok := FromError(err, 3)
	if !ok || a.Title != "Root word entered" {
		t.Fatalf("unexpected alert %+v, %v", a, ok)
	}
	if _, ok := FromError(errors.New("disk full"), 3); ok {
		t.Fatalf("expected non-rejection to be ignored")
	}
}
