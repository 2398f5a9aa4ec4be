// Package alert maps rejected guesses to messages for the player.
package alert

import (
	"fmt"

	"github.com/verte-zerg/scramble/internal/game"
)

// Alert is a short title plus a longer explanation.
type Alert struct {
	Title   string
	Message string
}

// For returns the alert shown for a rejection reason. minLength is used in
// the too-short message.
func For(reason game.Reason, minLength int) Alert {
	switch reason {
	case game.TooShort:
		return Alert{"Word too short", fmt.Sprintf("Words need at least %d letters", minLength)}
	case game.IsRootWord:
		return Alert{"Root word entered", "You can't use the root word"}
	case game.AlreadyUsed:
		return Alert{"Word used already", "Be more original"}
	case game.NotSpellable:
		return Alert{"Word not possible", "The word cannot be spelled from the root word"}
	case game.NotAWord:
		return Alert{"Word is not real", "The word is not in the dictionary"}
	default:
		return Alert{"Word rejected", reason.String()}
	}
}

// FromError builds the alert for err. ok is false when err is not a rejection.
func FromError(err error, minLength int) (Alert, bool) {
	reason, ok := game.ReasonOf(err)
	if !ok {
		return Alert{}, false
	}
	return For(reason, minLength), true
}
