package game

import (
	"errors"
	"fmt"
)

// Reason identifies why a guess was rejected.
type Reason int

// Rejection reasons, in the order the validator checks them.
const (
	TooShort Reason = iota + 1
	IsRootWord
	AlreadyUsed
	NotSpellable
	NotAWord
)

var reasonNames = map[Reason]string{
	TooShort:     "too short",
	IsRootWord:   "is root word",
	AlreadyUsed:  "already used",
	NotSpellable: "not spellable",
	NotAWord:     "not a word",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Rejection is returned by Submit when a guess fails validation.
// The round is left untouched.
type Rejection struct {
	Reason Reason
	Word   string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("guess %q rejected: %s", r.Word, r.Reason)
}

// ErrNoRootWords reports that no usable root word could be chosen.
var ErrNoRootWords = errors.New("no candidate root words")

// ReasonOf extracts the rejection reason from err.
func ReasonOf(err error) (Reason, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return 0, false
}
