package game

import "slices"

// DefaultMinLength is the shortest accepted guess.
const DefaultMinLength = 3

// Dictionary answers whether word is a real word in lang.
type Dictionary interface {
	IsRealWord(word, lang string) bool
}

// IsValidLength reports whether word has at least minLength characters.
func IsValidLength(word string, minLength int) bool {
	return Length(word) >= minLength
}

// IsNotRootWord reports whether word differs from the root word.
func IsNotRootWord(word, root string) bool {
	return word != root
}

// IsOriginal reports whether word has not been guessed yet.
func IsOriginal(word string, guesses []string) bool {
	return !slices.Contains(guesses, word)
}

// IsPossible reports whether word can be spelled from the letters of root,
// using each letter of root at most as often as it appears there.
func IsPossible(word, root string) bool {
	available := letterCounts(root)
	for letter, count := range letterCounts(word) {
		if available[letter] < count {
			return false
		}
	}
	return true
}

// IsReal asks dict whether word exists in lang. A nil dictionary knows no words.
func IsReal(word, lang string, dict Dictionary) bool {
	if dict == nil {
		return false
	}
	return dict.IsRealWord(word, lang)
}

// Validator runs the guess checks against a round.
// Inputs must already be normalized.
type Validator struct {
	MinLength  int
	Lang       string
	Dictionary Dictionary
}

type check struct {
	reason Reason
	pass   func(v Validator, word string, round Round) bool
}

var pipeline = []check{
	{TooShort, func(v Validator, word string, _ Round) bool {
		return IsValidLength(word, v.minLength())
	}},
	{IsRootWord, func(_ Validator, word string, round Round) bool {
		return IsNotRootWord(word, round.Root)
	}},
	{AlreadyUsed, func(_ Validator, word string, round Round) bool {
		return IsOriginal(word, round.Guesses)
	}},
	{NotSpellable, func(_ Validator, word string, round Round) bool {
		return IsPossible(word, round.Root)
	}},
	{NotAWord, func(v Validator, word string, _ Round) bool {
		return IsReal(word, v.Lang, v.Dictionary)
	}},
}

// Validate returns the first failed check as a rejection, or nil.
func (v Validator) Validate(word string, round Round) *Rejection {
	for _, c := range pipeline {
		if !c.pass(v, word, round) {
			return &Rejection{Reason: c.reason, Word: word}
		}
	}
	return nil
}

func (v Validator) minLength() int {
	if v.MinLength <= 0 {
		return DefaultMinLength
	}
	return v.MinLength
}
