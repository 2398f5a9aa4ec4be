// Package generator provides the randomness used to pick root words.
package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Generator is a seeded pseudo-random source.
type Generator struct {
	rnd  *rand.Rand
	seed int64
}

// New returns a Generator seeded from crypto/rand, or the current time if
// that fails.
func New() *Generator {
	return NewSeeded(newSeed())
}

// NewSeeded returns a Generator that repeats the same sequence for a seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed reports the seed the generator started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a value in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Pick selects a word uniformly. It returns false for an empty list.
func (g *Generator) Pick(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[g.rnd.Intn(len(words))], true
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
