// Package game implements the word-scramble rules: picking a root word,
// validating guesses against it, scoring, and keeping high scores.
package game

import (
	"fmt"
	"time"

	"github.com/verte-zerg/scramble/internal/generator"
)

// DefaultLang is the dictionary language used when none is configured.
const DefaultLang = "en"

// WordSource supplies candidate root words.
type WordSource interface {
	RootWords() ([]string, error)
}

// Rand picks indexes for root word selection. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configures a Game. Zero values select the defaults.
type Options struct {
	MinLength int
	Lang      string
	Capacity  int
	// FallbackRoot is used when the word source has no candidates.
	// Empty means Start fails with ErrNoRootWords instead.
	FallbackRoot string
	Rand         Rand
	Now          func() time.Time
}

// Round is the root word and the guesses accepted for it, newest first.
type Round struct {
	Root    string
	Guesses []string
}

// Game owns the active round and the high score list.
// It is not safe for concurrent use.
type Game struct {
	minLength int
	lang      string
	fallback  string
	rnd       Rand
	now       func() time.Time

	root      string
	guesses   []string
	startedAt time.Time
	scores    *HighScores
}

// New returns a Game with no round started.
func New(opts Options) *Game {
	g := &Game{
		minLength: opts.MinLength,
		lang:      opts.Lang,
		rnd:       opts.Rand,
		now:       opts.Now,
		scores:    NewHighScores(opts.Capacity),
	}
	if g.minLength <= 0 {
		g.minLength = DefaultMinLength
	}
	if g.lang == "" {
		g.lang = DefaultLang
	}
	if g.rnd == nil {
		g.rnd = generator.New()
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.fallback = Normalize(opts.FallbackRoot, g.lang)
	return g
}

// Start begins a new round with a root word picked from src.
// The previous round is discarded without recording its score; call EndRound
// first to keep it. On error the current round is left as it was.
func (g *Game) Start(src WordSource) error {
	root, err := g.pickRoot(src)
	if err != nil {
		return err
	}
	g.begin(root)
	return nil
}

func (g *Game) begin(root string) {
	g.root = root
	g.guesses = nil
	g.startedAt = g.now()
}

func (g *Game) pickRoot(src WordSource) (string, error) {
	var (
		words  []string
		srcErr error
	)
	if src != nil {
		words, srcErr = src.RootWords()
	}
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalize(w, g.lang); n != "" {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) > 0 {
		return candidates[g.rnd.Intn(len(candidates))], nil
	}
	if g.fallback != "" {
		return g.fallback, nil
	}
	if srcErr != nil {
		return "", fmt.Errorf("%w: %w", ErrNoRootWords, srcErr)
	}
	return "", ErrNoRootWords
}

// Submit normalizes raw and validates it against the current round.
// Blank input is ignored and returns ("", nil). A failed check returns a
// *Rejection and leaves the round unchanged.
func (g *Game) Submit(raw string, dict Dictionary) (string, error) {
	word := Normalize(raw, g.lang)
	if word == "" {
		return "", nil
	}
	v := Validator{MinLength: g.minLength, Lang: g.lang, Dictionary: dict}
	if rej := v.Validate(word, Round{Root: g.root, Guesses: g.guesses}); rej != nil {
		return "", rej
	}
	g.guesses = append([]string{word}, g.guesses...)
	return word, nil
}

// Score is the total character count of the accepted guesses.
func (g *Game) Score() int {
	total := 0
	for _, w := range g.guesses {
		total += Length(w)
	}
	return total
}

// EndRound records the current score into t and returns it.
func (g *Game) EndRound(t ScoreRecorder) int {
	score := g.Score()
	if t != nil {
		t.Record(score)
	}
	return score
}

// Restart records the finished round into the game's high scores and starts
// a new one. The returned score belongs to the finished round. If no new root
// can be picked, nothing is recorded and the current round stays active.
func (g *Game) Restart(src WordSource) (int, error) {
	root, err := g.pickRoot(src)
	if err != nil {
		return 0, err
	}
	score := g.EndRound(g.scores)
	g.begin(root)
	return score, nil
}

// Root returns the current root word, empty before the first Start.
func (g *Game) Root() string {
	return g.root
}

// Guesses returns the accepted guesses, newest first.
func (g *Game) Guesses() []string {
	out := make([]string, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// Round returns a snapshot of the active round.
func (g *Game) Round() Round {
	return Round{Root: g.root, Guesses: g.Guesses()}
}

func (g *Game) StartedAt() time.Time {
	return g.startedAt
}

func (g *Game) Lang() string {
	return g.lang
}

func (g *Game) MinLength() int {
	return g.minLength
}

// HighScores returns the tracker owned by the game.
func (g *Game) HighScores() *HighScores {
	return g.scores
}
