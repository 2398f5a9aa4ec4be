// Package session wires a game to its word source, dictionary and round
// history for the presentation layers.
package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/scramble/internal/game"
	"github.com/verte-zerg/scramble/internal/model"
)

// RoundSaver persists finished rounds. *store.Store satisfies it.
type RoundSaver interface {
	InsertRound(ctx context.Context, rec model.RoundRecord) (int64, error)
}

// Session drives one player's game.
type Session struct {
	game   *game.Game
	source game.WordSource
	dict   game.Dictionary
	saver  RoundSaver
	log    zerolog.Logger
	now    func() time.Time
}

// Options configures a Session. Saver may be nil to skip history.
type Options struct {
	Source game.WordSource
	Dict   game.Dictionary
	Saver  RoundSaver
	Logger zerolog.Logger
	Now    func() time.Time
}

// New starts the first round of g.
func New(g *game.Game, opts Options) (*Session, error) {
	s := &Session{
		game:   g,
		source: opts.Source,
		dict:   opts.Dict,
		saver:  opts.Saver,
		log:    opts.Logger,
		now:    opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := g.Start(s.source); err != nil {
		return nil, err
	}
	s.log.Debug().Str("root", g.Root()).Msg("round started")
	return s, nil
}

// Game exposes the underlying game for read access.
func (s *Session) Game() *game.Game {
	return s.game
}

// Submit checks raw against the active round.
func (s *Session) Submit(raw string) (string, error) {
	word, err := s.game.Submit(raw, s.dict)
	if err != nil {
		s.log.Debug().Err(err).Str("root", s.game.Root()).Msg("guess rejected")
		return "", err
	}
	if word != "" {
		s.log.Debug().Str("word", word).Int("score", s.game.Score()).Msg("guess accepted")
	}
	return word, nil
}

// Restart records the finished round into the high scores and history,
// then starts a new round.
func (s *Session) Restart(ctx context.Context) (int, error) {
	rec := s.record()
	score, err := s.game.Restart(s.source)
	if err != nil {
		return 0, err
	}
	s.save(ctx, rec)
	s.log.Debug().Int("score", score).Str("root", s.game.Root()).Msg("round restarted")
	return score, nil
}

// Finish saves the active round to history when it has any guesses.
func (s *Session) Finish(ctx context.Context) {
	if len(s.game.Guesses()) == 0 {
		return
	}
	s.save(ctx, s.record())
}

func (s *Session) record() model.RoundRecord {
	return model.RoundRecord{
		StartedAt: s.game.StartedAt(),
		EndedAt:   s.now(),
		Lang:      s.game.Lang(),
		Root:      s.game.Root(),
		Score:     s.game.Score(),
		Guesses:   s.game.Guesses(),
	}
}

func (s *Session) save(ctx context.Context, rec model.RoundRecord) {
	if s.saver == nil {
		return
	}
	if _, err := s.saver.InsertRound(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("root", rec.Root).Msg("failed to save round")
	}
}
