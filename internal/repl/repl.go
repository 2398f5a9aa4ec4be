// Package repl plays the game over plain line-oriented input and output.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/scramble/internal/alert"
	"github.com/verte-zerg/scramble/internal/game"
	"github.com/verte-zerg/scramble/internal/session"
)

const help = "Type a word and press enter. Commands: :restart (:r), :scores (:s), :help (:h), :quit (:q)"

// Run reads guesses from in until EOF or :quit. The active round is saved
// on exit.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	p := printer{w: out}
	p.line(help)
	p.root(s.Game())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":quit", ":q":
			s.Finish(ctx)
			return p.err
		case ":restart", ":r":
			score, err := s.Restart(ctx)
			if err != nil {
				return err
			}
			p.line(fmt.Sprintf("Round over. Score: %d", score))
			p.scores(s.Game().HighScores())
			p.root(s.Game())
			continue
		case ":scores", ":s":
			p.scores(s.Game().HighScores())
			continue
		case ":help", ":h":
			p.line(help)
			continue
		}

		word, err := s.Submit(line)
		if err != nil {
			a, ok := alert.FromError(err, s.Game().MinLength())
			if !ok {
				return err
			}
			p.line(fmt.Sprintf("! %s: %s", a.Title, a.Message))
			continue
		}
		if word == "" {
			continue
		}
		p.line(fmt.Sprintf("+ %s (%d)  score %d", word, game.Length(word), s.Game().Score()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	s.Finish(ctx)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) root(g *game.Game) {
	p.line(fmt.Sprintf("Root word: %s", g.Root()))
}

func (p *printer) scores(h *game.HighScores) {
	scores := h.Scores()
	if len(scores) == 0 {
		p.line("High scores: none")
		return
	}
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%d", s)
	}
	p.line("High scores: " + strings.Join(parts, ", "))
}
