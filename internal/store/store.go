// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/scramble/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for finished rounds.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			lang TEXT NOT NULL,
			root_word TEXT NOT NULL,
			score INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS round_guesses (
			round_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (round_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ended_at ON rounds(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished round and its guesses, newest guess first.
func (s *Store) InsertRound(ctx context.Context, rec model.RoundRecord) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, lang, root_word, score)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.EndedAt.UTC().Format(timeLayout),
		rec.Lang,
		rec.Root,
		rec.Score,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rec.Guesses) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO round_guesses (round_id, position, word) VALUES (?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, word := range rec.Guesses {
			if _, err := stmt.ExecContext(ctx, id, i, word); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRounds returns round aggregates filtered by cfg, oldest first.
func (s *Store) ListRounds(ctx context.Context, cfg model.ScoresConfig) ([]model.RoundAggregate, error) {
	where, args := roundFilter(cfg)
	query := fmt.Sprintf(`SELECT r.id, r.ended_at, r.root_word, r.score,
			(SELECT COUNT(*) FROM round_guesses g WHERE g.round_id = r.id)
		FROM rounds r
		WHERE %s
		ORDER BY r.ended_at ASC, r.id ASC`, where)
	return s.queryRounds(ctx, query, args...)
}

// TopRounds returns up to n rounds with the highest scores. Ties go to the
// earlier round.
func (s *Store) TopRounds(ctx context.Context, n int, cfg model.ScoresConfig) ([]model.RoundAggregate, error) {
	if n <= 0 {
		return nil, nil
	}
	where, args := roundFilter(cfg)
	query := fmt.Sprintf(`SELECT r.id, r.ended_at, r.root_word, r.score,
			(SELECT COUNT(*) FROM round_guesses g WHERE g.round_id = r.id)
		FROM rounds r
		WHERE %s
		ORDER BY r.score DESC, r.ended_at ASC, r.id ASC
		LIMIT ?`, where)
	args = append(args, n)
	return s.queryRounds(ctx, query, args...)
}

// GuessesForRound returns the stored guesses of a round, newest first.
func (s *Store) GuessesForRound(ctx context.Context, roundID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM round_guesses WHERE round_id = ? ORDER BY position ASC`, roundID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func roundFilter(cfg model.ScoresConfig) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Lang != "" {
		clauses = append(clauses, "r.lang = ?")
		args = append(args, cfg.Lang)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "r.ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	return strings.Join(clauses, " AND "), args
}

func (s *Store) queryRounds(ctx context.Context, query string, args ...any) ([]model.RoundAggregate, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundAggregate
	for rows.Next() {
		var agg model.RoundAggregate
		var endedAt string
		if err := rows.Scan(&agg.RoundID, &endedAt, &agg.Root, &agg.Score, &agg.GuessCount); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		rounds = append(rounds, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}
