// Package model defines shared data structures.
package model

import "time"

// Config defines play settings.
type Config struct {
	Lang         string
	MinLength    int
	HighScores   int
	RootWords    string
	Dictionary   string
	FallbackRoot string
	Seed         int64
	Plain        bool
}

// ScoresConfig defines filters and options for the scores report.
type ScoresConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	Top         int
	CurveWindow int
}

// RoundRecord captures a finished round for the history store.
type RoundRecord struct {
	StartedAt time.Time
	EndedAt   time.Time
	Lang      string
	Root      string
	Score     int
	Guesses   []string
}

// RoundAggregate summarizes a stored round for reporting.
type RoundAggregate struct {
	RoundID    int64
	EndedAt    time.Time
	Root       string
	Score      int
	GuessCount int
}
