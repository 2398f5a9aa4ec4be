package game

import "sort"

// DefaultCapacity is the number of high scores kept.
const DefaultCapacity = 5

// ScoreRecorder receives finished round scores.
type ScoreRecorder interface {
	Record(score int)
}

// HighScores keeps the best scores seen by this process, highest first.
type HighScores struct {
	capacity int
	scores   []int
}

// NewHighScores returns an empty list bounded to capacity entries.
func NewHighScores(capacity int) *HighScores {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &HighScores{capacity: capacity}
}

// Record inserts score and drops whatever falls past the capacity.
// Equal scores keep their insertion order.
func (h *HighScores) Record(score int) {
	h.scores = append(h.scores, score)
	sort.SliceStable(h.scores, func(i, j int) bool {
		return h.scores[i] > h.scores[j]
	})
	if len(h.scores) > h.capacity {
		h.scores = h.scores[:h.capacity]
	}
}

// Scores returns a copy of the retained scores.
func (h *HighScores) Scores() []int {
	out := make([]int, len(h.scores))
	copy(out, h.scores)
	return out
}

func (h *HighScores) Len() int {
	return len(h.scores)
}

func (h *HighScores) Capacity() int {
	return h.capacity
}
