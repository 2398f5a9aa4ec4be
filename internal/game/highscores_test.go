package game

import "testing"

func TestHighScoresDropsLowest(t *testing.T) {
	h := NewHighScores(5)
	for _, s := range []int{10, 20, 30, 40, 50} {
		h.Record(s)
	}
	h.Record(15)
	assertScores(t, h.Scores(), []int{50, 40, 30, 20, 15})
}

func TestHighScoresIgnoresScoreBelowFullList(t *testing.T) {
	h := NewHighScores(5)
	for _, s := range []int{10, 20, 30, 40, 50} {
		h.Record(s)
	}
	h.Record(3)
	assertScores(t, h.Scores(), []int{50, 40, 30, 20, 10})
}

func TestHighScoresSortedAndBounded(t *testing.T) {
	h := NewHighScores(3)
	for _, s := range []int{4, 9, 1, 9, 7, 0, 12} {
		h.Record(s)
		if h.Len() > h.Capacity() {
			t.Fatalf("exceeded capacity: %v", h.Scores())
		}
		scores := h.Scores()
		for i := 1; i < len(scores); i++ {
			if scores[i-1] < scores[i] {
				t.Fatalf("not descending: %v", scores)
			}
		}
	}
	assertScores(t, h.Scores(), []int{12, 9, 9})
}

func TestHighScoresDefaultCapacity(t *testing.T) {
	if got := NewHighScores(0).Capacity(); got != DefaultCapacity {
		t.Fatalf("expected %d, got %d", DefaultCapacity, got)
	}
}

func TestHighScoresCopy(t *testing.T) {
	h := NewHighScores(2)
	h.Record(5)
	s := h.Scores()
	s[0] = 99
	assertScores(t, h.Scores(), []int{5})
}

func assertScores(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
