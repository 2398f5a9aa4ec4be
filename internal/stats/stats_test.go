package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/scramble/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSparklineFlatAndRange(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	rounds := []model.RoundAggregate{
		{RoundID: 1, Root: "silkworm", Score: 8, GuessCount: 2},
		{RoundID: 2, Root: "elephant", Score: 20, GuessCount: 5},
		{RoundID: 3, Root: "notebook", Score: 5, GuessCount: 1},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, rounds, 1, 40); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 3", "Avg Score: 11.00", "Best Score: 20 (elephant)", "Avg Words: 2.67", "Trend: "} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil, 5, 80); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if buf.String() != "No rounds found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderTopTable(t *testing.T) {
	ended := time.Date(2024, 2, 22, 12, 0, 0, 0, time.Local)
	var buf bytes.Buffer
	err := RenderTopTable(&buf, []model.RoundAggregate{
		{Root: "elephant", Score: 20, GuessCount: 5, EndedAt: ended},
		{Root: "silkworm", Score: 8, GuessCount: 2, EndedAt: ended},
	})
	if err != nil {
		t.Fatalf("render top: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title, header and 2 rows, got %q", lines)
	}
	if !strings.HasPrefix(lines[2], "1    20 elephant") {
		t.Fatalf("unexpected first row %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "2024-02-22") {
		t.Fatalf("unexpected date column %q", lines[3])
	}
}
