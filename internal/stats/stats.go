// Package stats contains score history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/scramble/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	sparkLabel          = "Trend: "
	terminalWidthBackup = 80
)

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints totals for the rounds and a score trend line.
// width caps the trend; zero uses the terminal width.
func RenderSummary(w io.Writer, rounds []model.RoundAggregate, window, width int) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds found.")
		return err
	}
	scores := make([]float64, len(rounds))
	best := rounds[0]
	totalScore, totalGuesses := 0, 0
	for i, r := range rounds {
		scores[i] = float64(r.Score)
		totalScore += r.Score
		totalGuesses += r.GuessCount
		if r.Score > best.Score {
			best = r
		}
	}
	count := float64(len(rounds))
	lines := []string{
		"Summary",
		fmt.Sprintf("Rounds: %d", len(rounds)),
		fmt.Sprintf("Avg Score: %.2f", float64(totalScore)/count),
		fmt.Sprintf("Best Score: %d (%s)", best.Score, best.Root),
		fmt.Sprintf("Avg Words: %.2f", float64(totalGuesses)/count),
	}
	if width <= 0 {
		width = terminalWidth()
	}
	trend := MovingAverage(scores, window)
	if limit := width - len(sparkLabel); limit > 0 && len(trend) > limit {
		trend = trend[len(trend)-limit:]
	}
	if len(trend) > 1 {
		lines = append(lines, sparkLabel+Sparkline(trend))
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTopTable prints the best rounds, highest score first.
func RenderTopTable(w io.Writer, rounds []model.RoundAggregate) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No high scores yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "High Scores"); err != nil {
		return err
	}
	headers := []string{"#", "Score", "Root Word", "Words", "Date"}
	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Root,
			fmt.Sprintf("%d", r.GuessCount),
			r.EndedAt.Local().Format("2006-01-02"),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
