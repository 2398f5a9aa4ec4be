package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/scramble/internal/game"
)

// renderRows lays out guesses as "(n) word", the letter count first.
// Words wider than width are truncated.
func renderRows(words []string, width int) []string {
	if len(words) == 0 {
		return []string{footerStyle.Render("none yet")}
	}
	badgeWidth := 0
	for _, w := range words {
		badgeWidth = max(badgeWidth, len(badgeText(w)))
	}
	wordWidth := max(width-badgeWidth-1, 1)
	rows := make([]string, 0, len(words))
	for _, w := range words {
		badge := fmt.Sprintf("%*s", badgeWidth, badgeText(w))
		text := runewidth.Truncate(w, wordWidth, "…")
		rows = append(rows, badgeStyle.Render(badge)+" "+wordStyle.Render(text))
	}
	return rows
}

func badgeText(word string) string {
	return fmt.Sprintf("(%d)", game.Length(word))
}
