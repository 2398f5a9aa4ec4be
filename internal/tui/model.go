// Package tui provides the Bubble Tea play screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/scramble/internal/alert"
	"github.com/verte-zerg/scramble/internal/session"
)

// Model implements the Bubble Tea play UI.
type Model struct {
	session *session.Session
	log     zerolog.Logger
	input   textinput.Model

	width  int
	height int

	alert   *alert.Alert
	lastErr string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#C89A3A"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	alertStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Padding(1, 3)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
)

const maxRowWidth = 32

// NewModel constructs a play model around a started session.
func NewModel(s *session.Session, log zerolog.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "Enter your word"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()
	return &Model{session: s, log: log, input: input}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (msg.Type == tea.KeyEsc && m.alert == nil) {
			m.session.Finish(context.Background())
			return m, tea.Quit
		}
		if m.alert != nil {
			m.alert = nil
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlR:
			m.restart()
			return m, nil
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	word, err := m.session.Submit(m.input.Value())
	if err != nil {
		a, ok := alert.FromError(err, m.session.Game().MinLength())
		if !ok {
			m.lastErr = err.Error()
			return
		}
		m.alert = &a
		return
	}
	if word != "" {
		m.lastErr = ""
	}
	m.input.Reset()
}

func (m *Model) restart() {
	if _, err := m.session.Restart(context.Background()); err != nil {
		m.log.Error().Err(err).Msg("failed to start new round")
		m.lastErr = fmt.Sprintf("failed to start new round: %v", err)
		return
	}
	m.alert = nil
	m.lastErr = ""
	m.input.Reset()
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.alert != nil {
		content = renderAlert(*m.alert)
	} else {
		content = m.renderBody()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderBody() string {
	g := m.session.Game()
	lines := []string{
		titleStyle.Render(strings.ToUpper(g.Root())),
		"",
		m.input.View(),
		"",
		sectionStyle.Render("Words Guessed"),
	}
	lines = append(lines, renderRows(g.Guesses(), m.rowWidth())...)
	lines = append(lines, "", sectionStyle.Render("High Scores"))
	scores := g.HighScores().Scores()
	if len(scores) == 0 {
		lines = append(lines, footerStyle.Render("none yet"))
	}
	for _, s := range scores {
		lines = append(lines, scoreStyle.Render(fmt.Sprintf("%d", s)))
	}
	if m.lastErr != "" {
		lines = append(lines, "", errorStyle.Render(m.lastErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) rowWidth() int {
	if m.width <= 0 {
		return maxRowWidth
	}
	return min(maxRowWidth, m.width-8)
}

func (m *Model) renderFooter() string {
	g := m.session.Game()
	segments := []string{
		fmt.Sprintf("Score %d", g.Score()),
		"enter submit",
		"ctrl+r restart",
		"ctrl+c quit",
	}
	if m.alert != nil {
		segments = []string{"press any key"}
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}

func renderAlert(a alert.Alert) string {
	return alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		alertTitleStyle.Render(a.Title),
		"",
		a.Message,
	))
}
