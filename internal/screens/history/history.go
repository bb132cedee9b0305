// Package history shows recorded quiz sessions and the rounds played in
// each.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

const (
	sessionLimit = 15
	loadTimeout  = 5 * time.Second
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Rounds   map[string][]store.RoundEventRecord // sessionID → rounds, newest first
	Stats    *store.Stats
	Err      error
}

// HistoryScreen displays past sessions with their rounds and overall stats.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	rounds    map[string][]store.RoundEventRecord
	stats     *store.Stats
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		rounds := make(map[string][]store.RoundEventRecord, len(sessions))
		for _, sess := range sessions {
			recs, err := repo.QueryRoundEvents(ctx, store.QueryOpts{SessionID: sess.SessionID})
			if err != nil {
				return historyLoadedMsg{Err: err}
			}
			rounds[sess.SessionID] = recs
		}

		// Stats are optional; the list is still useful without them.
		stats, _ := repo.Stats(ctx)

		return historyLoadedMsg{Sessions: sessions, Rounds: rounds, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rounds"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.rounds = msg.Rounds
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Finish a quiz to see it here!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.stats != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render(statsLine(s.stats))))
		b.WriteString("\n\n")
	}

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := prefix + sessionLine(sess)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderRounds(s.rounds[sess.SessionID], width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderRounds(rounds []store.RoundEventRecord, width int) string {
	if len(rounds) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No rounds this session")) + "\n"
	}

	var b strings.Builder
	for _, r := range rounds {
		line := fmt.Sprintf("    %s  %s → %s", outcomeMark(r.Outcome), r.Question, r.Answer)
		if r.Outcome == "wrong" {
			line += fmt.Sprintf(" (you said %q)", r.Given)
		}
		if r.HintUsed {
			line += "  hint"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(outcomeColor(r.Outcome)).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func sessionLine(sess store.SessionSummaryRecord) string {
	mins := sess.DurationSecs / 60
	secs := sess.DurationSecs % 60
	return fmt.Sprintf("%s  %d:%02d  %d rounds  %.0f%% correct",
		sess.EndedAt.Format("Jan 02, 2006 15:04"), mins, secs, sess.Rounds, sess.Accuracy()*100)
}

func statsLine(st *store.Stats) string {
	return fmt.Sprintf("%d sessions  %d rounds  %.0f%% correct  best streak %d",
		st.Sessions, st.Rounds, st.Accuracy()*100, st.BestStreak)
}

func outcomeMark(outcome string) string {
	switch outcome {
	case "correct":
		return "✓"
	case "wrong":
		return "✗"
	case "timeout":
		return "⏳"
	default:
		return "»"
	}
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case "correct":
		return theme.Success
	case "wrong":
		return theme.Error
	case "timeout":
		return theme.Warning
	default:
		return theme.TextDim
	}
}
