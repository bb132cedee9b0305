// Package app wires the quiz screen, the screen router and the frame into
// the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
	"github.com/abhisek/flashdeck/internal/quiz"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/addcard"
	quizscreen "github.com/abhisek/flashdeck/internal/screens/quiz"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// Options holds the dependencies of one quiz run.
type Options struct {
	Deck       *cards.Store
	Collection []cards.Card
	Quiz       quiz.Config

	// EventRepo, when set, receives the session history and enables the
	// history screen.
	EventRepo store.EventRepo
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	quiz   *quizscreen.QuizScreen
	width  int
	height int
}

// newAppModel creates the model with the quiz as the root screen.
func newAppModel(opts Options, qopts ...quiz.Option) AppModel {
	q := quizscreen.New(opts.Deck, opts.Collection, opts.Quiz, opts.EventRepo, opts.Logger, qopts...)
	return AppModel{
		router: router.New(q),
		quiz:   q,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.quiz.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	// The countdown keeps running under pushed screens.
	case quizscreen.TaskMsg, addcard.CardAddedMsg:
		return m, m.router.UpdateRoot(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the frame, or nothing until the window size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.quiz.Scoreboard(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program and blocks until the user quits. With
// an event repository the run is recorded as one history session.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var qopts []quiz.Option
	var rec *store.Recorder
	if opts.EventRepo != nil {
		rec = store.NewRecorder(opts.EventRepo, uuid.NewString(), log)
		qopts = append(qopts, quiz.WithRecorder(rec))
	}

	m := newAppModel(opts, qopts...)
	path := opts.Deck.Path()

	if rec != nil {
		rec.Start(path, len(opts.Collection))
	}
	log.Info("quiz started", zap.String("cards", path), zap.Int("size", len(opts.Collection)))

	_, err := tea.NewProgram(m).Run()

	if rec != nil {
		rec.End(path, len(m.quiz.Controller().Deck()))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
