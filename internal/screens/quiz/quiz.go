// Package quiz is the main quiz screen. It owns the quiz controller and
// feeds it keys and timer ticks from the Bubble Tea loop.
package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
	"github.com/abhisek/flashdeck/internal/quiz"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/addcard"
	"github.com/abhisek/flashdeck/internal/screens/history"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

const answerLimit = 120

// QuizScreen implements screen.Screen for the running quiz.
type QuizScreen struct {
	ctrl      *quiz.Controller
	sched     *teaScheduler
	deck      *cards.Store
	eventRepo store.EventRepo
	log       *zap.Logger
	keys      keyMap
	input     components.TextInput
	round     uint64
	notice    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)

// New creates the quiz over collection, which was loaded from deck.
// eventRepo may be nil, which disables the history screen. The first round
// starts in Init.
func New(deck *cards.Store, collection []cards.Card, cfg quiz.Config, eventRepo store.EventRepo, log *zap.Logger, opts ...quiz.Option) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	sched := newTeaScheduler()
	opts = append([]quiz.Option{quiz.WithLogger(log)}, opts...)
	return &QuizScreen{
		ctrl:      quiz.NewController(collection, sched, cfg, opts...),
		sched:     sched,
		deck:      deck,
		eventRepo: eventRepo,
		log:       log,
		keys:      defaultKeyMap(),
		input:     components.NewTextInput("Type your answer...", answerLimit),
	}
}

// Controller exposes the quiz state, e.g. for the header.
func (s *QuizScreen) Controller() *quiz.Controller { return s.ctrl }

// Scoreboard returns the header figures.
func (s *QuizScreen) Scoreboard() layout.Scoreboard {
	v := s.ctrl.Snapshot()
	return layout.Scoreboard{Score: v.Score, Total: v.Total, Streak: v.Streak}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Advance()
	return tea.Batch(s.input.Init(), s.sync())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	bindings := []key.Binding{s.keys.Submit, s.keys.Hint, s.keys.Skip, s.keys.Add}
	if s.eventRepo != nil {
		bindings = append(bindings, s.keys.History)
	}
	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Resume refocuses the answer box after a pushed screen closes.
func (s *QuizScreen) Resume() tea.Cmd {
	if s.ctrl.Phase() == quiz.PhaseActive {
		return s.input.Focus()
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case TaskMsg:
		s.ctrl.Run(msg.Task)
		return s, s.sync()

	case addcard.CardAddedMsg:
		return s.handleCardAdded()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == quiz.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Submit):
		if !s.ctrl.SubmitAnswer(s.input.Value()) {
			return s, nil
		}
		s.input.Submit(s.ctrl.Snapshot().Feedback.Kind == quiz.FeedbackCorrect)
		return s, s.sync()

	case key.Matches(msg, s.keys.Hint):
		s.ctrl.RequestHint()
		return s, nil

	case key.Matches(msg, s.keys.Skip):
		if s.ctrl.Skip() {
			s.input.Disable()
		}
		return s, s.sync()

	case key.Matches(msg, s.keys.Add):
		add := addcard.New(s.deck, s.log)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: add} }

	case key.Matches(msg, s.keys.History):
		if s.eventRepo == nil {
			return s, nil
		}
		h := history.New(s.eventRepo)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	}

	if s.ctrl.Phase() != quiz.PhaseActive {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleCardAdded() (screen.Screen, tea.Cmd) {
	collection, err := s.deck.Load()
	if err != nil {
		s.log.Error("reload deck", zap.Error(err))
		s.notice = "Could not reload flashcards: " + err.Error()
		return s, nil
	}
	s.ctrl.Reload(collection)
	cmd := s.sync()
	s.notice = "New flashcard added!"
	return s, cmd
}

// sync brings the input in line with the controller after a state change
// and returns the timers scheduled meanwhile.
func (s *QuizScreen) sync() tea.Cmd {
	v := s.ctrl.Snapshot()
	var cmds []tea.Cmd
	if v.Round != s.round {
		s.round = v.Round
		s.notice = ""
		cmds = append(cmds, s.input.Reset())
	}
	if !v.ControlsEnabled {
		s.input.Disable()
	}
	cmds = append(cmds, s.sched.flush())
	return tea.Batch(cmds...)
}
