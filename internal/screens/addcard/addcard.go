// Package addcard is the two-step prompt that appends a card to the deck.
package addcard

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// CardAddedMsg is sent after a card has been written to the deck file.
type CardAddedMsg struct {
	Card cards.Card
}

type step int

const (
	stepQuestion step = iota
	stepAnswer
)

const inputLimit = 200

// AddCardScreen asks for a question, then an answer, then appends the pair.
// An empty entry at either step cancels without writing.
type AddCardScreen struct {
	store    *cards.Store
	log      *zap.Logger
	step     step
	question string
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*AddCardScreen)(nil)
var _ screen.KeyHintProvider = (*AddCardScreen)(nil)

// New creates the prompt. A nil log discards messages.
func New(store *cards.Store, log *zap.Logger) *AddCardScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &AddCardScreen{
		store: store,
		log:   log,
		input: components.NewTextInput("Enter the question", inputLimit),
	}
}

func (s *AddCardScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AddCardScreen) Title() string {
	return "New Flashcard"
}

func (s *AddCardScreen) KeyHints() []layout.KeyHint {
	next := "Next"
	if s.step == stepAnswer {
		next = "Save"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *AddCardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok && msg.String() == "enter" {
		return s.handleEnter()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AddCardScreen) handleEnter() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return s, pop
	}

	if s.step == stepQuestion {
		s.question = value
		s.step = stepAnswer
		s.input = components.NewTextInput("Enter the answer", inputLimit)
		return s, s.input.Init()
	}

	err := s.store.Append(s.question, value)
	var verr *cards.ValidationError
	switch {
	case errors.As(err, &verr):
		return s, pop
	case err != nil:
		s.log.Error("append card", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}

	card := cards.Card{Question: s.question, Answer: value}
	s.log.Info("card added", zap.String("question", card.Question))
	return s, tea.Batch(pop, func() tea.Msg { return CardAddedMsg{Card: card} })
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (s *AddCardScreen) View(width, height int) string {
	prompt := "Enter the question:"
	if s.step == stepAnswer {
		prompt = "Enter the answer:"
	}

	lines := []string{theme.Title.Render("New Flashcard"), ""}
	if s.step == stepAnswer {
		lines = append(lines, theme.Hint.Render("Q: "+s.question), "")
	}
	lines = append(lines, theme.Body.Render(prompt), s.input.View())
	if s.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	cw := components.ContentWidth(width)
	box := theme.Card.Width(cw).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
