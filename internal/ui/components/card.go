package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the quiz sections so the
// boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// QuestionCard wraps the question text in a rounded card cw columns wide.
func QuestionCard(question string, cw int) string {
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Question.Render(question))
}
