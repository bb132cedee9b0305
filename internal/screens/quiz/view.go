package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/quiz"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	v := s.ctrl.Snapshot()
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.Finished != nil {
		b.WriteString(center(theme.Banner.Render(finishedText(*v.Finished))))
		b.WriteString("\n\n")
	}

	if v.Phase == quiz.PhaseEmpty {
		b.WriteString(center(theme.Card.Width(cw).Align(lipgloss.Center).Render(
			theme.Subtitle.Render("No flashcards yet.") + "\n" +
				theme.Hint.Render("Press Ctrl+O to add one."))))
		b.WriteString("\n\n")
		b.WriteString(center(s.renderButtons(v)))
		if s.notice != "" {
			b.WriteString("\n\n")
			b.WriteString(center(theme.Notice.Render(s.notice)))
		}
		return b.String()
	}

	b.WriteString(center(components.NewProgressBar(v.Used, v.Total, cw).View()))
	b.WriteString("\n\n")

	ring := components.TimerRing{Remaining: v.Remaining, Budget: v.Budget, Expired: v.Expired}
	b.WriteString(center(ring.View()))
	b.WriteString("\n\n")

	b.WriteString(center(components.QuestionCard(v.Question, cw)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Width(cw).Render(s.input.View())))
	b.WriteString("\n\n")

	if fb := renderFeedback(v.Feedback); fb != "" {
		b.WriteString(center(fb))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString(center(theme.Notice.Render(s.notice)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(s.renderButtons(v)))
	return b.String()
}

func finishedText(r quiz.CycleResult) string {
	return fmt.Sprintf("Quiz finished! Final score %d/%d, streak %d", r.Score, r.Total, r.Streak)
}

func renderFeedback(fb quiz.Feedback) string {
	switch fb.Kind {
	case quiz.FeedbackCorrect:
		return theme.Correct.Render(fb.Text)
	case quiz.FeedbackWrong:
		return theme.Incorrect.Render(fb.Text)
	case quiz.FeedbackTimeout:
		return theme.TimedOut.Render(fb.Text)
	case quiz.FeedbackSkipped:
		return theme.Skipped.Render(fb.Text)
	case quiz.FeedbackHint:
		return theme.Hint.Render(fb.Text)
	}
	return ""
}

func (s *QuizScreen) renderButtons(v quiz.View) string {
	on := v.ControlsEnabled
	buttons := []components.Button{
		components.NewButton("Enter", "Submit", on),
		components.NewButton("Tab", "Hint", on),
		components.NewButton("Ctrl+N", "Skip", on),
		components.NewButton("Ctrl+O", "Add card", true),
	}
	if s.eventRepo != nil {
		buttons = append(buttons, components.NewButton("Ctrl+R", "History", true))
	}
	return components.ButtonRow(buttons...)
}
