package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/quiz"
)

// TaskMsg delivers a scheduled controller task back to the quiz screen.
// The app routes it to the quiz even while another screen is on top.
type TaskMsg struct {
	Task quiz.Task
}

// teaScheduler turns scheduled tasks into tea.Tick commands. Commands
// queue up during an Update and are returned together by flush.
type teaScheduler struct {
	pending []tea.Cmd
	tick    func(time.Duration, quiz.Task) tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tick: tickTask}
}

func tickTask(d time.Duration, task quiz.Task) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return TaskMsg{Task: task} })
}

func (s *teaScheduler) Schedule(d time.Duration, task quiz.Task) {
	s.pending = append(s.pending, s.tick(d, task))
}

func (s *teaScheduler) flush() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
