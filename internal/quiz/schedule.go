package quiz

import "time"

// Task is a deferred controller step. Tasks carry the round they were
// scheduled for; a task whose round is no longer live is discarded when it
// runs.
type Task interface {
	TaskRound() uint64
}

// TickTask is one step of the per-round countdown.
type TickTask struct {
	Round     uint64
	Remaining int
}

func (t TickTask) TaskRound() uint64 { return t.Round }

// AdvanceTask moves on to the next card once feedback has been shown.
type AdvanceTask struct {
	Round uint64
}

func (t AdvanceTask) TaskRound() uint64 { return t.Round }

// Scheduler defers a task by delay. Implementations deliver the task back
// to Controller.Run on the same goroutine that drives the controller.
type Scheduler interface {
	Schedule(delay time.Duration, task Task)
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(delay time.Duration, task Task)

func (f SchedulerFunc) Schedule(delay time.Duration, task Task) { f(delay, task) }
