package quiz

import (
	"fmt"
	"time"

	"github.com/abhisek/flashdeck/internal/cards"
)

// Phase is where the controller is in the round lifecycle.
type Phase int

const (
	PhaseEmpty    Phase = iota // No cards to ask
	PhaseAwaiting              // Between rounds
	PhaseActive                // Waiting for an answer, controls enabled
	PhaseResolved              // Feedback showing, next card scheduled
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseActive:
		return "active"
	case PhaseResolved:
		return "resolved"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Outcome is how a round was resolved.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeTimeout Outcome = "timeout"
	OutcomeSkipped Outcome = "skipped"
)

// FeedbackKind classifies the message shown under the question.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackTimeout
	FeedbackSkipped
	FeedbackHint
)

// Feedback is the result line rendered below the input.
type Feedback struct {
	Kind FeedbackKind
	Text string
}

func feedbackFor(outcome Outcome, answer string) Feedback {
	switch outcome {
	case OutcomeCorrect:
		return Feedback{Kind: FeedbackCorrect, Text: "Correct!"}
	case OutcomeWrong:
		return Feedback{Kind: FeedbackWrong, Text: "Wrong! Correct: " + answer}
	case OutcomeTimeout:
		return Feedback{Kind: FeedbackTimeout, Text: "Time's up! Correct: " + answer}
	case OutcomeSkipped:
		return Feedback{Kind: FeedbackSkipped, Text: "Skipped! Correct: " + answer}
	}
	return Feedback{}
}

// RoundResult describes one resolved round.
type RoundResult struct {
	Round    uint64
	Card     cards.Card
	Given    string
	Outcome  Outcome
	HintUsed bool
	Elapsed  time.Duration
}

// CycleResult is reported when every card has been shown once.
type CycleResult struct {
	Score  int
	Streak int
	Total  int
}

// Recorder receives round and cycle outcomes, e.g. to persist history.
type Recorder interface {
	RecordRound(RoundResult)
	RecordCycle(CycleResult)
}

// Config holds the round timing parameters.
type Config struct {
	// TimeLimit is the countdown budget per round, in ticks.
	TimeLimit int

	// TickInterval is the length of one countdown tick.
	TickInterval time.Duration

	// Delays before the next card after each kind of resolution.
	CorrectDelay time.Duration
	WrongDelay   time.Duration
	TimeoutDelay time.Duration
	SkipDelay    time.Duration
}

// DefaultConfig returns the standard 15 second round with the usual
// feedback pauses.
func DefaultConfig() Config {
	return Config{
		TimeLimit:    15,
		TickInterval: time.Second,
		CorrectDelay: 1000 * time.Millisecond,
		WrongDelay:   1000 * time.Millisecond,
		TimeoutDelay: 1800 * time.Millisecond,
		SkipDelay:    800 * time.Millisecond,
	}
}

func (c Config) delayFor(o Outcome) time.Duration {
	switch o {
	case OutcomeCorrect:
		return c.CorrectDelay
	case OutcomeWrong:
		return c.WrongDelay
	case OutcomeTimeout:
		return c.TimeoutDelay
	default:
		return c.SkipDelay
	}
}

// View is a read-only copy of the controller state for rendering.
type View struct {
	Phase           Phase
	Round           uint64
	Question        string
	ControlsEnabled bool
	Score           int
	Streak          int
	Used            int
	Total           int
	Remaining       int
	Budget          int
	Expired         bool
	Feedback        Feedback
	Finished        *CycleResult
}

// Progress returns the share of the deck shown this cycle, in [0, 1].
func (v View) Progress() float64 {
	if v.Total == 0 {
		return 0
	}
	p := float64(v.Used) / float64(v.Total)
	if p > 1 {
		return 1
	}
	return p
}

// TimeFraction returns remaining/budget, in [0, 1].
func (v View) TimeFraction() float64 {
	if v.Budget <= 0 || v.Remaining <= 0 {
		return 0
	}
	return float64(v.Remaining) / float64(v.Budget)
}
