package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/quiz"
)

// writeTimeout bounds each history write made from the UI loop.
const writeTimeout = 2 * time.Second

// Recorder persists quiz outcomes for one session. Write failures are
// logged and swallowed so a broken history database never stops a quiz.
type Recorder struct {
	repo      EventRepo
	sessionID string
	log       *zap.Logger
	now       func() time.Time

	started time.Time
	rounds  int
	correct int
}

var _ quiz.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder writing under sessionID.
func NewRecorder(repo EventRepo, sessionID string, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{
		repo:      repo,
		sessionID: sessionID,
		log:       log.With(zap.String("session_id", sessionID)),
		now:       time.Now,
	}
}

// SessionID returns the id every event is written under.
func (r *Recorder) SessionID() string { return r.sessionID }

// Start records the session start.
func (r *Recorder) Start(deckPath string, deckSize int) {
	r.started = r.now()
	r.write("session start", func(ctx context.Context) error {
		return r.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: r.sessionID,
			Action:    "start",
			DeckPath:  deckPath,
			DeckSize:  deckSize,
		})
	})
}

// End records the session end with the totals seen since Start.
func (r *Recorder) End(deckPath string, deckSize int) {
	var secs int
	if !r.started.IsZero() {
		secs = int(r.now().Sub(r.started).Seconds())
	}
	r.write("session end", func(ctx context.Context) error {
		return r.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:    r.sessionID,
			Action:       "end",
			DeckPath:     deckPath,
			DeckSize:     deckSize,
			Rounds:       r.rounds,
			Correct:      r.correct,
			DurationSecs: secs,
		})
	})
}

func (r *Recorder) RecordRound(res quiz.RoundResult) {
	r.rounds++
	if res.Outcome == quiz.OutcomeCorrect {
		r.correct++
	}
	r.write("round", func(ctx context.Context) error {
		return r.repo.AppendRoundEvent(ctx, RoundEventData{
			SessionID: r.sessionID,
			Round:     res.Round,
			Question:  res.Card.Question,
			Answer:    res.Card.Answer,
			Given:     res.Given,
			Outcome:   string(res.Outcome),
			HintUsed:  res.HintUsed,
			ElapsedMs: res.Elapsed.Milliseconds(),
		})
	})
}

func (r *Recorder) RecordCycle(res quiz.CycleResult) {
	r.write("cycle", func(ctx context.Context) error {
		return r.repo.AppendCycleEvent(ctx, CycleEventData{
			SessionID: r.sessionID,
			Score:     res.Score,
			Streak:    res.Streak,
			Total:     res.Total,
		})
	})
}

func (r *Recorder) write(what string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		r.log.Warn("history write failed", zap.String("event", what), zap.Error(err))
	}
}
