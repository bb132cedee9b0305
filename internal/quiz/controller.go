package quiz

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
)

// Controller drives the quiz rounds. All methods must be called from a
// single goroutine; deferred work goes through the Scheduler and comes back
// through Run.
type Controller struct {
	cfg      Config
	deck     []cards.Card
	session  *Session
	sched    Scheduler
	recorder Recorder
	rng      *rand.Rand
	log      *zap.Logger
	now      func() time.Time

	phase      Phase
	card       cards.Card
	remaining  int
	expired    bool
	feedback   Feedback
	hintUsed   bool
	roundStart time.Time
	finished   *CycleResult
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to pick cards.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithRecorder registers a recorder for round and cycle results.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger for round transitions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock overrides the wall clock used to time answers.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a controller over deck. No round is started until
// Advance is called.
func NewController(deck []cards.Card, sched Scheduler, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		deck:    deck,
		session: NewSession(),
		sched:   sched,
		log:     zap.NewNop(),
		now:     time.Now,
		phase:   PhaseAwaiting,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(deck) == 0 {
		c.phase = PhaseEmpty
	}
	return c
}

// Session exposes the session bookkeeping for inspection.
func (c *Controller) Session() *Session { return c.session }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Deck returns the loaded collection.
func (c *Controller) Deck() []cards.Card { return c.deck }

// Current returns the card of the live round.
func (c *Controller) Current() (cards.Card, bool) {
	_, ok := c.session.Current()
	return c.card, ok
}

// Advance starts the next round with a card picked uniformly at random from
// those not yet shown this cycle. When the cycle is exhausted the result is
// reported, the session is reset and a fresh round begins.
func (c *Controller) Advance() {
	c.finished = nil

	if len(c.deck) == 0 {
		c.phase = PhaseEmpty
		c.feedback = Feedback{}
		c.session.current = -1
		return
	}

	idx, ok := c.pick()
	if !ok {
		c.finish()
		idx, _ = c.pick()
	}

	round := c.session.begin(idx)
	c.card = c.deck[idx]
	c.phase = PhaseActive
	c.feedback = Feedback{}
	c.hintUsed = false
	c.roundStart = c.now()

	c.log.Debug("round started",
		zap.Uint64("round", round),
		zap.Int("card", idx),
		zap.Int("used", c.session.UsedCount()),
		zap.Int("total", len(c.deck)),
	)

	c.arm(round)
}

func (c *Controller) pick() (int, bool) {
	available := make([]int, 0, len(c.deck))
	for i := range c.deck {
		if !c.session.IsUsed(i) {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return 0, false
	}
	return available[c.intN(len(available))], true
}

func (c *Controller) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (c *Controller) finish() {
	result := CycleResult{
		Score:  c.session.Score(),
		Streak: c.session.Streak(),
		Total:  len(c.deck),
	}
	c.log.Info("quiz finished",
		zap.Int("score", result.Score),
		zap.Int("streak", result.Streak),
		zap.Int("total", result.Total),
	)
	if c.recorder != nil {
		c.recorder.RecordCycle(result)
	}
	c.session.resetCycle()
	c.finished = &result
}

// arm resets the countdown to the full budget for round.
func (c *Controller) arm(round uint64) {
	c.remaining = c.cfg.TimeLimit
	c.expired = false
	c.sched.Schedule(c.cfg.TickInterval, TickTask{Round: round, Remaining: c.cfg.TimeLimit - 1})
}

// Run executes a task previously handed to the Scheduler.
func (c *Controller) Run(task Task) {
	switch t := task.(type) {
	case TickTask:
		c.Tick(t.Round, t.Remaining)
	case AdvanceTask:
		c.AdvanceAfter(t.Round)
	}
}

// Tick is one countdown step. Ticks for a superseded round, or for a round
// that has already been resolved, do nothing.
func (c *Controller) Tick(round uint64, remaining int) {
	if !c.live(round) {
		return
	}
	if remaining > 0 {
		c.remaining = remaining
		c.sched.Schedule(c.cfg.TickInterval, TickTask{Round: round, Remaining: remaining - 1})
		return
	}
	c.remaining = 0
	c.expired = true
	c.OnTimeout(round)
}

// AdvanceAfter moves to the next card if round is still the resolved live
// round.
func (c *Controller) AdvanceAfter(round uint64) {
	if round != c.session.Round() || c.phase != PhaseResolved {
		return
	}
	c.Advance()
}

func (c *Controller) live(round uint64) bool {
	return round == c.session.Round() && c.phase == PhaseActive
}

// SubmitAnswer resolves the live round with the typed answer. It reports
// false when no round is accepting answers.
func (c *Controller) SubmitAnswer(text string) bool {
	if c.phase != PhaseActive {
		return false
	}
	outcome := OutcomeWrong
	if CheckAnswer(text, c.card.Answer) {
		outcome = OutcomeCorrect
	}
	c.resolve(outcome, text)
	return true
}

// Skip gives up on the live round.
func (c *Controller) Skip() bool {
	if c.phase != PhaseActive {
		return false
	}
	c.resolve(OutcomeSkipped, "")
	return true
}

// OnTimeout resolves round as timed out if it is still live.
func (c *Controller) OnTimeout(round uint64) bool {
	if !c.live(round) {
		return false
	}
	c.resolve(OutcomeTimeout, "")
	return true
}

// RequestHint shows the masked answer of the live card. It leaves score,
// streak and the round untouched.
func (c *Controller) RequestHint() (string, bool) {
	if c.phase != PhaseActive {
		return "", false
	}
	hint := Hint(c.card.Answer)
	c.hintUsed = true
	c.feedback = Feedback{Kind: FeedbackHint, Text: "Hint: " + hint}
	return hint, true
}

func (c *Controller) resolve(outcome Outcome, given string) {
	round := c.session.Round()
	c.phase = PhaseResolved

	if outcome == OutcomeCorrect {
		c.session.score++
		c.session.streak++
	} else {
		c.session.streak = 0
	}
	c.feedback = feedbackFor(outcome, c.card.Answer)

	c.log.Debug("round resolved",
		zap.Uint64("round", round),
		zap.String("outcome", string(outcome)),
		zap.Int("score", c.session.Score()),
		zap.Int("streak", c.session.Streak()),
	)

	if c.recorder != nil {
		c.recorder.RecordRound(RoundResult{
			Round:    round,
			Card:     c.card,
			Given:    given,
			Outcome:  outcome,
			HintUsed: c.hintUsed,
			Elapsed:  c.now().Sub(c.roundStart),
		})
	}

	c.sched.Schedule(c.cfg.delayFor(outcome), AdvanceTask{Round: round})
}

// Reload swaps in a freshly loaded deck, e.g. after a card was appended.
// The live round keeps its card; progress is recomputed against the new
// size.
func (c *Controller) Reload(deck []cards.Card) {
	c.deck = deck
	c.session.forget(len(deck))
	if c.phase == PhaseEmpty && len(deck) > 0 {
		c.Advance()
	}
}

// Snapshot returns the state needed to render the quiz.
func (c *Controller) Snapshot() View {
	v := View{
		Phase:           c.phase,
		Round:           c.session.Round(),
		ControlsEnabled: c.phase == PhaseActive,
		Score:           c.session.Score(),
		Streak:          c.session.Streak(),
		Used:            c.session.UsedCount(),
		Total:           len(c.deck),
		Remaining:       c.remaining,
		Budget:          c.cfg.TimeLimit,
		Expired:         c.expired,
		Feedback:        c.feedback,
		Finished:        c.finished,
	}
	if _, ok := c.session.Current(); ok {
		v.Question = c.card.Question
	}
	return v
}
