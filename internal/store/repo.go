package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are always newest first.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // only events from this session
}

// SessionEventData captures a quiz run starting or ending.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	DeckPath     string
	DeckSize     int
	Rounds       int
	Correct      int
	DurationSecs int
}

// RoundEventData captures one resolved round.
type RoundEventData struct {
	SessionID string
	Round     uint64
	Question  string
	Answer    string
	Given     string
	Outcome   string
	HintUsed  bool
	ElapsedMs int64
}

// CycleEventData captures a completed pass through the deck.
type CycleEventData struct {
	SessionID string
	Score     int
	Streak    int
	Total     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RoundEventRecord is a stored round.
type RoundEventRecord struct {
	RoundEventData
	Sequence  int64
	Timestamp time.Time
}

// CycleEventRecord is a stored cycle.
type CycleEventRecord struct {
	CycleEventData
	Sequence  int64
	Timestamp time.Time
}

// SessionSummaryRecord describes one finished quiz run.
type SessionSummaryRecord struct {
	SessionID    string
	DeckPath     string
	EndedAt      time.Time
	Rounds       int
	Correct      int
	DurationSecs int
}

// Accuracy returns the share of correct rounds, in [0, 1].
func (r SessionSummaryRecord) Accuracy() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Rounds)
}

// EventRepo provides append and query access to history events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendRoundEvent(ctx context.Context, data RoundEventData) error
	AppendCycleEvent(ctx context.Context, data CycleEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error)
	QueryCycleEvents(ctx context.Context, opts QueryOpts) ([]CycleEventRecord, error)
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// Stats aggregates every recorded round and cycle.
	Stats(ctx context.Context) (*Stats, error)

	// LLMUsage sums token usage per model.
	LLMUsage(ctx context.Context) ([]LLMUsageRecord, error)
}
