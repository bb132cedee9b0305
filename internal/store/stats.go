package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// missedLimit caps Stats.Missed.
const missedLimit = 5

// Stats aggregates the whole history.
type Stats struct {
	Sessions   int
	Rounds     int
	Correct    int
	Wrong      int
	Timeouts   int
	Skipped    int
	HintsUsed  int
	Cycles     int
	BestScore  int
	BestStreak int
	AvgElapsed time.Duration
	Missed     []MissedQuestion // most often missed, worst first
}

// MissedQuestion counts rounds of one card that were not answered correctly.
type MissedQuestion struct {
	Question string
	Answer   string
	Misses   int
}

// Accuracy returns the share of correct rounds, in [0, 1].
func (s *Stats) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Rounds)
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	b := r.builder()

	sessions := b.Select(entsql.Count("*")).
		From(b.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "start"))
	if err := r.query(ctx, sessions, func(rows *entsql.Rows) error {
		return rows.Scan(&st.Sessions)
	}); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	outcomes := b.Select("outcome", entsql.Count("*")).
		From(b.Table(tableRoundEvents)).
		GroupBy("outcome")
	if err := r.query(ctx, outcomes, func(rows *entsql.Rows) error {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return err
		}
		st.Rounds += n
		switch outcome {
		case "correct":
			st.Correct = n
		case "wrong":
			st.Wrong = n
		case "timeout":
			st.Timeouts = n
		case "skipped":
			st.Skipped = n
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("count outcomes: %w", err)
	}

	rounds := b.Select(entsql.Sum("hint_used"), entsql.Avg("elapsed_ms")).
		From(b.Table(tableRoundEvents))
	if err := r.query(ctx, rounds, func(rows *entsql.Rows) error {
		var (
			hints   sql.NullInt64
			elapsed sql.NullFloat64
		)
		if err := rows.Scan(&hints, &elapsed); err != nil {
			return err
		}
		st.HintsUsed = int(hints.Int64)
		st.AvgElapsed = time.Duration(elapsed.Float64 * float64(time.Millisecond))
		return nil
	}); err != nil {
		return nil, fmt.Errorf("aggregate rounds: %w", err)
	}

	cycles := b.Select(entsql.Count("*"), entsql.Max("score"), entsql.Max("streak")).
		From(b.Table(tableCycleEvents))
	if err := r.query(ctx, cycles, func(rows *entsql.Rows) error {
		var score, streak sql.NullInt64
		if err := rows.Scan(&st.Cycles, &score, &streak); err != nil {
			return err
		}
		st.BestScore = int(score.Int64)
		st.BestStreak = int(streak.Int64)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("aggregate cycles: %w", err)
	}

	missed := b.Select("question", "answer", entsql.As(entsql.Count("*"), "misses")).
		From(b.Table(tableRoundEvents)).
		Where(entsql.NEQ("outcome", "correct")).
		GroupBy("question", "answer").
		OrderBy(entsql.Desc("misses"), "question").
		Limit(missedLimit)
	if err := r.query(ctx, missed, func(rows *entsql.Rows) error {
		var m MissedQuestion
		if err := rows.Scan(&m.Question, &m.Answer, &m.Misses); err != nil {
			return err
		}
		st.Missed = append(st.Missed, m)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("query missed questions: %w", err)
	}

	return st, nil
}
