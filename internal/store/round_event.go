package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	err := r.insert(ctx, tableRoundEvents,
		[]string{"session_id", "round", "question", "answer", "given", "outcome", "hint_used", "elapsed_ms"},
		[]any{data.SessionID, int64(data.Round), data.Question, data.Answer, data.Given, data.Outcome, data.HintUsed, data.ElapsedMs},
	)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error) {
	b := r.builder()
	sel := b.Select("sequence", "ts", "session_id", "round", "question", "answer", "given", "outcome", "hint_used", "elapsed_ms").
		From(b.Table(tableRoundEvents))
	applyOpts(sel, opts)

	var out []RoundEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec   RoundEventRecord
			ts    int64
			round int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &round, &rec.Question, &rec.Answer,
			&rec.Given, &rec.Outcome, &rec.HintUsed, &rec.ElapsedMs); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		rec.Round = uint64(round)
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	return out, nil
}
