package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "deck_path", "deck_size", "rounds", "correct", "duration_secs"},
		[]any{data.SessionID, data.Action, data.DeckPath, data.DeckSize, data.Rounds, data.Correct, data.DurationSecs},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// QuerySessionSummaries returns finished sessions, newest first.
func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	b := r.builder()
	sel := b.Select("ts", "session_id", "deck_path", "rounds", "correct", "duration_secs").
		From(b.Table(tableSessionEvents)).
		Where(entsql.EQ("action", "end"))
	applyOpts(sel, opts)

	var out []SessionSummaryRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec SessionSummaryRecord
			ts  int64
		)
		if err := rows.Scan(&ts, &rec.SessionID, &rec.DeckPath, &rec.Rounds, &rec.Correct, &rec.DurationSecs); err != nil {
			return err
		}
		rec.EndedAt = fromMillis(ts)
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return out, nil
}
