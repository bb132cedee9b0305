package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendCycleEvent(ctx context.Context, data CycleEventData) error {
	err := r.insert(ctx, tableCycleEvents,
		[]string{"session_id", "score", "streak", "total"},
		[]any{data.SessionID, data.Score, data.Streak, data.Total},
	)
	if err != nil {
		return fmt.Errorf("save cycle event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCycleEvents(ctx context.Context, opts QueryOpts) ([]CycleEventRecord, error) {
	b := r.builder()
	sel := b.Select("sequence", "ts", "session_id", "score", "streak", "total").
		From(b.Table(tableCycleEvents))
	applyOpts(sel, opts)

	var out []CycleEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec CycleEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Score, &rec.Streak, &rec.Total); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query cycle events: %w", err)
	}
	return out, nil
}
