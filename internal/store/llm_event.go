package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// LLMUsageRecord sums the requests made to one model.
type LLMUsageRecord struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	err := r.insert(ctx, tableLLMEvents,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms",
			"success", "error_message", "request_body", "response_body"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs,
			data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody},
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRecord, error) {
	b := r.builder()
	sel := b.Select(
		"model",
		entsql.As(entsql.Count("*"), "requests"),
		entsql.As("SUM(CASE WHEN success THEN 0 ELSE 1 END)", "failures"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
	).
		From(b.Table(tableLLMEvents)).
		GroupBy("model").
		OrderBy(entsql.Desc("requests"))

	var out []LLMUsageRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var rec LLMUsageRecord
		if err := rows.Scan(&rec.Model, &rec.Requests, &rec.Failures, &rec.InputTokens, &rec.OutputTokens); err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	return out, nil
}
