package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/abhisek/flashdeck/internal/store"
)

type recordingSink struct {
	events []store.LLMRequestEventData
	err    error
}

func (s *recordingSink) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	s.events = append(s.events, d)
	return s.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	sink := &recordingSink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"cards":[]}`),
		Usage:   newUsage(11, 7),
	})
	p := WithLogging(mock, ProviderMock, sink, nil)

	ctx := WithPurpose(context.Background(), "deck-generate")
	if _, err := p.Generate(ctx, UserRequest("be brief", "three cards", cardSchema(), 64)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Provider != "mock" || ev.Model != "mock" || ev.Purpose != "deck-generate" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 11 || ev.OutputTokens != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	for _, part := range []string{"[system]\nbe brief", "[user]\nthree cards", "[schema: test-cards]"} {
		if !strings.Contains(ev.RequestBody, part) {
			t.Errorf("request body missing %q:\n%s", part, ev.RequestBody)
		}
	}
	if ev.ResponseBody != `{"cards":[]}` {
		t.Fatalf("unexpected response body %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Err: &ErrRequestRejected{Status: 401, Err: errors.New("bad key")}})
	p := WithLogging(mock, ProviderAnthropic, sink, nil)

	_, err := p.Generate(context.Background(), UserRequest("", "x", nil, 8))
	var rej *ErrRequestRejected
	if !errors.As(err, &rej) {
		t.Fatalf("expected provider error to pass through, got %v", err)
	}
	ev := sink.events[0]
	if ev.Success || ev.Purpose != "unknown" || !strings.Contains(ev.ErrorMessage, "bad key") {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, &recordingSink{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}
	if _, err := NewProvider(context.Background(), DefaultConfig(), nil, nil); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c, ok := LookupCost("gpt-4o-mini")
	if !ok {
		t.Fatal("expected gpt-4o-mini to be priced")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("cost = %v", got)
	}
	if _, ok := LookupCost("google/gemini-2.5-flash"); !ok {
		t.Fatal("expected vendor prefix to be stripped")
	}
	if _, ok := LookupCost("mock"); ok {
		t.Fatal("mock should be unpriced")
	}
}
