// Package deckgen drafts new flashcards on a topic with a language model.
package deckgen

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/flashdeck/internal/cards"
	"github.com/abhisek/flashdeck/internal/llm"
)

// Input describes one generation request.
type Input struct {
	Topic string
	Count int

	// Existing cards are listed in the prompt and filtered out of the
	// reply.
	Existing []cards.Card
}

// Config controls the generator.
type Config struct {
	// Validators run on every draft in order. The first failure drops the
	// draft.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// MaxCount caps Input.Count.
	MaxCount int

	// MaxExisting is how many existing questions are quoted in the prompt.
	MaxExisting int
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}},
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxCount:    25,
		MaxExisting: 40,
	}
}

// Generator turns a topic into validated, de-duplicated cards.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for dropped drafts.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New creates a Generator over provider.
func New(provider llm.Provider, cfg Config, opts ...Option) *Generator {
	g := &Generator{provider: provider, cfg: cfg, log: zap.NewNop()}
	for _, o := range opts {
		o(g)
	}
	return g
}

type draft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type batchOutput struct {
	Cards []draft `json:"cards"`
}

// Generate asks for in.Count cards on in.Topic. Drafts failing a validator
// or repeating a question already in the deck (or earlier in the reply) are
// dropped. At most in.Count cards are returned. A reply with no usable
// draft is a *ValidationError.
func (g *Generator) Generate(ctx context.Context, in Input) ([]cards.Card, error) {
	in, err := g.normalize(in)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "deck-generate")
	req := llm.UserRequest(systemPrompt, buildUserMessage(in, g.cfg.MaxExisting), CardBatchSchema, g.cfg.MaxTokens)
	req.Temperature = g.cfg.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate cards: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse generated cards: %w", err)
	}

	seen := newQuestionSet(in.Existing)
	var (
		kept    []cards.Card
		lastErr *ValidationError
	)
	for i, d := range out.Cards {
		if len(kept) == in.Count {
			break
		}
		c := cards.Card{Question: normalizeSpace(d.Question), Answer: normalizeSpace(d.Answer)}
		if verr := g.validate(c, in); verr != nil {
			g.log.Debug("dropped draft", zap.Int("index", i), zap.String("validator", verr.Validator), zap.String("reason", verr.Message))
			lastErr = verr
			continue
		}
		if !seen.add(c.Question) {
			g.log.Debug("dropped duplicate draft", zap.Int("index", i), zap.String("question", c.Question))
			lastErr = &ValidationError{Validator: "duplicate", Message: fmt.Sprintf("%q is already in the deck", c.Question), Retryable: true}
			continue
		}
		kept = append(kept, c)
	}

	if len(kept) == 0 {
		if lastErr == nil {
			lastErr = &ValidationError{Validator: "batch", Message: "reply contained no cards", Retryable: true}
		}
		return nil, lastErr
	}
	g.log.Info("generated cards",
		zap.String("topic", in.Topic),
		zap.Int("requested", in.Count),
		zap.Int("returned", len(out.Cards)),
		zap.Int("kept", len(kept)))
	return kept, nil
}

func (g *Generator) normalize(in Input) (Input, error) {
	in.Topic = normalizeSpace(in.Topic)
	if in.Topic == "" {
		return in, &ValidationError{Validator: "input", Message: "topic is empty"}
	}
	if in.Count <= 0 {
		return in, &ValidationError{Validator: "input", Message: "count must be positive"}
	}
	if g.cfg.MaxCount > 0 && in.Count > g.cfg.MaxCount {
		in.Count = g.cfg.MaxCount
	}
	return in, nil
}

func (g *Generator) validate(c cards.Card, in Input) *ValidationError {
	for _, v := range g.cfg.Validators {
		if verr := v.Validate(c, in); verr != nil {
			return verr
		}
	}
	return nil
}
