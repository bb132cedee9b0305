// Package llm talks to hosted language models on behalf of the card
// generator. Every provider returns JSON that has already been checked
// against the request schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model and returns its structured output.
type Provider interface {
	// Generate runs req. When req.Schema is set the provider asks for
	// native structured output and validates the reply before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider sends requests to.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil means free text
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// UserRequest builds a request with one user message.
func UserRequest(system, prompt string, schema *Schema, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		Schema:    schema,
		MaxTokens: maxTokens,
	}
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema a response must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "flashcard-batch". It doubles
	// as the schema cache key.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a model reply.
type Response struct {
	// Content is the validated JSON document when a schema was given,
	// otherwise the raw text.
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
