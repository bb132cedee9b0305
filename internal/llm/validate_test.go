package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func cardSchema() *Schema {
	return &Schema{
		Name: "test-cards",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cards": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string", "minLength": 1},
							"answer":   map[string]any{"type": "string", "minLength": 1},
						},
						"required":             []any{"question", "answer"},
						"additionalProperties": false,
					},
				},
			},
			"required": []any{"cards"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid", `{"cards":[{"question":"Q","answer":"A"}]}`, true},
		{"empty list", `{"cards":[]}`, false},
		{"missing answer", `{"cards":[{"question":"Q"}]}`, false},
		{"extra field", `{"cards":[{"question":"Q","answer":"A","hint":"h"}]}`, false},
		{"empty question", `{"cards":[{"question":"","answer":"A"}]}`, false},
		{"not json", `cards: Q`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(cardSchema(), json.RawMessage(tt.raw))
			if tt.ok {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("content not preserved: %s", inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := cardSchema()
	a, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Fatal("expected cached schema to be reused")
	}
}
