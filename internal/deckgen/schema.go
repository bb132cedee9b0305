package deckgen

import "github.com/abhisek/flashdeck/internal/llm"

// CardBatchSchema is the reply shape requested from the model.
var CardBatchSchema = &llm.Schema{
	Name:        "flashcard-batch",
	Description: "A batch of short-answer flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "A self-contained question on one line",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The exact short answer the learner must type, a few words at most",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
