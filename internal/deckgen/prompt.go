package deckgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write flashcards for a typed-answer quiz.

Rules:
- Each card is one question and one short answer.
- The learner types the answer and it is compared ignoring case and surrounding spaces, so answers must be short and unambiguous: a name, a number, a word or a short phrase.
- No multiple choice, no "true or false", no explanations in the answer.
- Questions must be self-contained and fit on one line.
- Use plain text. No markdown, no numbering.
- Never repeat a question from the "already in the deck" list.`

// buildUserMessage renders the request. Only the most recent max existing
// questions are quoted.
func buildUserMessage(in Input, max int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	fmt.Fprintf(&b, "Number of cards: %d\n", in.Count)
	b.WriteString("\nAlready in the deck:\n")

	existing := in.Existing
	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}
	if len(existing) == 0 {
		b.WriteString("None")
	}
	for i, c := range existing {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, c.Question)
	}
	return b.String()
}
