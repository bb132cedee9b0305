package cards

import "strings"

// Card is a single question/answer pair read from the deck file.
type Card struct {
	Question string
	Answer   string
}

// Valid reports whether both sides of the card are non-empty after trimming.
func (c Card) Valid() bool {
	return strings.TrimSpace(c.Question) != "" && strings.TrimSpace(c.Answer) != ""
}

// DefaultCards is the sample deck written on first run.
var DefaultCards = []Card{
	{Question: "Capital of France?", Answer: "Paris"},
	{Question: "2 + 2?", Answer: "4"},
	{Question: "Python creator?", Answer: "Guido van Rossum"},
	{Question: "Largest planet?", Answer: "Jupiter"},
	{Question: "Color of the sky?", Answer: "Blue"},
}

// Header is the first row of every deck file.
var Header = []string{"Question", "Answer"}
