package deckgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/flashdeck/internal/cards"
)

// Validator checks one generated card.
type Validator interface {
	// Name identifies the validator in errors and logs.
	Name() string
	Validate(c cards.Card, in Input) *ValidationError
}

// ValidationError describes why a draft, or a request, was unusable.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether asking again is likely to help
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Length limits for generated cards, in runes.
const (
	MaxQuestionLen = 200
	MaxAnswerLen   = 80
)

// StructuralValidator rejects empty, oversized or multi-line sides and
// answers that simply restate the question.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c cards.Card, _ Input) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}
	switch {
	case !c.Valid():
		return fail("question or answer is empty")
	case utf8.RuneCountInString(c.Question) > MaxQuestionLen:
		return fail(fmt.Sprintf("question exceeds %d characters", MaxQuestionLen))
	case utf8.RuneCountInString(c.Answer) > MaxAnswerLen:
		return fail(fmt.Sprintf("answer exceeds %d characters", MaxAnswerLen))
	case strings.ContainsAny(c.Question+c.Answer, "\r\n"):
		return fail("card spans multiple lines")
	case strings.EqualFold(c.Question, c.Answer):
		return fail("answer repeats the question")
	}
	return nil
}
