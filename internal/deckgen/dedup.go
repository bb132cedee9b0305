package deckgen

import (
	"strings"

	"github.com/abhisek/flashdeck/internal/cards"
)

// questionSet holds questions folded to lower case with collapsed spaces.
type questionSet map[string]struct{}

func newQuestionSet(existing []cards.Card) questionSet {
	s := make(questionSet, len(existing))
	for _, c := range existing {
		s.add(c.Question)
	}
	return s
}

// add reports false if q was already present.
func (s questionSet) add(q string) bool {
	key := strings.ToLower(normalizeSpace(q))
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
