package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CheckAnswer compares the typed answer with the expected one, ignoring
// case and surrounding whitespace.
func CheckAnswer(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// hintThreshold is the non-space length from which two characters are revealed.
const hintThreshold = 6

// RevealCount returns how many characters a hint reveals for answer.
func RevealCount(answer string) int {
	n := utf8.RuneCountInString(answer) - strings.Count(answer, " ")
	if n >= hintThreshold {
		return 2
	}
	return 1
}

// MaskAnswer shows the first reveal non-whitespace characters of answer and
// replaces the rest with underscores. Whitespace is kept as-is.
func MaskAnswer(answer string, reveal int) string {
	var b strings.Builder
	shown := 0
	for _, r := range answer {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case shown < reveal:
			b.WriteRune(r)
			shown++
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Hint returns the masked form of answer with the standard reveal count.
func Hint(answer string) string {
	return MaskAnswer(answer, RevealCount(answer))
}
