package quiz

import "testing"

func TestRevealCount(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"4", 1},
		{"Paris", 1},
		{"Jupiter", 2},
		{"Rome", 1},
		{"a b c d e f", 2},
		{"a b c", 1},
		{"Zürich", 2},
	}

	for _, tt := range tests {
		if got := RevealCount(tt.answer); got != tt.want {
			t.Errorf("RevealCount(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestMaskAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		reveal int
		want   string
	}{
		{"single char", "4", 1, "4"},
		{"short word", "Paris", 1, "P____"},
		{"long word", "Jupiter", 2, "Ju_____"},
		{"multi word", "Guido van Rossum", 2, "Gu___ ___ ______"},
		{"leading space", " ab", 1, " a_"},
		{"reveal spans words", "a bc", 2, "a b_"},
		{"tab kept", "ab\tcd", 1, "a_\t__"},
		{"unicode", "Zürich", 2, "Zü____"},
		{"empty", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskAnswer(tt.answer, tt.reveal)
			if got != tt.want {
				t.Errorf("MaskAnswer(%q, %d) = %q, want %q", tt.answer, tt.reveal, got, tt.want)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"Paris", "P____"},
		{"Jupiter", "Ju_____"},
		{"Guido van Rossum", "Gu___ ___ ______"},
	}

	for _, tt := range tests {
		if got := Hint(tt.answer); got != tt.want {
			t.Errorf("Hint(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}
