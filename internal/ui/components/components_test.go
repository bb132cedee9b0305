package components

import (
	"strings"
	"testing"
)

func TestTimerColor(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{1, "#00ff00"},
		{0, "#ff0000"},
		{0.5, "#7f7f00"},
		{2, "#00ff00"},
		{-1, "#ff0000"},
	}
	for _, tt := range tests {
		if got := TimerColor(tt.frac); got != tt.want {
			t.Errorf("TimerColor(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}
}

func TestTimerRing_Lit(t *testing.T) {
	tests := []struct {
		ring TimerRing
		want int
	}{
		{TimerRing{Remaining: 15, Budget: 15}, 12},
		{TimerRing{Remaining: 1, Budget: 15}, 1},
		{TimerRing{Remaining: 0, Budget: 15, Expired: true}, 0},
		{TimerRing{Remaining: 5, Budget: 10}, 6},
		{TimerRing{Remaining: 3, Budget: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.ring.Lit(); got != tt.want {
			t.Errorf("%+v: lit = %d, want %d", tt.ring, got, tt.want)
		}
	}
}

func TestTimerRing_View(t *testing.T) {
	v := TimerRing{Remaining: 9, Budget: 15}.View()
	if got := strings.Count(v, "\n"); got != ringRows-1 {
		t.Fatalf("expected %d rows, got %d", ringRows, got+1)
	}
	if !strings.Contains(v, "9") {
		t.Fatalf("seconds missing:\n%s", v)
	}
	if strings.Count(v, "●")+strings.Count(v, "○") != len(ringCells) {
		t.Fatalf("unexpected cell count:\n%s", v)
	}

	expired := TimerRing{Budget: 15, Expired: true}.View()
	if !strings.Contains(expired, "⏳") || strings.Contains(expired, "●") {
		t.Fatalf("unexpected expired ring:\n%s", expired)
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(2, 5, 40)
	if p.Fraction() != 0.4 {
		t.Fatalf("fraction = %v", p.Fraction())
	}
	if !strings.Contains(p.View(), "2/5") {
		t.Fatalf("counter missing: %q", p.View())
	}
	if NewProgressBar(3, 0, 40).Fraction() != 0 {
		t.Fatal("empty deck should be 0")
	}
	if NewProgressBar(9, 5, 40).Fraction() != 1 {
		t.Fatal("fraction should clamp to 1")
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(NewButton("Enter", "Submit", true), NewButton("Tab", "Hint", false))
	for _, want := range []string{"[Enter] Submit", "[Tab] Hint"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q: %q", want, row)
		}
	}
}
