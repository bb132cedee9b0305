package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader_ShowsScoreboard(t *testing.T) {
	h := RenderHeader("Quiz", Scoreboard{Score: 3, Total: 7, Streak: 2}, 90)

	for _, want := range []string{"Flashdeck", "Quiz", "Score: 3/7", "Streak: 2 🔥"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", Scoreboard{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)

	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Fatalf("frame height = %d, want 24", h)
	}
	if !strings.Contains(frame, "Esc") || !strings.Contains(frame, "Back") {
		t.Fatalf("footer hint missing:\n%s", frame)
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{120, 23, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
