package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// ringCells are the ring positions on a 5x11 grid, clockwise from the top.
var ringCells = [][2]int{
	{0, 5}, {0, 7}, {1, 9}, {2, 9}, {3, 9}, {4, 7},
	{4, 5}, {4, 3}, {3, 1}, {2, 1}, {1, 1}, {0, 3},
}

const (
	ringRows = 5
	ringCols = 11
)

// TimerRing is the per-round countdown drawn as a ring of dots that empties
// clockwise, with the seconds left in the middle.
type TimerRing struct {
	Remaining int
	Budget    int
	Expired   bool
}

// Fraction returns Remaining/Budget in [0, 1].
func (t TimerRing) Fraction() float64 {
	if t.Budget <= 0 || t.Remaining <= 0 {
		return 0
	}
	return min(float64(t.Remaining)/float64(t.Budget), 1)
}

// TimerColor interpolates from red at 0 to green at 1 as "#rrgg00".
func TimerColor(frac float64) string {
	frac = min(max(frac, 0), 1)
	red := int((1 - frac) * 255)
	green := int(frac * 255)
	return fmt.Sprintf("#%02x%02x00", red, green)
}

// Lit returns how many ring cells are drawn filled.
func (t TimerRing) Lit() int {
	return int(math.Ceil(t.Fraction() * float64(len(ringCells))))
}

// View renders the ring.
func (t TimerRing) View() string {
	grid := make([][]string, ringRows)
	for r := range grid {
		grid[r] = make([]string, ringCols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	on := lipgloss.NewStyle().Foreground(lipgloss.Color(TimerColor(t.Fraction())))
	off := lipgloss.NewStyle().Foreground(theme.Border)
	lit := t.Lit()
	for i, cell := range ringCells {
		if i < lit {
			grid[cell[0]][cell[1]] = on.Render("●")
		} else {
			grid[cell[0]][cell[1]] = off.Render("○")
		}
	}

	center := fmt.Sprintf("%d", t.Remaining)
	if t.Expired {
		center = "⏳"
	}
	center = lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Width(7).Align(lipgloss.Center).Render(center)

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		if r == ringRows/2 {
			// cells 2..8 hold the label
			b.WriteString(strings.Join(row[:2], "") + center + strings.Join(row[9:], ""))
			continue
		}
		b.WriteString(strings.Join(row, ""))
	}
	return b.String()
}
