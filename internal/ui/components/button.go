package components

import (
	"strings"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Button is one on-screen control, e.g. "[Enter] Submit". A disabled
// button is drawn dimmed.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// NewButton creates a button.
func NewButton(key, label string, enabled bool) Button {
	return Button{Key: key, Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = b.View()
	}
	return strings.Join(parts, " ")
}
