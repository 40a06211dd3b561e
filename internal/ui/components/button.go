package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // enabled
	ButtonDisabled                    // grayed out
	ButtonFocused                     // highlighted
)

// Button is a single button in a ButtonBar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar renders a centered row of buttons.
type ButtonBar struct {
	Buttons []Button
	Width   int
}

// NewButtonBar creates a bar of the given width.
func NewButtonBar(buttons []Button, width int) ButtonBar {
	return ButtonBar{Buttons: buttons, Width: width}
}

// View renders the bar.
func (b ButtonBar) View() string {
	if len(b.Buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(b.Buttons))
	for _, btn := range b.Buttons {
		var s string
		switch btn.State {
		case ButtonDisabled:
			s = theme.ButtonDisabled.Render(btn.Label)
		case ButtonFocused:
			s = theme.ButtonActive.Render("▸ " + btn.Label)
		default:
			s = theme.ButtonInactive.Render(btn.Label)
		}
		rendered = append(rendered, s)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(rendered, "  "))
	if b.Width <= 0 {
		return row
	}
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Center, row)
}

// BackNextButtons creates the standard Back/Next pair. Back is disabled
// on the first step; focusNext highlights the forward button.
func BackNextButtons(backEnabled, focusNext bool, nextLabel string) []Button {
	back := Button{Label: "← Back", State: ButtonNormal}
	if !backEnabled {
		back.State = ButtonDisabled
	}
	next := Button{Label: nextLabel, State: ButtonNormal}
	if focusNext {
		next.State = ButtonFocused
	}
	return []Button{back, next}
}
