package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

// Chips is a row of toggleable tags.
type Chips struct {
	Label   string
	Tags    []string
	On      []string
	Cursor  int
	Focused bool
}

// NewChips creates a chip row over tags.
func NewChips(label string, tags []string) Chips {
	return Chips{Label: label, Tags: tags}
}

// Update moves the cursor with left/right. Space returns the tag under
// the cursor so the owner can toggle it; the chip row itself only mirrors
// On.
func (c Chips) Update(msg tea.Msg) (Chips, string) {
	if !c.Focused {
		return c, ""
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, ""
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Tags)-1 {
			c.Cursor++
		}
	case "space":
		if c.Cursor >= 0 && c.Cursor < len(c.Tags) {
			return c, c.Tags[c.Cursor]
		}
	}
	return c, ""
}

// View renders the chips.
func (c Chips) View() string {
	label := theme.Unselected.Render(c.Label)
	if c.Focused {
		label = theme.Label.Render(c.Label)
	}

	parts := make([]string, 0, len(c.Tags))
	for i, tag := range c.Tags {
		style := theme.ChipOff
		if slices.Contains(c.On, tag) {
			style = theme.ChipOn
		}
		text := tag
		if c.Focused && i == c.Cursor {
			text = "▸" + tag
		}
		parts = append(parts, style.Render(text))
	}
	return label + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, " "))
}
