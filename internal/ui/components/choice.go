package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

// Choice is a single-select radio group laid out in one row.
type Choice struct {
	Label   string
	Options []string
	Values  []string
	Cursor  int
	// Chosen is the index of the selected option, or -1.
	Chosen  int
	Focused bool
}

// NewChoice creates a radio group. labels and values must have equal length.
func NewChoice(label string, labels, values []string) Choice {
	return Choice{Label: label, Options: labels, Values: values, Chosen: -1}
}

// Select marks the option whose value is v. Unknown values clear the choice.
func (c *Choice) Select(v string) {
	c.Chosen = -1
	for i, val := range c.Values {
		if val == v {
			c.Chosen = i
			c.Cursor = i
			return
		}
	}
}

// Value returns the chosen value, or "" when nothing is chosen.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Values) {
		return ""
	}
	return c.Values[c.Chosen]
}

// Update moves the cursor with left/right and chooses with space.
// It reports whether the chosen value changed.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	if !c.Focused {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		if c.Chosen != c.Cursor {
			c.Chosen = c.Cursor
			return c, true
		}
	}
	return c, false
}

// View renders the label and the options.
func (c Choice) View() string {
	label := theme.Unselected.Render(c.Label)
	if c.Focused {
		label = theme.Label.Render(c.Label)
	}

	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		mark := "○ "
		if i == c.Chosen {
			mark = "● "
		}
		style := theme.Unselected
		if c.Focused && i == c.Cursor {
			style = theme.Selected
		}
		parts = append(parts, style.Render(mark+opt))
	}
	return label + "\n" + strings.Join(parts, "   ")
}
