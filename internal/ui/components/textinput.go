package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and xoxo styling.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	Problem     string
}

// NewTextInput creates a new styled text input. It starts blurred.
func NewTextInput(label, placeholder string, numericOnly bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			if kmsg.Text != "" {
				for _, r := range kmsg.Text {
					if r < '0' || r > '9' {
						return t, nil
					}
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any validation problem.
func (t TextInput) View() string {
	label := theme.Unselected.Render(t.Label)
	if t.Focused() {
		label = theme.Label.Render(t.Label)
	}
	view := label + "\n" + t.Model.View()
	if t.Problem != "" {
		view += "\n" + theme.ErrorText.Render(t.Problem)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}
