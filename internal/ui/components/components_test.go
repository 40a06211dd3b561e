package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Scan", Action: func() tea.Cmd { pressed = "scan"; return nil }},
		{Label: "Gone", Disabled: true},
		{Label: "Quit", Action: func() tea.Cmd { pressed = "quit"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 1, m.Selected, "cannot move onto a disabled first item")

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m.Update(key(tea.KeyEnter))
	assert.Equal(t, "quit", pressed)
	assert.Contains(t, m.View(), "▸ Quit")
}

func TestProgressBarFill(t *testing.T) {
	tests := []struct {
		value, want int
	}{
		{0, 0}, {50, 10}, {100, 20}, {140, 20}, {-5, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.value, false, 20)
		assert.Equal(t, tt.want, p.Filled(20), "value %d", tt.value)
	}
	assert.Contains(t, NewProgressBar("", 35, true, 30).View(), "35%")
}

func TestChoiceSelect(t *testing.T) {
	c := NewChoice("Gender", []string{"Male", "Female", "Other"}, []string{"male", "female", "other"})
	assert.Equal(t, "", c.Value())

	_, changed := c.Update(key(tea.KeySpace))
	assert.False(t, changed, "blurred choice ignores keys")

	c.Focused = true
	c, _ = c.Update(key(tea.KeyRight))
	c, changed = c.Update(key(tea.KeySpace))
	assert.True(t, changed)
	assert.Equal(t, "female", c.Value())

	c, changed = c.Update(key(tea.KeySpace))
	assert.False(t, changed, "choosing the same option again is not a change")

	c.Select("other")
	assert.Equal(t, "other", c.Value())
	assert.Equal(t, 2, c.Cursor)
	c.Select("nope")
	assert.Equal(t, "", c.Value())
}

func TestChipsReportToggle(t *testing.T) {
	c := NewChips("Interests", []string{"music", "movies", "coffee"})
	c.Focused = true

	c, _ = c.Update(key(tea.KeyRight))
	c, _ = c.Update(key(tea.KeyRight))
	c, _ = c.Update(key(tea.KeyRight))
	assert.Equal(t, 2, c.Cursor, "cursor stops at the last chip")

	_, tag := c.Update(key(tea.KeySpace))
	assert.Equal(t, "coffee", tag)

	c.On = []string{"coffee"}
	assert.Contains(t, c.View(), "coffee")
}

func TestSliderClamps(t *testing.T) {
	s := NewSlider("Humor", 95, 20)
	s.Focused = true

	s, changed := s.Update(key(tea.KeyRight))
	assert.True(t, changed)
	assert.Equal(t, 100, s.Value)

	s, changed = s.Update(key(tea.KeyRight))
	assert.False(t, changed)
	assert.Equal(t, 100, s.Value)

	s, _ = s.Update(key(tea.KeyHome))
	assert.Equal(t, 0, s.Value)
	s, _ = s.Update(key(tea.KeyLeft))
	assert.Equal(t, 0, s.Value)
	assert.Contains(t, s.View(), "  0")
}

func TestTextInputNumericOnly(t *testing.T) {
	in := NewTextInput("Age", "25", true, 3)
	in.Focus()

	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '8', Text: "8"})

	assert.Equal(t, "28", in.Value())
	n, err := in.NumericValue()
	assert.NoError(t, err)
	assert.Equal(t, 28, n)
}

func TestBackNextButtons(t *testing.T) {
	b := BackNextButtons(false, true, "Next →")
	assert.Equal(t, ButtonDisabled, b[0].State)
	assert.Equal(t, ButtonFocused, b[1].State)
	assert.Contains(t, NewButtonBar(b, 40).View(), "Next →")
}
