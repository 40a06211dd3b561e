package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

// SliderStep is how far one key press moves a slider.
const SliderStep = 5

// Slider picks an integer in [0,100].
type Slider struct {
	Label   string
	Value   int
	Width   int
	Focused bool
}

// NewSlider creates a slider at value.
func NewSlider(label string, value, width int) Slider {
	return Slider{Label: label, Value: value, Width: width}
}

// Update handles left/right (by SliderStep) and home/end. It reports
// whether the value changed.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	if !s.Focused {
		return s, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, false
	}

	old := s.Value
	switch kmsg.String() {
	case "left", "h":
		s.Value -= SliderStep
	case "right", "l":
		s.Value += SliderStep
	case "home":
		s.Value = 0
	case "end":
		s.Value = 100
	}
	s.Value = min(max(s.Value, 0), 100)
	return s, s.Value != old
}

// View renders the label, a track with a knob and the numeric value.
func (s Slider) View() string {
	label := theme.Unselected.Render(s.Label)
	if s.Focused {
		label = theme.Label.Render(s.Label)
	}

	track := s.Width
	if track < 10 {
		track = 10
	}
	pos := (track - 1) * s.Value / 100
	bar := theme.Selected.Render(strings.Repeat("━", pos)) +
		theme.Label.Render("●") +
		theme.Disabled.Render(strings.Repeat("─", track-1-pos))

	return label + "\n" + bar + " " + theme.Body.Render(fmt.Sprintf("%3d", s.Value))
}
