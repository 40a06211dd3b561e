package profile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	prof "github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/ui/components"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/theme"
	"github.com/abhisek/xoxo/internal/wizard"
)

var stepTitles = [wizard.TotalSteps]string{"Basic Info", "About You", "Preferences"}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
	switch p.Focused() {
	case prof.FieldGender, prof.FieldLookingFor, prof.FieldInterests:
		hints = append(hints, layout.KeyHint{Key: "←→ Space", Description: "Choose"})
	case prof.FieldImportanceOfHumor, prof.FieldImportanceOfLooks, prof.FieldImportanceOfValues:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Adjust"})
	}
	if p.wiz.Step().Index == 2 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Edit bio in $EDITOR"})
	}
	return hints
}

func (p *ProfileScreen) View(width, height int) string {
	step := p.wiz.Step()
	cw := min(width-4, 64)

	var sections []string
	sections = append(sections, theme.Title.Render("Create Your Profile"))
	sections = append(sections, renderStepper(step))
	sections = append(sections, theme.Subtitle.Render(stepTitles[step.Index-1]), "")

	fields, _ := wizard.FieldsFor(step.Index)
	for _, f := range fields {
		sections = append(sections, p.fieldView(f))
		if msg := p.Problem(f); msg != "" {
			sections = append(sections, theme.ErrorText.Render("✗ "+msg))
		}
		sections = append(sections, "")
	}

	if p.err != "" {
		sections = append(sections, theme.ErrorText.Render(p.err), "")
	}

	nextLabel := "Next →"
	if step.IsTerminal() {
		nextLabel = "Find Matches ♥"
	}
	buttons := components.BackNextButtons(step.Index > 1, p.Focused() == focusButtons, nextLabel)
	if p.Incomplete() {
		buttons[1].State = components.ButtonDisabled
		sections = append(sections, theme.Hint.Render(StrictHint), "")
	}
	sections = append(sections, components.NewButtonBar(buttons, cw).View())

	card := theme.Card.Width(cw).Render(strings.Join(sections, "\n"))
	return layout.Center(card, width, height)
}

// StrictHint is shown while strict mode holds the wizard on an incomplete step.
const StrictHint = "Complete this step to continue"

// Incomplete reports whether strict mode would refuse to advance now.
func (p *ProfileScreen) Incomplete() bool {
	return p.wiz.Strict() && !p.wiz.StepState().Valid()
}

func (p *ProfileScreen) fieldView(f string) string {
	switch f {
	case prof.FieldName:
		return p.name.View()
	case prof.FieldAge:
		return p.age.View()
	case prof.FieldGender:
		return p.gender.View()
	case prof.FieldLookingFor:
		return p.looking.View()
	case prof.FieldBio:
		return p.bio.View()
	case prof.FieldInterests:
		return p.interests.View()
	}
	if s, ok := p.sliders[f]; ok {
		scale := theme.Hint.Render(fmt.Sprintf("%-20s%20s", "Not important", "Very important"))
		return s.View() + "\n" + scale
	}
	return ""
}

// renderStepper draws "Step n of 3" with one dot per step.
func renderStepper(step wizard.Step) string {
	dots := make([]string, 0, step.Total)
	for i := 1; i <= step.Total; i++ {
		if i <= step.Index {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			dots = append(dots, theme.Disabled.Render("○"))
		}
	}
	label := theme.Hint.Render(fmt.Sprintf("Step %d of %d", step.Index, step.Total))
	return strings.Join(dots, " ") + "  " + label
}
