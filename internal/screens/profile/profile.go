package profile

import (
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/logger"
	prof "github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/components"
	"github.com/abhisek/xoxo/internal/wizard"
)

// focusButtons is the focus slot after the last field of a step.
const focusButtons = "buttons"

// Options configures a ProfileScreen.
type Options struct {
	// Draft seeds the wizard. Nil starts from an empty draft.
	Draft *prof.Draft
	// Step resumes the wizard at this step when Draft is set.
	Step int
	// Strict refuses to advance past a step with validation problems.
	Strict bool
}

// ProfileScreen walks the user through the three-step profile wizard.
type ProfileScreen struct {
	wiz *wizard.Controller

	name      components.TextInput
	age       components.TextInput
	bio       components.TextInput
	gender    components.Choice
	looking   components.Choice
	interests components.Chips
	sliders   map[string]*components.Slider

	focus    int
	problems []prof.Problem
	err      string
	finished bool
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(opts Options) *ProfileScreen {
	var wopts []wizard.Option
	if opts.Strict {
		wopts = append(wopts, wizard.WithStrictAdvance())
	}
	if opts.Draft != nil {
		wopts = append(wopts, wizard.WithDraft(*opts.Draft))
	}
	wiz := wizard.New(wopts...)
	if opts.Draft != nil && opts.Step > 1 {
		if err := wiz.Resume(*opts.Draft, opts.Step); err != nil {
			logger.Warn("profile: cannot resume at step %d: %v", opts.Step, err)
		}
	}

	p := &ProfileScreen{
		wiz:  wiz,
		name: components.NewTextInput("Your Name", "Enter your name", false, 40),
		age:  components.NewTextInput("Your Age", "Enter your age", true, 3),
		bio:  components.NewTextInput("About You", "Tell us about yourself...", false, 280),
		gender: components.NewChoice("Gender",
			[]string{"Male", "Female", "Other"},
			[]string{string(prof.GenderMale), string(prof.GenderFemale), string(prof.GenderOther)}),
		looking: components.NewChoice("Looking For",
			[]string{"Men", "Women", "Both"},
			[]string{string(prof.LookingForMen), string(prof.LookingForWomen), string(prof.LookingForBoth)}),
		interests: components.NewChips("Your Interests", prof.Catalog()),
		sliders: map[string]*components.Slider{
			prof.FieldImportanceOfHumor:  ptr(components.NewSlider("How important is sense of humor to you?", prof.DefaultImportance, 30)),
			prof.FieldImportanceOfLooks:  ptr(components.NewSlider("How important are looks to you?", prof.DefaultImportance, 30)),
			prof.FieldImportanceOfValues: ptr(components.NewSlider("How important are shared values to you?", prof.DefaultImportance, 30)),
		},
	}
	p.loadDraft()
	p.applyFocus()
	return p
}

func ptr[T any](v T) *T { return &v }

// loadDraft copies the controller's draft into the widgets.
func (p *ProfileScreen) loadDraft() {
	d := p.wiz.Draft()
	p.name.SetValue(d.Name)
	if d.Age > 0 {
		p.age.SetValue(strconv.Itoa(d.Age))
	} else {
		p.age.SetValue("")
	}
	p.bio.SetValue(d.Bio)
	p.gender.Select(string(d.Gender))
	p.looking.Select(string(d.LookingFor))
	p.interests.On = d.Interests
	p.sliders[prof.FieldImportanceOfHumor].Value = d.ImportanceOfHumor
	p.sliders[prof.FieldImportanceOfLooks].Value = d.ImportanceOfLooks
	p.sliders[prof.FieldImportanceOfValues].Value = d.ImportanceOfValues
}

func (p *ProfileScreen) Init() tea.Cmd {
	return p.applyFocus()
}

func (p *ProfileScreen) Title() string {
	return "Create Your Profile"
}

// Wizard exposes the underlying controller.
func (p *ProfileScreen) Wizard() *wizard.Controller {
	return p.wiz
}

// slots returns the focus order for the current step.
func (p *ProfileScreen) slots() []string {
	fields, _ := wizard.FieldsFor(p.wiz.Step().Index)
	return append(fields, focusButtons)
}

// Focused returns the name of the focused slot.
func (p *ProfileScreen) Focused() string {
	slots := p.slots()
	return slots[min(p.focus, len(slots)-1)]
}

func (p *ProfileScreen) applyFocus() tea.Cmd {
	p.name.Blur()
	p.age.Blur()
	p.bio.Blur()
	p.gender.Focused = false
	p.looking.Focused = false
	p.interests.Focused = false
	for _, s := range p.sliders {
		s.Focused = false
	}

	switch f := p.Focused(); f {
	case prof.FieldName:
		return p.name.Focus()
	case prof.FieldAge:
		return p.age.Focus()
	case prof.FieldBio:
		return p.bio.Focus()
	case prof.FieldGender:
		p.gender.Focused = true
	case prof.FieldLookingFor:
		p.looking.Focused = true
	case prof.FieldInterests:
		p.interests.Focused = true
	default:
		if s, ok := p.sliders[f]; ok {
			s.Focused = true
		}
	}
	return nil
}

func (p *ProfileScreen) moveFocus(delta int) tea.Cmd {
	n := len(p.slots())
	p.focus = (p.focus + delta + n) % n
	return p.applyFocus()
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bioEditedMsg:
		return p, p.handleBioEdited(msg)

	case tea.KeyPressMsg:
		if p.finished {
			return p, nil
		}
		switch msg.String() {
		case "tab", "down":
			return p, p.moveFocus(1)
		case "shift+tab", "up":
			return p, p.moveFocus(-1)
		case "enter":
			return p, p.advance()
		case "esc":
			return p, p.retreat()
		case "ctrl+e":
			if p.wiz.Step().Index == 2 {
				return p, p.openEditor()
			}
			return p, nil
		}
	}

	return p, p.updateFocused(msg)
}

// updateFocused routes msg to the focused widget and copies any change
// into the draft.
func (p *ProfileScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f := p.Focused(); f {
	case prof.FieldName:
		before := p.name.Value()
		if p.name, cmd = p.name.Update(msg); p.name.Value() != before {
			p.setField(f, p.name.Value())
		}
	case prof.FieldAge:
		before := p.age.Value()
		if p.age, cmd = p.age.Update(msg); p.age.Value() != before {
			p.setField(f, p.age.Value())
		}
	case prof.FieldBio:
		before := p.bio.Value()
		if p.bio, cmd = p.bio.Update(msg); p.bio.Value() != before {
			p.setField(f, p.bio.Value())
		}
	case prof.FieldGender:
		var changed bool
		if p.gender, changed = p.gender.Update(msg); changed {
			p.setField(f, p.gender.Value())
		}
	case prof.FieldLookingFor:
		var changed bool
		if p.looking, changed = p.looking.Update(msg); changed {
			p.setField(f, p.looking.Value())
		}
	case prof.FieldInterests:
		var tag string
		if p.interests, tag = p.interests.Update(msg); tag != "" {
			if err := p.wiz.ToggleInterest(tag); err != nil {
				p.err = err.Error()
			}
			p.interests.On = p.wiz.Draft().Interests
		}
	default:
		if s, ok := p.sliders[f]; ok {
			updated, changed := s.Update(msg)
			*s = updated
			if changed {
				p.setField(f, s.Value)
			}
		}
	}
	return cmd
}

func (p *ProfileScreen) setField(name string, value any) {
	if err := p.wiz.SetField(name, value); err != nil {
		var ive *prof.InvalidValueError
		if errors.As(err, &ive) {
			p.err = ive.Error()
		} else {
			p.err = err.Error()
		}
		logger.Debug("profile: %v", err)
		return
	}
	p.err = ""
	p.clearProblem(name)
}

func (p *ProfileScreen) clearProblem(field string) {
	out := p.problems[:0]
	for _, pr := range p.problems {
		if pr.Field != field {
			out = append(out, pr)
		}
	}
	p.problems = out
}

// Problem returns the recorded problem for field, if any.
func (p *ProfileScreen) Problem(field string) string {
	for _, pr := range p.problems {
		if pr.Field == field {
			return pr.Message
		}
	}
	return ""
}

func (p *ProfileScreen) advance() tea.Cmd {
	res := p.wiz.Advance()
	if res.Blocked {
		p.problems = res.Problems
		logger.Debug("profile: step %d blocked by %d problem(s)", res.Step.Index, len(res.Problems))
		return nil
	}
	p.problems = nil
	if res.Terminal {
		p.finished = true
		logger.Info("profile: wizard finished for %q", res.Draft.DisplayName())
		return flow.WizardFinished(res.Draft)
	}
	p.focus = 0
	return p.applyFocus()
}

func (p *ProfileScreen) retreat() tea.Cmd {
	if p.wiz.Step().Index == 1 {
		return flow.Navigate(flow.Scan)
	}
	p.wiz.Retreat()
	p.problems = nil
	p.focus = 0
	return p.applyFocus()
}
