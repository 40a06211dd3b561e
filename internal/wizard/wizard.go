package wizard

import (
	"errors"
	"fmt"

	"github.com/abhisek/xoxo/internal/profile"
)

// TotalSteps is the number of steps in the profile wizard.
const TotalSteps = 3

// ErrInvalidStepIndex is returned when a step index falls outside [1, TotalSteps].
var ErrInvalidStepIndex = errors.New("invalid step index")

// Step identifies the wizard's position.
type Step struct {
	Index int
	Total int
}

// IsTerminal reports whether this is the last step.
func (s Step) IsTerminal() bool {
	return s.Index == s.Total
}

// stepFields lists the draft fields each step collects, indexed by step-1.
var stepFields = [TotalSteps][]string{
	{profile.FieldName, profile.FieldAge, profile.FieldGender, profile.FieldLookingFor},
	{profile.FieldBio, profile.FieldInterests},
	{profile.FieldImportanceOfHumor, profile.FieldImportanceOfLooks, profile.FieldImportanceOfValues},
}

// FieldsFor returns the fields collected on the given step.
func FieldsFor(index int) ([]string, error) {
	if index < 1 || index > TotalSteps {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepIndex, index)
	}
	return append([]string(nil), stepFields[index-1]...), nil
}

// StepState is a read-only snapshot of one step.
type StepState struct {
	Step     Step
	Fields   []string
	Values   map[string]any
	Problems []profile.Problem
}

// Valid reports whether the step has no validation problems.
func (s StepState) Valid() bool {
	return len(s.Problems) == 0
}

// AdvanceResult is returned by Advance.
type AdvanceResult struct {
	// Terminal is set when Advance was called on the last step. The caller
	// should leave the wizard with Draft.
	Terminal bool
	// Blocked is set in strict mode when the current step has problems.
	Blocked  bool
	Problems []profile.Problem
	Step     Step
	Draft    profile.Draft
}

// Option configures a Controller.
type Option func(*Controller)

// WithStrictAdvance refuses to advance past a step that has validation problems.
func WithStrictAdvance() Option {
	return func(c *Controller) { c.strict = true }
}

// WithDraft starts the wizard from a prefilled draft.
func WithDraft(d profile.Draft) Option {
	return func(c *Controller) { c.draft = d.Clone() }
}

// Controller holds the draft and the current step of a wizard session.
type Controller struct {
	draft  profile.Draft
	index  int
	strict bool
}

// New creates a Controller at step 1 with an empty draft.
func New(opts ...Option) *Controller {
	c := &Controller{
		draft: profile.NewDraft(),
		index: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return Step{Index: c.index, Total: TotalSteps}
}

// Draft returns a copy of the draft collected so far.
func (c *Controller) Draft() profile.Draft {
	return c.draft.Clone()
}

// Strict reports whether advance is gated on validation.
func (c *Controller) Strict() bool {
	return c.strict
}

// SetField stores value at field name on the draft.
func (c *Controller) SetField(name string, value any) error {
	return c.draft.SetField(name, value)
}

// ToggleInterest adds or removes an interest tag.
func (c *Controller) ToggleInterest(tag string) error {
	return c.draft.ToggleInterest(tag)
}

// StepState returns a snapshot of the current step.
func (c *Controller) StepState() StepState {
	fields := stepFields[c.index-1]
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		v, _ := c.draft.Field(f)
		values[f] = v
	}
	return StepState{
		Step:     c.Step(),
		Fields:   append([]string(nil), fields...),
		Values:   values,
		Problems: c.draft.Problems(fields...),
	}
}

// Advance moves to the next step. On the last step it leaves the index
// alone and reports Terminal.
func (c *Controller) Advance() AdvanceResult {
	if c.strict {
		if problems := c.StepState().Problems; len(problems) > 0 {
			return AdvanceResult{Blocked: true, Problems: problems, Step: c.Step(), Draft: c.Draft()}
		}
	}
	if c.index < TotalSteps {
		c.index++
		return AdvanceResult{Step: c.Step(), Draft: c.Draft()}
	}
	return AdvanceResult{Terminal: true, Step: c.Step(), Draft: c.Draft()}
}

// Retreat moves to the previous step. No-op on step 1.
func (c *Controller) Retreat() Step {
	if c.index > 1 {
		c.index--
	}
	return c.Step()
}

// Resume replaces the draft and jumps to the given step.
func (c *Controller) Resume(d profile.Draft, index int) error {
	if index < 1 || index > TotalSteps {
		return fmt.Errorf("%w: %d", ErrInvalidStepIndex, index)
	}
	if err := d.Check(); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	c.draft = d.Clone()
	c.index = index
	return nil
}
