// Package flow maps screen signals to navigation between the named screens
// of a session: landing, scan, profile, matching and matches.
package flow

import (
	"errors"
	"fmt"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screen"
)

// Name identifies a screen in the flow.
type Name string

const (
	Landing  Name = "landing"
	Scan     Name = "scan"
	Profile  Name = "profile"
	Matching Name = "matching"
	Matches  Name = "matches"
)

var (
	// ErrUnknownScreen is returned when no factory is registered for a name.
	ErrUnknownScreen = errors.New("flow: unknown screen")
	// ErrInvalidTransition is returned for a move the flow does not allow.
	ErrInvalidTransition = errors.New("flow: invalid transition")
	// ErrNoSubmission is returned when a screen needs a finished profile
	// before the wizard has produced one.
	ErrNoSubmission = errors.New("flow: no submission")
)

// transitions lists the screens reachable from each screen.
var transitions = map[Name][]Name{
	Landing:  {Scan},
	Scan:     {Profile, Landing},
	Profile:  {Matching, Scan},
	Matching: {Matches, Profile},
	Matches:  {Landing},
}

// Allowed reports whether the flow may move from one screen to another.
func Allowed(from, to Name) bool {
	return slices.Contains(transitions[from], to)
}

// Submission is a finished profile handed over by the wizard.
type Submission struct {
	ID          uuid.UUID
	Draft       profile.Draft
	SubmittedAt time.Time
}

// NewSubmission tags d with a fresh id.
func NewSubmission(d profile.Draft, at time.Time) Submission {
	return Submission{ID: uuid.New(), Draft: d.Clone(), SubmittedAt: at}
}

// UserName returns the name to show for the submitting user.
func (s Submission) UserName() string {
	return s.Draft.Name
}

// WizardFinishedMsg is sent by the profile screen on its terminal advance.
type WizardFinishedMsg struct {
	Submission Submission
}

// ProgressCompletedMsg is sent by the matching screen once the simulated
// computation has completed.
type ProgressCompletedMsg struct{}

// NavigateMsg requests a move to a named screen.
type NavigateMsg struct {
	To Name
}

// Navigate returns a command requesting a move to name.
func Navigate(name Name) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: name} }
}

// WizardFinished returns a command carrying d as a new submission.
func WizardFinished(d profile.Draft) tea.Cmd {
	sub := NewSubmission(d, time.Now())
	return func() tea.Msg { return WizardFinishedMsg{Submission: sub} }
}

// ProgressCompleted returns a command signalling the matching run is done.
func ProgressCompleted() tea.Cmd {
	return func() tea.Msg { return ProgressCompletedMsg{} }
}

// Session is the state screens are built from.
type Session struct {
	// Prefill seeds the wizard when set.
	Prefill *profile.Draft
	// Submission is set once the wizard has finished.
	Submission *Submission
}

// Factory builds the screen for a name from the current session.
type Factory func(Session) (screen.Screen, error)

// Flow tracks the current screen and session and turns signals into
// router messages.
type Flow struct {
	factories map[Name]Factory
	current   Name
	prefill   *profile.Draft
	session   Session
}

// New creates a flow positioned at Landing.
func New(factories map[Name]Factory, prefill *profile.Draft) *Flow {
	f := &Flow{factories: factories, current: Landing, prefill: prefill}
	f.session = f.freshSession()
	return f
}

func (f *Flow) freshSession() Session {
	s := Session{}
	if f.prefill != nil {
		d := f.prefill.Clone()
		s.Prefill = &d
	}
	return s
}

// Current returns the screen the flow is on.
func (f *Flow) Current() Name {
	return f.current
}

// Session returns the current session.
func (f *Flow) Session() Session {
	return f.session
}

// Start builds the landing screen.
func (f *Flow) Start() (screen.Screen, error) {
	f.current = Landing
	return f.build(Landing)
}

func (f *Flow) build(name Name) (screen.Screen, error) {
	factory, ok := f.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, name)
	}
	return factory(f.session)
}

// Go moves to name and returns the router message that mounts it.
// Moving to Landing starts a new session and clears the screen stack.
func (f *Flow) Go(name Name) (tea.Msg, error) {
	if !Allowed(f.current, name) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.current, name)
	}

	prevSession := f.session
	if name == Landing {
		f.session = f.freshSession()
	}

	s, err := f.build(name)
	if err != nil {
		f.session = prevSession
		return nil, err
	}

	logger.Info("flow: %s -> %s", f.current, name)
	f.current = name
	if name == Landing {
		return router.ResetScreenMsg{Screen: s}, nil
	}
	return router.ReplaceScreenMsg{Screen: s}, nil
}

// Update handles flow signals. It reports false for messages the flow
// does not own so the caller can pass them on.
func (f *Flow) Update(msg tea.Msg) (tea.Cmd, bool) {
	var (
		next tea.Msg
		err  error
	)
	switch msg := msg.(type) {
	case WizardFinishedMsg:
		sub := msg.Submission
		prev := f.session.Submission
		f.session.Submission = &sub
		if next, err = f.Go(Matching); err != nil {
			f.session.Submission = prev
			break
		}
		logger.Info("flow: submission %s for %q", sub.ID, sub.Draft.DisplayName())
	case ProgressCompletedMsg:
		next, err = f.Go(Matches)
	case NavigateMsg:
		next, err = f.Go(msg.To)
	default:
		return nil, false
	}

	if err != nil {
		logger.Warn("flow: %v", err)
		return nil, true
	}
	return func() tea.Msg { return next }, true
}
