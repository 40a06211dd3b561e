package flow

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screen"
)

// stubScreen records the session it was built from.
type stubScreen struct {
	name    Name
	session Session
}

func (s *stubScreen) Init() tea.Cmd                            { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return string(s.name) }
func (s *stubScreen) Title() string                           { return string(s.name) }

func stubFactories() map[Name]Factory {
	m := make(map[Name]Factory)
	for _, n := range []Name{Landing, Scan, Profile, Matching, Matches} {
		m[n] = func(s Session) (screen.Screen, error) {
			return &stubScreen{name: n, session: s}, nil
		}
	}
	return m
}

// mounted runs cmd and returns the screen carried by the router message.
func mounted(t *testing.T, cmd tea.Cmd) *stubScreen {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case router.ReplaceScreenMsg:
		return msg.Screen.(*stubScreen)
	case router.ResetScreenMsg:
		return msg.Screen.(*stubScreen)
	default:
		t.Fatalf("expected a router message, got %T", msg)
		return nil
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		from, to Name
		ok       bool
	}{
		{Landing, Scan, true},
		{Scan, Profile, true},
		{Profile, Matching, true},
		{Matching, Matches, true},
		{Matches, Landing, true},
		{Landing, Matches, false},
		{Scan, Matching, false},
		{Matches, Profile, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, Allowed(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestHappyPath(t *testing.T) {
	f := New(stubFactories(), nil)
	s, err := f.Start()
	require.NoError(t, err)
	assert.Equal(t, Landing, s.(*stubScreen).name)

	cmd, ok := f.Update(NavigateMsg{To: Scan})
	require.True(t, ok)
	assert.Equal(t, Scan, mounted(t, cmd).name)

	cmd, _ = f.Update(NavigateMsg{To: Profile})
	assert.Equal(t, Profile, mounted(t, cmd).name)

	d := profile.NewDraft()
	d.Name = "Ana"
	finished := WizardFinished(d)().(WizardFinishedMsg)
	cmd, _ = f.Update(finished)
	matching := mounted(t, cmd)
	assert.Equal(t, Matching, matching.name)
	require.NotNil(t, matching.session.Submission)
	assert.Equal(t, "Ana", matching.session.Submission.UserName())
	assert.NotEqual(t, uuid.Nil, matching.session.Submission.ID)

	cmd, _ = f.Update(ProgressCompletedMsg{})
	matches := mounted(t, cmd)
	assert.Equal(t, Matches, matches.name)
	assert.Equal(t, finished.Submission.ID, matches.session.Submission.ID)
	assert.Equal(t, Matches, f.Current())
}

func TestStartOverResetsSession(t *testing.T) {
	f := New(stubFactories(), nil)
	f.current = Profile
	cmd, _ := f.Update(WizardFinishedMsg{Submission: NewSubmission(profile.NewDraft(), time.Now())})
	mounted(t, cmd)
	cmd, _ = f.Update(ProgressCompletedMsg{})
	mounted(t, cmd)

	cmd, _ = f.Update(NavigateMsg{To: Landing})
	require.NotNil(t, cmd)
	msg := cmd()
	reset, ok := msg.(router.ResetScreenMsg)
	require.True(t, ok, "start over must clear the screen stack, got %T", msg)
	assert.Nil(t, reset.Screen.(*stubScreen).session.Submission)
	assert.Nil(t, f.Session().Submission)
	assert.Equal(t, Landing, f.Current())
}

func TestPrefillCopiedPerSession(t *testing.T) {
	prefill := profile.NewDraft()
	prefill.Name = "Ana"
	f := New(stubFactories(), &prefill)
	prefill.Name = "changed"

	require.NotNil(t, f.Session().Prefill)
	assert.Equal(t, "Ana", f.Session().Prefill.Name)
}

func TestInvalidTransitionIgnored(t *testing.T) {
	f := New(stubFactories(), nil)
	cmd, ok := f.Update(ProgressCompletedMsg{})
	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, Landing, f.Current())

	_, err := f.Go(Matches)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUnknownScreen(t *testing.T) {
	f := New(map[Name]Factory{}, nil)
	_, err := f.Start()
	assert.ErrorIs(t, err, ErrUnknownScreen)

	_, err = f.Go(Scan)
	assert.ErrorIs(t, err, ErrUnknownScreen)
	assert.Equal(t, Landing, f.Current())
}

func TestForeignMessagesPassThrough(t *testing.T) {
	f := New(stubFactories(), nil)
	cmd, ok := f.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestNewSubmissionCopiesDraft(t *testing.T) {
	d := profile.NewDraft()
	require.NoError(t, d.ToggleInterest(profile.InterestMusic))
	at := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)

	sub := NewSubmission(d, at)
	require.NoError(t, d.ToggleInterest(profile.InterestCoffee))

	assert.Equal(t, at, sub.SubmittedAt)
	assert.Equal(t, []string{"music"}, sub.Draft.Interests)
}

func TestRejectedSubmissionKeepsLiveOne(t *testing.T) {
	f := New(stubFactories(), nil)
	f.current = Profile
	first := NewSubmission(profile.NewDraft(), time.Now())
	cmd, _ := f.Update(WizardFinishedMsg{Submission: first})
	mounted(t, cmd)
	require.Equal(t, Matching, f.Current())

	stray := NewSubmission(profile.NewDraft(), time.Now())
	cmd, handled := f.Update(WizardFinishedMsg{Submission: stray})
	assert.True(t, handled)
	assert.Nil(t, cmd, "matching -> matching is not a transition")
	require.NotNil(t, f.Session().Submission)
	assert.Equal(t, first.ID, f.Session().Submission.ID)
}
