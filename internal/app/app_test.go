package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/xoxo/internal/config"
	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/progress"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screens/matches"
	"github.com/abhisek/xoxo/internal/screens/matching"
)

type nopOpener struct{}

func (nopOpener) Open(string) error { return nil }

func newTestModel(t *testing.T) (AppModel, *progress.ManualScheduler) {
	t.Helper()
	cat, err := match.Default()
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.Export.Dir = t.TempDir()
	cfg.Progress.CompletionDelay = time.Millisecond
	sched := progress.NewManualScheduler()

	m, err := NewAppModel(Options{Config: cfg, Catalog: cat, Opener: nopOpener{}, Scheduler: sched})
	require.NoError(t, err)
	t.Cleanup(m.Router().Close)
	return m, sched
}

// send feeds msg to the model. Router messages produced by the returned
// command are fed back so the screen change lands.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.ReplaceScreenMsg, router.ResetScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func completeDraft() profile.Draft {
	d := profile.NewDraft()
	d.Name = "Ana"
	d.Age = 28
	d.Gender = profile.GenderFemale
	d.LookingFor = profile.LookingForMen
	d.Bio = "Coffee first"
	return d
}

func TestFactoriesRequireCatalog(t *testing.T) {
	_, err := Factories(Options{Config: config.Defaults()})
	assert.Error(t, err)
}

func TestStartsOnLanding(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, flow.Landing, m.Flow().Current())
	assert.Equal(t, 1, m.Router().Depth())
}

func TestFullFlow(t *testing.T) {
	m, sched := newTestModel(t)

	m = send(t, m, flow.NavigateMsg{To: flow.Scan})
	assert.Equal(t, "Scan QR Code", m.Router().Active().Title())

	m = send(t, m, flow.NavigateMsg{To: flow.Profile})
	assert.Equal(t, "Create Your Profile", m.Router().Active().Title())

	m = send(t, m, flow.WizardFinishedMsg{Submission: flow.NewSubmission(completeDraft(), time.Now())})
	require.Equal(t, flow.Matching, m.Flow().Current())
	_, ok := m.Router().Active().(*matching.MatchingScreen)
	require.True(t, ok)
	require.NotNil(t, m.Flow().Session().Submission)

	sched.Advance(time.Hour) // run the simulator to completion
	assert.Equal(t, 0, sched.Pending())

	m = send(t, m, flow.ProgressCompletedMsg{})
	list, ok := m.Router().Active().(*matches.ListScreen)
	require.True(t, ok)
	assert.Contains(t, list.View(80, 30), "Curated for Ana")

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.render(), "Ana")

	m = send(t, m, flow.NavigateMsg{To: flow.Landing})
	assert.Equal(t, flow.Landing, m.Flow().Current())
	assert.Nil(t, m.Flow().Session().Submission, "start over clears the session")
	assert.Equal(t, 1, m.Router().Depth())
}

func TestInvalidTransitionIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, flow.NavigateMsg{To: flow.Matches})
	assert.Equal(t, flow.Landing, m.Flow().Current())
}

func TestBackFromMatchingResumesLastStep(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, flow.NavigateMsg{To: flow.Scan})
	m = send(t, m, flow.NavigateMsg{To: flow.Profile})
	m = send(t, m, flow.WizardFinishedMsg{Submission: flow.NewSubmission(completeDraft(), time.Now())})

	m = send(t, m, flow.NavigateMsg{To: flow.Profile})
	assert.Contains(t, m.Router().Active().View(100, 40), "Step 3 of 3")
}

func TestEscPopsPushedScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, router.PushScreenMsg{Screen: matches.NewDetail(match.Entry{Name: "Tom"}, matches.Actions{})})
	require.Equal(t, 2, m.Router().Depth())

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.Router().Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestMatchesNeedSubmission(t *testing.T) {
	cat, err := match.Default()
	require.NoError(t, err)
	cfg := config.Defaults()
	cfg.Export.Dir = t.TempDir()
	factories, err := Factories(Options{Config: cfg, Catalog: cat, Opener: nopOpener{}})
	require.NoError(t, err)

	_, err = factories[flow.Matches](flow.Session{})
	assert.ErrorIs(t, err, flow.ErrNoSubmission)

	sub := flow.NewSubmission(completeDraft(), time.Now())
	s, err := factories[flow.Matches](flow.Session{Submission: &sub})
	require.NoError(t, err)
	assert.Equal(t, "Your Matches", s.Title())
}
