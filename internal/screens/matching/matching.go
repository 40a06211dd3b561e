package matching

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/progress"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/components"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

// DefaultCompletionDelay is the pause between reaching 100% and leaving.
const DefaultCompletionDelay = 500 * time.Millisecond

// Options configures a MatchingScreen. Zero values use the simulator
// defaults.
type Options struct {
	Step            int
	Interval        time.Duration
	CompletionDelay time.Duration
	Scheduler       progress.Scheduler
}

type progressMsg struct {
	value int
}

type simCompletedMsg struct{}

type revealMsg struct{}

// MatchingScreen animates the simulated match computation.
type MatchingScreen struct {
	opts    Options
	sim     *progress.Simulator
	events  chan tea.Msg
	spinner spinner.Model

	value     int
	completed bool
	closed    bool
	err       error
}

var _ screen.Screen = (*MatchingScreen)(nil)

// New creates the matching screen. The simulator starts in Init.
func New(opts Options) (*MatchingScreen, error) {
	simOpts := []progress.Option{}
	if opts.Step != 0 {
		simOpts = append(simOpts, progress.WithStep(opts.Step))
	}
	if opts.Interval != 0 {
		simOpts = append(simOpts, progress.WithInterval(opts.Interval))
	}
	if opts.Scheduler != nil {
		simOpts = append(simOpts, progress.WithScheduler(opts.Scheduler))
	}
	if opts.CompletionDelay < 0 {
		return nil, fmt.Errorf("completion delay must not be negative, got %s", opts.CompletionDelay)
	}

	sim, err := progress.New(simOpts...)
	if err != nil {
		return nil, err
	}

	return &MatchingScreen{
		opts:   opts,
		sim:    sim,
		events: make(chan tea.Msg, sim.TotalTicks()+1),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}, nil
}

func (m *MatchingScreen) Title() string {
	return "Finding Your Matches"
}

func (m *MatchingScreen) Init() tea.Cmd {
	events := m.events
	err := m.sim.Start(
		func(v int) { events <- progressMsg{value: v} },
		func() { events <- simCompletedMsg{} },
	)
	if err != nil {
		m.err = err
		logger.Error("matching: %v", err)
		return nil
	}
	logger.Info("matching: simulator started, %d ticks every %s", m.sim.TotalTicks(), m.sim.Interval())
	return tea.Batch(m.spinner.Tick, m.wait())
}

// wait returns a command that delivers the next simulator event.
func (m *MatchingScreen) wait() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// Value returns the last progress value shown.
func (m *MatchingScreen) Value() int {
	return m.value
}

func (m *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if m.closed {
			return m, nil
		}
		m.value = msg.value
		return m, m.wait()

	case simCompletedMsg:
		if m.closed || m.completed {
			return m, nil
		}
		m.completed = true
		logger.Info("matching: complete")
		return m, tea.Tick(m.opts.completionDelay(), func(time.Time) tea.Msg { return revealMsg{} })

	case revealMsg:
		if m.closed {
			return m, nil
		}
		return m, flow.ProgressCompleted()

	case spinner.TickMsg:
		if m.closed || m.completed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		if msg.String() == "esc" && !m.completed {
			return m, flow.Navigate(flow.Profile)
		}
	}
	return m, nil
}

func (o Options) completionDelay() time.Duration {
	if o.CompletionDelay == 0 {
		return DefaultCompletionDelay
	}
	return o.CompletionDelay
}

// Close cancels the simulator. Nothing it scheduled reaches the screen
// afterwards.
func (m *MatchingScreen) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.sim.Cancel()
	close(m.events)
	logger.Debug("matching: closed in state %s at %d%%", m.sim.State(), m.value)
}

func (m *MatchingScreen) KeyHints() []layout.KeyHint {
	if m.completed {
		return nil
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Edit profile"}}
}

func (m *MatchingScreen) View(width, height int) string {
	if m.err != nil {
		return layout.Center(theme.ErrorText.Render("Matching failed: "+m.err.Error()), width, height)
	}

	status := progress.StatusFor(m.value)
	bar := components.NewProgressBar("", m.value, false, min(width-8, 50))

	heading := theme.Title.Render("Finding Your Matches")
	if !m.completed {
		heading = m.spinner.View() + " " + heading
	}

	sections := []string{
		heading,
		"",
		bar.View(),
		theme.Body.Render(fmt.Sprintf("%d%% Complete", m.value)),
		"",
		theme.Hint.Render(status.Message()),
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}
