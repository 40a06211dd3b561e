package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/config"
	"github.com/abhisek/xoxo/internal/export"
	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/profile"
	"github.com/abhisek/xoxo/internal/progress"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/screens/landing"
	"github.com/abhisek/xoxo/internal/screens/matches"
	"github.com/abhisek/xoxo/internal/screens/matching"
	profilescreen "github.com/abhisek/xoxo/internal/screens/profile"
	"github.com/abhisek/xoxo/internal/screens/scan"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/wizard"
)

// Options holds everything the TUI is built from.
type Options struct {
	Config  *config.Config
	Catalog *match.Catalog
	// Prefill seeds the profile wizard on every new session.
	Prefill *profile.Draft
	// Opener defaults to the platform opener.
	Opener export.Opener
	// Scheduler overrides the matching simulator's clock.
	Scheduler progress.Scheduler
}

// Factories returns the screen constructors for every flow step.
func Factories(opts Options) (map[flow.Name]flow.Factory, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("app: no match catalog")
	}
	transcripts, err := export.NewTranscripts(cfg.Export.Dir)
	if err != nil {
		return nil, err
	}
	opener := opts.Opener
	if opener == nil {
		opener = export.NewSystemOpener()
	}

	return map[flow.Name]flow.Factory{
		flow.Landing: func(flow.Session) (screen.Screen, error) {
			return landing.New(), nil
		},
		flow.Scan: func(flow.Session) (screen.Screen, error) {
			return scan.New(cfg.Scan.Delay), nil
		},
		flow.Profile: func(s flow.Session) (screen.Screen, error) {
			po := profilescreen.Options{Draft: s.Prefill, Strict: cfg.Wizard.Strict}
			if s.Submission != nil {
				// Back from matching: reopen the submitted draft on its last step.
				d := s.Submission.Draft.Clone()
				po.Draft = &d
				po.Step = wizard.TotalSteps
			}
			return profilescreen.New(po), nil
		},
		flow.Matching: func(flow.Session) (screen.Screen, error) {
			return matching.New(matching.Options{
				Step:            cfg.Progress.Step,
				Interval:        cfg.Progress.TickInterval,
				CompletionDelay: cfg.Progress.CompletionDelay,
				Scheduler:       opts.Scheduler,
			})
		},
		flow.Matches: func(s flow.Session) (screen.Screen, error) {
			if s.Submission == nil {
				return nil, flow.ErrNoSubmission
			}
			return matches.NewList(matches.Options{
				Catalog: opts.Catalog,
				Actions: matches.Actions{UserName: s.Submission.UserName(), Transcripts: transcripts, Opener: opener},
			}), nil
		},
	}, nil
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	flow   *flow.Flow
	router *router.Router
	width  int
	height int
}

// NewAppModel builds the flow and mounts the landing screen.
func NewAppModel(opts Options) (AppModel, error) {
	factories, err := Factories(opts)
	if err != nil {
		return AppModel{}, err
	}
	f := flow.New(factories, opts.Prefill)
	first, err := f.Start()
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{flow: f, router: router.New(first)}, nil
}

// Flow returns the screen flow.
func (m AppModel) Flow() *flow.Flow {
	return m.flow
}

// Router returns the screen stack.
func (m AppModel) Router() *router.Router {
	return m.router
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	if cmd, handled := m.flow.Update(msg); handled {
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	user := ""
	if sub := m.flow.Session().Submission; sub != nil {
		user = sub.UserName()
	}

	header := layout.RenderHeader(title, user, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	final, err := p.Run()
	if am, ok := final.(AppModel); ok {
		am.router.Close()
	}
	if err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
