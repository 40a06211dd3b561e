package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/components"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 500 * time.Millisecond
	totalDur     = 1200 * time.Millisecond
)

const Tagline = "JOIN THE DATING SIMULATION"

// heart frames pulse beside the banner
var heartFrames = []string{"♥", "♡"}

type tickMsg time.Time

// LandingScreen reveals the banner and then offers to start scanning.
type LandingScreen struct {
	menu      components.Menu
	elapsed   time.Duration
	tickCount int
	closed    bool
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the landing screen.
func New() *LandingScreen {
	items := []components.MenuItem{
		{Label: "Scan QR Code", Action: func() tea.Cmd { return flow.Navigate(flow.Scan) }},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &LandingScreen{menu: components.NewMenu(items)}
}

func (l *LandingScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LandingScreen) Init() tea.Cmd {
	return tick()
}

// Revealed reports whether the intro animation has finished.
func (l *LandingScreen) Revealed() bool {
	return l.elapsed >= totalDur
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if l.closed {
			return l, nil
		}
		if l.elapsed < totalDur {
			l.elapsed += tickInterval
		}
		l.tickCount++
		return l, tick()

	case tea.KeyPressMsg:
		// The first key press during the intro only skips it.
		if !l.Revealed() {
			l.elapsed = totalDur
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

// Close stops the heart animation.
func (l *LandingScreen) Close() {
	l.closed = true
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	if !l.Revealed() {
		return []layout.KeyHint{{Key: "any key", Description: "Skip"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) View(width, height int) string {
	heart := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(heartFrames[l.tickCount%len(heartFrames)])

	sections := []string{heart + "  " + heart + "  " + heart}

	if l.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(Tagline))
	}

	if l.Revealed() {
		sections = append(sections, "")
		if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
			sections = append(sections, RenderQR(), "")
		}
		sections = append(sections, l.menu.View())
	}

	return layout.Center(strings.Join(sections, "\n"), width, height)
}
