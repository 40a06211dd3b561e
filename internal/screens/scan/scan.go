package scan

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/components"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

// DefaultDelay is how long the simulated scan takes.
const DefaultDelay = 2 * time.Second

const viewfinder = `┏━━━━━━━━━━━━━━━━━━━┓
┃                   ┃
┃                   ┃
┃       ◎ ◎ ◎       ┃
┃                   ┃
┃                   ┃
┗━━━━━━━━━━━━━━━━━━━┛`

// scanDoneMsg ends the scan started as generation gen.
type scanDoneMsg struct {
	gen int
}

// ScanScreen simulates scanning the event QR code.
type ScanScreen struct {
	menu     components.Menu
	spinner  spinner.Model
	delay    time.Duration
	scanning bool
	gen      int
	closed   bool
}

var _ screen.Screen = (*ScanScreen)(nil)

// New creates the scan screen. A non-positive delay completes the scan
// on the next update.
func New(delay time.Duration) *ScanScreen {
	s := &ScanScreen{
		delay: max(delay, 0),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Scanning", Action: s.start},
		{Label: "Skip to Profile", Action: func() tea.Cmd { return flow.Navigate(flow.Profile) }},
	})
	return s
}

func (s *ScanScreen) Init() tea.Cmd {
	return nil
}

func (s *ScanScreen) Title() string {
	return "Scan QR Code"
}

// Scanning reports whether a scan is in progress.
func (s *ScanScreen) Scanning() bool {
	return s.scanning
}

func (s *ScanScreen) start() tea.Cmd {
	if s.scanning {
		return nil
	}
	s.scanning = true
	s.gen++
	gen := s.gen
	logger.Debug("scan: started, %s", s.delay)
	return tea.Batch(
		s.spinner.Tick,
		tea.Tick(s.delay, func(time.Time) tea.Msg { return scanDoneMsg{gen: gen} }),
	)
}

func (s *ScanScreen) stop() {
	s.scanning = false
	s.gen++
}

func (s *ScanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		if s.closed || !s.scanning || msg.gen != s.gen {
			return s, nil
		}
		s.scanning = false
		logger.Info("scan: complete")
		return s, flow.Navigate(flow.Profile)

	case spinner.TickMsg:
		if !s.scanning {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			if s.scanning {
				s.stop()
				logger.Debug("scan: cancelled")
				return s, nil
			}
			return s, flow.Navigate(flow.Landing)
		}
		if s.scanning {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Close drops any scan still in flight.
func (s *ScanScreen) Close() {
	s.closed = true
	if s.scanning {
		s.stop()
	}
}

func (s *ScanScreen) KeyHints() []layout.KeyHint {
	if s.scanning {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel scan"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScanScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Foreground(theme.Accent).Render(viewfinder)

	var status string
	if s.scanning {
		status = s.spinner.View() + " " + theme.Body.Render("Scanning...")
	} else {
		status = theme.Hint.Render("Position QR code in frame")
	}

	sections := []string{frame, "", status, ""}
	if !s.scanning {
		sections = append(sections, s.menu.View())
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}
