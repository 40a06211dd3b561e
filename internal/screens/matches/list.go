package matches

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/flow"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

// PendingLine is shown in place of a provisional match's details.
const PendingLine = "AI agents are having a conversation..."

// Options configures the list screen.
type Options struct {
	Catalog *match.Catalog
	Actions Actions

	// Now defaults to time.Now.
	Now func() time.Time
}

// revealMsg fires when a pending entry's delay has elapsed.
type revealMsg struct {
	id int
}

// ListScreen shows every match with its compatibility score.
type ListScreen struct {
	entries []match.Entry
	actions Actions
	now     func() time.Time
	opened  time.Time

	cursor  int
	spinner spinner.Model
	status  status
	closed  bool
}

var _ screen.Screen = (*ListScreen)(nil)

// NewList creates the match list. Pending delays count from creation.
func NewList(opts Options) *ListScreen {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var entries []match.Entry
	if opts.Catalog != nil {
		entries = opts.Catalog.Entries()
	}
	return &ListScreen{
		entries: entries,
		actions: opts.Actions,
		now:     now,
		opened:  now(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (l *ListScreen) Title() string {
	return "Your Matches"
}

func (l *ListScreen) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range l.entries {
		if e.PendingFor <= 0 {
			continue
		}
		id := e.ID
		cmds = append(cmds, tea.Tick(e.PendingFor, func(time.Time) tea.Msg { return revealMsg{id: id} }))
	}
	if len(cmds) == 0 {
		return nil
	}
	logger.Debug("matches: %d pending entries", len(cmds))
	cmds = append(cmds, l.spinner.Tick)
	return tea.Batch(cmds...)
}

// Pending reports whether entry i is still provisional.
func (l *ListScreen) Pending(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	return l.entries[i].Pending(l.now().Sub(l.opened))
}

func (l *ListScreen) anyPending() bool {
	for i := range l.entries {
		if l.Pending(i) {
			return true
		}
	}
	return false
}

// Cursor returns the highlighted index.
func (l *ListScreen) Cursor() int {
	return l.cursor
}

// Selected returns the highlighted entry.
func (l *ListScreen) Selected() (match.Entry, bool) {
	if l.cursor < 0 || l.cursor >= len(l.entries) {
		return match.Entry{}, false
	}
	return l.entries[l.cursor], true
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if l.closed {
		return l, nil
	}
	if st, ok := statusFor(msg); ok {
		l.status = st
		return l, nil
	}

	switch msg := msg.(type) {
	case revealMsg:
		logger.Info("matches: entry %d revealed", msg.id)
		return l, nil

	case spinner.TickMsg:
		if !l.anyPending() {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyPressMsg:
		return l, l.handleKey(msg)
	}
	return l, nil
}

func (l *ListScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
		return nil
	case key.Matches(msg, keys.Down):
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		}
		return nil
	case key.Matches(msg, keys.StartOver):
		return flow.Navigate(flow.Landing)
	}

	e, ok := l.Selected()
	if !ok {
		return nil
	}
	if !key.Matches(msg, keys.Open, keys.Export, keys.Mint) {
		return nil
	}
	if l.Pending(l.cursor) {
		l.status = status{text: e.Name + " is still chatting, check back soon.", err: true}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Open):
		detail := NewDetail(e, l.actions)
		return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
	case key.Matches(msg, keys.Export):
		return l.actions.exportTranscript(e)
	default:
		return l.actions.openMarketplace(e)
	}
}

// Close stops pending reveals from updating the screen.
func (l *ListScreen) Close() {
	l.closed = true
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return hints(keys.Up, keys.Open, keys.Export, keys.Mint, keys.StartOver)
}

func (l *ListScreen) View(width, height int) string {
	var b strings.Builder
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	b.WriteString(theme.Title.Render("Your Matches"))
	b.WriteString("\n")
	if l.actions.UserName != "" && !compact {
		b.WriteString(theme.Subtitle.Render("Curated for " + l.actions.UserName))
		b.WriteString("\n")
	}
	if !compact {
		b.WriteString("\n")
	}

	if len(l.entries) == 0 {
		b.WriteString(theme.Hint.Render("No matches yet."))
	}

	rowWidth := min(max(width-8, 30), 60)
	for i, e := range l.entries {
		b.WriteString(l.renderRow(i, e, rowWidth))
		b.WriteString("\n")
	}

	if st := l.status.View(); st != "" {
		b.WriteString("\n")
		b.WriteString(st)
	}
	return layout.Center(b.String(), width, height)
}

func (l *ListScreen) renderRow(i int, e match.Entry, width int) string {
	prefix := "    "
	nameStyle := theme.Unselected
	if i == l.cursor {
		prefix = "  ▸ "
		nameStyle = theme.Selected
	}

	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d%%", e.Compatibility))
	if !l.Pending(i) {
		heart := lipgloss.NewStyle().Foreground(theme.Primary).Render("♥")
		line := prefix + nameStyle.Render(e.Name) + " " + heart + " " + score
		return lipgloss.NewStyle().Width(width).Render(line)
	}

	line := prefix + nameStyle.Render(e.Name) + " " + score + "\n" +
		"      " + l.spinner.View() + " " + theme.Hint.Render(PendingLine)
	return lipgloss.NewStyle().Width(width).Render(line)
}
