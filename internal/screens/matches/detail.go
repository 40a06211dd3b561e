package matches

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/router"
	"github.com/abhisek/xoxo/internal/screen"
	"github.com/abhisek/xoxo/internal/ui/layout"
	"github.com/abhisek/xoxo/internal/ui/markdown"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

// Tab selects a detail pane.
type Tab int

const (
	TabProfile Tab = iota
	TabChat
)

func (t Tab) String() string {
	if t == TabChat {
		return "Chat"
	}
	return "Profile"
}

// DetailScreen shows one match's profile and conversation.
type DetailScreen struct {
	entry   match.Entry
	actions Actions
	tab     Tab
	chat    viewport.Model
	status  status

	// rendered profile markdown, keyed by wrap width
	profile      string
	profileWidth int
	chatWidth    int
}

var _ screen.Screen = (*DetailScreen)(nil)

// NewDetail creates the detail view for e, opened on the Profile tab.
func NewDetail(e match.Entry, actions Actions) *DetailScreen {
	return &DetailScreen{
		entry:   e,
		actions: actions,
		chat:    viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
	}
}

func (d *DetailScreen) Title() string {
	return d.entry.Name
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

// Tab returns the visible pane.
func (d *DetailScreen) Tab() Tab {
	return d.tab
}

// Entry returns the match shown.
func (d *DetailScreen) Entry() match.Entry {
	return d.entry
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if st, ok := statusFor(msg); ok {
		d.status = st
		return d, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(kmsg, keys.Back):
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, keys.SwitchTab):
		d.tab = 1 - d.tab
		return d, nil
	case key.Matches(kmsg, keys.Profile):
		d.tab = TabProfile
		return d, nil
	case key.Matches(kmsg, keys.Chat):
		d.tab = TabChat
		return d, nil
	case key.Matches(kmsg, keys.Export):
		return d, d.actions.exportTranscript(d.entry)
	case key.Matches(kmsg, keys.Mint):
		return d, d.actions.openMarketplace(d.entry)
	}

	if d.tab == TabChat {
		var cmd tea.Cmd
		d.chat, cmd = d.chat.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.tab == TabChat {
		return hints(keys.SwitchTab, keys.Scroll, keys.Export, keys.Mint, keys.Back)
	}
	return hints(keys.SwitchTab, keys.Export, keys.Mint, keys.Back)
}

func (d *DetailScreen) View(width, height int) string {
	contentWidth := min(max(width-6, 30), markdown.MaxWidth)

	var body string
	switch d.tab {
	case TabChat:
		body = d.chatView(contentWidth, max(height-8, 3))
	default:
		body = d.profileView(contentWidth)
	}

	sections := []string{d.tabBar(), "", body}
	if st := d.status.View(); st != "" {
		sections = append(sections, "", st)
	}
	pad := lipgloss.NewStyle().Padding(1, 2)
	if layout.IsCompactWidth(width) {
		pad = lipgloss.NewStyle().Padding(0, 1)
	}
	return pad.Render(strings.Join(sections, "\n"))
}

func (d *DetailScreen) tabBar() string {
	var parts []string
	for _, t := range []Tab{TabProfile, TabChat} {
		label := " " + t.String() + " "
		if t == d.tab {
			parts = append(parts, theme.ChipOn.Render(label))
		} else {
			parts = append(parts, theme.ChipOff.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (d *DetailScreen) profileView(width int) string {
	if d.profile == "" || d.profileWidth != width {
		d.profile = markdown.Render(profileMarkdown(d.entry), width)
		d.profileWidth = width
	}
	return d.profile
}

func profileMarkdown(e match.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "**%d%% compatible**\n\n", e.Compatibility)
	if e.Bio != "" {
		b.WriteString(e.Bio)
		b.WriteString("\n\n")
	}
	if len(e.Interests) > 0 {
		b.WriteString("## Interests\n\n")
		for _, tag := range e.Interests {
			fmt.Fprintf(&b, "- %s\n", tag)
		}
	}
	return b.String()
}

func (d *DetailScreen) chatView(width, height int) string {
	if d.chatWidth != width {
		d.chat.SetWidth(width)
		d.chat.SetContent(chatContent(d.entry, d.actions.UserName, width))
		d.chatWidth = width
	}
	d.chat.SetHeight(height)
	return d.chat.View()
}

func chatContent(e match.Entry, userName string, width int) string {
	if !e.HasConversation() {
		return theme.Hint.Render("No messages yet. Start the conversation!")
	}

	maxBubble := width * 3 / 4
	if layout.IsCompactWidth(width) {
		maxBubble = width
	}
	mine := lipgloss.NewStyle().Padding(0, 1).Background(theme.Primary).Foreground(theme.Text)
	theirs := lipgloss.NewStyle().Padding(0, 1).Background(theme.BgCard).Foreground(theme.Text)

	lines := make([]string, 0, len(e.Conversation))
	for _, m := range e.Conversation {
		speaker := theme.Label.Render(match.SpeakerName(e, m, userName))
		if lipgloss.Width(m.Text)+2 > maxBubble {
			mine = mine.Width(maxBubble)
			theirs = theirs.Width(maxBubble)
		} else {
			mine = mine.UnsetWidth()
			theirs = theirs.UnsetWidth()
		}
		if m.Sender == match.SenderUser {
			block := lipgloss.JoinVertical(lipgloss.Right, speaker, mine.Render(m.Text))
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, block))
		} else {
			lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, speaker, theirs.Render(m.Text)))
		}
	}
	return strings.Join(lines, "\n\n")
}
