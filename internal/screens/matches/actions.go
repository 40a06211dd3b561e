// Package matches implements the match list and the per-match detail view.
package matches

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/export"
	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/ui/theme"
)

// Actions holds the side effects both match screens can trigger.
type Actions struct {
	UserName    string
	Transcripts *export.Transcripts
	Opener      export.Opener
}

// exportedMsg reports the outcome of a transcript export.
type exportedMsg struct {
	path string
	err  error
}

// openedMsg reports the outcome of opening a marketplace link.
type openedMsg struct {
	link string
	err  error
}

func (a Actions) exportTranscript(e match.Entry) tea.Cmd {
	if a.Transcripts == nil {
		return func() tea.Msg { return exportedMsg{err: export.ErrNoDirectory} }
	}
	t, user := a.Transcripts, a.UserName
	return func() tea.Msg {
		path, err := t.Save(e, user)
		return exportedMsg{path: path, err: err}
	}
}

func (a Actions) openMarketplace(e match.Entry) tea.Cmd {
	link := e.MarketplaceURL
	if link == "" {
		return func() tea.Msg {
			return openedMsg{err: fmt.Errorf("%s has no marketplace listing", e.Name)}
		}
	}
	if a.Opener == nil {
		return func() tea.Msg { return openedMsg{link: link, err: fmt.Errorf("no opener configured")} }
	}
	o := a.Opener
	return func() tea.Msg {
		return openedMsg{link: link, err: o.Open(link)}
	}
}

// status is the one-line feedback shown under a match screen.
type status struct {
	text string
	err  bool
}

func (s status) View() string {
	if s.text == "" {
		return ""
	}
	if s.err {
		return theme.ErrorText.Render(s.text)
	}
	return theme.SuccessText.Render(s.text)
}

// statusFor turns an action result into feedback. ok is false for messages
// that are not action results.
func statusFor(msg tea.Msg) (status, bool) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			logger.Warn("matches: export failed: %v", msg.err)
			return status{text: "Export failed: " + msg.err.Error(), err: true}, true
		}
		return status{text: "Transcript saved to " + msg.path}, true
	case openedMsg:
		if msg.err != nil {
			logger.Warn("matches: open failed: %v", msg.err)
			return status{text: "Could not open marketplace: " + msg.err.Error(), err: true}, true
		}
		return status{text: "Opened " + msg.link}, true
	}
	return status{}, false
}
