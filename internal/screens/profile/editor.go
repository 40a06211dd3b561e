package profile

import (
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/abhisek/xoxo/internal/logger"
	prof "github.com/abhisek/xoxo/internal/profile"
)

// bioEditedMsg carries the bio back from the external editor.
type bioEditedMsg struct {
	Content string
	Err     error
}

// openEditor writes the bio to a temp file and opens it in $EDITOR.
func (p *ProfileScreen) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "xoxo_bio_*.txt")
	if err != nil {
		p.err = "cannot open editor: " + err.Error()
		return nil
	}

	if _, err := tmpfile.WriteString(p.bio.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		p.err = "cannot open editor: " + err.Error()
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("xoxo", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		p.err = "cannot open editor: " + err.Error()
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return bioEditedMsg{Err: err}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return bioEditedMsg{Err: err}
		}
		return bioEditedMsg{Content: string(content)}
	})
}

func (p *ProfileScreen) handleBioEdited(msg bioEditedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.Warn("profile: editor: %v", msg.Err)
		p.err = "editor: " + msg.Err.Error()
		return nil
	}
	bio := strings.TrimRight(msg.Content, "\r\n")
	p.bio.SetValue(bio)
	p.setField(prof.FieldBio, bio)
	return nil
}
