package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold timers or other resources.
// The router calls Close when the screen leaves the stack; no message the
// screen scheduled before Close should change state afterwards.
type Closer interface {
	Close()
}

// Close releases s if it implements Closer.
func Close(s Screen) {
	if c, ok := s.(Closer); ok {
		c.Close()
	}
}
