package matches

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/xoxo/internal/ui/layout"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Export    key.Binding
	Mint      key.Binding
	StartOver key.Binding
	SwitchTab key.Binding
	Profile   key.Binding
	Chat      key.Binding
	Scroll    key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "Navigate")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "View")),
	Export:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Export chat")),
	Mint:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Mint Match as NFT")),
	StartOver: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Start over")),
	SwitchTab: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("Tab", "Switch tab")),
	Profile:   key.NewBinding(key.WithKeys("1")),
	Chat:      key.NewBinding(key.WithKeys("2")),
	Scroll:    key.NewBinding(key.WithHelp("↑/↓", "Scroll")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("Esc", "Back")),
}

// hints converts bindings to footer hints.
func hints(bs ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
