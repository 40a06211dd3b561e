// Package markdown renders match profiles for the terminal.
package markdown

import (
	"regexp"
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
)

// MaxWidth caps the wrap width for readability.
const MaxWidth = 100

// Render renders content with glamour's dark style, wrapped at width.
// It falls back to plain wrapped text if rendering fails.
func Render(content string, width int) string {
	width = min(max(width, 20), MaxWidth)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return Plain(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return Plain(content, width)
	}
	return trimTrailingBlank(rendered)
}

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// trimTrailingBlank drops the padding lines glamour appends after the
// document, including lines made only of styled spaces.
func trimTrailingBlank(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(sgr.ReplaceAllString(lines[len(lines)-1], "")) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Plain wraps content at width without markdown styling.
func Plain(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(content)
}
