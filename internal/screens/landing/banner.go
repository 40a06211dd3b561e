package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/xoxo/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ██████╗ ██╗  ██╗ ██████╗      █████╗ ██╗
 ╚██╗██╔╝██╔═══██╗╚██╗██╔╝██╔═══██╗    ██╔══██╗██║
  ╚███╔╝ ██║   ██║ ╚███╔╝ ██║   ██║    ███████║██║
  ██╔██╗ ██║   ██║ ██╔██╗ ██║   ██║    ██╔══██║██║
 ██╔╝ ██╗╚██████╔╝██╔╝ ██╗╚██████╔╝    ██║  ██║██║
 ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝     ╚═╝  ╚═╝╚═╝`

const bannerCompact = "X O X O   A I"

// qrArt stands in for the event QR code.
const qrArt = `█▀▀▀▀▀█ ▄▀▄ █▀▀▀▀▀█
█ ███ █ ▀█▀ █ ███ █
█ ▀▀▀ █ ▄▀█ █ ▀▀▀ █
▀▀▀▀▀▀▀ █▄▀ ▀▀▀▀▀▀▀
▀█▄▀█▀▀▄▀ ▀█▄ ▀▄▀▄▀
█▀▀▀▀▀█ ▀▄█ ▄▀█▄▀█▄
█ ███ █ ▄█▀▄ ▀▄ ▀█▀
█ ▀▀▀ █ ▀▄▀██▄▀▄█▀█
▀▀▀▀▀▀▀ ▀ ▀▀ ▀ ▀▀▀▀`

// RenderBanner returns the XOXO AI banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// RenderQR returns the placeholder QR code inside a card.
func RenderQR() string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Render(qrArt)
}
