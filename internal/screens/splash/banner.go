package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbot/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗██████╗  ██████╗ ████████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔═══██╗╚══██╔══╝
 ██║   ██║██║   ██║██║  ███╔╝ ██████╔╝██║   ██║   ██║
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══██╗██║   ██║   ██║
 ╚██████╔╝╚██████╔╝██║███████╗██████╔╝╚██████╔╝   ██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝  ╚═════╝    ╚═╝`

const bannerCompact = "Q U I Z B O T"

// RenderBanner returns the QUIZBOT banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
