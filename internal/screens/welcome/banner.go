package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// BannerArt is the block-letter TYPORAX logo.
const BannerArt = `
 ████████╗██╗   ██╗██████╗  ██████╗ ██████╗  █████╗ ██╗  ██╗
 ╚══██╔══╝╚██╗ ██╔╝██╔══██╗██╔═══██╗██╔══██╗██╔══██╗╚██╗██╔╝
    ██║    ╚████╔╝ ██████╔╝██║   ██║██████╔╝███████║ ╚███╔╝
    ██║     ╚██╔╝  ██╔═══╝ ██║   ██║██╔══██╗██╔══██║ ██╔██╗
    ██║      ██║   ██║     ╚██████╔╝██║  ██║██║  ██║██╔╝ ██╗
    ╚═╝      ╚═╝   ╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "T Y P O R A X"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(BannerArt)
}
