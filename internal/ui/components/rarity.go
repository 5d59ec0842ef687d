package components

import (
	"image/color"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// RarityColor returns the theme color for a gem rarity level.
func RarityColor(r gems.Rarity) color.Color {
	switch r {
	case gems.RarityRare:
		return theme.Secondary
	case gems.RarityEpic:
		return theme.Primary
	case gems.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
