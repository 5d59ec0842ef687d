package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// Hearts renders remaining lives as filled and empty hearts.
func Hearts(lives, maxLives int) string {
	lives = min(max(lives, 0), maxLives)
	return lipgloss.NewStyle().Foreground(theme.Heart).Render(strings.Repeat("♥", lives)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("♡", maxLives-lives))
}

// StatusBar renders lives, XP and the current streak on one line of the
// given width.
func StatusBar(st session.State, width int) string {
	left := Hearts(st.Lives, st.MaxLives)

	right := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("⭐ %d XP", st.XP))
	if st.Streak > 1 {
		streak := fmt.Sprintf("🔥 %d", st.Streak)
		if hint := gems.StreakHint(st.Streak); hint != "" && width >= 60 {
			streak += " (" + hint + ")"
		}
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(streak) + "  " + right
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
