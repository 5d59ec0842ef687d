package home

import (
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no streak yet
	MascotPracticing                       // streak going
	MascotCelebrating                      // week-long streak
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ a→b │
└─────┘`

const mascotPracticing = `┌─────┐
│ ◉ ◉ │ ♪
│  ◡  │
│ a→b │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ a→b │
└─╥═╥─┘
  ╚═╝`

// celebrateStreak is the day streak that earns the celebrating mascot.
const celebrateStreak = 7

func mascotFor(dayStreak int) MascotVariant {
	switch {
	case dayStreak >= celebrateStreak:
		return MascotCelebrating
	case dayStreak > 0:
		return MascotPracticing
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotPracticing:
		art, fg = mascotPracticing, theme.Secondary
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
