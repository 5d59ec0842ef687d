package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/layout"
)

// Screen is one page on the router stack: welcome, home, a practice
// session, its summary, history or the gem vault. The app frame draws
// the header and footer around View.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into the area between header and footer.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider replaces the default footer hints (navigate, select,
// back) with screen-specific keys, e.g. hint and skip during a lesson.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher reloads data when the screen is uncovered again, so the home
// and history screens reflect a lesson that was just finished.
type Refresher interface {
	Refresh() tea.Cmd
}
