package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// MultiChoice is a single-choice selector for fill-in-the-blank options.
type MultiChoice struct {
	Options  []string
	Selected int

	// Chosen is the index of the last submitted option, or -1.
	Chosen  int
	Correct bool
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1}
}

// Update handles arrow navigation and number shortcuts. Pressing a number
// only moves the selection; enter is handled by the screen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "right", "tab":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
		}
	}
	return m, nil
}

// Value returns the selected option, or "" when there are none.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Mark records the verdict of the submitted selection.
func (m *MultiChoice) Mark(correct bool) {
	m.Chosen = m.Selected
	m.Correct = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.Chosen && m.Correct:
			style = theme.Correct
		case i == m.Chosen:
			style = theme.Incorrect
		case i == m.Selected:
			style = theme.Selected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
