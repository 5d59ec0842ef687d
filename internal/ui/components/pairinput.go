package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// PairInput assigns one option to each left-hand item of a matching
// exercise. Up and down choose the row, left and right cycle its option.
type PairInput struct {
	Lefts   []string
	Options []string
	Row     int

	choice []int // option index per row, -1 when unset
}

// NewPairInput creates an input with every row unset.
func NewPairInput(lefts, options []string) PairInput {
	choice := make([]int, len(lefts))
	for i := range choice {
		choice[i] = -1
	}
	return PairInput{Lefts: lefts, Options: options, choice: choice}
}

// Update handles navigation.
func (p PairInput) Update(msg tea.Msg) (PairInput, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Lefts) == 0 || len(p.Options) == 0 {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if p.Row > 0 {
			p.Row--
		}
	case "down", "j", "tab":
		if p.Row < len(p.Lefts)-1 {
			p.Row++
		}
	case "right", "l", "space":
		p.choice[p.Row] = (p.choice[p.Row] + 1) % len(p.Options)
	case "left", "h":
		c := p.choice[p.Row] - 1
		if c < 0 {
			c = len(p.Options) - 1
		}
		p.choice[p.Row] = c
	}
	return p, nil
}

// Complete reports whether every row has an option.
func (p PairInput) Complete() bool {
	for _, c := range p.choice {
		if c < 0 {
			return false
		}
	}
	return true
}

// Value encodes the assigned rows as "left=right,left=right".
func (p PairInput) Value() string {
	var parts []string
	for i, left := range p.Lefts {
		if c := p.choice[i]; c >= 0 {
			parts = append(parts, left+"="+p.Options[c])
		}
	}
	return strings.Join(parts, ",")
}

// View renders one row per left-hand item.
func (p PairInput) View() string {
	width := 0
	for _, l := range p.Lefts {
		width = max(width, lipgloss.Width(l))
	}

	var b strings.Builder
	for i, left := range p.Lefts {
		right := "?"
		if c := p.choice[i]; c >= 0 {
			right = p.Options[c]
		}
		line := fmt.Sprintf("%-*s  ↔  ‹ %s ›", width, left, right)
		if i == p.Row {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
