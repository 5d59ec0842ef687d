package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screen"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/components"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/layout"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// Actions are delivered to the screen below the summary after it pops.
// A nil action disables its key.
type Actions struct {
	Restart tea.Cmd
	Next    tea.Cmd
}

// SummaryScreen displays the end-of-lesson report.
type SummaryScreen struct {
	summary session.Summary
	awards  []gems.GemAward
	actions Actions
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum session.Summary, awards []gems.GemAward, actions Actions) *SummaryScreen {
	return &SummaryScreen{summary: sum, awards: awards, actions: actions}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.actions.Restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry lesson"})
	}
	if s.actions.Next != nil {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "New lesson"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		return s, s.back(s.actions.Restart)
	case "n", "N":
		return s, s.back(s.actions.Next)
	}
	return s, nil
}

// back pops the summary, then runs action on the screen underneath.
func (s *SummaryScreen) back(action tea.Cmd) tea.Cmd {
	if action == nil {
		return nil
	}
	return tea.Sequence(func() tea.Msg { return router.PopScreenMsg{} }, action)
}

func headline(p session.Phase) (string, lipgloss.Style) {
	if p == session.PhaseFailed {
		return "Out of lives!", lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	return "Lesson complete!", lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	title, titleStyle := headline(sum.Phase)
	b.WriteString(center(titleStyle, title))
	b.WriteString("\n")
	if sum.LessonTitle != "" {
		b.WriteString(center(dim, sum.LessonTitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(dim, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	card := text.Render(strings.Join([]string{
		fmt.Sprintf("Solved: %d/%d    Accuracy: %d%%", sum.Solved, sum.ExerciseCount, sum.AccuracyPercent),
		fmt.Sprintf("Answers: %d/%d correct    Score: %d", sum.CorrectCount, sum.TotalCount, sum.LessonScore),
		fmt.Sprintf("Best streak: %d    Hints: %d", sum.BestStreak, sum.HintsUsed),
	}, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(card, components.ContentWidth(width))))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
		fmt.Sprintf("⭐ +%d XP", sum.XP)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Hearts(sum.LivesLeft, sum.MaxLives)))
	b.WriteString("\n")

	if len(s.awards) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("Gems")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, gem := range s.awards {
			line := fmt.Sprintf("  %s %s %s Gem: %s",
				gem.Type.Icon(),
				gem.Rarity.DisplayName(),
				gem.Type.DisplayName(),
				gem.Reason)
			style := lipgloss.NewStyle().Foreground(components.RarityColor(gem.Rarity))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
