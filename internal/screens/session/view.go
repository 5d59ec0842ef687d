package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/components"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.ctrl == nil:
		return renderLoading(width)
	case s.confirmQuit:
		return renderQuitConfirm(width)
	}
	return s.renderExercise(width)
}

func centered(width int, fg lipgloss.Style, text string) string {
	return fg.Width(width).Align(lipgloss.Center).Render(text)
}

func (s *SessionScreen) renderExercise(width int) string {
	st, err := s.ctrl.State()
	if err != nil {
		return renderError(width, err.Error())
	}
	ex, err := s.ctrl.Current()
	if err != nil {
		// Terminal phase; the summary is one key away.
		return s.renderFeedback(width)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.StatusBar(st, cw)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar(st.Cursor, st.Length, cw).View()))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(centered(width, theme.Hint, s.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), kindLabel(ex.Kind())))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), ex.Question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n")

	if s.inputErr != "" {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Error), s.inputErr))
		b.WriteString("\n")
	}
	if s.hint != "" {
		b.WriteString(centered(width, theme.Hint, "💡 "+s.hint))
		b.WriteString("\n")
	}

	if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), s.input.usage()))
	}
	return b.String()
}

func kindLabel(k exercise.Kind) string {
	switch k {
	case exercise.KindFillBlank:
		return "FILL IN THE BLANK"
	case exercise.KindWordOrder:
		return "PUT THE WORDS IN ORDER"
	case exercise.KindMatching:
		return "MATCH THE PAIRS"
	default:
		return "TYPE THE ANSWER"
	}
}

// renderFeedback renders the verdict of the last submission.
func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.feedback
	if fb == nil {
		return ""
	}
	var b strings.Builder

	bold := lipgloss.NewStyle().Bold(true)
	if fb.Result.Correct {
		verdict := "Correct!"
		if fb.XPGained > 0 {
			verdict = fmt.Sprintf("Correct! +%d XP", fb.XPGained)
		}
		b.WriteString(centered(width, bold.Foreground(theme.Success), verdict))
		if fb.Result.Kind.FreeText() && fb.Result.Score < 100 {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("%d%% match. Exact answer: %s", fb.Result.Score, fb.Result.Expected)))
		}
	} else {
		b.WriteString(centered(width, bold.Foreground(theme.Error), "Not quite"))
		if info := diagnosis.Lookup(fb.Mistake.Category); info != nil {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent), info.Label))
		}
		if fb.Result.Kind == exercise.KindMatching && fb.Result.PairsTotal > 0 {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("%d of %d pairs right", fb.Result.PairsCorrect, fb.Result.PairsTotal)))
		}
		if fb.State.Phase.Terminal() {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
				"Answer: "+fb.Result.Expected))
		}
	}
	b.WriteString("\n")

	if fb.Explanation != "" && (fb.Result.Correct || fb.State.Phase.Terminal()) {
		exp := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(fb.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	var next string
	switch {
	case fb.State.Phase.Terminal():
		next = "Out of lives. Press Enter for your results."
	case fb.Result.Correct:
		next = "Press Enter to continue..."
	default:
		next = "Try again, or press Ctrl+H for a hint."
	}
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), next))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Leave this lesson?"))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Unfinished lessons are not saved."))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Error), "[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n\n  Preparing your lesson...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
