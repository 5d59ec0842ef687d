package bot

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
)

func escape(s string) string {
	return html.EscapeString(s)
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func renderIntro(l exercise.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 <b>%s</b>\n", escape(l.Title))
	if l.Description != "" {
		b.WriteString(escape(l.Description))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d exercises", l.Len())
	return b.String()
}

func renderStatus(st session.State) string {
	lives := strings.Repeat("❤️", st.Lives) + strings.Repeat("🖤", max(st.MaxLives-st.Lives, 0))
	status := fmt.Sprintf("%s  ⭐ %d XP  🔥 %d  (%d/%d)", lives, st.XP, st.Streak, st.Cursor+1, st.Length)
	if hint := gems.StreakHint(st.Streak); hint != "" {
		status += "\n<i>" + escape(hint) + "</i>"
	}
	return status
}

// exerciseMessage renders the exercise prompt with a keyboard suited to
// its type.
func exerciseMessage(chatID int64, ex exercise.Exercise, st session.State) tgbotapi.MessageConfig {
	var b strings.Builder
	b.WriteString(renderStatus(st))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "<b>%s</b>\n", escape(ex.Question))

	msg := newHTMLMessage(chatID, "")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)

	switch ex.Kind() {
	case exercise.KindFillBlank:
		b.WriteString("\nPick the missing word.")
		msg.ReplyMarkup = optionsKeyboard(ex.Options)
	case exercise.KindWordOrder:
		tokens := lo.Shuffle(append([]string(nil), ex.Options...))
		fmt.Fprintf(&b, "\nPut in order: <code>%s</code>", escape(strings.Join(tokens, " · ")))
	case exercise.KindMatching:
		b.WriteString("\nMatch each item:\n")
		for _, p := range mustPairs(ex.CorrectAnswer) {
			fmt.Fprintf(&b, "• %s\n", escape(p.Left))
		}
		fmt.Fprintf(&b, "with one of: <code>%s</code>\n", escape(strings.Join(lo.Shuffle(append([]string(nil), ex.Options...)), ", ")))
		b.WriteString(msgMatchingFormat)
	default:
		b.WriteString("\nType your answer.")
	}

	msg.Text = b.String()
	return msg
}

func mustPairs(s string) []exercise.MatchPair {
	pairs, _ := exercise.ParsePairs(s)
	return pairs
}

func optionsKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for _, chunk := range lo.Chunk(options, 2) {
		row := lo.Map(chunk, func(o string, _ int) tgbotapi.KeyboardButton {
			return tgbotapi.NewKeyboardButton(o)
		})
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

func feedbackMessage(chatID int64, fb *session.Feedback) tgbotapi.MessageConfig {
	var b strings.Builder
	if fb.Result.Correct {
		fmt.Fprintf(&b, "✅ <b>Correct!</b> +%d XP", fb.XPGained)
		if fb.Result.Kind.FreeText() && fb.Result.Score < 100 {
			fmt.Fprintf(&b, " (%d%% match)", fb.Result.Score)
		}
	} else {
		b.WriteString("❌ <b>Not quite.</b>")
		if fb.Result.Kind.FreeText() {
			fmt.Fprintf(&b, " %d%% match, %d%% needed.", fb.Result.Score, fb.Result.Threshold)
		}
		if fb.Result.Kind == exercise.KindMatching {
			fmt.Fprintf(&b, " %d of %d pairs right.", fb.Result.PairsCorrect, fb.Result.PairsTotal)
		}
		if info := diagnosis.Lookup(fb.Mistake.Category); info != nil {
			fmt.Fprintf(&b, "\nLooks like: %s", escape(info.Label))
		}
	}
	if fb.Explanation != "" {
		fmt.Fprintf(&b, "\n\n%s", escape(fb.Explanation))
	}

	b.WriteString("\n\n")
	b.WriteString(renderStatus(fb.State))
	switch {
	case fb.State.Phase == session.PhaseFailed:
		fmt.Fprintf(&b, "\n\n💔 Out of lives. The answer was: <b>%s</b>", escape(fb.Result.Expected))
	case fb.Result.Correct:
		b.WriteString("\nSend /next to continue.")
	default:
		b.WriteString("\nTry again or send /hint.")
	}

	msg := newHTMLMessage(chatID, b.String())
	if fb.Result.Correct || fb.State.Phase.Terminal() {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}
	return msg
}

func summaryMessage(chatID int64, sum session.Summary, awards []string) tgbotapi.MessageConfig {
	var b strings.Builder
	if sum.Phase == session.PhaseCompleted {
		b.WriteString("🎉 <b>Lesson complete!</b>\n")
	} else {
		b.WriteString("💔 <b>Lesson failed.</b>\n")
	}
	fmt.Fprintf(&b, "%s\n\n", escape(sum.LessonTitle))
	fmt.Fprintf(&b, "Accuracy: %d%% (%d/%d)\n", sum.AccuracyPercent, sum.CorrectCount, sum.TotalCount)
	fmt.Fprintf(&b, "Score: %d\n", sum.LessonScore)
	fmt.Fprintf(&b, "XP: %d\n", sum.XP)
	fmt.Fprintf(&b, "Best streak: %d\n", sum.BestStreak)
	fmt.Fprintf(&b, "Hints used: %d\n", sum.HintsUsed)
	if len(awards) > 0 {
		b.WriteString("\n<b>Gems earned</b>\n")
		b.WriteString(strings.Join(awards, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n/restart to try again, /lesson for a new lesson.")

	msg := newHTMLMessage(chatID, b.String())
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return msg
}
