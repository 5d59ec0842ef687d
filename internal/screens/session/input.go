package session

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/components"
)

// answerInput is the widget for the current exercise. Exactly one of the
// components is active, chosen by the exercise kind.
type answerInput struct {
	kind   exercise.Kind
	text   components.TextInput
	choice components.MultiChoice
	tokens components.TokenPicker
	pairs  components.PairInput
}

func newAnswerInput(ex exercise.Exercise) answerInput {
	in := answerInput{kind: ex.Kind()}
	switch in.kind {
	case exercise.KindFillBlank:
		in.choice = components.NewMultiChoice(ex.Options)
	case exercise.KindWordOrder:
		in.tokens = components.NewTokenPicker(lo.Shuffle(slices.Clone(ex.Options)))
	case exercise.KindMatching:
		lefts, rights := matchingSides(ex)
		in.pairs = components.NewPairInput(lefts, lo.Shuffle(rights))
	default:
		in.text = components.NewTextInput("Type your answer...", 200)
	}
	return in
}

// matchingSides returns the left items in answer order and every
// candidate right value, distractors included.
func matchingSides(ex exercise.Exercise) ([]string, []string) {
	pairs, _ := exercise.ParsePairs(ex.CorrectAnswer)
	lefts := lo.Map(pairs, func(p exercise.MatchPair, _ int) string { return p.Left })
	rights := lo.Map(pairs, func(p exercise.MatchPair, _ int) string { return p.Right })
	return lefts, lo.Uniq(append(slices.Clone(ex.Options), rights...))
}

func (in answerInput) Init() tea.Cmd {
	if in.kind.FreeText() {
		return in.text.Init()
	}
	return nil
}

func (in answerInput) Update(msg tea.Msg) (answerInput, tea.Cmd) {
	var cmd tea.Cmd
	switch in.kind {
	case exercise.KindFillBlank:
		in.choice, cmd = in.choice.Update(msg)
	case exercise.KindWordOrder:
		in.tokens, cmd = in.tokens.Update(msg)
	case exercise.KindMatching:
		in.pairs, cmd = in.pairs.Update(msg)
	default:
		in.text, cmd = in.text.Update(msg)
	}
	return in, cmd
}

// Value returns the raw answer and whether it is ready to submit.
func (in answerInput) Value() (string, bool) {
	switch in.kind {
	case exercise.KindFillBlank:
		v := in.choice.Value()
		return v, v != ""
	case exercise.KindWordOrder:
		return in.tokens.Value(), in.tokens.Complete()
	case exercise.KindMatching:
		return in.pairs.Value(), in.pairs.Complete()
	default:
		v := in.text.Value()
		return v, strings.TrimSpace(v) != ""
	}
}

// Empty reports whether nothing has been entered yet.
func (in answerInput) Empty() bool {
	switch in.kind {
	case exercise.KindWordOrder:
		return len(in.tokens.Sentence()) == 0
	case exercise.KindMatching:
		return in.pairs.Value() == ""
	case exercise.KindFillBlank:
		return true
	default:
		return in.text.Value() == ""
	}
}

// Mark shows the verdict on the widget. A wrong word order is cleared so
// the learner can rebuild it.
func (in *answerInput) Mark(correct bool) {
	switch in.kind {
	case exercise.KindFillBlank:
		in.choice.Mark(correct)
	case exercise.KindWordOrder:
		if !correct {
			in.tokens.Reset()
		}
	case exercise.KindMatching:
	default:
		in.text.Submit(correct)
	}
}

func (in answerInput) View() string {
	switch in.kind {
	case exercise.KindFillBlank:
		return in.choice.View()
	case exercise.KindWordOrder:
		return in.tokens.View()
	case exercise.KindMatching:
		return in.pairs.View()
	default:
		return "Answer: " + in.text.View()
	}
}

func (in answerInput) usage() string {
	switch in.kind {
	case exercise.KindFillBlank:
		return "↑↓ or 1-9 to choose, Enter to check"
	case exercise.KindWordOrder:
		return "←→ to move, Space to place, Backspace to undo, Enter to check"
	case exercise.KindMatching:
		return "↑↓ to pick a row, ←→ to change its match, Enter to check"
	default:
		return "Enter to check"
	}
}
