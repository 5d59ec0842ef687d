package exercise

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/fuzzy"
)

const (
	// TypingThreshold is the minimum inclusive score for a typing answer.
	TypingThreshold = 85

	// LooseThreshold applies to exercises of an unknown type.
	LooseThreshold = 70
)

// Result is the outcome of checking one answer.
type Result struct {
	Kind    Kind
	Correct bool

	// Score is the 0-100 similarity for free-text kinds. Exact kinds
	// report 100 or 0.
	Score     int
	Threshold int

	// Expected is the canonical answer to show in feedback.
	Expected string

	// PairsCorrect counts distinct submitted pairs found in the canonical
	// set; PairsTotal is the size of that set. Matching only.
	PairsCorrect int
	PairsTotal   int
}

// CheckTyping grades free text by fuzzy score against TypingThreshold.
func CheckTyping(ex Exercise, input string) Result {
	return checkFreeText(ex, input, KindTyping, TypingThreshold)
}

// CheckLoose grades free text for exercises of an unrecognized type. It
// uses the same rule as CheckTyping with the lower LooseThreshold.
func CheckLoose(ex Exercise, input string) Result {
	return checkFreeText(ex, input, KindUnknown, LooseThreshold)
}

func checkFreeText(ex Exercise, input string, kind Kind, threshold int) Result {
	r := Result{Kind: kind, Threshold: threshold, Expected: ex.CorrectAnswer}

	// No canonical answer: any non-empty input is accepted.
	if strings.TrimSpace(ex.CorrectAnswer) == "" {
		if strings.TrimSpace(input) != "" {
			r.Correct = true
			r.Score = 100
		}
		return r
	}

	r.Score = fuzzy.Score(ex.CorrectAnswer, input)
	r.Correct = r.Score >= threshold
	return r
}

// CheckFillBlank requires the selected option to equal the answer exactly.
func CheckFillBlank(ex Exercise, choice string) Result {
	return exact(KindFillBlank, ex.CorrectAnswer, choice == ex.CorrectAnswer)
}

// CheckWordOrder joins the tokens with single spaces and requires exact
// equality with the answer.
func CheckWordOrder(ex Exercise, tokens []string) Result {
	return exact(KindWordOrder, ex.CorrectAnswer, strings.Join(tokens, " ") == ex.CorrectAnswer)
}

// CheckMatching requires the distinct submitted pairs to equal the
// canonical pair set. Order and duplicates in the submission do not
// matter. A correct answer string that fails to parse yields an
// incorrect result; Prepare rejects such lessons up front.
func CheckMatching(ex Exercise, pairs []MatchPair) Result {
	r := Result{Kind: KindMatching, Expected: ex.CorrectAnswer}

	canonical, err := ParsePairs(ex.CorrectAnswer)
	if err != nil {
		return r
	}
	want := lo.Uniq(canonical)
	got := lo.Uniq(pairs)

	wantSet := make(map[MatchPair]struct{}, len(want))
	for _, p := range want {
		wantSet[p] = struct{}{}
	}
	for _, p := range got {
		if _, ok := wantSet[p]; ok {
			r.PairsCorrect++
		}
	}
	r.PairsTotal = len(want)
	r.Correct = len(want) > 0 && len(got) == len(want) && r.PairsCorrect == len(want)
	if r.Correct {
		r.Score = 100
	}
	return r
}

func exact(kind Kind, expected string, ok bool) Result {
	r := Result{Kind: kind, Expected: expected, Correct: ok}
	if ok {
		r.Score = 100
	}
	return r
}

// Checker dispatches an answer to the validator for its exercise kind.
type Checker struct {
	// Strict makes unknown exercise types an error instead of falling
	// back to CheckLoose.
	Strict bool
}

// Check grades ans against ex.
func (c Checker) Check(ex Exercise, ans Answer) (Result, error) {
	switch k := ex.Kind(); k {
	case KindTyping:
		return CheckTyping(ex, ans.Text), nil
	case KindFillBlank:
		return CheckFillBlank(ex, ans.Choice), nil
	case KindWordOrder:
		return CheckWordOrder(ex, ans.Tokens), nil
	case KindMatching:
		return CheckMatching(ex, ans.Pairs), nil
	case KindUnknown:
		if c.Strict {
			return Result{Kind: k}, &UnsupportedTypeError{Type: ex.Type}
		}
		return CheckLoose(ex, ans.Text), nil
	default:
		panic("exercise: unhandled kind " + k.String())
	}
}
