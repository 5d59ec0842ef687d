package exercise

import (
	"strconv"
	"strings"
)

// Answer is a learner submission shaped for the exercise kind. Only the
// field matching the kind is consulted by the checker.
type Answer struct {
	Text   string      // typing and unknown kinds
	Choice string      // fill_blank
	Tokens []string    // word_order, in submitted order
	Pairs  []MatchPair // matching
}

// ParseAnswer converts raw front-end input into an Answer for ex.
//
//   - typing / unknown: the raw text, untouched.
//   - fill_blank: the trimmed text. If it does not equal an option and is a
//     1-based option number, that option is selected.
//   - word_order: whitespace-separated tokens.
//   - matching: "left=right" items separated by ",", ";" or newlines.
func ParseAnswer(ex Exercise, raw string) (Answer, error) {
	switch ex.Kind() {
	case KindFillBlank:
		return Answer{Choice: pickOption(ex.Options, raw)}, nil
	case KindWordOrder:
		return Answer{Tokens: strings.Fields(raw)}, nil
	case KindMatching:
		pairs, err := parseSubmittedPairs(raw)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Pairs: pairs}, nil
	default:
		return Answer{Text: raw}, nil
	}
}

func pickOption(options []string, raw string) string {
	choice := strings.TrimSpace(raw)
	for _, opt := range options {
		if opt == choice {
			return opt
		}
	}
	if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(options) {
		return options[idx-1]
	}
	return choice
}

// Raw renders an Answer back to a single display string, used for
// persistence and feedback.
func (a Answer) Raw(k Kind) string {
	switch k {
	case KindFillBlank:
		return a.Choice
	case KindWordOrder:
		return strings.Join(a.Tokens, " ")
	case KindMatching:
		return FormatPairs(a.Pairs)
	default:
		return a.Text
	}
}
