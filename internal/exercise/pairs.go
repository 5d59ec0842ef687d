package exercise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPairFormat is returned for a matching item without "=".
var ErrPairFormat = errors.New("pair has no '='")

// MatchPair is one left=right association of a matching exercise.
type MatchPair struct {
	Left  string
	Right string
}

func (p MatchPair) String() string {
	return p.Left + "=" + p.Right
}

// ParsePairs decodes "a=b, c=d" into pairs. Items are split on commas and
// each item on its first "=", with both sides trimmed. Empty items are
// skipped. An item without "=" is an error.
func ParsePairs(s string) ([]MatchPair, error) {
	return parsePairList(strings.Split(s, ","))
}

// parseSubmittedPairs is ParsePairs but also accepts ";" and newlines as
// separators, which is what people type in a terminal or a chat.
func parseSubmittedPairs(s string) ([]MatchPair, error) {
	items := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	return parsePairList(items)
}

func parsePairList(items []string) ([]MatchPair, error) {
	var pairs []MatchPair
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		left, right, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPairFormat, item)
		}
		pairs = append(pairs, MatchPair{
			Left:  strings.TrimSpace(left),
			Right: strings.TrimSpace(right),
		})
	}
	return pairs, nil
}

// FormatPairs encodes pairs in the canonical "a=b,c=d" form.
func FormatPairs(pairs []MatchPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}
