// Package fuzzy scores how close a free-text answer is to the expected one.
package fuzzy

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Distance returns the Levenshtein edit distance between a and b, counted
// in runes with unit cost for insertion, deletion and substitution.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// Score returns a 0-100 similarity score of submitted against expected.
// Both strings are trimmed and lower-cased first. The distance is divided
// by the rune length of expected only (minimum 1), so answers much longer
// than expected bottom out at 0 instead of going negative.
func Score(expected, submitted string) int {
	e := normalize(expected)
	s := normalize(submitted)

	d := Distance(e, s)
	denom := max(utf8.RuneCountInString(e), 1)

	score := int(math.Round((1 - float64(d)/float64(denom)) * 100))
	return max(score, 0)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
