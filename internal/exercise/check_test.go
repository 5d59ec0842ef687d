package exercise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTyping_ThresholdIsInclusive(t *testing.T) {
	// 3 edits over 20 runes scores exactly 85.
	at := Exercise{Type: TypeTyping, CorrectAnswer: "abcdefghijklmnopqrst"}
	r := CheckTyping(at, "xyzdefghijklmnopqrst")
	assert.Equal(t, 85, r.Score)
	assert.True(t, r.Correct)

	// 4 edits over 25 runes scores 84.
	below := Exercise{Type: TypeTyping, CorrectAnswer: "abcdefghijklmnopqrstuvwxy"}
	r = CheckTyping(below, "wxyzefghijklmnopqrstuvwxy")
	assert.Equal(t, 84, r.Score)
	assert.False(t, r.Correct)
}

func TestCheckTyping(t *testing.T) {
	ex := Exercise{Type: TypeTyping, CorrectAnswer: "Ik voel me niet lekker."}

	tests := []struct {
		input string
		want  bool
	}{
		{"Ik voel me niet lekker.", true},
		{"ik voel me niet lekker", true},
		{"  IK VOEL ME NIET LEKKER. ", true},
		{"Ik voel mij niet lekker.", true},
		{"Ik ben ziek", false},
		{"", false},
	}
	for _, tc := range tests {
		got := CheckTyping(ex, tc.input)
		assert.Equal(t, tc.want, got.Correct, "input %q (score %d)", tc.input, got.Score)
	}
}

func TestCheckTyping_EmptyExpected(t *testing.T) {
	ex := Exercise{Type: TypeTyping}

	assert.True(t, CheckTyping(ex, "anything").Correct)
	assert.False(t, CheckTyping(ex, "   ").Correct)
	assert.False(t, CheckTyping(ex, "").Correct)
}

func TestCheckFillBlank(t *testing.T) {
	ex := Exercise{Type: TypeFillBlank, CorrectAnswer: "pijn", Options: []string{"pijn", "pijnen", "zeer"}}

	assert.True(t, CheckFillBlank(ex, "pijn").Correct)
	assert.False(t, CheckFillBlank(ex, "Pijn").Correct)
	assert.False(t, CheckFillBlank(ex, "zeer").Correct)
	assert.False(t, CheckFillBlank(ex, "pijn ").Correct)
}

func TestCheckWordOrder(t *testing.T) {
	ex := Exercise{Type: TypeWordOrder, CorrectAnswer: "ik ga naar school"}

	assert.True(t, CheckWordOrder(ex, []string{"ik", "ga", "naar", "school"}).Correct)
	assert.False(t, CheckWordOrder(ex, []string{"ga", "ik", "naar", "school"}).Correct)
	assert.False(t, CheckWordOrder(ex, []string{"ik", "ga", "naar"}).Correct)
	assert.False(t, CheckWordOrder(ex, nil).Correct)
}

func TestCheckMatching(t *testing.T) {
	ex := Exercise{Type: TypeMatching, CorrectAnswer: "ziek=sick,dokter=doctor,pijn=pain,medicijn=medicine"}

	t.Run("all pairs any order", func(t *testing.T) {
		r := CheckMatching(ex, []MatchPair{
			{"pijn", "pain"}, {"ziek", "sick"}, {"medicijn", "medicine"}, {"dokter", "doctor"},
		})
		assert.True(t, r.Correct)
		assert.Equal(t, 4, r.PairsCorrect)
		assert.Equal(t, 4, r.PairsTotal)
	})

	t.Run("three right one wrong", func(t *testing.T) {
		r := CheckMatching(ex, []MatchPair{
			{"ziek", "sick"}, {"dokter", "doctor"}, {"pijn", "pain"}, {"medicijn", "doctor"},
		})
		assert.False(t, r.Correct)
		assert.Equal(t, 3, r.PairsCorrect)
	})

	t.Run("missing pair", func(t *testing.T) {
		r := CheckMatching(ex, []MatchPair{{"ziek", "sick"}, {"dokter", "doctor"}, {"pijn", "pain"}})
		assert.False(t, r.Correct)
		assert.Equal(t, 3, r.PairsCorrect)
	})

	t.Run("duplicates are ignored", func(t *testing.T) {
		r := CheckMatching(ex, []MatchPair{
			{"ziek", "sick"}, {"ziek", "sick"}, {"dokter", "doctor"}, {"pijn", "pain"}, {"medicijn", "medicine"},
		})
		assert.True(t, r.Correct)
		assert.Equal(t, 4, r.PairsCorrect)
	})

	t.Run("extra pair", func(t *testing.T) {
		r := CheckMatching(ex, []MatchPair{
			{"ziek", "sick"}, {"dokter", "doctor"}, {"pijn", "pain"}, {"medicijn", "medicine"}, {"hoofd", "head"},
		})
		assert.False(t, r.Correct)
		assert.Equal(t, 4, r.PairsCorrect)
	})
}

func TestChecker_UnknownType(t *testing.T) {
	// 3 edits over 10 runes scores 70: passes loose, would fail typing.
	ex := Exercise{Type: "pronunciation", CorrectAnswer: "abcdefghij"}
	ans := Answer{Text: "xyzdefghij"}

	r, err := Checker{}.Check(ex, ans)
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, r.Kind)
	assert.Equal(t, 70, r.Score)
	assert.Equal(t, LooseThreshold, r.Threshold)
	assert.True(t, r.Correct)

	_, err = Checker{Strict: true}.Check(ex, ans)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, Type("pronunciation"), unsupported.Type)
}

func TestChecker_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		ex   Exercise
		raw  string
		want bool
	}{
		{"typing", Exercise{Type: TypeTyping, CorrectAnswer: "dag"}, "dag", true},
		{"fill_blank by text", Exercise{Type: TypeFillBlank, CorrectAnswer: "pijn", Options: []string{"zeer", "pijn"}}, "pijn", true},
		{"fill_blank by number", Exercise{Type: TypeFillBlank, CorrectAnswer: "pijn", Options: []string{"zeer", "pijn"}}, "2", true},
		{"fill_blank wrong number", Exercise{Type: TypeFillBlank, CorrectAnswer: "pijn", Options: []string{"zeer", "pijn"}}, "1", false},
		{"word_order", Exercise{Type: TypeWordOrder, CorrectAnswer: "Ik moet naar de dokter."}, "Ik  moet naar de   dokter.", true},
		{"matching", Exercise{Type: TypeMatching, CorrectAnswer: "a=1,b=2"}, "b=2; a = 1", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ans, err := ParseAnswer(tc.ex, tc.raw)
			require.NoError(t, err)
			r, err := Checker{}.Check(tc.ex, ans)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Correct)
		})
	}
}

func TestParseAnswer_MatchingMissingEquals(t *testing.T) {
	_, err := ParseAnswer(Exercise{Type: TypeMatching, CorrectAnswer: "a=1"}, "a1")
	assert.True(t, errors.Is(err, ErrPairFormat))
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs(" ziek = sick ,dokter=doctor,, x=a=b")
	require.NoError(t, err)
	assert.Equal(t, []MatchPair{{"ziek", "sick"}, {"dokter", "doctor"}, {"x", "a=b"}}, pairs)
	assert.Equal(t, "ziek=sick,dokter=doctor,x=a=b", FormatPairs(pairs))
}

func TestTypeKind(t *testing.T) {
	assert.Equal(t, KindTyping, TypeTyping.Kind())
	assert.Equal(t, KindFillBlank, TypeFillBlank.Kind())
	assert.Equal(t, KindWordOrder, TypeWordOrder.Kind())
	assert.Equal(t, KindMatching, TypeMatching.Kind())
	assert.Equal(t, KindUnknown, Type("pronunciation").Kind())
	assert.Equal(t, KindUnknown, Type("").Kind())
}
