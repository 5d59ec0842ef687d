package exercise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLesson() Lesson {
	return Lesson{
		Title: "Bij de dokter",
		Exercises: []Exercise{
			{Type: TypeTyping, Question: "Type:", CorrectAnswer: "Ik voel me niet lekker."},
			{Type: TypeFillBlank, Question: "Ik heb ___ in mijn buik.", CorrectAnswer: "pijn", Options: []string{"pijn", "zeer"}},
			{Type: TypeWordOrder, Question: "Zet in volgorde:", CorrectAnswer: "Ik moet naar de dokter."},
			{Type: TypeMatching, Question: "Match:", CorrectAnswer: "ziek=sick,pijn=pain"},
		},
	}
}

func TestPrepare_FillsDefaults(t *testing.T) {
	in := validLesson()
	out, err := Prepare(in)
	require.NoError(t, err)

	for i, ex := range out.Exercises {
		assert.Equal(t, "ex_"+string(rune('1'+i)), ex.ID)
		assert.Equal(t, ex.CorrectAnswer, ex.AudioText)
	}
	assert.Equal(t, []string{"Ik", "moet", "naar", "de", "dokter."}, out.Exercises[2].Options)

	// Input untouched.
	assert.Empty(t, in.Exercises[0].ID)
	assert.Empty(t, in.Exercises[2].Options)
}

func TestPrepare_KeepsExplicitValues(t *testing.T) {
	in := validLesson()
	in.Exercises[0].ID = "intro"
	in.Exercises[0].AudioText = "Ik voel me niet lekker"
	out, err := Prepare(in)
	require.NoError(t, err)
	assert.Equal(t, "intro", out.Exercises[0].ID)
	assert.Equal(t, "Ik voel me niet lekker", out.Exercises[0].AudioText)
}

func TestPrepare_Empty(t *testing.T) {
	_, err := Prepare(Lesson{Title: "nothing"})
	var invalid *InvalidLessonError
	require.ErrorAs(t, err, &invalid)
}

func TestValidate_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Lesson)
		index  int
		reason string
	}{
		{"empty question", func(l *Lesson) { l.Exercises[0].Question = " " }, 0, "question"},
		{"fill_blank without answer", func(l *Lesson) { l.Exercises[1].CorrectAnswer = "" }, 1, "correct_answer"},
		{"fill_blank answer not an option", func(l *Lesson) { l.Exercises[1].Options = []string{"zeer", "pijnen"} }, 1, "not one of the options"},
		{"fill_blank without options", func(l *Lesson) { l.Exercises[1].Options = nil }, 1, "needs options"},
		{"word_order bad tokens", func(l *Lesson) { l.Exercises[2].Options = []string{"dokter", "de", "naar", "moet", "Ik"} }, 2, "permutation"},
		{"matching without equals", func(l *Lesson) { l.Exercises[3].CorrectAnswer = "ziek sick" }, 3, "no '='"},
		{"matching empty side", func(l *Lesson) { l.Exercises[3].CorrectAnswer = "ziek=,pijn=pain" }, 3, "empty side"},
		{"matching duplicate left", func(l *Lesson) { l.Exercises[3].CorrectAnswer = "ziek=sick,ziek=ill" }, 3, "twice"},
		{"duplicate id", func(l *Lesson) { l.Exercises[0].ID = "a"; l.Exercises[1].ID = "a" }, 1, "duplicate id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := validLesson()
			tc.mutate(&l)
			_, err := Prepare(l)

			var malformed *MalformedExerciseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.index, malformed.Index)
			assert.Contains(t, malformed.Reason, tc.reason)
		})
	}
}

func TestValidate_TypingMayHaveEmptyAnswer(t *testing.T) {
	l := Lesson{Exercises: []Exercise{{Type: TypeTyping, Question: "Write anything about your day"}}}
	assert.NoError(t, Validate(l))

	l.Exercises[0].Type = "pronunciation"
	assert.NoError(t, Validate(l))
}

func TestDecode(t *testing.T) {
	doc := `{
	  "lesson_title": "Test",
	  "description": "d",
	  "exercises": [
	    {"id": "ex_1", "type": "typing", "question": "Type:", "correct_answer": "hallo", "hints": ["h1"], "completed": false, "attempts": 0},
	    {"type": "matching", "question": "Match:", "correct_answer": "a=1,b=2", "options": ["1", "2"]}
	  ],
	  "metadata": {"language": "dutch", "fallback": true}
	}`
	l, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Test", l.Title)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "ex_2", l.Exercises[1].ID)
	assert.Equal(t, "dutch", l.Metadata.Language)
	assert.True(t, l.Metadata.Fallback)

	_, err = Decode(strings.NewReader("{not json"))
	var invalid *InvalidLessonError
	assert.ErrorAs(t, err, &invalid)
}
