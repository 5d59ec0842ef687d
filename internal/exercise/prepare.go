package exercise

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Prepare fills defaults on a copy of l and validates it. Defaults:
// missing IDs become "ex_N", empty AudioText takes CorrectAnswer, and
// word_order exercises without tokens get them from CorrectAnswer.
// The input lesson is not modified.
func Prepare(l Lesson) (Lesson, error) {
	if len(l.Exercises) == 0 {
		return Lesson{}, &InvalidLessonError{Reason: "no exercises"}
	}

	out := l
	out.Exercises = make([]Exercise, len(l.Exercises))
	for i, ex := range l.Exercises {
		ex.Options = slices.Clone(ex.Options)
		ex.Hints = slices.Clone(ex.Hints)
		if ex.ID == "" {
			ex.ID = fmt.Sprintf("ex_%d", i+1)
		}
		if ex.AudioText == "" {
			ex.AudioText = ex.CorrectAnswer
		}
		if ex.Kind() == KindWordOrder && len(ex.Options) == 0 {
			ex.Options = strings.Fields(ex.CorrectAnswer)
		}
		out.Exercises[i] = ex
	}

	if err := Validate(out); err != nil {
		return Lesson{}, err
	}
	return out, nil
}

// Validate reports the first structural problem in l. It does not fill
// defaults; call Prepare for that.
func Validate(l Lesson) error {
	if len(l.Exercises) == 0 {
		return &InvalidLessonError{Reason: "no exercises"}
	}

	seen := make(map[string]int, len(l.Exercises))
	for i, ex := range l.Exercises {
		if ex.ID != "" {
			if prev, dup := seen[ex.ID]; dup {
				return malformed(i, ex, fmt.Sprintf("duplicate id (also exercise %d)", prev+1))
			}
			seen[ex.ID] = i
		}
		if reason := checkExercise(ex); reason != "" {
			return malformed(i, ex, reason)
		}
	}
	return nil
}

func malformed(i int, ex Exercise, reason string) *MalformedExerciseError {
	return &MalformedExerciseError{Index: i, ID: ex.ID, Type: ex.Type, Reason: reason}
}

// checkExercise returns a non-empty reason when ex cannot be played.
func checkExercise(ex Exercise) string {
	if strings.TrimSpace(ex.Question) == "" {
		return "question is empty"
	}

	kind := ex.Kind()
	if !kind.FreeText() && strings.TrimSpace(ex.CorrectAnswer) == "" {
		return "correct_answer is required"
	}

	switch kind {
	case KindFillBlank:
		if len(ex.Options) == 0 {
			return "fill_blank needs options"
		}
		if !lo.Contains(ex.Options, ex.CorrectAnswer) {
			return fmt.Sprintf("correct_answer %q is not one of the options", ex.CorrectAnswer)
		}
	case KindWordOrder:
		if len(ex.Options) > 0 && !sameTokens(ex.Options, strings.Fields(ex.CorrectAnswer)) {
			return "options are not a permutation of the correct_answer words"
		}
	case KindMatching:
		pairs, err := ParsePairs(ex.CorrectAnswer)
		if err != nil {
			return "correct_answer: " + err.Error()
		}
		if len(pairs) == 0 {
			return "correct_answer has no pairs"
		}
		lefts := make(map[string]bool, len(pairs))
		for _, p := range pairs {
			if p.Left == "" || p.Right == "" {
				return fmt.Sprintf("pair %q has an empty side", p.String())
			}
			if lefts[p.Left] {
				return fmt.Sprintf("left value %q appears twice", p.Left)
			}
			lefts[p.Left] = true
		}
	}
	return ""
}

func sameTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// Decode reads a lesson JSON document and prepares it.
func Decode(r io.Reader) (Lesson, error) {
	var l Lesson
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Lesson{}, &InvalidLessonError{Reason: "decode: " + err.Error()}
	}
	return Prepare(l)
}

// LoadFile reads and prepares the lesson stored at path.
func LoadFile(path string) (Lesson, error) {
	f, err := os.Open(path)
	if err != nil {
		return Lesson{}, fmt.Errorf("open lesson: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
