package lessons

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// exerciseWeights maps a coarse error family to the exercise types that
// train it.
var exerciseWeights = map[string][]exercise.Type{
	"grammar":    {exercise.TypeFillBlank, exercise.TypeWordOrder},
	"vocabulary": {exercise.TypeMatching, exercise.TypeTyping},
	"fluency":    {exercise.TypeTyping, exercise.TypeWordOrder},
	"general":    {exercise.TypeTyping, exercise.TypeFillBlank, exercise.TypeMatching},
}

const maxFocusAreas = 3

// Analyze turns mistake counts and overall accuracy (0-100) into a lesson
// plan. Accuracy is read on a ten-point scale: 8 and up is advanced, 5
// and up intermediate.
func Analyze(mistakes map[diagnosis.Category]int, accuracy int) Analysis {
	a := Analysis{
		AccuracyPercent: accuracy,
		Mistakes:        lo.PickBy(mistakes, func(c diagnosis.Category, n int) bool { return n > 0 && c != diagnosis.CategoryNone }),
	}

	switch score := float64(accuracy) / 10; {
	case score >= 8:
		a.Difficulty = Advanced
	case score >= 5:
		a.Difficulty = Intermediate
	default:
		a.Difficulty = Beginner
	}

	ranked := lo.Keys(a.Mistakes)
	slices.SortFunc(ranked, func(x, y diagnosis.Category) int {
		if c := cmp.Compare(a.Mistakes[y], a.Mistakes[x]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})

	var families []string
	for _, c := range ranked {
		info := diagnosis.Lookup(c)
		if info == nil {
			continue
		}
		if len(a.FocusAreas) < maxFocusAreas {
			a.FocusAreas = append(a.FocusAreas, info.Focus)
		}
		families = append(families, info.ErrorType)
	}
	families = append(lo.Uniq(families), "general")

	for _, f := range families {
		a.ExerciseMix = append(a.ExerciseMix, exerciseWeights[f]...)
	}
	a.ExerciseMix = lo.Uniq(a.ExerciseMix)
	return a
}

// AnalyzeCounts adapts the string-keyed counts returned by the store.
func AnalyzeCounts(counts map[string]int, accuracy int) Analysis {
	return Analyze(lo.MapKeys(counts, func(_ int, k string) diagnosis.Category {
		return diagnosis.Category(k)
	}), accuracy)
}
