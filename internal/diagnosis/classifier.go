package diagnosis

// Classifier is a rule-based mistake classifier.
// Returns a category and confidence (0.0–1.0), or ("", 0) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (Category, float64)
}

// DefaultClassifiers returns classifiers in priority order.
// Blank answers are checked first since every other rule assumes
// the learner attempted something.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&BlankClassifier{},
		&WordOrderClassifier{},
		&SpellingClassifier{},
		&GrammarClassifier{},
		&VocabularyClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", 0, "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (Category, float64, string) {
	for _, c := range classifiers {
		cat, conf := c.Classify(input)
		if cat != "" {
			return cat, conf, c.Name()
		}
	}
	return "", 0, ""
}

// Classify runs the default classifiers. Correct answers are always
// CategoryNone; wrong answers no rule recognizes are unclassified.
func Classify(input *ClassifyInput) Result {
	if input.Result.Correct {
		return Result{Category: CategoryNone, Confidence: 1, ClassifierName: "none"}
	}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat == "" {
		return Result{Category: CategoryUnclassified, ClassifierName: "none"}
	}
	return Result{Category: cat, Confidence: conf, ClassifierName: name}
}
