package diagnosis

// Info describes a category for display and lesson planning.
type Info struct {
	Category Category
	Label    string
	// Focus is the practice area a lesson should target when this mistake
	// is frequent.
	Focus string
	// ErrorType is the coarse error family used to choose exercise types:
	// grammar, vocabulary or fluency.
	ErrorType string
}

var taxonomy = []Info{
	{CategoryBlank, "No answer", "Attempting every exercise", "fluency"},
	{CategorySpelling, "Spelling slip", "Spelling and accents", "vocabulary"},
	{CategoryWordOrder, "Word order", "Sentence structure and word order", "grammar"},
	{CategoryGrammar, "Grammar form", "Verb and noun forms", "grammar"},
	{CategoryVocabulary, "Unknown word", "Core vocabulary", "vocabulary"},
	{CategoryUnclassified, "Other", "General practice", "general"},
}

// Lookup returns the Info for c, or nil for CategoryNone and unknown values.
func Lookup(c Category) *Info {
	for i := range taxonomy {
		if taxonomy[i].Category == c {
			return &taxonomy[i]
		}
	}
	return nil
}

// All returns every mistake category in display order.
func All() []Info {
	out := make([]Info, len(taxonomy))
	copy(out, taxonomy)
	return out
}
