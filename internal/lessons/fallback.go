package lessons

import (
	"strings"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// Fallback returns the built-in lesson for a language and topic. Unknown
// languages get the Dutch lesson. The result is prepared and playable.
func Fallback(language, topic string) exercise.Lesson {
	language = strings.ToLower(strings.TrimSpace(language))
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		topic = "general"
	}

	var exs []exercise.Exercise
	switch language {
	case "english":
		exs = englishExercises()
	case "chinese":
		exs = chineseExercises()
	case "japanese":
		exs = japaneseExercises()
	default:
		language = "dutch"
		if topic == "healthcare" {
			exs = dutchHealthcareExercises()
		} else {
			exs = dutchGeneralExercises()
		}
	}

	l := exercise.Lesson{
		Title:       "Practice Session - " + titleCase(topic),
		Description: "Basic " + language + " exercises for " + topic + " context",
		Exercises:   exs,
		Metadata: exercise.Metadata{
			Language:   language,
			Topic:      topic,
			Difficulty: string(Beginner),
			Fallback:   true,
		},
	}
	prepared, err := exercise.Prepare(l)
	if err != nil {
		// Built-in content is covered by tests.
		panic("lessons: invalid fallback lesson: " + err.Error())
	}
	return prepared
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func dutchHealthcareExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{
			Type:          exercise.TypeTyping,
			Question:      "Type deze zin correct:",
			CorrectAnswer: "Ik voel me niet lekker.",
			Explanation:   "Basis uitdrukking voor onwel voelen",
			Hints:         []string{"Let op spelling", "Gebruik 'me' niet 'mij'"},
		},
		{
			Type:          exercise.TypeFillBlank,
			Question:      "Ik heb ___ in mijn buik.",
			CorrectAnswer: "pijn",
			Options:       []string{"pijn", "pijnen", "zeer", "pijntje"},
			Explanation:   "'Pijn' is het correcte woord voor pain",
			AudioText:     "Ik heb pijn in mijn buik.",
			Hints:         []string{"Denk aan het medische vocabulaire"},
		},
		{
			Type:          exercise.TypeWordOrder,
			Question:      "Zet deze woorden in de juiste volgorde:",
			CorrectAnswer: "Ik moet naar de dokter.",
			Options:       []string{"dokter.", "de", "naar", "moet", "Ik"},
			Explanation:   "Nederlandse zinsopbouw: subject + werkwoord + rest",
			Hints:         []string{"Begin met 'Ik'", "Werkwoord op tweede plaats"},
		},
		{
			Type:          exercise.TypeMatching,
			Question:      "Match Dutch healthcare terms with English translations:",
			CorrectAnswer: "ziek=sick,dokter=doctor,pijn=pain,medicijn=medicine",
			Options:       []string{"ziek", "dokter", "pijn", "medicijn", "sick", "doctor", "pain", "medicine"},
			Explanation:   "Essential healthcare vocabulary in Dutch",
			AudioText:     "ziek dokter pijn medicijn",
			Hints:         []string{"Think about medical context", "Group by meaning"},
		},
	}
}

func dutchGeneralExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{
			Type:          exercise.TypeTyping,
			Question:      "Type deze zin:",
			CorrectAnswer: "Goedemorgen, hoe gaat het met u?",
			Explanation:   "Formele begroeting in het Nederlands",
			Hints:         []string{"Gebruik 'u' voor formeel"},
		},
		{
			Type:          exercise.TypeFillBlank,
			Question:      "Ik ___ in Amsterdam.",
			CorrectAnswer: "woon",
			Options:       []string{"woon", "woont", "wonen", "gewoond"},
			Explanation:   "Bij 'ik' gebruik je de stam van het werkwoord",
			AudioText:     "Ik woon in Amsterdam.",
			Hints:         []string{"Ik + stam"},
		},
		{
			Type:          exercise.TypeWordOrder,
			Question:      "Zet deze woorden in de juiste volgorde:",
			CorrectAnswer: "Morgen ga ik naar de markt.",
			Options:       []string{"markt.", "ik", "de", "Morgen", "naar", "ga"},
			Explanation:   "Na een tijdsbepaling komt eerst het werkwoord (inversie)",
			Hints:         []string{"Begin met 'Morgen'", "Werkwoord op de tweede plaats"},
		},
		{
			Type:          exercise.TypeMatching,
			Question:      "Match the Dutch words with their English translations:",
			CorrectAnswer: "huis=house,brood=bread,fiets=bicycle,water=water",
			Explanation:   "Everyday Dutch vocabulary",
			AudioText:     "huis brood fiets water",
			Hints:         []string{"Some words look alike"},
		},
	}
}

func englishExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{
			Type:          exercise.TypeTyping,
			Question:      "Type this sentence:",
			CorrectAnswer: "I am learning English.",
			Explanation:   "Basic present continuous",
			Hints:         []string{"Use present continuous form"},
		},
		{
			Type:          exercise.TypeFillBlank,
			Question:      "She ___ to work every day.",
			CorrectAnswer: "goes",
			Options:       []string{"go", "goes", "going", "gone"},
			Explanation:   "Third person singular takes -s in the present simple",
			AudioText:     "She goes to work every day.",
			Hints:         []string{"He, she, it: add -s"},
		},
	}
}

func chineseExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{
			Type:          exercise.TypeTyping,
			Question:      "输入这个句子:",
			CorrectAnswer: "我在学习中文。",
			Explanation:   "基本的现在进行时",
			Hints:         []string{"使用 '在' 表示进行时"},
		},
		{
			Type:          exercise.TypeMatching,
			Question:      "Match the words with their translations:",
			CorrectAnswer: "你好=hello,谢谢=thank you,再见=goodbye",
			Explanation:   "常用问候语",
			AudioText:     "你好 谢谢 再见",
		},
	}
}

func japaneseExercises() []exercise.Exercise {
	return []exercise.Exercise{
		{
			Type:          exercise.TypeTyping,
			Question:      "この文を入力してください:",
			CorrectAnswer: "私は日本語を勉強しています。",
			Explanation:   "「〜ています」は進行中の動作を表します",
			Hints:         []string{"「を」で目的語を示します"},
		},
		{
			Type:          exercise.TypeMatching,
			Question:      "Match the words with their translations:",
			CorrectAnswer: "こんにちは=hello,ありがとう=thank you,さようなら=goodbye",
			Explanation:   "基本的なあいさつ",
			AudioText:     "こんにちは ありがとう さようなら",
		},
	}
}
