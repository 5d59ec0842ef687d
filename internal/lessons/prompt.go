package lessons

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an expert language learning curriculum designer. Generate structured, pedagogically sound lessons in JSON format.`

func buildLessonUserMessage(req Request, lang Language) string {
	a := req.Analysis
	if a == nil {
		a = &Analysis{Difficulty: Beginner}
	}
	topic := req.Topic
	if topic == "" {
		topic = "general"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s (%s)\n", lang.Name, lang.Display)
	fmt.Fprintf(&b, "Domain: %s\n", topic)
	fmt.Fprintf(&b, "Proficiency: %s\n", a.Difficulty)
	if a.AccuracyPercent > 0 {
		fmt.Fprintf(&b, "Recent accuracy: %d%%\n", a.AccuracyPercent)
	}

	b.WriteString("\nFocus Areas:\n")
	if len(a.FocusAreas) == 0 {
		fmt.Fprintf(&b, "- General %s vocabulary and phrases\n", topic)
	} else {
		for _, f := range a.FocusAreas {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	if len(a.ExerciseMix) > 0 {
		names := make([]string, len(a.ExerciseMix))
		for i, t := range a.ExerciseMix {
			names[i] = string(t)
		}
		fmt.Fprintf(&b, "\nEmphasise these exercise types: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&b, `
Instructions:
Create 8-10 exercises in %[1]s for a learner working in the %[2]s domain.
1. typing (2-3): a realistic %[2]s sentence the learner must type exactly. audio_text repeats the sentence.
2. fill_blank (2-3): the question contains ___ ; options holds 4 plausible words and correct_answer is exactly one of them.
3. word_order (1-2): correct_answer is a 5-7 word sentence; options holds exactly the words of correct_answer, split on spaces and shuffled, punctuation kept attached.
4. matching (1-2): correct_answer is 4-6 pairs written %[3]q, joined by commas, with no repeated left side.
Every exercise gets a short explanation and 1-2 hints. Use natural, native-like %[1]s at %[4]s level.
Return only the JSON object.`, lang.Name, topic, "term=translation", a.Difficulty)

	return b.String()
}
