package lessons

import "github.com/Yusuprozimemet/TyporaX-AI/internal/llm"

// LessonSchema defines the JSON schema for practice lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "practice-lesson",
	Description: "A practice lesson made of typing, fill_blank, word_order and matching exercises",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lesson_title": map[string]any{
				"type":        "string",
				"description": "Short lesson title (3-8 words)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One sentence on what the lesson practices",
			},
			"exercises": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"typing", "fill_blank", "word_order", "matching"},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "Instruction shown to the learner",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "Expected answer. For matching: left=right pairs joined by commas",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "fill_blank choices, or the word_order tokens",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct",
						},
						"audio_text": map[string]any{
							"type":        "string",
							"description": "Text to read aloud",
						},
						"hints": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"type", "question", "correct_answer"},
				},
			},
		},
		"required": []any{"lesson_title", "exercises"},
	},
}
