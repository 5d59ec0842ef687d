package session

import (
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// lessonReadyMsg is sent when the lesson to play has been generated or
// loaded. Notice is shown above the first exercise when set.
type lessonReadyMsg struct {
	Lesson exercise.Lesson
	Notice string
}

// restartMsg asks the screen to replay the same lesson from the start.
type restartMsg struct{}

// nextLessonMsg asks the screen to fetch and play a fresh lesson.
type nextLessonMsg struct{}
