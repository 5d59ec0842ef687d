package exercise

import "fmt"

// InvalidLessonError is returned when a lesson as a whole cannot be played,
// for example because it has no exercises or cannot be decoded.
type InvalidLessonError struct {
	Reason string
}

func (e *InvalidLessonError) Error() string {
	return "invalid lesson: " + e.Reason
}

// MalformedExerciseError is returned when one exercise violates the
// required-field rules of its type. The whole lesson is rejected.
type MalformedExerciseError struct {
	Index  int // 0-based position in the lesson
	ID     string
	Type   Type
	Reason string
}

func (e *MalformedExerciseError) Error() string {
	return fmt.Sprintf("malformed exercise %d (%s, %s): %s", e.Index+1, e.ID, e.Type, e.Reason)
}

// UnsupportedTypeError is returned by a strict Checker for unknown tags.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported exercise type %q", string(e.Type))
}
