package gems

import "time"

// GemAward represents a single gem earned.
type GemAward struct {
	Type        GemType
	Rarity      Rarity
	Language    string
	LessonTitle string
	SessionID   string
	Reason      string // human-readable reason, e.g. "7 correct in a row!"
	AwardedAt   time.Time
}
