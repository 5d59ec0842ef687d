package gems

// GemType identifies the category of achievement.
type GemType string

const (
	GemStreak  GemType = "streak"
	GemSession GemType = "session"
	GemPerfect GemType = "perfect"
)

// AllGemTypes returns all gem types in display order.
func AllGemTypes() []GemType {
	return []GemType{GemSession, GemStreak, GemPerfect}
}

// DisplayName returns a human-readable label for the gem type.
func (t GemType) DisplayName() string {
	switch t {
	case GemStreak:
		return "Streak"
	case GemSession:
		return "Session"
	case GemPerfect:
		return "Perfect"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the gem type.
func (t GemType) Icon() string {
	switch t {
	case GemStreak:
		return "⚡"
	case GemSession:
		return "🏆"
	case GemPerfect:
		return "💎"
	default:
		return "✦"
	}
}
