package gems

import "fmt"

// streakTiers are the answer streaks at which a streak gem is earned and
// then upgraded; they line up with StreakRarity.
var streakTiers = [...]int{5, 10, 15, 20}

// BaseStreakThreshold is the shortest streak that awards a gem.
const BaseStreakThreshold = 5

// NextStreakGoal returns the next tier above streak. ok is false once the
// legendary tier is reached and longer streaks earn nothing more.
func NextStreakGoal(streak int) (target int, ok bool) {
	for _, t := range streakTiers {
		if t > streak {
			return t, true
		}
	}
	return 0, false
}

// StreakHint is the short progress note shown next to a running streak,
// e.g. "2 to ⚡ Rare". It is empty when there is no streak or no tier
// left to reach.
func StreakHint(streak int) string {
	target, ok := NextStreakGoal(streak)
	if streak <= 0 || !ok {
		return ""
	}
	return fmt.Sprintf("%d to %s %s", target-streak, GemStreak.Icon(), StreakRarity(target).DisplayName())
}
