package gems

import "strings"

// Rarity is how hard a gem was to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName capitalizes known rarities and returns anything else as is.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return strings.ToUpper(string(r[:1])) + string(r[1:])
	default:
		return string(r)
	}
}

// tier maps the lowest qualifying value to a rarity.
type tier struct {
	min    int
	rarity Rarity
}

// pick returns the rarity of the highest tier v reaches, or below when
// it reaches none. tiers are in ascending order.
func pick(v int, below Rarity, tiers []tier) Rarity {
	r := below
	for _, t := range tiers {
		if v < t.min {
			break
		}
		r = t.rarity
	}
	return r
}

var (
	// accuracy percent of a completed lesson
	sessionTiers = []tier{{50, RarityRare}, {75, RarityEpic}, {90, RarityLegendary}}
	// exercises in a lesson with no wrong answer
	perfectTiers = []tier{{6, RarityEpic}, {10, RarityLegendary}}
)

// StreakRarity returns the rarity of a streak gem. Streaks below the
// first tier still map to common; Evaluate never awards them.
func StreakRarity(length int) Rarity {
	tiers := make([]tier, len(streakTiers))
	for i, n := range streakTiers {
		tiers[i] = tier{n, AllRarities()[i]}
	}
	return pick(length, RarityCommon, tiers)
}

// SessionRarity returns the rarity for a given session accuracy percentage.
func SessionRarity(accuracy int) Rarity {
	return pick(accuracy, RarityCommon, sessionTiers)
}

// PerfectRarity returns the rarity of a flawless lesson of n exercises.
func PerfectRarity(n int) Rarity {
	return pick(n, RarityRare, perfectTiers)
}
