package gems

import "testing"

func TestNextStreakGoal(t *testing.T) {
	tests := []struct {
		streak int
		target int
		ok     bool
	}{
		{0, 5, true},
		{4, 5, true},
		{5, 10, true},
		{9, 10, true},
		{14, 15, true},
		{19, 20, true},
		{20, 0, false},
		{33, 0, false},
	}
	for _, tt := range tests {
		target, ok := NextStreakGoal(tt.streak)
		if target != tt.target || ok != tt.ok {
			t.Errorf("NextStreakGoal(%d) = %d, %v; want %d, %v", tt.streak, target, ok, tt.target, tt.ok)
		}
	}
}

func TestStreakTiersMatchRarity(t *testing.T) {
	if streakTiers[0] != BaseStreakThreshold {
		t.Errorf("first tier = %d, want BaseStreakThreshold", streakTiers[0])
	}
	for i := 1; i < len(streakTiers); i++ {
		below, at := StreakRarity(streakTiers[i]-1), StreakRarity(streakTiers[i])
		if below == at {
			t.Errorf("tier %d does not upgrade rarity (%s)", streakTiers[i], at)
		}
	}
}

func TestStreakHint(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, ""},
		{3, "2 to ⚡ Common"},
		{5, "5 to ⚡ Rare"},
		{18, "2 to ⚡ Legendary"},
		{20, ""},
	}
	for _, tt := range tests {
		if got := StreakHint(tt.streak); got != tt.want {
			t.Errorf("StreakHint(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}
