package engine

import "testing"

func TestXPRequiredForLevelStrictlyIncreasing(t *testing.T) {
	prev := XPRequiredForLevel(1)
	if prev <= 0 {
		t.Fatalf("XPRequiredForLevel(1) = %d, want > 0", prev)
	}
	for level := 2; level <= 300; level++ {
		cur := XPRequiredForLevel(level)
		if cur <= prev {
			t.Fatalf("XPRequiredForLevel(%d) = %d, not above previous %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestRankForLevelMonotonic(t *testing.T) {
	order := map[Rank]int{
		RankF: 0, RankE: 1, RankD: 2, RankC: 3, RankB: 4,
		RankA: 5, RankS: 6, RankSS: 7, RankSSS: 8, RankSovereign: 9,
	}

	prev := RankForLevel(1)
	for level := 2; level <= 250; level++ {
		cur := RankForLevel(level)
		if order[cur] < order[prev] {
			t.Fatalf("rank dropped from %s to %s at level %d", prev, cur, level)
		}
		prev = cur
	}
}

func TestRankBandBoundaries(t *testing.T) {
	tests := []struct {
		level int
		want  Rank
	}{
		{1, RankF},
		{9, RankF},
		{10, RankE},
		{50, RankA},
		{60, RankS},
		{89, RankSS},
		{90, RankSSS},
		{91, RankSSS},
		{99, RankSSS},
		{100, RankSovereign},
		{500, RankSovereign},
	}
	for _, tt := range tests {
		if got := RankForLevel(tt.level); got != tt.want {
			t.Fatalf("RankForLevel(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}
