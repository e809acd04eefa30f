package engine

import "math"

// XPRequiredCoef and XPRequiredExp define the leveling curve:
// XP_req(L) = floor(200 * L^1.45).
const (
	XPRequiredCoef = 200.0
	XPRequiredExp  = 1.45
)

// XPRequiredForLevel returns the experience needed to advance from the given
// level to the next one. Strictly increasing for level >= 1.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(XPRequiredCoef * math.Pow(float64(level), XPRequiredExp)))
}

// Rank is a coarse power tier derived purely from level.
type Rank string

const (
	RankF         Rank = "F"
	RankE         Rank = "E"
	RankD         Rank = "D"
	RankC         Rank = "C"
	RankB         Rank = "B"
	RankA         Rank = "A"
	RankS         Rank = "S"
	RankSS        Rank = "SS"
	RankSSS       Rank = "SSS"
	RankSovereign Rank = "Sovereign"
)

type rankBand struct {
	minLevel int
	rank     Rank
}

// rankBands is ordered from highest threshold to lowest so the first match wins.
var rankBands = []rankBand{
	{100, RankSovereign},
	{90, RankSSS},
	{75, RankSS},
	{60, RankS},
	{50, RankA},
	{40, RankB},
	{30, RankC},
	{20, RankD},
	{10, RankE},
	{1, RankF},
}

// RankForLevel returns the rank band for a level. Monotonic: a higher level
// never yields a lower rank.
func RankForLevel(level int) Rank {
	for _, b := range rankBands {
		if level >= b.minLevel {
			return b.rank
		}
	}
	return RankF
}
