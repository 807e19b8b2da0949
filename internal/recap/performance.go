package recap

import "github.com/maxviazov/mghl-recap-service/internal/model"

// Tier is a qualitative performance bucket.
type Tier string

const (
	TierGreat  Tier = "great"
	TierGood   Tier = "good"
	TierDecent Tier = "decent"
	TierSlow   Tier = "slow"
	TierBad    Tier = "bad"
	TierSolid  Tier = "solid" // goalies only
	// TierUnrated is returned for players without a known position group.
	TierUnrated Tier = ""
)

// EvaluatePerformance rates a player. Goalies are rated on save percentage (no shots faced is "bad"),
// skaters on points per game against their group's bands.
func EvaluatePerformance(p model.PlayerStats, bands PerformanceBands) Tier {
	switch GroupOf(p.Position) {
	case GroupGoalie:
		return goalieTier(p, bands)
	case GroupForward:
		return skaterTier(PointsPerGame(p), bands.Forward)
	case GroupDefense:
		return skaterTier(PointsPerGame(p), bands.Defense)
	default:
		return TierUnrated
	}
}

func goalieTier(p model.PlayerStats, bands PerformanceBands) Tier {
	if p.Saves+p.GoalsAgainst <= 0 {
		return TierBad
	}
	sv := SavePercentage(p)
	switch {
	case sv >= bands.GoalieGreat:
		return TierGreat
	case sv >= bands.GoalieSolid:
		return TierSolid
	default:
		return TierBad
	}
}

func skaterTier(ppg float64, b TierBands) Tier {
	switch {
	case ppg > b.Great:
		return TierGreat
	case ppg >= b.Good:
		return TierGood
	case ppg >= b.Decent:
		return TierDecent
	case ppg >= b.Slow:
		return TierSlow
	default:
		return TierBad
	}
}
