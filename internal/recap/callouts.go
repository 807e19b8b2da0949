package recap

import "github.com/maxviazov/mghl-recap-service/internal/model"

// ClassifyCallouts buckets players by per-game thresholds. A player can land in several categories;
// only the "bad" performance tier feeds Underwhelming.
func ClassifyCallouts(players []model.PlayerStats, t CalloutThresholds, bands PerformanceBands) model.Callouts {
	out := model.Callouts{
		HighTurnovers: []model.PlayerStats{},
		StrongDefense: []model.PlayerStats{},
		GreatOffense:  []model.PlayerStats{},
		FourthForward: []model.PlayerStats{},
		Underwhelming: []model.PlayerStats{},
	}
	for _, p := range players {
		group := GroupOf(p.Position)
		ppg := PointsPerGame(p)

		if perGame(p.Giveaways, p.GamesPlayed) > t.HighTurnoversPerGame {
			out.HighTurnovers = append(out.HighTurnovers, p)
		}
		if perGame(p.Takeaways, p.GamesPlayed) > t.StrongDefensePerGame {
			out.StrongDefense = append(out.StrongDefense, p)
		}
		if group == GroupForward && ppg > t.GreatOffensePPG {
			out.GreatOffense = append(out.GreatOffense, p)
		}
		if group == GroupDefense && ppg > t.FourthForwardPPG {
			out.FourthForward = append(out.FourthForward, p)
		}
		if EvaluatePerformance(p, bands) == TierBad {
			out.Underwhelming = append(out.Underwhelming, p)
		}
	}
	return out
}
