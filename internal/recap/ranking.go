package recap

import (
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// DateLayout is the ISO date format used for recap dates.
const DateLayout = "2006-01-02"

func standing(tr model.TeamRecap) int {
	return tr.Record.Wins - tr.Record.Losses - tr.Record.OTL
}

// RankTeams selects the best and worst team by (wins - losses - otl), then goal differential.
// The first team in slice order wins a full tie. Both are nil for an empty slice.
func RankTeams(recaps []model.TeamRecap) (best, worst *model.TeamRecap) {
	if len(recaps) == 0 {
		return nil, nil
	}
	bi, wi := 0, 0
	for i := 1; i < len(recaps); i++ {
		s, d := standing(recaps[i]), recaps[i].GoalDifferential
		bs, bd := standing(recaps[bi]), recaps[bi].GoalDifferential
		if s > bs || (s == bs && d > bd) {
			bi = i
		}
		ws, wd := standing(recaps[wi]), recaps[wi].GoalDifferential
		if s < ws || (s == ws && d < wd) {
			wi = i
		}
	}
	b, w := recaps[bi], recaps[wi]
	return &b, &w
}

// Finalize packages the recap envelope dated with the UTC day of now.
func Finalize(now time.Time, recaps []model.TeamRecap, totalMatches int) model.RecapData {
	if recaps == nil {
		recaps = []model.TeamRecap{}
	}
	best, worst := RankTeams(recaps)
	return model.RecapData{
		Date:         now.UTC().Format(DateLayout),
		TeamRecaps:   recaps,
		BestTeam:     best,
		WorstTeam:    worst,
		TotalMatches: totalMatches,
	}
}
