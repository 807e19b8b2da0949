package recap

import (
	"sort"

	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// TeamMatches derives the per-team view of every match in which teamID played, in the order of matches.
func TeamMatches(matches []model.Match, dir TeamDirectory, teamID int64) []model.TeamMatch {
	out := []model.TeamMatch{}
	for _, m := range matches {
		teamScore, oppScore, played := sideScores(m, teamID)
		if !played {
			continue
		}
		out = append(out, model.TeamMatch{
			MatchID:          m.ID,
			Opponent:         dir.opponentName(m, teamID),
			Score:            scoreLine(teamScore, oppScore),
			Result:           Outcome(teamScore, oppScore, m.IsOvertime),
			GoalDifferential: teamScore - oppScore,
			IsOvertime:       m.IsOvertime,
		})
	}
	return out
}

// RecordOf tallies results and total goal differential.
func RecordOf(tm []model.TeamMatch) (model.Record, int) {
	var rec model.Record
	diff := 0
	for _, m := range tm {
		switch m.Result {
		case model.ResultWin:
			rec.Wins++
		case model.ResultOvertimeLoss:
			rec.OTL++
		default:
			rec.Losses++
		}
		diff += m.GoalDifferential
	}
	return rec, diff
}

// Leaders picks the top and worst player per position group. Skaters are ranked by points per game,
// goalies by save percentage; ties keep roster order.
func Leaders(players []model.PlayerStats) (top, worst model.PositionLeaders) {
	top.Forward, worst.Forward = bestAndWorst(players, GroupForward, PointsPerGame)
	top.Defense, worst.Defense = bestAndWorst(players, GroupDefense, PointsPerGame)
	top.Goalie, worst.Goalie = bestAndWorst(players, GroupGoalie, SavePercentage)
	return top, worst
}

func bestAndWorst(players []model.PlayerStats, g Group, metric func(model.PlayerStats) float64) (*model.PlayerStats, *model.PlayerStats) {
	var members []model.PlayerStats
	for _, p := range players {
		if GroupOf(p.Position) == g {
			members = append(members, p)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}

	desc := append([]model.PlayerStats(nil), members...)
	sort.SliceStable(desc, func(i, j int) bool { return metric(desc[i]) > metric(desc[j]) })
	asc := append([]model.PlayerStats(nil), members...)
	sort.SliceStable(asc, func(i, j int) bool { return metric(asc[i]) < metric(asc[j]) })

	best, worst := desc[0], asc[0]
	return &best, &worst
}

// BuildTeamRecap assembles one team's recap from its roster and the global match set.
// Summary and PlayerSummaries are left empty; the narrative stage fills them.
func BuildTeamRecap(tp TeamPlayers, matches []model.Match, dir TeamDirectory, opts Options) model.TeamRecap {
	tm := TeamMatches(matches, dir, tp.TeamID)
	rec, diff := RecordOf(tm)
	top, worst := Leaders(tp.Players)
	players := append([]model.PlayerStats{}, tp.Players...)
	return model.TeamRecap{
		TeamID:           tp.TeamID,
		TeamName:         tp.TeamName,
		Record:           rec,
		Matches:          tm,
		GoalDifferential: diff,
		TopPlayers:       top,
		WorstPlayers:     worst,
		Callouts:         ClassifyCallouts(players, opts.Callouts, opts.Performance),
		Players:          players,
	}
}

// BuildTeamRecaps builds a recap for every team that has at least one aggregated player.
func BuildTeamRecaps(agg Aggregation, matches []model.Match, dir TeamDirectory, opts Options) []model.TeamRecap {
	out := make([]model.TeamRecap, 0, len(agg.Teams))
	for _, tp := range agg.Teams {
		if len(tp.Players) == 0 {
			continue
		}
		out = append(out, BuildTeamRecap(tp, matches, dir, opts))
	}
	return out
}
