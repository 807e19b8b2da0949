package recap

import (
	"fmt"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/rs/zerolog"
)

// TeamPlayers is one team's aggregated roster.
type TeamPlayers struct {
	TeamID   int64
	TeamName string
	Players  []model.PlayerStats
}

// Aggregation is the output of the stat aggregator: rosters in team directory order.
type Aggregation struct {
	Teams []TeamPlayers
	// Skipped counts stat rows dropped because their team or match could not be resolved.
	Skipped int
}

// Roster returns the aggregated players of a team, or nil when the team has none.
func (a Aggregation) Roster(teamID int64) []model.PlayerStats {
	for _, t := range a.Teams {
		if t.TeamID == teamID {
			return t.Players
		}
	}
	return nil
}

type playerKey struct {
	id   int64
	name string
}

type teamBucket struct {
	index   map[playerKey]int
	players []model.PlayerStats
}

// Outcome is the result of a match for the side that scored teamScore.
// A tie has no sanctioned meaning in the league and is coded as a loss.
func Outcome(teamScore, oppScore int, overtime bool) string {
	switch {
	case teamScore > oppScore:
		return model.ResultWin
	case teamScore < oppScore && overtime:
		return model.ResultOvertimeLoss
	default:
		return model.ResultLoss
	}
}

// sideScores returns (team, opponent) scores of m from teamID's perspective.
func sideScores(m model.Match, teamID int64) (int, int, bool) {
	switch teamID {
	case m.HomeTeamID:
		return m.HomeScore, m.AwayScore, true
	case m.AwayTeamID:
		return m.AwayScore, m.HomeScore, true
	default:
		return 0, 0, false
	}
}

func scoreLine(team, opp int) string { return fmt.Sprintf("%d-%d", team, opp) }

// Aggregate folds stat rows into one PlayerStats per (team, player).
// Rows whose team is unknown to the directory, whose match is not in matches, or whose team did not play in
// that match are dropped and logged; they never fail the fold.
func Aggregate(matches []model.Match, dir TeamDirectory, rows []model.PlayerStatLine, keyByPlayerID bool, log zerolog.Logger) Aggregation {
	byMatch := make(map[int64]model.Match, len(matches))
	for _, m := range matches {
		byMatch[m.ID] = m
	}

	buckets := make(map[int64]*teamBucket)
	skipped := 0
	for _, row := range rows {
		team, ok := dir.Lookup(row.TeamID)
		if !ok {
			log.Warn().Int64("team_id", row.TeamID).Int64("match_id", row.MatchID).Str("player", row.PlayerName).
				Msg("stat row references unknown team; skipping")
			skipped++
			continue
		}
		m, ok := byMatch[row.MatchID]
		if !ok {
			log.Warn().Int64("match_id", row.MatchID).Str("player", row.PlayerName).Msg("stat row references match outside window; skipping")
			skipped++
			continue
		}
		teamScore, oppScore, played := sideScores(m, row.TeamID)
		if !played {
			log.Warn().Int64("team_id", row.TeamID).Int64("match_id", row.MatchID).Str("player", row.PlayerName).
				Msg("stat row team did not play in match; skipping")
			skipped++
			continue
		}

		b := buckets[team.ID]
		if b == nil {
			b = &teamBucket{index: make(map[playerKey]int)}
			buckets[team.ID] = b
		}

		key := playerKey{name: row.PlayerName}
		if keyByPlayerID && row.PlayerID != nil {
			key = playerKey{id: *row.PlayerID}
		}
		i, seen := b.index[key]
		if !seen {
			b.players = append(b.players, model.PlayerStats{
				PlayerID:  row.PlayerID,
				Name:      row.PlayerName,
				Position:  row.Position,
				TeamID:    team.ID,
				TeamName:  team.Name,
				GameStats: []model.GameStats{},
			})
			i = len(b.players) - 1
			b.index[key] = i
		}
		b.players[i] = accumulate(b.players[i], row, model.GameStats{
			MatchID:  m.ID,
			Opponent: dir.opponentName(m, row.TeamID),
			Result:   Outcome(teamScore, oppScore, m.IsOvertime),
			Score:    scoreLine(teamScore, oppScore),
		})
	}

	out := Aggregation{Teams: make([]TeamPlayers, 0, len(buckets)), Skipped: skipped}
	for _, id := range dir.order {
		b, ok := buckets[id]
		if !ok {
			continue
		}
		out.Teams = append(out.Teams, TeamPlayers{TeamID: id, TeamName: dir.byID[id].Name, Players: b.players})
	}
	return out
}

// accumulate returns p with row added to every counter and one more GameStats entry.
func accumulate(p model.PlayerStats, row model.PlayerStatLine, g model.GameStats) model.PlayerStats {
	p.GamesPlayed++
	p.Goals += row.Goals
	p.Assists += row.Assists
	p.Shots += row.Shots
	p.Hits += row.Hits
	p.PIM += row.PIM
	p.PlusMinus += row.PlusMinus
	p.Blocks += row.Blocks
	p.Giveaways += row.Giveaways
	p.Takeaways += row.Takeaways
	p.Saves += row.Saves
	p.GoalsAgainst += row.GoalsAgainst

	g.Goals = row.Goals
	g.Assists = row.Assists
	g.Points = row.Goals + row.Assists
	g.Shots = row.Shots
	g.Hits = row.Hits
	g.PIM = row.PIM
	g.PlusMinus = row.PlusMinus
	g.Blocks = row.Blocks
	g.Giveaways = row.Giveaways
	g.Takeaways = row.Takeaways
	g.Saves = row.Saves
	g.GoalsAgainst = row.GoalsAgainst

	games := make([]model.GameStats, len(p.GameStats), len(p.GameStats)+1)
	copy(games, p.GameStats)
	p.GameStats = append(games, g)
	return p
}
