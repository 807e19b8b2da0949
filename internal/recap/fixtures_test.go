package recap

import (
	"io"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/rs/zerolog"
)

var testNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func quietLogger() zerolog.Logger { return zerolog.New(io.Discard) }

func team(id int64, name string) model.Team { return model.Team{ID: id, Name: name} }

func match(id, home, away int64, hs, as int, ot bool) model.Match {
	return model.Match{
		ID: id, HomeTeamID: home, AwayTeamID: away, HomeScore: hs, AwayScore: as, IsOvertime: ot,
		Status: model.MatchStatusCompleted, MatchDate: testNow.Add(-time.Duration(id) * time.Hour),
	}
}

func skater(matchID, teamID int64, name, pos string, g, a int) model.PlayerStatLine {
	return model.PlayerStatLine{MatchID: matchID, TeamID: teamID, PlayerName: name, Position: pos, Goals: g, Assists: a}
}

func goalie(matchID, teamID int64, name string, saves, ga int) model.PlayerStatLine {
	return model.PlayerStatLine{MatchID: matchID, TeamID: teamID, PlayerName: name, Position: model.PositionGoalie, Saves: saves, GoalsAgainst: ga}
}

// ps builds an aggregate with games consistent GameStats entries.
func ps(name, pos string, games, goals, assists int) model.PlayerStats {
	p := model.PlayerStats{Name: name, Position: pos, GamesPlayed: games, Goals: goals, Assists: assists}
	for i := 0; i < games; i++ {
		p.GameStats = append(p.GameStats, model.GameStats{MatchID: int64(i + 1)})
	}
	return p
}
