package model

// Match results from a single team's point of view.
const (
	ResultWin          = "W"
	ResultLoss         = "L"
	ResultOvertimeLoss = "OTL"
)

// GameStats is one game's breakdown inside an aggregated PlayerStats.
type GameStats struct {
	MatchID      int64  `json:"match_id"`
	Opponent     string `json:"opponent"`
	Result       string `json:"result"`
	Score        string `json:"score"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Points       int    `json:"points"`
	Shots        int    `json:"shots"`
	Hits         int    `json:"hits"`
	PIM          int    `json:"pim"`
	PlusMinus    int    `json:"plus_minus"`
	Blocks       int    `json:"blocks"`
	Giveaways    int    `json:"giveaways"`
	Takeaways    int    `json:"takeaways"`
	Saves        int    `json:"saves"`
	GoalsAgainst int    `json:"goals_against"`
}

// PlayerStats accumulates every stat line of one player on one team.
// GamesPlayed always equals len(GameStats).
type PlayerStats struct {
	PlayerID     *int64      `json:"player_id,omitempty"`
	Name         string      `json:"name"`
	Position     string      `json:"position"`
	TeamID       int64       `json:"team_id"`
	TeamName     string      `json:"team_name"`
	GamesPlayed  int         `json:"games_played"`
	Goals        int         `json:"goals"`
	Assists      int         `json:"assists"`
	Shots        int         `json:"shots"`
	Hits         int         `json:"hits"`
	PIM          int         `json:"pim"`
	PlusMinus    int         `json:"plus_minus"`
	Blocks       int         `json:"blocks"`
	Giveaways    int         `json:"giveaways"`
	Takeaways    int         `json:"takeaways"`
	Saves        int         `json:"saves"`
	GoalsAgainst int         `json:"goals_against"`
	GameStats    []GameStats `json:"game_stats"`
}

// Points is goals plus assists.
func (p PlayerStats) Points() int { return p.Goals + p.Assists }

// TeamMatch is a per-team view of a completed match.
type TeamMatch struct {
	MatchID          int64  `json:"match_id"`
	Opponent         string `json:"opponent"`
	Score            string `json:"score"`
	Result           string `json:"result"`
	GoalDifferential int    `json:"goal_differential"`
	IsOvertime       bool   `json:"is_overtime"`
}

// Record is a win/loss/overtime-loss line.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	OTL    int `json:"otl"`
}

// Games is the number of games the record covers.
func (r Record) Games() int { return r.Wins + r.Losses + r.OTL }

// PositionLeaders holds one player per position group; a nil entry means the group was empty.
type PositionLeaders struct {
	Forward *PlayerStats `json:"forward"`
	Defense *PlayerStats `json:"defense"`
	Goalie  *PlayerStats `json:"goalie"`
}

// Callouts buckets players into narrative categories. Categories may overlap.
type Callouts struct {
	HighTurnovers []PlayerStats `json:"high_turnovers"`
	StrongDefense []PlayerStats `json:"strong_defense"`
	GreatOffense  []PlayerStats `json:"great_offense"`
	FourthForward []PlayerStats `json:"fourth_forward"`
	Underwhelming []PlayerStats `json:"underwhelming"`
}

// TeamRecap is the per-team aggregate of a recap.
type TeamRecap struct {
	TeamID           int64             `json:"team_id"`
	TeamName         string            `json:"team_name"`
	Record           Record            `json:"record"`
	Matches          []TeamMatch       `json:"matches"`
	GoalDifferential int               `json:"goal_differential"`
	TopPlayers       PositionLeaders   `json:"top_players"`
	WorstPlayers     PositionLeaders   `json:"worst_players"`
	Callouts         Callouts          `json:"callouts"`
	Players          []PlayerStats     `json:"players"`
	Summary          string            `json:"summary,omitempty"`
	PlayerSummaries  map[string]string `json:"player_summaries,omitempty"`
}

// RecapData is the response envelope of one recap generation.
type RecapData struct {
	Date         string      `json:"date"`
	TeamRecaps   []TeamRecap `json:"team_recaps"`
	BestTeam     *TeamRecap  `json:"best_team"`
	WorstTeam    *TeamRecap  `json:"worst_team"`
	TotalMatches int         `json:"total_matches"`
}
