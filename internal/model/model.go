// Package model holds the league entities and recap DTOs shared by every layer.
package model

import "time"

// Match statuses as stored in the matches table.
const (
	MatchStatusScheduled = "Scheduled"
	MatchStatusCompleted = "Completed"
)

// Position codes recorded on stat lines.
const (
	PositionCenter       = "C"
	PositionLeftWing     = "LW"
	PositionRightWing    = "RW"
	PositionLeftDefense  = "LD"
	PositionRightDefense = "RD"
	PositionGoalie       = "G"
)

// Team represents a league team.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player is a registered roster entry. Stat lines may reference it through PlayerID.
type Player struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Match represents a scheduled or completed game between two teams.
// HomeTeamName and AwayTeamName are filled by joins on read paths and are never written.
type Match struct {
	ID           int64     `json:"id"`
	HomeTeamID   int64     `json:"home_team_id"`
	AwayTeamID   int64     `json:"away_team_id"`
	HomeTeamName string    `json:"home_team_name,omitempty"`
	AwayTeamName string    `json:"away_team_name,omitempty"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	IsOvertime   bool      `json:"is_overtime"`
	Status       string    `json:"status"` // Scheduled, Completed
	MatchDate    time.Time `json:"match_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PlayerStatLine is one player's statistical line in one match.
// PlayerID is optional; stat entry historically only carried the player's name.
type PlayerStatLine struct {
	ID           int64     `json:"id"`
	MatchID      int64     `json:"match_id"`
	TeamID       int64     `json:"team_id"`
	PlayerID     *int64    `json:"player_id,omitempty"`
	PlayerName   string    `json:"player_name"`
	Position     string    `json:"position"`
	Goals        int       `json:"goals"`
	Assists      int       `json:"assists"`
	Shots        int       `json:"shots"`
	Hits         int       `json:"hits"`
	PIM          int       `json:"pim"`
	PlusMinus    int       `json:"plus_minus"`
	Blocks       int       `json:"blocks"`
	Giveaways    int       `json:"giveaways"`
	Takeaways    int       `json:"takeaways"`
	Saves        int       `json:"saves"`
	GoalsAgainst int       `json:"goals_against"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SavedRecap is an archived recap as stored for public viewing.
type SavedRecap struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Data      RecapData `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
