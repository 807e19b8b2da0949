package recap

import (
	"strings"

	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// Group is a position group used for leader selection and tiering.
type Group int

const (
	GroupNone Group = iota
	GroupForward
	GroupDefense
	GroupGoalie
)

func (g Group) String() string {
	switch g {
	case GroupForward:
		return "forward"
	case GroupDefense:
		return "defense"
	case GroupGoalie:
		return "goalie"
	default:
		return "none"
	}
}

// GroupOf maps a recorded position code to its group. Unknown codes belong to no group.
func GroupOf(position string) Group {
	switch strings.ToUpper(strings.TrimSpace(position)) {
	case model.PositionCenter, model.PositionLeftWing, model.PositionRightWing:
		return GroupForward
	case model.PositionLeftDefense, model.PositionRightDefense:
		return GroupDefense
	case model.PositionGoalie:
		return GroupGoalie
	default:
		return GroupNone
	}
}

// IsKnownPosition reports whether the code belongs to one of the three groups.
func IsKnownPosition(position string) bool { return GroupOf(position) != GroupNone }

// PointsPerGame is (goals+assists)/games_played, zero when no games were played.
func PointsPerGame(p model.PlayerStats) float64 {
	if p.GamesPlayed <= 0 {
		return 0
	}
	return float64(p.Points()) / float64(p.GamesPlayed)
}

// SavePercentage is saves/(saves+goals_against), zero when no shots were faced.
func SavePercentage(p model.PlayerStats) float64 {
	shots := p.Saves + p.GoalsAgainst
	if shots <= 0 {
		return 0
	}
	return float64(p.Saves) / float64(shots)
}

func perGame(total, games int) float64 {
	if games <= 0 {
		return 0
	}
	return float64(total) / float64(games)
}
