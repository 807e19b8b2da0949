package recap

import (
	"testing"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(players []model.PlayerStats) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}

func TestClassifyCallouts_EmptyListsNotNil(t *testing.T) {
	c := ClassifyCallouts(nil, DefaultCalloutThresholds(), DefaultPerformanceBands())
	assert.NotNil(t, c.HighTurnovers)
	assert.NotNil(t, c.StrongDefense)
	assert.NotNil(t, c.GreatOffense)
	assert.NotNil(t, c.FourthForward)
	assert.NotNil(t, c.Underwhelming)
}

func TestClassifyCallouts_GreatOffenseForward(t *testing.T) {
	fwd := ps("Sniper", model.PositionCenter, 4, 10, 6)

	c := ClassifyCallouts([]model.PlayerStats{fwd}, DefaultCalloutThresholds(), DefaultPerformanceBands())

	assert.Equal(t, []string{"Sniper"}, names(c.GreatOffense))
	assert.Empty(t, c.FourthForward, "forwards never qualify as fourth forward")
	assert.Empty(t, c.Underwhelming)
	assert.Equal(t, TierGood, EvaluatePerformance(fwd, DefaultPerformanceBands()))
}

func TestClassifyCallouts_Thresholds(t *testing.T) {
	turnover := ps("Sloppy", model.PositionLeftWing, 1, 2, 2)
	turnover.Giveaways = 13
	atLimit := ps("Edge", model.PositionLeftWing, 1, 2, 2)
	atLimit.Giveaways = 12
	thief := ps("Thief", model.PositionRightDefense, 2, 0, 3)
	thief.Takeaways = 11
	rover := ps("Rover", model.PositionLeftDefense, 2, 1, 3)
	quiet := ps("Quiet", model.PositionCenter, 3, 0, 1)
	keeper := model.PlayerStats{Name: "Keeper", Position: model.PositionGoalie, GamesPlayed: 1, Saves: 10, GoalsAgainst: 6,
		GameStats: []model.GameStats{{MatchID: 1}}}

	c := ClassifyCallouts([]model.PlayerStats{turnover, atLimit, thief, rover, quiet, keeper},
		DefaultCalloutThresholds(), DefaultPerformanceBands())

	assert.Equal(t, []string{"Sloppy"}, names(c.HighTurnovers), "threshold is strict")
	assert.Equal(t, []string{"Thief"}, names(c.StrongDefense))
	assert.Equal(t, []string{"Rover"}, names(c.FourthForward))
	require.Contains(t, names(c.Underwhelming), "Quiet")
	require.Contains(t, names(c.Underwhelming), "Keeper")
	assert.NotContains(t, names(c.Underwhelming), "Thief")
	assert.NotContains(t, names(c.Underwhelming), "Sloppy")
}

func TestClassifyCallouts_PlayerInSeveralLists(t *testing.T) {
	p := ps("Chaos", model.PositionCenter, 1, 3, 2)
	p.Giveaways = 20
	p.Takeaways = 9

	c := ClassifyCallouts([]model.PlayerStats{p}, DefaultCalloutThresholds(), DefaultPerformanceBands())

	assert.Len(t, c.HighTurnovers, 1)
	assert.Len(t, c.StrongDefense, 1)
	assert.Len(t, c.GreatOffense, 1)
}
