// Package recap turns completed matches and per-player stat lines into the daily recap:
// aggregation, team records, position leaders, callouts, prose and best/worst ranking.
// Every stage is a pure function of its inputs; Engine only wires them together and logs anomalies.
package recap

import (
	"fmt"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/rs/zerolog"
)

type summarizer interface {
	TeamSummary(tr model.TeamRecap) (string, error)
	PlayerSummaries(tr model.TeamRecap) (map[string]string, error)
}

// Engine runs the recap pipeline with a fixed set of options.
type Engine struct {
	opts     Options
	narrator summarizer
	log      zerolog.Logger
}

func NewEngine(opts Options, logger zerolog.Logger) *Engine {
	l := logger.With().Str("module", "recap").Str("component", "engine").Logger()
	return &Engine{opts: opts, narrator: NewNarrator(opts.Narrative, opts.Performance), log: l}
}

// Options returns the engine's tuning.
func (e *Engine) Options() Options { return e.opts }

// Build computes the recap for a snapshot of matches, teams and stat rows.
// It never fails: unresolvable rows are dropped and narrative failures fall back.
func (e *Engine) Build(now time.Time, matches []model.Match, teams []model.Team, rows []model.PlayerStatLine) model.RecapData {
	e.warnTies(matches)

	dir := NewTeamDirectory(teams)
	agg := Aggregate(matches, dir, rows, e.opts.KeyByPlayerID, e.log)
	if agg.Skipped > 0 {
		e.log.Warn().Int("skipped_rows", agg.Skipped).Msg("stat rows excluded from recap")
	}
	recaps := BuildTeamRecaps(agg, matches, dir, e.opts)
	recaps = e.Narrate(recaps)
	return Finalize(now, recaps, len(matches))
}

// Narrate returns copies of recaps with Summary and PlayerSummaries filled.
func (e *Engine) Narrate(recaps []model.TeamRecap) []model.TeamRecap {
	out := make([]model.TeamRecap, len(recaps))
	for i, tr := range recaps {
		tr.Summary = e.summarize(tr)
		tr.PlayerSummaries = e.playerSummaries(tr)
		out[i] = tr
	}
	return out
}

func (e *Engine) summarize(tr model.TeamRecap) string {
	s, err := guard(func() (string, error) { return e.narrator.TeamSummary(tr) })
	if err != nil || s == "" {
		e.log.Warn().Err(err).Int64("team_id", tr.TeamID).Str("team", tr.TeamName).Msg("team summary failed; using fallback")
		return FallbackSummary(tr)
	}
	return s
}

func (e *Engine) playerSummaries(tr model.TeamRecap) map[string]string {
	m, err := guard(func() (map[string]string, error) { return e.narrator.PlayerSummaries(tr) })
	if err != nil {
		e.log.Warn().Err(err).Int64("team_id", tr.TeamID).Str("team", tr.TeamName).Msg("player summaries failed; leaving empty")
		return map[string]string{}
	}
	return m
}

func (e *Engine) warnTies(matches []model.Match) {
	for _, m := range matches {
		if m.HomeScore == m.AwayScore {
			e.log.Warn().Int64("match_id", m.ID).Int("score", m.HomeScore).
				Msg("completed match ended in a tie; counting it as a loss for both sides")
		}
	}
}

// guard converts a panic inside fn into an error.
func guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("narrative panic: %v", r)
		}
	}()
	return fn()
}
