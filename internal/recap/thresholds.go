package recap

// CalloutThresholds drives ClassifyCallouts. All values are per-game rates and are compared with a strict ">".
type CalloutThresholds struct {
	HighTurnoversPerGame float64 `mapstructure:"high_turnovers_per_game" validate:"gt=0"`
	StrongDefensePerGame float64 `mapstructure:"strong_defense_per_game" validate:"gt=0"`
	GreatOffensePPG      float64 `mapstructure:"great_offense_ppg" validate:"gt=0"`
	FourthForwardPPG     float64 `mapstructure:"fourth_forward_ppg" validate:"gt=0"`
}

// TierBands splits skater points-per-game into five tiers.
// A player is great above Great (exclusive); good, decent and slow are inclusive lower bounds.
// Bands must be strictly descending from Great to Slow.
type TierBands struct {
	Great  float64 `mapstructure:"great" validate:"gtfield=Good"`
	Good   float64 `mapstructure:"good" validate:"gtfield=Decent"`
	Decent float64 `mapstructure:"decent" validate:"gtfield=Slow"`
	Slow   float64 `mapstructure:"slow" validate:"gt=0"`
}

// PerformanceBands configures EvaluatePerformance.
type PerformanceBands struct {
	Forward     TierBands `mapstructure:"forward"`
	Defense     TierBands `mapstructure:"defense"`
	GoalieGreat float64   `mapstructure:"goalie_great" validate:"lte=1,gtfield=GoalieSolid"`
	GoalieSolid float64   `mapstructure:"goalie_solid" validate:"gt=0"`
}

// NarrativeThresholds is the breakpoint table used by the prose generator.
// It is intentionally independent from CalloutThresholds and PerformanceBands.
type NarrativeThresholds struct {
	ForwardElite  float64 `mapstructure:"forward_elite" validate:"gtfield=ForwardStrong"`
	ForwardStrong float64 `mapstructure:"forward_strong" validate:"gtfield=ForwardSteady"`
	ForwardSteady float64 `mapstructure:"forward_steady" validate:"gtfield=ForwardQuiet"`
	ForwardQuiet  float64 `mapstructure:"forward_quiet" validate:"gt=0"`

	DefenseElite  float64 `mapstructure:"defense_elite" validate:"gtfield=DefenseStrong"`
	DefenseStrong float64 `mapstructure:"defense_strong" validate:"gtfield=DefenseSteady"`
	DefenseSteady float64 `mapstructure:"defense_steady" validate:"gtfield=DefenseQuiet"`
	DefenseQuiet  float64 `mapstructure:"defense_quiet" validate:"gt=0"`

	GoalieElite  float64 `mapstructure:"goalie_elite" validate:"lte=1,gtfield=GoalieStrong"`
	GoalieStrong float64 `mapstructure:"goalie_strong" validate:"gtfield=GoalieSteady"`
	GoalieSteady float64 `mapstructure:"goalie_steady" validate:"gt=0"`

	// PositiveOutlook is the (wins + 0.5*otl) / games ratio that must be exceeded for an upbeat closing paragraph.
	PositiveOutlook float64 `mapstructure:"positive_outlook" validate:"gt=0,lte=1"`
}

// Options bundles every tunable of the engine.
type Options struct {
	// KeyByPlayerID aggregates by player_id when a stat row carries one. Name keying is the default.
	KeyByPlayerID bool                `mapstructure:"key_by_player_id"`
	Callouts      CalloutThresholds   `mapstructure:"callouts"`
	Performance   PerformanceBands    `mapstructure:"performance"`
	Narrative     NarrativeThresholds `mapstructure:"narrative"`
}

func DefaultCalloutThresholds() CalloutThresholds {
	return CalloutThresholds{
		HighTurnoversPerGame: 12,
		StrongDefensePerGame: 5,
		GreatOffensePPG:      3.5,
		FourthForwardPPG:     1.5,
	}
}

func DefaultPerformanceBands() PerformanceBands {
	return PerformanceBands{
		Forward:     TierBands{Great: 4.0, Good: 3.5, Decent: 2.5, Slow: 1.5},
		Defense:     TierBands{Great: 2.5, Good: 2.0, Decent: 1.5, Slow: 1.0},
		GoalieGreat: 0.84,
		GoalieSolid: 0.80,
	}
}

func DefaultNarrativeThresholds() NarrativeThresholds {
	return NarrativeThresholds{
		ForwardElite:    4.4,
		ForwardStrong:   3.6,
		ForwardSteady:   2.8,
		ForwardQuiet:    2.0,
		DefenseElite:    2.4,
		DefenseStrong:   1.8,
		DefenseSteady:   1.2,
		DefenseQuiet:    0.6,
		GoalieElite:     0.88,
		GoalieStrong:    0.84,
		GoalieSteady:    0.80,
		PositiveOutlook: 0.6,
	}
}

// DefaultOptions returns the league's production tuning.
func DefaultOptions() Options {
	return Options{
		Callouts:    DefaultCalloutThresholds(),
		Performance: DefaultPerformanceBands(),
		Narrative:   DefaultNarrativeThresholds(),
	}
}
