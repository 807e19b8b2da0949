package recap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// ErrMalformedStats marks aggregates that cannot be narrated, e.g. a player without games.
var ErrMalformedStats = errors.New("malformed stats")

// Narrator renders prose from team recaps.
type Narrator struct {
	thresholds NarrativeThresholds
	bands      PerformanceBands
}

func NewNarrator(t NarrativeThresholds, bands PerformanceBands) Narrator {
	return Narrator{thresholds: t, bands: bands}
}

// TeamSummary produces the multi-paragraph team summary.
func (n Narrator) TeamSummary(tr model.TeamRecap) (string, error) {
	games := tr.Record.Games()
	if games == 0 {
		return "", fmt.Errorf("%w: %s has no matches", ErrMalformedStats, tr.TeamName)
	}
	for _, p := range tr.Players {
		if err := checkPlayer(p); err != nil {
			return "", err
		}
	}

	forwards, defense, goalies := splitGroups(tr.Players)
	paragraphs := []string{
		n.opening(tr),
		n.forwardParagraph(forwards),
		n.defenseParagraph(defense),
		n.goalieParagraph(goalies),
		n.outlook(tr),
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

// PlayerSummaries produces one sentence per player keyed by display name.
// A name shared by several players is suffixed with " #<id>" when the player has an id,
// otherwise the first id-less holder keeps the bare name and later ones get " (2)", " (3)".
func (n Narrator) PlayerSummaries(tr model.TeamRecap) (map[string]string, error) {
	names := make(map[string]int, len(tr.Players))
	for _, p := range tr.Players {
		if err := checkPlayer(p); err != nil {
			return nil, err
		}
		names[p.Name]++
	}

	out := make(map[string]string, len(tr.Players))
	anonymous := make(map[string]int)
	for _, p := range tr.Players {
		key := p.Name
		if names[p.Name] > 1 {
			if p.PlayerID != nil {
				key = fmt.Sprintf("%s #%d", p.Name, *p.PlayerID)
			} else {
				anonymous[p.Name]++
				if nth := anonymous[p.Name]; nth > 1 {
					key = fmt.Sprintf("%s (%d)", p.Name, nth)
				}
			}
		}
		// A real name may already look like a suffixed key.
		for i := 2; ; i++ {
			if _, taken := out[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s (%d)", p.Name, i)
		}
		out[key] = n.playerSentence(p)
	}
	return out, nil
}

// FallbackSummary is the fixed template used when TeamSummary fails. It never returns an empty string.
func FallbackSummary(tr model.TeamRecap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s went %d-%d-%d in this stretch.", displayName(tr.TeamName), tr.Record.Wins, tr.Record.Losses, tr.Record.OTL)
	if len(tr.Matches) > 0 {
		results := make([]string, 0, len(tr.Matches))
		for _, m := range tr.Matches {
			results = append(results, fmt.Sprintf("%s %s vs %s", m.Result, m.Score, m.Opponent))
		}
		fmt.Fprintf(&b, " Results: %s.", strings.Join(results, "; "))
	}
	if f := tr.TopPlayers.Forward; f != nil {
		fmt.Fprintf(&b, " Top forward: %s.", f.Name)
	}
	if d := tr.TopPlayers.Defense; d != nil {
		fmt.Fprintf(&b, " Top defenseman: %s.", d.Name)
	}
	return b.String()
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "This team"
	}
	return name
}

func checkPlayer(p model.PlayerStats) error {
	if p.GamesPlayed <= 0 || p.GamesPlayed != len(p.GameStats) {
		return fmt.Errorf("%w: %s games_played=%d entries=%d", ErrMalformedStats, p.Name, p.GamesPlayed, len(p.GameStats))
	}
	for _, v := range []int{p.Goals, p.Assists, p.Shots, p.Hits, p.PIM, p.Blocks, p.Giveaways, p.Takeaways, p.Saves, p.GoalsAgainst} {
		if v < 0 {
			return fmt.Errorf("%w: %s has a negative counter", ErrMalformedStats, p.Name)
		}
	}
	return nil
}

func splitGroups(players []model.PlayerStats) (forwards, defense, goalies []model.PlayerStats) {
	for _, p := range players {
		switch GroupOf(p.Position) {
		case GroupForward:
			forwards = append(forwards, p)
		case GroupDefense:
			defense = append(defense, p)
		case GroupGoalie:
			goalies = append(goalies, p)
		}
	}
	byPPG := func(s []model.PlayerStats) {
		sort.SliceStable(s, func(i, j int) bool { return PointsPerGame(s[i]) > PointsPerGame(s[j]) })
	}
	byPPG(forwards)
	byPPG(defense)
	sort.SliceStable(goalies, func(i, j int) bool { return SavePercentage(goalies[i]) > SavePercentage(goalies[j]) })
	return forwards, defense, goalies
}

func (n Narrator) opening(tr model.TeamRecap) string {
	rec := tr.Record
	s := fmt.Sprintf("%s went %d-%d-%d over %s with a %s goal differential.",
		displayName(tr.TeamName), rec.Wins, rec.Losses, rec.OTL, plural(rec.Games(), "game"), signed(tr.GoalDifferential))
	switch {
	case rec.Losses+rec.OTL == 0:
		s += " A perfect run."
	case rec.Wins == 0:
		s += " The wins did not come."
	case tr.GoalDifferential > 0:
		s += fmt.Sprintf(" They outscored opponents by %s.", plural(tr.GoalDifferential, "goal"))
	case tr.GoalDifferential < 0:
		s += fmt.Sprintf(" They were outscored by %s.", plural(-tr.GoalDifferential, "goal"))
	}
	return s
}

func (n Narrator) forwardParagraph(forwards []model.PlayerStats) string {
	if len(forwards) == 0 {
		return "No forwards recorded stats in this stretch."
	}
	t := n.thresholds
	notes := make([]string, 0, len(forwards))
	for _, p := range forwards {
		ppg := PointsPerGame(p)
		switch {
		case ppg >= t.ForwardElite:
			notes = append(notes, fmt.Sprintf("%s was dominant with %dG and %dA (%.2f PPG)", p.Name, p.Goals, p.Assists, ppg))
		case ppg >= t.ForwardStrong:
			notes = append(notes, fmt.Sprintf("%s produced at a strong clip with %s in %s", p.Name, plural(p.Points(), "point"), plural(p.GamesPlayed, "game")))
		case ppg >= t.ForwardSteady:
			notes = append(notes, fmt.Sprintf("%s chipped in steadily with %s", p.Name, plural(p.Points(), "point")))
		case ppg >= t.ForwardQuiet:
			notes = append(notes, fmt.Sprintf("%s was quiet with %s", p.Name, plural(p.Points(), "point")))
		default:
			notes = append(notes, fmt.Sprintf("%s struggled to find the scoresheet (%s in %s)", p.Name, plural(p.Points(), "point"), plural(p.GamesPlayed, "game")))
		}
	}
	return "Up front, " + strings.Join(notes, "; ") + "."
}

func (n Narrator) defenseParagraph(defense []model.PlayerStats) string {
	if len(defense) == 0 {
		return "No defensemen recorded stats in this stretch."
	}
	t := n.thresholds
	notes := make([]string, 0, len(defense))
	for _, p := range defense {
		ppg := PointsPerGame(p)
		var note string
		switch {
		case ppg >= t.DefenseElite:
			note = fmt.Sprintf("%s drove the offense from the blue line with %s (%.2f PPG)", p.Name, plural(p.Points(), "point"), ppg)
		case ppg >= t.DefenseStrong:
			note = fmt.Sprintf("%s jumped into the play often for %s", p.Name, plural(p.Points(), "point"))
		case ppg >= t.DefenseSteady:
			note = fmt.Sprintf("%s added a steady %s", p.Name, plural(p.Points(), "point"))
		case ppg >= t.DefenseQuiet:
			note = fmt.Sprintf("%s kept it simple with %s", p.Name, plural(p.Points(), "point"))
		default:
			note = fmt.Sprintf("%s was held off the scoresheet", p.Name)
		}
		if p.Takeaways > 0 || p.Blocks > 0 {
			note += fmt.Sprintf(", with %s and %s", plural(p.Takeaways, "takeaway"), plural(p.Blocks, "block"))
		}
		notes = append(notes, note)
	}
	return "On the back end, " + strings.Join(notes, "; ") + "."
}

func (n Narrator) goalieParagraph(goalies []model.PlayerStats) string {
	if len(goalies) == 0 {
		return "No goaltender recorded stats in this stretch."
	}
	t := n.thresholds
	notes := make([]string, 0, len(goalies))
	for _, p := range goalies {
		shots := p.Saves + p.GoalsAgainst
		if shots == 0 {
			notes = append(notes, fmt.Sprintf("%s did not face a recorded shot", p.Name))
			continue
		}
		sv := SavePercentage(p)
		var verdict string
		switch {
		case sv >= t.GoalieElite:
			verdict = "stole games"
		case sv >= t.GoalieStrong:
			verdict = "was reliable"
		case sv >= t.GoalieSteady:
			verdict = "held on"
		default:
			verdict = "had a rough go"
		}
		notes = append(notes, fmt.Sprintf("%s %s, stopping %d of %d shots (%s, rated %s)",
			p.Name, verdict, p.Saves, shots, formatSavePct(sv), EvaluatePerformance(p, n.bands)))
	}
	return "In net, " + strings.Join(notes, "; ") + "."
}

func (n Narrator) outlook(tr model.TeamRecap) string {
	pct := WinPercentage(tr.Record)
	name := displayName(tr.TeamName)
	if pct > n.thresholds.PositiveOutlook {
		return fmt.Sprintf("Taking %.0f%% of available points, %s looks like a contender heading into the next slate.", pct*100, name)
	}
	return fmt.Sprintf("Taking %.0f%% of available points, %s will need a better stretch to climb the standings.", pct*100, name)
}

func (n Narrator) playerSentence(p model.PlayerStats) string {
	if GroupOf(p.Position) == GroupGoalie {
		shots := p.Saves + p.GoalsAgainst
		if shots == 0 {
			return fmt.Sprintf("%s dressed for %s without facing a recorded shot.", p.Name, plural(p.GamesPlayed, "game"))
		}
		return fmt.Sprintf("%s stopped %d of %d shots (%s) over %s, a %s showing.",
			p.Name, p.Saves, shots, formatSavePct(SavePercentage(p)), plural(p.GamesPlayed, "game"), EvaluatePerformance(p, n.bands))
	}
	s := fmt.Sprintf("%s recorded %dG and %dA (%s) in %s, finishing %s with %s and %s.",
		p.Name, p.Goals, p.Assists, plural(p.Points(), "point"), plural(p.GamesPlayed, "game"),
		signed(p.PlusMinus), plural(p.Shots, "shot"), plural(p.Hits, "hit"))
	if p.Takeaways > 0 || p.Giveaways > 0 {
		s += fmt.Sprintf(" Puck battles: %s, %s.", plural(p.Takeaways, "takeaway"), plural(p.Giveaways, "giveaway"))
	}
	return s
}

// WinPercentage is (wins + 0.5*otl) / games, zero for an empty record.
func WinPercentage(r model.Record) float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.OTL)) / float64(games)
}

func formatSavePct(sv float64) string {
	s := fmt.Sprintf("%.3f", math.Min(math.Max(sv, 0), 1))
	return strings.TrimPrefix(s, "0")
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
