package recap

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/maxviazov/mghl-recap-service/internal/model"
)

// FilterByTeam keeps the team recaps whose names best fuzzy-match query (case-insensitive,
// smallest distance wins, ties keep all). League-wide fields are left untouched.
func FilterByTeam(data model.RecapData, query string) model.RecapData {
	query = strings.TrimSpace(query)
	if query == "" {
		return data
	}
	names := make([]string, len(data.TeamRecaps))
	for i, tr := range data.TeamRecaps {
		names[i] = tr.TeamName
	}

	ranks := fuzzy.RankFindFold(query, names)
	out := data
	out.TeamRecaps = []model.TeamRecap{}
	if len(ranks) == 0 {
		return out
	}
	best := ranks[0].Distance
	for _, r := range ranks[1:] {
		if r.Distance < best {
			best = r.Distance
		}
	}
	keep := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		if r.Distance == best {
			keep[r.OriginalIndex] = true
		}
	}
	for i, tr := range data.TeamRecaps {
		if keep[i] {
			out.TeamRecaps = append(out.TeamRecaps, tr)
		}
	}
	return out
}
