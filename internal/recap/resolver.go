package recap

import "github.com/maxviazov/mghl-recap-service/internal/model"

// TeamDirectory is the id → team lookup built once per recap.
// It keeps the order teams were loaded in so every downstream stage iterates deterministically.
type TeamDirectory struct {
	byID  map[int64]model.Team
	order []int64
}

// NewTeamDirectory indexes teams by id. Later duplicates of an id are ignored.
func NewTeamDirectory(teams []model.Team) TeamDirectory {
	d := TeamDirectory{byID: make(map[int64]model.Team, len(teams)), order: make([]int64, 0, len(teams))}
	for _, t := range teams {
		if _, dup := d.byID[t.ID]; dup {
			continue
		}
		d.byID[t.ID] = t
		d.order = append(d.order, t.ID)
	}
	return d
}

// Lookup returns the team with the given id.
func (d TeamDirectory) Lookup(id int64) (model.Team, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// Len is the number of known teams.
func (d TeamDirectory) Len() int { return len(d.order) }

// IDs returns team ids in load order.
func (d TeamDirectory) IDs() []int64 {
	out := make([]int64, len(d.order))
	copy(out, d.order)
	return out
}

// opponentName resolves the other side of a match for teamID, preferring the directory over embedded names.
func (d TeamDirectory) opponentName(m model.Match, teamID int64) string {
	oppID, embedded := m.AwayTeamID, m.AwayTeamName
	if teamID == m.AwayTeamID {
		oppID, embedded = m.HomeTeamID, m.HomeTeamName
	}
	if t, ok := d.byID[oppID]; ok {
		return t.Name
	}
	if embedded != "" {
		return embedded
	}
	return "Unknown"
}
