package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

type fakeTeamRepo struct {
	nextID    int64
	items     map[int64]model.Team
	createErr error
	listErr   error
	lastPage  repository.Page // capture last page for pagination normalization tests
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{nextID: 1, items: map[int64]model.Team{}}
}

func (f *fakeTeamRepo) Create(_ context.Context, t model.Team) (model.Team, error) {
	if f.createErr != nil {
		return model.Team{}, f.createErr
	}
	t.ID = f.nextID
	f.nextID++
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int64) (model.Team, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeTeamRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Team], error) {
	f.lastPage = p
	res := repository.PageResult[model.Team]{}
	for _, v := range f.items {
		res.Items = append(res.Items, v)
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeTeamRepo) ListAll(_ context.Context) ([]model.Team, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Team, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTeamRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

var _ repository.TeamRepository = (*fakeTeamRepo)(nil)

type fakePlayerRepo struct {
	nextID int64
	items  map[int64]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{nextID: 1, items: map[int64]model.Player{}}
}

func (f *fakePlayerRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	p.ID = f.nextID
	f.nextID++
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int64) (model.Player, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakePlayerRepo) ListByTeam(_ context.Context, teamID int64, _ repository.Page) (repository.PageResult[model.Player], error) {
	res := repository.PageResult[model.Player]{}
	for _, v := range f.items {
		if v.TeamID == teamID {
			res.Items = append(res.Items, v)
		}
	}
	res.Total = len(res.Items)
	return res, nil
}

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

type fakeMatchRepo struct {
	nextID    int64
	items     map[int64]model.Match
	completed []model.Match
	sinceErr  error
	lastSince time.Time
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{nextID: 1, items: map[int64]model.Match{}}
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	m.ID = f.nextID
	f.nextID++
	f.items[m.ID] = m
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (model.Match, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeMatchRepo) List(_ context.Context, _ repository.Page) (repository.PageResult[model.Match], error) {
	res := repository.PageResult[model.Match]{}
	for _, v := range f.items {
		res.Items = append(res.Items, v)
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeMatchRepo) RecordResult(_ context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error) {
	m, ok := f.items[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	m.HomeScore, m.AwayScore, m.IsOvertime = homeScore, awayScore, overtime
	m.Status = model.MatchStatusCompleted
	f.items[id] = m
	return m, nil
}

func (f *fakeMatchRepo) ListCompletedSince(_ context.Context, since time.Time) ([]model.Match, error) {
	f.lastSince = since
	if f.sinceErr != nil {
		return nil, f.sinceErr
	}
	return f.completed, nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type fakeStatsRepo struct {
	nextID    int64
	lines     []model.PlayerStatLine
	upserts   int
	listErr   error
	lastBatch []int64
}

func newFakeStatsRepo() *fakeStatsRepo { return &fakeStatsRepo{nextID: 1} }

func (f *fakeStatsRepo) UpsertStatLine(_ context.Context, s model.PlayerStatLine) (model.PlayerStatLine, error) {
	f.upserts++
	s.ID = f.nextID
	f.nextID++
	f.lines = append(f.lines, s)
	return s, nil
}

func (f *fakeStatsRepo) ListByMatch(_ context.Context, matchID int64) ([]model.PlayerStatLine, error) {
	out := []model.PlayerStatLine{}
	for _, l := range f.lines {
		if l.MatchID == matchID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) ListByMatches(_ context.Context, ids []int64) ([]model.PlayerStatLine, error) {
	f.lastBatch = ids
	if f.listErr != nil {
		return nil, f.listErr
	}
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []model.PlayerStatLine{}
	for _, l := range f.lines {
		if want[l.MatchID] {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ repository.StatsRepository = (*fakeStatsRepo)(nil)

type fakeRecapRepo struct {
	nextID int64
	byDate map[string]model.SavedRecap
	latest string
}

func newFakeRecapRepo() *fakeRecapRepo {
	return &fakeRecapRepo{nextID: 1, byDate: map[string]model.SavedRecap{}}
}

func (f *fakeRecapRepo) Save(_ context.Context, rec model.RecapData) (model.SavedRecap, error) {
	saved, ok := f.byDate[rec.Date]
	if !ok {
		saved.ID = f.nextID
		f.nextID++
	}
	saved.Date = rec.Date
	saved.Data = rec
	f.byDate[rec.Date] = saved
	if rec.Date > f.latest {
		f.latest = rec.Date
	}
	return saved, nil
}

func (f *fakeRecapRepo) GetByDate(_ context.Context, date string) (model.SavedRecap, error) {
	s, ok := f.byDate[date]
	if !ok {
		return model.SavedRecap{}, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeRecapRepo) Latest(ctx context.Context) (model.SavedRecap, error) {
	if f.latest == "" {
		return model.SavedRecap{}, repository.ErrNotFound
	}
	return f.GetByDate(ctx, f.latest)
}

var _ repository.RecapRepository = (*fakeRecapRepo)(nil)

// fakeTx runs fn inline and counts invocations.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

func serviceErrIsInvalid(err error) bool {
	return errors.Is(err, service.ErrInvalidInput)
}

func hasField(err error, field string) bool {
	for _, f := range service.FieldErrors(err) {
		if f.Field == field {
			return true
		}
	}
	return false
}
