package handler_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/mghl-recap-service/internal/handler"
	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

// fakeInvalid replicates aggregated validation error semantics.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

// stubTeamService lets us control each method outcome.
type stubTeamService struct {
	create struct {
		team model.Team
		err  error
	}
	get struct {
		team model.Team
		err  error
	}
	list struct {
		res repository.PageResult[model.Team]
		err error
	}
	lastPage repository.Page
}

func (s *stubTeamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	return s.create.team, s.create.err
}
func (s *stubTeamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	return s.get.team, s.get.err
}
func (s *stubTeamService) ListTeams(ctx context.Context, p repository.Page) (repository.PageResult[model.Team], error) {
	s.lastPage = p
	return s.list.res, s.list.err
}

type stubPlayerService struct {
	created  model.Player
	lastTeam int64
	err      error
}

func (s *stubPlayerService) CreatePlayer(ctx context.Context, teamID int64, name, position string) (model.Player, error) {
	if s.err != nil {
		return model.Player{}, s.err
	}
	return model.Player{ID: 1, TeamID: teamID, Name: name, Position: position}, nil
}
func (s *stubPlayerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	return s.created, s.err
}
func (s *stubPlayerService) ListPlayersByTeam(ctx context.Context, teamID int64, p repository.Page) (repository.PageResult[model.Player], error) {
	s.lastTeam = teamID
	return repository.PageResult[model.Player]{}, s.err
}

type stubMatchService struct {
	lastDate   time.Time
	lastResult [2]int
	overtime   bool
	err        error
}

func (s *stubMatchService) CreateMatch(ctx context.Context, homeID, awayID int64, date time.Time) (model.Match, error) {
	s.lastDate = date
	return model.Match{ID: 3, HomeTeamID: homeID, AwayTeamID: awayID, MatchDate: date, Status: model.MatchStatusScheduled}, s.err
}
func (s *stubMatchService) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	return model.Match{ID: id}, s.err
}
func (s *stubMatchService) ListMatches(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	return repository.PageResult[model.Match]{}, s.err
}
func (s *stubMatchService) RecordResult(ctx context.Context, id int64, homeScore, awayScore int, overtime bool) (model.Match, error) {
	s.lastResult = [2]int{homeScore, awayScore}
	s.overtime = overtime
	if s.err != nil {
		return model.Match{}, s.err
	}
	return model.Match{ID: id, HomeScore: homeScore, AwayScore: awayScore, IsOvertime: overtime, Status: model.MatchStatusCompleted}, nil
}

type stubStatsService struct {
	last model.PlayerStatLine
	err  error
}

func (s *stubStatsService) UpsertStatLine(ctx context.Context, line model.PlayerStatLine) (model.PlayerStatLine, error) {
	s.last = line
	line.ID = 11
	return line, s.err
}
func (s *stubStatsService) ListStatsByMatch(ctx context.Context, matchID int64) ([]model.PlayerStatLine, error) {
	return []model.PlayerStatLine{{ID: 1, MatchID: matchID}}, s.err
}

type stubRecapService struct {
	data      model.RecapData
	genErr    error
	saved     model.SavedRecap
	saveErr   error
	lastSaved model.RecapData
	lastDate  string
	calls     int
}

func (s *stubRecapService) Generate(ctx context.Context) (model.RecapData, error) {
	s.calls++
	return s.data, s.genErr
}
func (s *stubRecapService) Save(ctx context.Context, data model.RecapData) (model.SavedRecap, error) {
	s.lastSaved = data
	return s.saved, s.saveErr
}
func (s *stubRecapService) Latest(ctx context.Context) (model.SavedRecap, error) {
	return s.saved, s.saveErr
}
func (s *stubRecapService) GetByDate(ctx context.Context, date string) (model.SavedRecap, error) {
	s.lastDate = date
	return s.saved, s.saveErr
}

func newRouter(svcs handler.Services) *gin.Engine {
	return newLimitedRouter(svcs, nil)
}

func newLimitedRouter(svcs handler.Services, limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPinger{}, svcs, limit)
	return r
}
