// Package contract holds storage-agnostic behavior suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
)

type TeamFactory func(t *testing.T) (repository.TeamRepository, func())

type PlayerFactory func(t *testing.T) (repo repository.PlayerRepository, createTeam func(ctx context.Context, name string) (int64, error), cleanup func())

type MatchFactory func(t *testing.T) (repo repository.MatchRepository, createTeam func(ctx context.Context, name string) (int64, error), cleanup func())

// StatsFactory returns a helper that seeds a scheduled match and reports its id and home team id.
type StatsFactory func(t *testing.T) (repo repository.StatsRepository, mkMatch func(ctx context.Context) (matchID, teamID int64, err error), cleanup func())

type RecapFactory func(t *testing.T) (repository.RecapRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, teams repository.TeamRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunTeamRepositoryContract(t *testing.T, makeRepo TeamFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Team{Name: "Jets"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != created.Name {
			t.Fatalf("mismatch: %+v", got)
		}
		ok, err := repo.Exists(ctx, created.ID)
		if err != nil || !ok {
			t.Fatalf("expected exists, got %v %v", ok, err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			name := "T-" + string(rune('A'+i))
			if _, err := repo.Create(ctx, model.Team{Name: name}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})

	t.Run("list_all_sorted_by_name", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, n := range []string{"Zephyrs", "Admirals", "Moose"} {
			if _, err := repo.Create(ctx, model.Team{Name: n}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(all) != 3 || all[0].Name != "Admirals" || all[2].Name != "Zephyrs" {
			t.Fatalf("unexpected order: %+v", all)
		}
	})

	t.Run("create_duplicate_name_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Team{Name: "Dup"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Team{Name: "Dup"})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func RunPlayerRepositoryContract(t *testing.T, makeRepo PlayerFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		teamID, err := mkTeam(ctx, "Moose")
		if err != nil {
			t.Fatalf("seed team: %v", err)
		}
		created, err := repo.Create(ctx, model.Player{TeamID: teamID, Name: "Sam Reinhart", Position: model.PositionCenter})
		if err != nil {
			t.Fatalf("create player: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ID || got.TeamID != teamID || got.Position != model.PositionCenter {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 42424242)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_by_team_pagination", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		teamID, err := mkTeam(ctx, "Admirals")
		if err != nil {
			t.Fatalf("seed team: %v", err)
		}
		for i := 0; i < 5; i++ {
			p := model.Player{TeamID: teamID, Name: "P" + string(rune('A'+i)), Position: model.PositionLeftWing}
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed player %d: %v", i, err)
			}
		}
		res, err := repo.ListByTeam(ctx, teamID, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 5 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Player{TeamID: 9999999, Name: "X", Position: model.PositionGoalie})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	seed := func(t *testing.T, mkTeam func(ctx context.Context, name string) (int64, error)) (int64, int64) {
		t.Helper()
		ctx := context.Background()
		homeID, err := mkTeam(ctx, "Home")
		if err != nil {
			t.Fatalf("seed home: %v", err)
		}
		awayID, err := mkTeam(ctx, "Away")
		if err != nil {
			t.Fatalf("seed away: %v", err)
		}
		return homeID, awayID
	}

	t.Run("create_get_list", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		homeID, awayID := seed(t, mkTeam)
		m, err := repo.Create(ctx, model.Match{HomeTeamID: homeID, AwayTeamID: awayID, Status: model.MatchStatusScheduled, MatchDate: time.Now().UTC()})
		if err != nil {
			t.Fatalf("create match: %v", err)
		}
		got, err := repo.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.HomeTeamID != homeID || got.AwayTeamID != awayID || got.HomeTeamName != "Home" || got.AwayTeamName != "Away" {
			t.Fatalf("mismatch: %+v", got)
		}
		page, err := repo.List(ctx, repository.Page{Limit: 10, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(page.Items) != 1 || page.Total != 1 {
			t.Fatalf("unexpected list: %#v", page)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 7777777)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		_, err = repo.RecordResult(context.Background(), 7777777, 1, 0, false)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on record result, got %v", err)
		}
	})

	t.Run("record_result_and_list_completed_since", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		homeID, awayID := seed(t, mkTeam)
		since := time.Now().Add(-time.Minute)

		first, err := repo.Create(ctx, model.Match{HomeTeamID: homeID, AwayTeamID: awayID, Status: model.MatchStatusScheduled, MatchDate: time.Now().UTC()})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		second, err := repo.Create(ctx, model.Match{HomeTeamID: awayID, AwayTeamID: homeID, Status: model.MatchStatusScheduled, MatchDate: time.Now().UTC()})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := repo.Create(ctx, model.Match{HomeTeamID: homeID, AwayTeamID: awayID, Status: model.MatchStatusScheduled, MatchDate: time.Now().UTC()}); err != nil {
			t.Fatalf("create: %v", err)
		}

		done, err := repo.RecordResult(ctx, first.ID, 5, 2, false)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		if done.Status != model.MatchStatusCompleted || done.HomeScore != 5 || done.AwayScore != 2 {
			t.Fatalf("unexpected result: %+v", done)
		}
		if _, err := repo.RecordResult(ctx, second.ID, 3, 4, true); err != nil {
			t.Fatalf("record: %v", err)
		}

		got, err := repo.ListCompletedSince(ctx, since)
		if err != nil {
			t.Fatalf("list completed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 completed matches, got %d", len(got))
		}
		if got[0].ID != second.ID || !got[0].IsOvertime {
			t.Fatalf("expected most recently updated first, got %+v", got[0])
		}

		later, err := repo.ListCompletedSince(ctx, time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("list completed: %v", err)
		}
		if len(later) != 0 {
			t.Fatalf("expected empty window, got %d", len(later))
		}
	})
}

func RunStatsRepositoryContract(t *testing.T, makeRepo StatsFactory) {
	t.Helper()

	t.Run("upsert_and_list", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, teamID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("mkMatch: %v", err)
		}
		line := model.PlayerStatLine{MatchID: matchID, TeamID: teamID, PlayerName: "Ann", Position: model.PositionCenter, Goals: 1, PlusMinus: -2}
		l1, err := repo.UpsertStatLine(ctx, line)
		if err != nil {
			t.Fatalf("upsert1: %v", err)
		}
		if l1.Goals != 1 || l1.PlusMinus != -2 || l1.PlayerID != nil {
			t.Fatalf("unexpected line: %+v", l1)
		}
		line.Goals = 3
		l2, err := repo.UpsertStatLine(ctx, line)
		if err != nil {
			t.Fatalf("upsert2: %v", err)
		}
		if l2.ID != l1.ID || l2.Goals != 3 {
			t.Fatalf("upsert didn't update in place: %+v", l2)
		}
		list, err := repo.ListByMatch(ctx, matchID)
		if err != nil {
			t.Fatalf("list by match: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 line, got %d", len(list))
		}
	})

	t.Run("list_by_matches", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		m1, team1, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("mkMatch: %v", err)
		}
		m2, team2, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("mkMatch: %v", err)
		}
		for _, l := range []model.PlayerStatLine{
			{MatchID: m2, TeamID: team2, PlayerName: "Bo", Position: model.PositionGoalie, Saves: 20, GoalsAgainst: 2},
			{MatchID: m1, TeamID: team1, PlayerName: "Ann", Position: model.PositionCenter},
		} {
			if _, err := repo.UpsertStatLine(ctx, l); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		list, err := repo.ListByMatches(ctx, []int64{m1, m2})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 || list[0].MatchID != m1 || list[1].Saves != 20 {
			t.Fatalf("unexpected lines: %+v", list)
		}
		empty, err := repo.ListByMatches(ctx, nil)
		if err != nil || len(empty) != 0 {
			t.Fatalf("expected empty result for no ids, got %v %v", empty, err)
		}
	})

	t.Run("negative_counter_rejected", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, teamID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("mkMatch: %v", err)
		}
		_, err = repo.UpsertStatLine(ctx, model.PlayerStatLine{MatchID: matchID, TeamID: teamID, PlayerName: "Bad", Position: model.PositionCenter, Hits: -1})
		if !errors.Is(err, repository.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})
}

func RunRecapRepositoryContract(t *testing.T, makeRepo RecapFactory) {
	t.Helper()

	t.Run("save_get_latest", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		older := model.RecapData{Date: "2026-10-17", TeamRecaps: []model.TeamRecap{}, TotalMatches: 1}
		newer := model.RecapData{Date: "2026-10-18", TeamRecaps: []model.TeamRecap{{TeamID: 1, TeamName: "Jets"}}, TotalMatches: 2}
		for _, r := range []model.RecapData{newer, older} {
			if _, err := repo.Save(ctx, r); err != nil {
				t.Fatalf("save %s: %v", r.Date, err)
			}
		}
		got, err := repo.GetByDate(ctx, "2026-10-17")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Date != "2026-10-17" || got.Data.TotalMatches != 1 {
			t.Fatalf("unexpected recap: %+v", got)
		}
		latest, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("latest: %v", err)
		}
		if latest.Date != "2026-10-18" || len(latest.Data.TeamRecaps) != 1 || latest.Data.TeamRecaps[0].TeamName != "Jets" {
			t.Fatalf("unexpected latest: %+v", latest)
		}
	})

	t.Run("save_replaces_same_date", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, err := repo.Save(ctx, model.RecapData{Date: "2026-10-19", TeamRecaps: []model.TeamRecap{}, TotalMatches: 1})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		second, err := repo.Save(ctx, model.RecapData{Date: "2026-10-19", TeamRecaps: []model.TeamRecap{}, TotalMatches: 4})
		if err != nil {
			t.Fatalf("save again: %v", err)
		}
		if second.ID != first.ID || second.Data.TotalMatches != 4 {
			t.Fatalf("expected in-place replace, got %+v", second)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Latest(ctx); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound from empty archive, got %v", err)
		}
		if _, err := repo.GetByDate(ctx, "1999-01-01"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, teams, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := teams.Create(ctx, model.Team{Name: "TxCommit"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := teams.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, teams, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID int64
		errMarker := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := teams.Create(ctx, model.Team{Name: "TxRollback"})
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := teams.GetByID(ctx, createdID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})

	t.Run("nested_joins_outer", func(t *testing.T) {
		tx, teams, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var innerID int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := tx.WithinTx(ctx, func(ctx context.Context) error {
				out, err := teams.Create(ctx, model.Team{Name: "Inner"})
				innerID = out.ID
				return err
			}); err != nil {
				return err
			}
			return errors.New("outer fails")
		})
		if err == nil {
			t.Fatalf("expected outer error")
		}
		if _, err := teams.GetByID(ctx, innerID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected inner write rolled back with outer, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
