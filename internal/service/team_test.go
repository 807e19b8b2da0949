package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/mghl-recap-service/internal/model"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	logger := zerolog.New(io.Discard)
	svc := service.NewTeamService(newFakeTeamRepo(), logger)

	cases := []struct {
		name      string
		input     string
		wantErr   bool
		wantField string
	}{
		{"empty", "", true, "name"},
		{"spaces", "   ", true, "name"},
		{"too short", "A", true, "name"},
		{"too long", strings.Repeat("x", 51), true, "name"},
		{"ok", "Ice Hawks", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTeam(context.Background(), tc.input)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				if !serviceErrIsInvalid(err) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if !hasField(err, tc.wantField) {
					t.Fatalf("expected field error for %s, got %+v", tc.wantField, service.FieldErrors(err))
				}
			}
		})
	}
}

func TestTeamService_CreateTeam_TrimsName(t *testing.T) {
	svc := service.NewTeamService(newFakeTeamRepo(), zerolog.New(io.Discard))
	got, err := svc.CreateTeam(context.Background(), "  Ice Hawks  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ice Hawks" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
}

func TestTeamService_CreateTeam_DuplicatePropagates(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.createErr = repository.ErrAlreadyExists
	svc := service.NewTeamService(repo, zerolog.New(io.Discard))
	_, err := svc.CreateTeam(context.Background(), "Ice Hawks")
	if !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	repo := newFakeTeamRepo()
	created, _ := repo.Create(context.Background(), model.Team{Name: "Polar Bears"})
	svc := service.NewTeamService(repo, zerolog.New(io.Discard))

	if _, err := svc.GetTeam(context.Background(), 0); !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if _, err := svc.GetTeam(context.Background(), 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got, err := svc.GetTeam(context.Background(), created.ID)
	if err != nil || got.Name != "Polar Bears" {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}
}

func TestTeamService_ListTeams_PaginationNormalization(t *testing.T) {
	repo := newFakeTeamRepo()
	_, _ = repo.Create(context.Background(), model.Team{Name: "A"})
	_, _ = repo.Create(context.Background(), model.Team{Name: "B"})
	svc := service.NewTeamService(repo, zerolog.New(io.Discard))
	res, err := svc.ListTeams(context.Background(), repository.Page{Limit: -5, Offset: -10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 teams, got %d", res.Total)
	}
	if repo.lastPage.Limit != 50 {
		t.Fatalf("expected normalized limit=50 got %d", repo.lastPage.Limit)
	}
	if repo.lastPage.Offset != 0 {
		t.Fatalf("expected normalized offset=0 got %d", repo.lastPage.Offset)
	}
}
