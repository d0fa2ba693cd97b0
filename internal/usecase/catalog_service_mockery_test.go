package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	matchstatsmock "github.com/riskibarqy/lol-stats/internal/mocks/domain/matchstats"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_ListsUsingMockery(t *testing.T) {
	t.Parallel()

	repo := matchstatsmock.NewRepository(t)
	service := NewCatalogService(repo)
	ctx := context.Background()

	repo.On("ListLeagues", mock.Anything).Return([]string{"LCK", "LEC"}, nil).Once()
	repo.On("ListPatches", mock.Anything).Return([]string{"14.1", "14.2"}, nil).Once()
	repo.On("DateBounds", mock.Anything).Return(matchstats.DateBounds{Min: "2024-01-10", Max: "2024-06-30"}, nil).Once()
	repo.On("ListEntities", mock.Anything, matchstats.KindTeam, "LCK").Return([]string{"Gen.G", "T1"}, nil).Once()

	leagues, err := service.Leagues(ctx)
	if err != nil || len(leagues) != 2 {
		t.Fatalf("leagues: %v %v", leagues, err)
	}
	patches, err := service.Patches(ctx)
	if err != nil || len(patches) != 2 {
		t.Fatalf("patches: %v %v", patches, err)
	}
	bounds, err := service.DateBounds(ctx)
	if err != nil || bounds.Min != "2024-01-10" || bounds.Max != "2024-06-30" {
		t.Fatalf("date bounds: %+v %v", bounds, err)
	}
	teams, err := service.Entities(ctx, matchstats.KindTeam, "LCK")
	if err != nil || len(teams) != 2 {
		t.Fatalf("entities: %v %v", teams, err)
	}
}

func TestCatalogService_ErrorsUsingMockery(t *testing.T) {
	t.Parallel()

	repo := matchstatsmock.NewRepository(t)
	service := NewCatalogService(repo)
	ctx := context.Background()

	if _, err := service.Entities(ctx, matchstats.Kind("coach"), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid kind, got %v", err)
	}

	repo.On("Ping", mock.Anything).Return(matchstats.StoreError("ping", errors.New("refused"))).Once()
	if err := service.Ping(ctx); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	plain := errors.New("scan failed")
	repo.On("ListLeagues", mock.Anything).Return(nil, plain).Once()
	_, err := service.Leagues(ctx)
	if !errors.Is(err, plain) || errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected plain wrapped error, got %v", err)
	}
}
