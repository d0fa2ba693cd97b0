package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

// CatalogService lists the values a report filter can be built from.
type CatalogService struct {
	repo matchstats.Repository
}

func NewCatalogService(repo matchstats.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Leagues(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Leagues")
	defer span.End()

	items, err := s.repo.ListLeagues(ctx)
	if err != nil {
		return nil, wrapStoreErr("list leagues", err)
	}
	return items, nil
}

func (s *CatalogService) Patches(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Patches")
	defer span.End()

	items, err := s.repo.ListPatches(ctx)
	if err != nil {
		return nil, wrapStoreErr("list patches", err)
	}
	return items, nil
}

func (s *CatalogService) DateBounds(ctx context.Context) (matchstats.DateBounds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.DateBounds")
	defer span.End()

	bounds, err := s.repo.DateBounds(ctx)
	if err != nil {
		return matchstats.DateBounds{}, wrapStoreErr("date bounds", err)
	}
	return bounds, nil
}

func (s *CatalogService) Entities(ctx context.Context, kind matchstats.Kind, league string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Entities")
	defer span.End()

	if err := requireKind(kind); err != nil {
		return nil, err
	}

	items, err := s.repo.ListEntities(ctx, kind, league)
	if err != nil {
		return nil, wrapStoreErr("list "+string(kind)+" names", err)
	}
	return items, nil
}

// Ping checks the match store is reachable.
func (s *CatalogService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return wrapStoreErr("ping", err)
	}
	return nil
}
