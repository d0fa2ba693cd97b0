package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

type EntityService struct {
	repo matchstats.Repository
}

func NewEntityService(repo matchstats.Repository) *EntityService {
	return &EntityService{repo: repo}
}

// Aggregate summarizes an entity over the window. found is false when the
// entity has no rows in it.
func (s *EntityService) Aggregate(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) (matchstats.Summary, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityService.Aggregate", reportAttrs(kind, f)...)
	defer span.End()

	if err := requireKind(kind); err != nil {
		return matchstats.Summary{}, false, err
	}
	name, err := requireName("name", name)
	if err != nil {
		return matchstats.Summary{}, false, err
	}

	totals, err := s.repo.Aggregate(ctx, kind, name, f)
	if err != nil {
		return matchstats.Summary{}, false, wrapStoreErr("aggregate "+string(kind), err)
	}
	if totals.Games == 0 {
		return matchstats.Summary{}, false, nil
	}

	return totals.Summary(), true, nil
}

// ChampionPool lists the champions a player or team played in the window.
func (s *EntityService) ChampionPool(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) ([]matchstats.ChampionPoolEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityService.ChampionPool", reportAttrs(kind, f)...)
	defer span.End()

	if kind != matchstats.KindPlayer && kind != matchstats.KindTeam {
		return nil, invalidInput(&matchstats.ValidationError{Field: "kind", Reason: "champion pool supports player or team"})
	}
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}

	totals, games, err := s.repo.ChampionPool(ctx, kind, name, f)
	if err != nil {
		return nil, wrapStoreErr(string(kind)+" champion pool", err)
	}

	return matchstats.BuildChampionPool(kind, totals, games), nil
}

func (s *EntityService) PatchChampions(ctx context.Context, f matchstats.Filter) ([]matchstats.PatchChampion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityService.PatchChampions", reportAttrs("", f)...)
	defer span.End()

	items, err := s.repo.PatchChampions(ctx, f)
	if err != nil {
		return nil, wrapStoreErr("patch champions", err)
	}
	return items, nil
}
