package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/sourcegraph/conc/pool"
)

type HeadToHeadService struct {
	repo matchstats.Repository
}

func NewHeadToHeadService(repo matchstats.Repository) *HeadToHeadService {
	return &HeadToHeadService{repo: repo}
}

func (s *HeadToHeadService) validate(kind matchstats.Kind, a, b string) (string, string, error) {
	if err := requireKind(kind); err != nil {
		return "", "", err
	}
	a, err := requireName("entity1", a)
	if err != nil {
		return "", "", err
	}
	b, err = requireName("entity2", b)
	if err != nil {
		return "", "", err
	}
	if a == b {
		return "", "", invalidInput(&matchstats.ValidationError{Field: "entity2", Reason: "must differ from entity1"})
	}
	return a, b, nil
}

// Stats returns per-entity aggregates over the games both entities played.
func (s *HeadToHeadService) Stats(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.Stats", reportAttrs(kind, f)...)
	defer span.End()

	a, b, err := s.validate(kind, a, b)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.HeadToHeadStats(ctx, kind, a, b, f)
	if err != nil {
		return nil, wrapStoreErr("head to head stats", err)
	}
	return items, nil
}

// History returns one row per (game, entity) for the games both entities
// played, newest first.
func (s *HeadToHeadService) History(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadGame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.History", reportAttrs(kind, f)...)
	defer span.End()

	a, b, err := s.validate(kind, a, b)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.HeadToHeadHistory(ctx, kind, a, b, f)
	if err != nil {
		return nil, wrapStoreErr("head to head history", err)
	}
	return items, nil
}

// Compare loads both window summaries and the head-to-head stats and
// history in one round of reads.
func (s *HeadToHeadService) Compare(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) (matchstats.HeadToHeadComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.Compare", reportAttrs(kind, f)...)
	defer span.End()

	a, b, err := s.validate(kind, a, b)
	if err != nil {
		return matchstats.HeadToHeadComparison{}, err
	}

	out := matchstats.HeadToHeadComparison{Entity1: a, Entity2: b}
	var totals1, totals2 matchstats.Totals

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		t, err := s.repo.Aggregate(ctx, kind, a, f)
		if err != nil {
			return wrapStoreErr("aggregate entity1", err)
		}
		totals1 = t
		return nil
	})
	p.Go(func(ctx context.Context) error {
		t, err := s.repo.Aggregate(ctx, kind, b, f)
		if err != nil {
			return wrapStoreErr("aggregate entity2", err)
		}
		totals2 = t
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repo.HeadToHeadStats(ctx, kind, a, b, f)
		if err != nil {
			return wrapStoreErr("head to head stats", err)
		}
		out.Stats = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repo.HeadToHeadHistory(ctx, kind, a, b, f)
		if err != nil {
			return wrapStoreErr("head to head history", err)
		}
		out.Games = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return matchstats.HeadToHeadComparison{}, err
	}

	out.Found1, out.Summary1 = totals1.Games > 0, totals1.Summary()
	out.Found2, out.Summary2 = totals2.Games > 0, totals2.Summary()
	return out, nil
}
