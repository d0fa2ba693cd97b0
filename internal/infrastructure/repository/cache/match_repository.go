package cache

import (
	"context"
	"errors"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	basecache "github.com/riskibarqy/lol-stats/internal/platform/cache"
	"github.com/riskibarqy/lol-stats/internal/platform/resilience"
)

// MatchRepository decorates a match store. Catalog lists are cached for the
// store TTL; every call goes through an optional circuit breaker that trips
// on store outages.
type MatchRepository struct {
	next    matchstats.Repository
	cache   *basecache.Store
	breaker *resilience.CircuitBreaker
}

// NewMatchRepository accepts a nil cache or breaker to disable either.
func NewMatchRepository(next matchstats.Repository, cache *basecache.Store, breaker *resilience.CircuitBreaker) *MatchRepository {
	return &MatchRepository{next: next, cache: cache, breaker: breaker}
}

func guard[T any](r *MatchRepository, op string, fn func() (T, error)) (T, error) {
	var out T
	err := r.breaker.Do(func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	}, storeOutage)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return out, matchstats.StoreError(op, err)
	}
	return out, err
}

// storeOutage counts against the breaker. Caller cancellations and deadlines
// never do, even when a wrapped store error carries one.
func storeOutage(err error) bool {
	return matchstats.IsStoreUnavailable(err) && !matchstats.IsContextError(err)
}

func cached[T any](ctx context.Context, r *MatchRepository, key string, load func(context.Context) (T, error)) (T, error) {
	if r.cache == nil {
		return load(ctx)
	}
	return basecache.Load(ctx, r.cache, key, load)
}

func (r *MatchRepository) Ping(ctx context.Context) error {
	_, err := guard(r, "ping", func() (struct{}, error) {
		return struct{}{}, r.next.Ping(ctx)
	})
	return err
}

func (r *MatchRepository) Aggregate(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) (matchstats.Totals, error) {
	return guard(r, "aggregate", func() (matchstats.Totals, error) {
		return r.next.Aggregate(ctx, kind, name, f)
	})
}

func (r *MatchRepository) Correlate(ctx context.Context, policy matchstats.Policy, kind matchstats.Kind, anchors []string, f matchstats.Filter) ([]matchstats.Correlation, error) {
	return guard(r, "correlate", func() ([]matchstats.Correlation, error) {
		return r.next.Correlate(ctx, policy, kind, anchors, f)
	})
}

func (r *MatchRepository) HeadToHeadStats(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadStats, error) {
	return guard(r, "head to head stats", func() ([]matchstats.HeadToHeadStats, error) {
		return r.next.HeadToHeadStats(ctx, kind, a, b, f)
	})
}

func (r *MatchRepository) HeadToHeadHistory(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadGame, error) {
	return guard(r, "head to head history", func() ([]matchstats.HeadToHeadGame, error) {
		return r.next.HeadToHeadHistory(ctx, kind, a, b, f)
	})
}

func (r *MatchRepository) ListEntityRows(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter, limit int) ([]matchstats.Row, error) {
	return guard(r, "list entity rows", func() ([]matchstats.Row, error) {
		return r.next.ListEntityRows(ctx, kind, name, f, limit)
	})
}

func (r *MatchRepository) ListGameRows(ctx context.Context, gameIDs []string, teamRows bool) ([]matchstats.Row, error) {
	return guard(r, "list game rows", func() ([]matchstats.Row, error) {
		return r.next.ListGameRows(ctx, gameIDs, teamRows)
	})
}

func (r *MatchRepository) ChampionPool(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) ([]matchstats.ChampionTotals, int, error) {
	type pool struct {
		totals []matchstats.ChampionTotals
		games  int
	}
	out, err := guard(r, "champion pool", func() (pool, error) {
		totals, games, err := r.next.ChampionPool(ctx, kind, name, f)
		return pool{totals: totals, games: games}, err
	})
	return out.totals, out.games, err
}

func (r *MatchRepository) PatchChampions(ctx context.Context, f matchstats.Filter) ([]matchstats.PatchChampion, error) {
	return guard(r, "patch champions", func() ([]matchstats.PatchChampion, error) {
		return r.next.PatchChampions(ctx, f)
	})
}

func (r *MatchRepository) ListLeagues(ctx context.Context) ([]string, error) {
	items, err := guard(r, "list leagues", func() ([]string, error) {
		return cached(ctx, r, "catalog:leagues", r.next.ListLeagues)
	})
	return append([]string(nil), items...), err
}

func (r *MatchRepository) ListPatches(ctx context.Context) ([]string, error) {
	items, err := guard(r, "list patches", func() ([]string, error) {
		return cached(ctx, r, "catalog:patches", r.next.ListPatches)
	})
	return append([]string(nil), items...), err
}

func (r *MatchRepository) DateBounds(ctx context.Context) (matchstats.DateBounds, error) {
	return guard(r, "date bounds", func() (matchstats.DateBounds, error) {
		return cached(ctx, r, "catalog:dates", r.next.DateBounds)
	})
}

func (r *MatchRepository) ListEntities(ctx context.Context, kind matchstats.Kind, league string) ([]string, error) {
	key := "catalog:entities:" + string(kind) + ":" + strings.TrimSpace(league)
	items, err := guard(r, "list entities", func() ([]string, error) {
		return cached(ctx, r, key, func(ctx context.Context) ([]string, error) {
			return r.next.ListEntities(ctx, kind, league)
		})
	})
	return append([]string(nil), items...), err
}

var _ matchstats.Repository = (*MatchRepository)(nil)
