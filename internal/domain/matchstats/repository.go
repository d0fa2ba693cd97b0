package matchstats

import "context"

// Repository reads the matches table. Implementations never write.
type Repository interface {
	Aggregate(ctx context.Context, kind Kind, name string, f Filter) (Totals, error)
	Correlate(ctx context.Context, policy Policy, kind Kind, anchors []string, f Filter) ([]Correlation, error)
	HeadToHeadStats(ctx context.Context, kind Kind, a, b string, f Filter) ([]HeadToHeadStats, error)
	HeadToHeadHistory(ctx context.Context, kind Kind, a, b string, f Filter) ([]HeadToHeadGame, error)
	ListEntityRows(ctx context.Context, kind Kind, name string, f Filter, limit int) ([]Row, error)
	ListGameRows(ctx context.Context, gameIDs []string, teamRows bool) ([]Row, error)
	ChampionPool(ctx context.Context, kind Kind, name string, f Filter) ([]ChampionTotals, int, error)
	PatchChampions(ctx context.Context, f Filter) ([]PatchChampion, error)
	ListLeagues(ctx context.Context) ([]string, error)
	ListPatches(ctx context.Context) ([]string, error)
	DateBounds(ctx context.Context) (DateBounds, error)
	ListEntities(ctx context.Context, kind Kind, league string) ([]string, error)
	Ping(ctx context.Context) error
}
