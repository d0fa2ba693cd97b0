package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	qb "github.com/riskibarqy/lol-stats/internal/platform/querybuilder"
)

// ChampionPool returns per-champion totals for a player or team, in
// champion order, and the number of distinct games the entity played.
func (r *MatchRepository) ChampionPool(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) ([]matchstats.ChampionTotals, int, error) {
	base := []qb.Condition{qb.Eq(kind.Column(), name), positionCondition("", false)}
	columns := append([]string{"champion AS entity"}, totalsColumns("")...)

	query, args, err := qb.Select(columns...).
		From(tableMatches).
		Where(base...).
		Where(filterConditions("", f)...).
		GroupBy("champion").
		OrderBy("champion").
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build %s champion pool query: %w", kind, err)
	}

	var rows []entityTotalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, matchstats.StoreError(string(kind)+" champion pool", err)
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	countQuery, countArgs, err := qb.Select("COUNT(DISTINCT gameid)").
		From(tableMatches).
		Where(base...).
		Where(filterConditions("", f)...).
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build %s game count query: %w", kind, err)
	}

	var games int
	if err := r.db.GetContext(ctx, &games, countQuery, countArgs...); err != nil {
		return nil, 0, matchstats.StoreError(string(kind)+" game count", err)
	}

	out := make([]matchstats.ChampionTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.ChampionTotals{Champion: row.Entity, Totals: row.totalsRow.toDomain()})
	}
	return out, games, nil
}

// PatchChampions reports games and win rate per (champion, position) in the
// window, ordered by games desc then champion then position.
func (r *MatchRepository) PatchChampions(ctx context.Context, f matchstats.Filter) ([]matchstats.PatchChampion, error) {
	query, args, err := qb.Select(
		"champion",
		"position",
		"COUNT(*) AS games",
		"COALESCE(SUM(result), 0) AS wins",
	).From(tableMatches).
		Where(positionCondition("", false), qb.NeLiteral("champion", "")).
		Where(filterConditions("", f)...).
		GroupBy("champion", "position").
		OrderBy("COUNT(*) DESC", "champion", "position").
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build patch champions query: %w", err)
	}

	var rows []patchChampionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("patch champions", err)
	}

	out := make([]matchstats.PatchChampion, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.PatchChampion{
			Champion: row.Champion,
			Position: row.Position,
			Games:    row.Games,
			Wins:     row.Wins,
			WinRate:  matchstats.WinRate(row.Wins, row.Games),
		})
	}
	return out, nil
}
