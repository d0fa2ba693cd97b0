package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	qb "github.com/riskibarqy/lol-stats/internal/platform/querybuilder"
)

// Correlate returns, in entity name order, every other entity seen on the
// anchors' side (allies) or the opposing side (counters) of games where all
// anchors played together. Games counts distinct (gameid, anchor side,
// entity) triples and wins sums the anchor side result.
func (r *MatchRepository) Correlate(ctx context.Context, policy matchstats.Policy, kind matchstats.Kind, anchors []string, f matchstats.Filter) ([]matchstats.Correlation, error) {
	if len(anchors) == 0 {
		return nil, nil
	}
	column := kind.Column()

	relevant := qb.Select("a.gameid", "a.teamname", "MAX(a.result) AS result").
		From(tableMatches+" a").
		Where(qb.InStrings(col("a", column), anchors), positionCondition("a", false)).
		Where(filterConditions("a", f)...).
		GroupBy("a.gameid", "a.teamname").
		Having(qb.Expr("COUNT(DISTINCT "+col("a", column)+") = ?", len(anchors)))

	side := qb.Expr("o.teamname <> r.teamname")
	if policy.SameSide() {
		side = qb.Expr("o.teamname = r.teamname")
	}

	pairs := qb.Select("r.gameid", "r.teamname", "r.result", col("o", column)+" AS entity").
		Distinct().
		From("relevant r").
		Join(tableMatches+" o", qb.Expr("o.gameid = r.gameid"), side).
		Where(
			positionCondition("o", false),
			qb.NeLiteral(col("o", column), ""),
			qb.NotInStrings(col("o", column), anchors),
		)

	query, args, err := qb.Select("p.entity", "COUNT(*) AS games", "COALESCE(SUM(p.result), 0) AS wins").
		With("relevant", relevant).
		FromSelect(pairs, "p").
		GroupBy("p.entity").
		Having(qb.Expr("COUNT(*) >= ?", matchstats.MinCorrelationGames)).
		OrderBy("p.entity").
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s correlation query: %w", policy, err)
	}

	var rows []correlationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("correlate "+string(policy), err)
	}

	out := make([]matchstats.Correlation, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.Correlation{
			Entity:  row.Entity,
			Games:   row.Games,
			Wins:    row.Wins,
			WinRate: matchstats.WinRate(row.Wins, row.Games),
		})
	}
	return out, nil
}

// pairGames selects games in the window where exactly one row of each of
// the two entities appears.
func pairGames(kind matchstats.Kind, a, b string, f matchstats.Filter) *qb.SelectBuilder {
	column := kind.Column()
	return qb.Select("gameid").
		From(tableMatches).
		Where(qb.InStrings(column, []string{a, b}), positionCondition("", kind.TeamRows())).
		Where(filterConditions("", f)...).
		GroupBy("gameid").
		Having(
			qb.Expr("COUNT(DISTINCT "+column+") = ?", 2),
			qb.Expr("COUNT(*) = ?", 2),
		)
}

func (r *MatchRepository) HeadToHeadStats(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadStats, error) {
	column := kind.Column()
	columns := append([]string{col("m", column) + " AS entity"}, totalsColumns("m")...)

	query, args, err := qb.Select(columns...).
		With("pair_games", pairGames(kind, a, b, f)).
		From(tableMatches+" m").
		Where(
			qb.InStrings(col("m", column), []string{a, b}),
			positionCondition("m", kind.TeamRows()),
			qb.InSelect("m.gameid", qb.Select("gameid").From("pair_games")),
		).
		GroupBy(col("m", column)).
		OrderBy(col("m", column)).
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build head to head %s stats query: %w", kind, err)
	}

	var rows []entityTotalsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("head to head "+string(kind)+" stats", err)
	}

	out := make([]matchstats.HeadToHeadStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchstats.HeadToHeadStats{
			Entity:  row.Entity,
			Summary: row.totalsRow.toDomain().Summary(),
		})
	}
	return out, nil
}

func (r *MatchRepository) HeadToHeadHistory(ctx context.Context, kind matchstats.Kind, a, b string, f matchstats.Filter) ([]matchstats.HeadToHeadGame, error) {
	column := kind.Column()

	query, args, err := qb.Select(rowColumns("m")...).
		With("pair_games", pairGames(kind, a, b, f)).
		From(tableMatches+" m").
		Where(
			qb.InStrings(col("m", column), []string{a, b}),
			positionCondition("m", kind.TeamRows()),
			qb.InSelect("m.gameid", qb.Select("gameid").From("pair_games")),
		).
		OrderBy("m.date DESC", "m.gameid", col("m", column)).
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build head to head %s history query: %w", kind, err)
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("head to head "+string(kind)+" history", err)
	}

	out := make([]matchstats.HeadToHeadGame, 0, len(rows))
	for _, row := range rows {
		game := row.toDomain()
		out = append(out, matchstats.HeadToHeadGame{Entity: game.Identity(kind), Row: game})
	}
	return out, nil
}
