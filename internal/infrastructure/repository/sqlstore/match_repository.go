package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	qb "github.com/riskibarqy/lol-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db     *sqlx.DB
	format qb.PlaceholderFormat
}

var _ matchstats.Repository = (*MatchRepository)(nil)

// NewMatchRepository picks the placeholder style from the driver the handle
// was opened with.
func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db, format: placeholderFormat(db.DriverName())}
}

func placeholderFormat(driverName string) qb.PlaceholderFormat {
	if sqlx.BindType(driverName) == sqlx.DOLLAR {
		return qb.Dollar
	}
	return qb.Question
}

func (r *MatchRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return matchstats.StoreError("ping match store", err)
	}
	return nil
}

func (r *MatchRepository) Aggregate(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter) (matchstats.Totals, error) {
	query, args, err := qb.Select(totalsColumns("")...).
		From(tableMatches).
		Where(qb.Eq(kind.Column(), name), positionCondition("", kind.TeamRows())).
		Where(filterConditions("", f)...).
		Format(r.format).
		ToSQL()
	if err != nil {
		return matchstats.Totals{}, fmt.Errorf("build aggregate %s query: %w", kind, err)
	}

	var row totalsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return matchstats.Totals{}, matchstats.StoreError("aggregate "+string(kind), err)
	}

	return row.toDomain(), nil
}

func (r *MatchRepository) ListEntityRows(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter, limit int) ([]matchstats.Row, error) {
	if limit <= 0 {
		limit = matchstats.DefaultHistoryLimit
	}

	query, args, err := qb.Select(matchColumns...).
		From(tableMatches).
		Where(qb.Eq(kind.Column(), name), positionCondition("", kind.TeamRows())).
		Where(filterConditions("", f)...).
		OrderBy("date DESC", "gameid").
		Limit(limit).
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list %s rows query: %w", kind, err)
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("list "+string(kind)+" rows", err)
	}

	return toDomainRows(rows), nil
}

// ListGameRows returns every row of the given games in the requested
// position class, ordered by gameid then side.
func (r *MatchRepository) ListGameRows(ctx context.Context, gameIDs []string, teamRows bool) ([]matchstats.Row, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(matchColumns...).
		From(tableMatches).
		Where(qb.InStrings("gameid", gameIDs), positionCondition("", teamRows)).
		OrderBy("gameid", "side", "position").
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game rows query: %w", err)
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, matchstats.StoreError("list game rows", err)
	}

	return toDomainRows(rows), nil
}

func (r *MatchRepository) ListLeagues(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "league", nil)
}

func (r *MatchRepository) ListPatches(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "patch", nil)
}

// ListEntities returns distinct names of kind, optionally within one league.
func (r *MatchRepository) ListEntities(ctx context.Context, kind matchstats.Kind, league string) ([]string, error) {
	var conds []qb.Condition
	if kind != matchstats.KindTeam {
		conds = append(conds, positionCondition("", false))
	}
	if league = strings.TrimSpace(league); league != "" {
		conds = append(conds, qb.Eq("league", league))
	}
	return r.listDistinct(ctx, kind.Column(), conds)
}

func (r *MatchRepository) listDistinct(ctx context.Context, column string, conds []qb.Condition) ([]string, error) {
	query, args, err := qb.Select(column).
		Distinct().
		From(tableMatches).
		Where(qb.NeLiteral(column, "")).
		Where(conds...).
		OrderBy(column).
		Format(r.format).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list distinct %s query: %w", column, err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, matchstats.StoreError("list distinct "+column, err)
	}
	return out, nil
}

func (r *MatchRepository) DateBounds(ctx context.Context) (matchstats.DateBounds, error) {
	query, args, err := qb.Select(
		"COALESCE(MIN(date), '') AS min_date",
		"COALESCE(MAX(date), '') AS max_date",
	).From(tableMatches).
		Format(r.format).
		ToSQL()
	if err != nil {
		return matchstats.DateBounds{}, fmt.Errorf("build date bounds query: %w", err)
	}

	var row dateBoundsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return matchstats.DateBounds{}, matchstats.StoreError("date bounds", err)
	}
	return matchstats.DateBounds{Min: row.MinDate, Max: row.MaxDate}, nil
}
