package sqlstore

import (
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	qb "github.com/riskibarqy/lol-stats/internal/platform/querybuilder"
)

// col qualifies a column with a table alias when one is given.
func col(alias, name string) string {
	if alias == "" {
		return name
	}
	return alias + "." + name
}

// filterConditions emits the window predicate. League and patch membership
// are only added for non-empty sets.
func filterConditions(alias string, f matchstats.Filter) []qb.Condition {
	conds := []qb.Condition{qb.Between(col(alias, "date"), f.Start, f.End)}
	if len(f.Leagues) > 0 {
		conds = append(conds, qb.InStrings(col(alias, "league"), f.Leagues))
	}
	if len(f.Patches) > 0 {
		conds = append(conds, qb.InStrings(col(alias, "patch"), f.Patches))
	}
	return conds
}

// positionCondition restricts rows to team pseudo rows or to participant rows.
func positionCondition(alias string, teamRows bool) qb.Condition {
	if teamRows {
		return qb.EqLiteral(col(alias, "position"), matchstats.TeamPosition)
	}
	return qb.NeLiteral(col(alias, "position"), matchstats.TeamPosition)
}

func totalsColumns(alias string) []string {
	return []string{
		"COUNT(*) AS games",
		"COALESCE(SUM(" + col(alias, "result") + "), 0) AS wins",
		"COALESCE(SUM(" + col(alias, "kills") + "), 0) AS kills",
		"COALESCE(SUM(" + col(alias, "deaths") + "), 0) AS deaths",
		"COALESCE(SUM(" + col(alias, "assists") + "), 0) AS assists",
		"COALESCE(SUM(" + col(alias, "totalgold") + "), 0) AS gold",
		"COALESCE(SUM(" + col(alias, "kda") + "), 0) AS kda",
	}
}

func rowColumns(alias string) []string {
	out := make([]string, 0, len(matchColumns))
	for _, c := range matchColumns {
		out = append(out, col(alias, c))
	}
	return out
}
