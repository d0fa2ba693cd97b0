package matchstats

import "sort"

// MaxTeamPoolSize caps the team champion pool report.
const MaxTeamPoolSize = 20

// BuildChampionPool turns per-champion totals into pool entries ordered by
// games desc then champion. entityGames is the number of distinct games the
// entity played in the window and is the pick rate denominator.
func BuildChampionPool(kind Kind, totals []ChampionTotals, entityGames int) []ChampionPoolEntry {
	out := make([]ChampionPoolEntry, 0, len(totals))
	for _, t := range totals {
		if t.Games <= 0 {
			continue
		}
		entry := ChampionPoolEntry{
			Champion:  t.Champion,
			Summary:   t.Totals.Summary(),
			PooledKDA: t.Totals.PooledKDA(),
		}
		if entityGames > 0 {
			entry.PickRate = Round2(100 * float64(t.Games) / float64(entityGames))
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Champion < out[j].Champion
	})

	if kind == KindTeam && len(out) > MaxTeamPoolSize {
		out = out[:MaxTeamPoolSize]
	}
	return out
}
