package matchstats

import "strings"

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
	// OpponentChunkSize bounds the game ids bound into one opponent query.
	OpponentChunkSize = 500
)

// HistoryLimit applies the default and bounds to a requested history size.
func HistoryLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultHistoryLimit, nil
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return 0, invalid("limit", "must be between 1 and 200")
	}
	return limit, nil
}

// GameIDs returns the distinct game ids of rows in first-seen order.
func GameIDs(rows []Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.GameID)
	}
	return NormalizeSet(ids)
}

// Chunk splits ids into slices of at most size elements.
func Chunk(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// JoinOpponents pairs each primary row with the rows of the other team in
// the same game. Player and champion rows pair on (gameid, position), team
// rows on gameid. Primaries without an opponent are kept with an empty
// opponent, and several opponents yield several entries.
func JoinOpponents(kind Kind, name string, primary, candidates []Row) []HistoryEntry {
	type key struct {
		gameID   string
		position string
	}
	keyOf := func(r Row) key {
		if kind.TeamRows() {
			return key{gameID: r.GameID}
		}
		return key{gameID: r.GameID, position: r.Position}
	}

	name = strings.TrimSpace(name)
	byKey := make(map[key][]Row, len(candidates))
	for _, c := range candidates {
		if c.Identity(kind) == name {
			continue
		}
		k := keyOf(c)
		byKey[k] = append(byKey[k], c)
	}

	out := make([]HistoryEntry, 0, len(primary))
	for _, p := range primary {
		matched := false
		for _, c := range byKey[keyOf(p)] {
			if c.TeamName == p.TeamName {
				continue
			}
			out = append(out, HistoryEntry{Row: p, HasOpponent: true, Opponent: c})
			matched = true
		}
		if !matched {
			out = append(out, HistoryEntry{Row: p})
		}
	}
	return out
}
