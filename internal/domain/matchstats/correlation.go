package matchstats

import (
	"sort"
	"strings"
)

// Policy selects which side of the anchors' games a correlation reads and
// how results are ranked.
type Policy string

const (
	PolicyAllies       Policy = "allies"
	PolicyBestAgainst  Policy = "best-against"
	PolicyWorstAgainst Policy = "worst-against"
)

const (
	MinCorrelationGames   = 5
	MaxCorrelationResults = 10
	MaxAnchors            = 5
)

func ParsePolicy(raw string) (Policy, error) {
	policy := Policy(strings.ToLower(strings.TrimSpace(raw)))
	switch policy {
	case PolicyAllies, PolicyBestAgainst, PolicyWorstAgainst:
		return policy, nil
	default:
		return "", invalid("policy", "must be one of allies, best-against, worst-against")
	}
}

// SameSide reports whether the other entities are read from the anchors' team.
func (p Policy) SameSide() bool {
	return p == PolicyAllies
}

// Ascending reports whether results rank lowest win rate first.
func (p Policy) Ascending() bool {
	return p == PolicyWorstAgainst
}

// NormalizeAnchors validates the anchor kind and returns the deduplicated
// anchor set.
func NormalizeAnchors(kind Kind, anchors []string) ([]string, error) {
	if kind != KindChampion && kind != KindPlayer {
		return nil, invalid("kind", "correlations support champion or player anchors")
	}
	out := NormalizeSet(anchors)
	if len(out) == 0 {
		return nil, invalid("anchor", "at least one anchor is required")
	}
	if len(out) > MaxAnchors {
		return nil, invalid("anchor", "at most 5 anchors are allowed")
	}
	return out, nil
}

// RankCorrelations drops anchors and entities under the minimum game count,
// fills win rates, then stable-sorts by win rate and keeps the top results.
// Input is expected in entity name order so ties stay alphabetical.
func RankCorrelations(policy Policy, anchors []string, in []Correlation) []Correlation {
	skip := make(map[string]struct{}, len(anchors))
	for _, a := range anchors {
		skip[a] = struct{}{}
	}

	out := make([]Correlation, 0, len(in))
	for _, c := range in {
		if _, ok := skip[c.Entity]; ok {
			continue
		}
		if c.Games < MinCorrelationGames {
			continue
		}
		c.WinRate = WinRate(c.Wins, c.Games)
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if policy.Ascending() {
			return out[i].WinRate < out[j].WinRate
		}
		return out[i].WinRate > out[j].WinRate
	})

	if len(out) > MaxCorrelationResults {
		out = out[:MaxCorrelationResults]
	}
	return out
}
