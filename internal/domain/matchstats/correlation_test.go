package matchstats

import (
	"errors"
	"reflect"
	"testing"
)

func TestRankCorrelations(t *testing.T) {
	t.Parallel()

	// Input arrives ordered by entity name.
	in := []Correlation{
		{Entity: "Ahri", Games: 10, Wins: 6},
		{Entity: "Braum", Games: 5, Wins: 3},
		{Entity: "Jinx", Games: 4, Wins: 4},
		{Entity: "Leona", Games: 8, Wins: 2},
		{Entity: "Thresh", Games: 6, Wins: 6},
		{Entity: "Xayah", Games: 7, Wins: 7},
	}

	t.Run("allies rank descending and drop anchors", func(t *testing.T) {
		got := RankCorrelations(PolicyAllies, []string{"Xayah"}, in)
		names := entities(got)
		want := []string{"Thresh", "Ahri", "Braum", "Leona"}
		if !reflect.DeepEqual(names, want) {
			t.Fatalf("unexpected order: got=%v want=%v", names, want)
		}
		if got[1].WinRate != 60 || got[2].WinRate != 60 {
			t.Fatalf("unexpected win rates: %+v", got)
		}
	})

	t.Run("worst against ranks ascending", func(t *testing.T) {
		got := RankCorrelations(PolicyWorstAgainst, nil, in)
		names := entities(got)
		want := []string{"Leona", "Ahri", "Braum", "Thresh", "Xayah"}
		if !reflect.DeepEqual(names, want) {
			t.Fatalf("unexpected order: got=%v want=%v", names, want)
		}
	})

	t.Run("never below minimum games", func(t *testing.T) {
		for _, c := range RankCorrelations(PolicyBestAgainst, nil, in) {
			if c.Games < MinCorrelationGames {
				t.Fatalf("unexpected entity under minimum games: %+v", c)
			}
		}
	})
}

func TestRankCorrelationsTruncates(t *testing.T) {
	t.Parallel()

	in := make([]Correlation, 0, 15)
	for i := 0; i < 15; i++ {
		in = append(in, Correlation{Entity: string(rune('a' + i)), Games: 5, Wins: i % 6})
	}
	if got := RankCorrelations(PolicyAllies, nil, in); len(got) != MaxCorrelationResults {
		t.Fatalf("unexpected result size: got=%d want=%d", len(got), MaxCorrelationResults)
	}
}

func TestRankCorrelationsIsDeterministic(t *testing.T) {
	t.Parallel()

	in := []Correlation{
		{Entity: "A", Games: 5, Wins: 3},
		{Entity: "B", Games: 10, Wins: 6},
		{Entity: "C", Games: 5, Wins: 3},
	}
	first := RankCorrelations(PolicyAllies, nil, in)
	for i := 0; i < 5; i++ {
		if got := RankCorrelations(PolicyAllies, nil, in); !reflect.DeepEqual(got, first) {
			t.Fatalf("non deterministic ranking: got=%v want=%v", got, first)
		}
	}
	if !reflect.DeepEqual(entities(first), []string{"A", "B", "C"}) {
		t.Fatalf("ties must keep name order: got=%v", entities(first))
	}
}

func TestNormalizeAnchors(t *testing.T) {
	t.Parallel()

	got, err := NormalizeAnchors(KindChampion, []string{" Xayah", "Rakan", "Xayah"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Xayah", "Rakan"}) {
		t.Fatalf("unexpected anchors: got=%v", got)
	}

	tests := []struct {
		name    string
		kind    Kind
		anchors []string
	}{
		{name: "team kind", kind: KindTeam, anchors: []string{"T1"}},
		{name: "no anchors", kind: KindPlayer, anchors: []string{" "}},
		{name: "too many anchors", kind: KindChampion, anchors: []string{"a", "b", "c", "d", "e", "f"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NormalizeAnchors(tc.kind, tc.anchors); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got=%v", err)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, err := ParsePolicy("Best-Against")
	if err != nil || p != PolicyBestAgainst {
		t.Fatalf("unexpected policy: got=%v err=%v", p, err)
	}
	if p.SameSide() || p.Ascending() {
		t.Fatalf("unexpected best-against flags")
	}
	if !PolicyAllies.SameSide() || !PolicyWorstAgainst.Ascending() {
		t.Fatalf("unexpected policy flags")
	}
	if _, err := ParsePolicy("synergy"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got=%v", err)
	}
}

func entities(in []Correlation) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, c.Entity)
	}
	return out
}
