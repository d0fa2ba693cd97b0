package app

import (
	"strings"
	"testing"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "empty", query: "   ", want: ""},
		{name: "whitespace", query: "SELECT gameid\n\tFROM matches  WHERE league = $1", want: "SELECT gameid FROM matches WHERE league = $1"},
		{name: "short list kept", query: "SELECT 1 FROM matches WHERE league IN ($1, $2, $3)", want: "SELECT 1 FROM matches WHERE league IN ($1, $2, $3)"},
		{
			name:  "long dollar list collapsed",
			query: "SELECT * FROM matches WHERE gameid IN ($3, $4, $5, $6, $7, $8, $9, $10, $11, $12)",
			want:  "SELECT * FROM matches WHERE gameid IN ($3, ... 10 values)",
		},
		{
			name:  "long question list collapsed",
			query: "SELECT * FROM matches WHERE gameid IN (?,?,?,?,?,?,?,?,?)",
			want:  "SELECT * FROM matches WHERE gameid IN (?, ... 9 values)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatDBQueryForTrace(tc.query); got != tc.want {
				t.Fatalf("formatDBQueryForTrace() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDBQueryForTrace_Truncates(t *testing.T) {
	t.Parallel()

	query := "SELECT " + strings.Repeat("kills, ", 200) + "deaths FROM matches"
	got := formatDBQueryForTrace(query)
	if len(got) != maxTracedQueryLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated query, got %d chars", len(got))
	}
}
