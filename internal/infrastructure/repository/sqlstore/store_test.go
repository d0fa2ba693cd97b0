package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	qb "github.com/riskibarqy/lol-stats/internal/platform/querybuilder"

	_ "modernc.org/sqlite"
)

var positions = [5]string{"top", "jng", "mid", "bot", "sup"}

// gameFixture describes one game; empty champion or player slots are filled
// with names unique to the game so they never correlate across games.
type gameFixture struct {
	id       string
	date     string
	league   string
	patch    string
	blue     string
	red      string
	blueWins bool
	blueCh   [5]string
	redCh    [5]string
	bluePl   [5]string
	redPl    [5]string
}

func (g gameFixture) rows() []matchRow {
	if g.league == "" {
		g.league = "LCK"
	}
	if g.patch == "" {
		g.patch = "14.1"
	}

	out := make([]matchRow, 0, 12)
	for _, side := range []string{"Blue", "Red"} {
		team, champs, players, won := g.blue, g.blueCh, g.bluePl, g.blueWins
		if side == "Red" {
			team, champs, players, won = g.red, g.redCh, g.redPl, !g.blueWins
		}
		result := 0
		if won {
			result = 1
		}
		for i, pos := range positions {
			champ := champs[i]
			if champ == "" {
				champ = fmt.Sprintf("%s-%s-%s", g.id, side, pos)
			}
			player := players[i]
			if player == "" {
				player = fmt.Sprintf("%s-%s", team, pos)
			}
			out = append(out, matchRow{
				GameID: g.id, Date: g.date, League: g.league, Patch: g.patch, Split: "Spring",
				Side: side, TeamName: team, PlayerName: player, Position: pos, Champion: champ,
				Kills: 2, Deaths: 1, Assists: 3, TotalGold: 10000, KDA: 5, Result: result,
			})
		}
		out = append(out, matchRow{
			GameID: g.id, Date: g.date, League: g.league, Patch: g.patch, Split: "Spring",
			Side: side, TeamName: team, Position: matchstats.TeamPosition,
			Kills: 10, Deaths: 5, Assists: 15, TotalGold: 60000, KDA: 5, Result: result,
		})
	}
	return out
}

func newTestRepository(t *testing.T, games ...gameFixture) *MatchRepository {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "db", "migrations", "1760400000_create_matches_table.up.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, stmt := range strings.Split(string(ddl), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply migration: %v", err)
		}
	}

	for _, g := range games {
		rows := g.rows()
		models := make([]any, len(rows))
		for i := range rows {
			models[i] = rows[i]
		}
		insert, err := qb.InsertModels(tableMatches, models...)
		if err != nil {
			t.Fatalf("build insert: %v", err)
		}
		query, args, err := insert.Format(qb.Question).ToSQL()
		if err != nil {
			t.Fatalf("build insert query: %v", err)
		}
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("seed game: %v", err)
		}
	}

	return NewMatchRepository(db)
}

func mustFilter(t *testing.T, start, end string, leagues, patches []string) matchstats.Filter {
	t.Helper()
	f, err := matchstats.NewFilter(start, end, leagues, patches)
	if err != nil {
		t.Fatalf("new filter: %v", err)
	}
	return f
}

func day(i int) string {
	return fmt.Sprintf("2024-01-%02d", i)
}

func TestPlaceholderFormat(t *testing.T) {
	if placeholderFormat("postgres") != qb.Dollar {
		t.Fatalf("expected dollar placeholders for postgres")
	}
	if placeholderFormat("sqlite") != qb.Question {
		t.Fatalf("expected question placeholders for sqlite")
	}
}

func TestAggregateTeamReadsOnlyTeamRows(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), blue: "T1", red: "GEN", blueWins: true},
		gameFixture{id: "g2", date: day(2), blue: "GEN", red: "T1", blueWins: true},
	)
	f := mustFilter(t, day(1), day(31), nil, nil)

	got, err := repo.Aggregate(context.Background(), matchstats.KindTeam, "T1", f)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got.Games != 2 || got.Wins != 1 {
		t.Fatalf("unexpected team totals: got=%+v", got)
	}
	if got.Kills != 20 || got.Gold != 120000 {
		t.Fatalf("team aggregate read participant rows: got=%+v", got)
	}
}

func TestAggregatePlayerAndChampionSkipTeamRows(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), blue: "T1", red: "GEN", blueWins: true,
			blueCh: [5]string{2: "Azir"}, bluePl: [5]string{2: "Faker"}},
		gameFixture{id: "g2", date: day(2), blue: "T1", red: "GEN", blueWins: false,
			redCh: [5]string{2: "Azir"}, bluePl: [5]string{2: "Faker"}},
	)
	f := mustFilter(t, day(1), day(31), nil, nil)

	player, err := repo.Aggregate(context.Background(), matchstats.KindPlayer, "Faker", f)
	if err != nil {
		t.Fatalf("aggregate player: %v", err)
	}
	if player.Games != 2 || player.Wins != 1 || player.Kills != 4 {
		t.Fatalf("unexpected player totals: got=%+v", player)
	}

	champ, err := repo.Aggregate(context.Background(), matchstats.KindChampion, "Azir", f)
	if err != nil {
		t.Fatalf("aggregate champion: %v", err)
	}
	if champ.Games != 2 || champ.Wins != 2 {
		t.Fatalf("unexpected champion totals: got=%+v", champ)
	}
	summary := champ.Summary()
	if summary.WinRate != 100 || summary.AvgGold != 10000 {
		t.Fatalf("unexpected champion summary: got=%+v", summary)
	}
}

func TestAggregateRespectsLeagueAndPatchSets(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), league: "LCK", patch: "14.1", blue: "T1", red: "GEN", blueWins: true},
		gameFixture{id: "g2", date: day(2), league: "MSI", patch: "14.2", blue: "T1", red: "G2", blueWins: false},
		gameFixture{id: "g3", date: day(3), league: "LCK", patch: "14.2", blue: "T1", red: "HLE", blueWins: true},
	)

	tests := []struct {
		name      string
		leagues   []string
		patches   []string
		wantGames int
	}{
		{name: "no restriction", wantGames: 3},
		{name: "league set", leagues: []string{"LCK"}, wantGames: 2},
		{name: "patch set", patches: []string{"14.2"}, wantGames: 2},
		{name: "league and patch", leagues: []string{"LCK", "MSI"}, patches: []string{"14.2"}, wantGames: 2},
		{name: "unknown league", leagues: []string{"LPL"}, wantGames: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := mustFilter(t, day(1), day(31), tc.leagues, tc.patches)
			got, err := repo.Aggregate(context.Background(), matchstats.KindTeam, "T1", f)
			if err != nil {
				t.Fatalf("aggregate: %v", err)
			}
			if got.Games != tc.wantGames {
				t.Fatalf("unexpected games: got=%d want=%d", got.Games, tc.wantGames)
			}
		})
	}
}

func TestAggregateDateWindowIsInclusive(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), blue: "T1", red: "GEN", blueWins: true},
		gameFixture{id: "g2", date: day(5), blue: "T1", red: "GEN", blueWins: true},
		gameFixture{id: "g3", date: day(9), blue: "T1", red: "GEN", blueWins: true},
	)
	got, err := repo.Aggregate(context.Background(), matchstats.KindTeam, "T1", mustFilter(t, day(1), day(5), nil, nil))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got.Games != 2 {
		t.Fatalf("unexpected games in inclusive window: got=%d want=2", got.Games)
	}
}

func synergyFixtures() []gameFixture {
	games := make([]gameFixture, 0, 8)
	// Five games with Xayah and Rakan together on blue next to Ornn, facing
	// Gnar. Blue wins three.
	for i := 1; i <= 5; i++ {
		midAlly := "Ahri"
		if i == 5 {
			midAlly = ""
		}
		games = append(games, gameFixture{
			id: fmt.Sprintf("s%d", i), date: day(i), blue: "T1", red: "GEN", blueWins: i <= 3,
			blueCh: [5]string{0: "Ornn", 2: midAlly, 3: "Xayah", 4: "Rakan"},
			redCh:  [5]string{0: "Gnar"},
		})
	}
	// Xayah without Rakan next to Ornn: not a relevant game.
	for i := 6; i <= 7; i++ {
		games = append(games, gameFixture{
			id: fmt.Sprintf("s%d", i), date: day(i), blue: "T1", red: "GEN", blueWins: true,
			blueCh: [5]string{0: "Ornn", 3: "Xayah"},
			redCh:  [5]string{0: "Gnar"},
		})
	}
	return games
}

func TestCorrelateAllies(t *testing.T) {
	repo := newTestRepository(t, synergyFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)
	anchors := []string{"Xayah", "Rakan"}

	got, err := repo.Correlate(context.Background(), matchstats.PolicyAllies, matchstats.KindChampion, anchors, f)
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected allies: got=%+v", got)
	}
	if got[0].Entity != "Ornn" || got[0].Games != 5 || got[0].WinRate != 60 {
		t.Fatalf("unexpected ally: got=%+v want Ornn games=5 winrate=60", got[0])
	}
}

func TestCorrelateCounters(t *testing.T) {
	repo := newTestRepository(t, synergyFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)
	anchors := []string{"Xayah", "Rakan"}

	for _, policy := range []matchstats.Policy{matchstats.PolicyBestAgainst, matchstats.PolicyWorstAgainst} {
		got, err := repo.Correlate(context.Background(), policy, matchstats.KindChampion, anchors, f)
		if err != nil {
			t.Fatalf("correlate %s: %v", policy, err)
		}
		if len(got) != 1 || got[0].Entity != "Gnar" || got[0].Games != 5 || got[0].Wins != 3 {
			t.Fatalf("unexpected %s result: got=%+v", policy, got)
		}
		for _, c := range got {
			if c.Entity == "Xayah" || c.Entity == "Rakan" || c.Games < matchstats.MinCorrelationGames {
				t.Fatalf("invalid correlation row: %+v", c)
			}
		}
	}
}

func TestCorrelateSingleAnchorAndNoCooccurrence(t *testing.T) {
	repo := newTestRepository(t, synergyFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)

	got, err := repo.Correlate(context.Background(), matchstats.PolicyAllies, matchstats.KindChampion, []string{"Xayah"}, f)
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	// Xayah has 7 games with Ornn and 5 with Rakan.
	byEntity := make(map[string]matchstats.Correlation, len(got))
	for _, c := range got {
		byEntity[c.Entity] = c
	}
	if byEntity["Ornn"].Games != 7 || byEntity["Ornn"].Wins != 5 {
		t.Fatalf("unexpected Ornn row: %+v", byEntity["Ornn"])
	}
	if byEntity["Rakan"].Games != 5 {
		t.Fatalf("unexpected Rakan row: %+v", byEntity["Rakan"])
	}
	if _, ok := byEntity["Ahri"]; ok {
		t.Fatalf("Ahri has 4 games and must be dropped")
	}

	none, err := repo.Correlate(context.Background(), matchstats.PolicyAllies, matchstats.KindChampion, []string{"Xayah", "Gnar"}, f)
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("anchors never on one side must yield nothing: got=%+v", none)
	}
}

func headToHeadFixtures() []gameFixture {
	games := make([]gameFixture, 0, 10)
	for i := 1; i <= 8; i++ {
		games = append(games, gameFixture{
			id: fmt.Sprintf("h%d", i), date: day(i), blue: "T1", red: "GEN", blueWins: i <= 5,
			blueCh: [5]string{2: "Ahri"}, redCh: [5]string{2: "Syndra"},
		})
	}
	// Only one of the two entities.
	games = append(games, gameFixture{id: "h9", date: day(9), blue: "T1", red: "HLE", blueWins: true,
		blueCh: [5]string{2: "Ahri"}})
	// Ahri on both sides with Syndra present: three rows, rejected.
	games = append(games, gameFixture{id: "h10", date: day(10), blue: "T1", red: "GEN", blueWins: true,
		blueCh: [5]string{2: "Ahri"}, redCh: [5]string{0: "Syndra", 2: "Ahri"}})
	return games
}

func TestHeadToHeadStats(t *testing.T) {
	repo := newTestRepository(t, headToHeadFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)

	got, err := repo.HeadToHeadStats(context.Background(), matchstats.KindChampion, "Syndra", "Ahri", f)
	if err != nil {
		t.Fatalf("head to head stats: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected stats rows: got=%+v", got)
	}
	if got[0].Entity != "Ahri" || got[0].Games != 8 || got[0].Wins != 5 {
		t.Fatalf("unexpected Ahri stats: got=%+v", got[0])
	}
	if got[1].Entity != "Syndra" || got[1].Games != 8 || got[1].Wins != 3 {
		t.Fatalf("unexpected Syndra stats: got=%+v", got[1])
	}
	if got[0].AvgKills != 2 || got[0].WinRate != 62.5 {
		t.Fatalf("unexpected Ahri averages: got=%+v", got[0].Summary)
	}
}

func TestHeadToHeadHistory(t *testing.T) {
	repo := newTestRepository(t, headToHeadFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)

	got, err := repo.HeadToHeadHistory(context.Background(), matchstats.KindChampion, "Ahri", "Syndra", f)
	if err != nil {
		t.Fatalf("head to head history: %v", err)
	}
	if len(got) != 16 {
		t.Fatalf("unexpected history size: got=%d want=16", len(got))
	}
	if got[0].GameID != "h8" || got[0].Entity != "Ahri" || got[1].Entity != "Syndra" {
		t.Fatalf("unexpected history head: got=%+v %+v", got[0], got[1])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date > got[i-1].Date {
			t.Fatalf("history not ordered by date desc at %d", i)
		}
		if got[i].GameID == "h9" || got[i].GameID == "h10" {
			t.Fatalf("non qualifying game in history: %s", got[i].GameID)
		}
	}
}

func TestHeadToHeadTeams(t *testing.T) {
	repo := newTestRepository(t, headToHeadFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)

	got, err := repo.HeadToHeadStats(context.Background(), matchstats.KindTeam, "T1", "GEN", f)
	if err != nil {
		t.Fatalf("head to head stats: %v", err)
	}
	if len(got) != 2 || got[0].Entity != "GEN" || got[0].Games != 9 || got[1].Wins != 6 {
		t.Fatalf("unexpected team head to head: got=%+v", got)
	}
}

func TestListEntityRowsAndGameRows(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), blue: "T1", red: "GEN", blueWins: true, bluePl: [5]string{2: "Faker"}},
		gameFixture{id: "g2", date: day(2), blue: "T1", red: "GEN", blueWins: false, bluePl: [5]string{2: "Faker"}},
		gameFixture{id: "g3", date: day(3), blue: "GEN", red: "T1", blueWins: false, redPl: [5]string{2: "Faker"}},
	)
	f := mustFilter(t, day(1), day(31), nil, nil)

	rows, err := repo.ListEntityRows(context.Background(), matchstats.KindPlayer, "Faker", f, 2)
	if err != nil {
		t.Fatalf("list entity rows: %v", err)
	}
	if len(rows) != 2 || rows[0].GameID != "g3" || rows[1].GameID != "g2" {
		t.Fatalf("unexpected primary rows: got=%+v", rows)
	}

	gameRows, err := repo.ListGameRows(context.Background(), []string{"g3", "g2"}, false)
	if err != nil {
		t.Fatalf("list game rows: %v", err)
	}
	if len(gameRows) != 20 {
		t.Fatalf("unexpected participant rows: got=%d want=20", len(gameRows))
	}
	for _, r := range gameRows {
		if r.Position == matchstats.TeamPosition {
			t.Fatalf("participant query returned a team row")
		}
	}

	teamRows, err := repo.ListGameRows(context.Background(), []string{"g1"}, true)
	if err != nil {
		t.Fatalf("list team game rows: %v", err)
	}
	if len(teamRows) != 2 {
		t.Fatalf("unexpected team rows: got=%d want=2", len(teamRows))
	}

	empty, err := repo.ListGameRows(context.Background(), nil, false)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no rows for no game ids: got=%v err=%v", empty, err)
	}
}

func TestChampionPoolAndPatchChampions(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(1), patch: "14.1", blue: "T1", red: "GEN", blueWins: true,
			blueCh: [5]string{2: "Azir"}, bluePl: [5]string{2: "Faker"}, redCh: [5]string{2: "Azir"}},
		gameFixture{id: "g2", date: day(2), patch: "14.1", blue: "T1", red: "GEN", blueWins: false,
			blueCh: [5]string{2: "Azir"}, bluePl: [5]string{2: "Faker"}},
		gameFixture{id: "g3", date: day(3), patch: "14.2", blue: "T1", red: "GEN", blueWins: true,
			blueCh: [5]string{2: "Ahri"}, bluePl: [5]string{2: "Faker"}},
	)
	f := mustFilter(t, day(1), day(31), nil, nil)

	totals, games, err := repo.ChampionPool(context.Background(), matchstats.KindPlayer, "Faker", f)
	if err != nil {
		t.Fatalf("champion pool: %v", err)
	}
	if games != 3 || len(totals) != 2 {
		t.Fatalf("unexpected pool: games=%d totals=%+v", games, totals)
	}
	if totals[0].Champion != "Ahri" || totals[1].Champion != "Azir" || totals[1].Games != 2 {
		t.Fatalf("unexpected pool order: %+v", totals)
	}

	patch, err := repo.PatchChampions(context.Background(), mustFilter(t, day(1), day(31), nil, []string{"14.1"}))
	if err != nil {
		t.Fatalf("patch champions: %v", err)
	}
	if len(patch) == 0 || patch[0].Champion != "Azir" || patch[0].Position != "mid" || patch[0].Games != 3 {
		t.Fatalf("unexpected patch head: %+v", patch)
	}
	// Blue Azir won g1, red Azir lost g1 and blue Azir lost g2.
	if patch[0].Wins != 1 || patch[0].WinRate != 33.33 {
		t.Fatalf("unexpected patch win rate: %+v", patch[0])
	}
}

func TestCatalog(t *testing.T) {
	repo := newTestRepository(t,
		gameFixture{id: "g1", date: day(4), league: "LCK", patch: "14.1", blue: "T1", red: "GEN", blueWins: true},
		gameFixture{id: "g2", date: day(2), league: "MSI", patch: "14.2", blue: "T1", red: "G2", blueWins: true},
	)
	ctx := context.Background()

	leagues, err := repo.ListLeagues(ctx)
	if err != nil || strings.Join(leagues, ",") != "LCK,MSI" {
		t.Fatalf("unexpected leagues: got=%v err=%v", leagues, err)
	}
	patches, err := repo.ListPatches(ctx)
	if err != nil || strings.Join(patches, ",") != "14.1,14.2" {
		t.Fatalf("unexpected patches: got=%v err=%v", patches, err)
	}
	bounds, err := repo.DateBounds(ctx)
	if err != nil || bounds.Min != day(2) || bounds.Max != day(4) {
		t.Fatalf("unexpected bounds: got=%+v err=%v", bounds, err)
	}
	teams, err := repo.ListEntities(ctx, matchstats.KindTeam, "MSI")
	if err != nil || strings.Join(teams, ",") != "G2,T1" {
		t.Fatalf("unexpected MSI teams: got=%v err=%v", teams, err)
	}
	players, err := repo.ListEntities(ctx, matchstats.KindPlayer, "")
	if err != nil || len(players) != 15 {
		t.Fatalf("unexpected players: got=%d err=%v", len(players), err)
	}
	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestZeroRowsAcrossOperations(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	f := mustFilter(t, day(1), day(31), nil, nil)

	totals, err := repo.Aggregate(ctx, matchstats.KindPlayer, "Nobody", f)
	if err != nil || totals.Games != 0 {
		t.Fatalf("unexpected aggregate: got=%+v err=%v", totals, err)
	}
	corr, err := repo.Correlate(ctx, matchstats.PolicyAllies, matchstats.KindChampion, []string{"Ahri"}, f)
	if err != nil || len(corr) != 0 {
		t.Fatalf("unexpected correlate: got=%+v err=%v", corr, err)
	}
	stats, err := repo.HeadToHeadStats(ctx, matchstats.KindPlayer, "A", "B", f)
	if err != nil || len(stats) != 0 {
		t.Fatalf("unexpected h2h stats: got=%+v err=%v", stats, err)
	}
	history, err := repo.HeadToHeadHistory(ctx, matchstats.KindPlayer, "A", "B", f)
	if err != nil || len(history) != 0 {
		t.Fatalf("unexpected h2h history: got=%+v err=%v", history, err)
	}
	rows, err := repo.ListEntityRows(ctx, matchstats.KindTeam, "T1", f, 20)
	if err != nil || len(rows) != 0 {
		t.Fatalf("unexpected rows: got=%+v err=%v", rows, err)
	}
	pool, games, err := repo.ChampionPool(ctx, matchstats.KindPlayer, "Faker", f)
	if err != nil || len(pool) != 0 || games != 0 {
		t.Fatalf("unexpected pool: got=%+v games=%d err=%v", pool, games, err)
	}
	patch, err := repo.PatchChampions(ctx, f)
	if err != nil || len(patch) != 0 {
		t.Fatalf("unexpected patch: got=%+v err=%v", patch, err)
	}
	bounds, err := repo.DateBounds(ctx)
	if err != nil || bounds != (matchstats.DateBounds{}) {
		t.Fatalf("unexpected bounds: got=%+v err=%v", bounds, err)
	}
}

func TestRepeatedQueriesAreDeterministic(t *testing.T) {
	repo := newTestRepository(t, synergyFixtures()...)
	f := mustFilter(t, day(1), day(31), nil, nil)

	first, err := repo.Correlate(context.Background(), matchstats.PolicyAllies, matchstats.KindChampion, []string{"Xayah"}, f)
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := repo.Correlate(context.Background(), matchstats.PolicyAllies, matchstats.KindChampion, []string{"Xayah"}, f)
		if err != nil {
			t.Fatalf("correlate: %v", err)
		}
		if fmt.Sprint(again) != fmt.Sprint(first) {
			t.Fatalf("non deterministic result: got=%v want=%v", again, first)
		}
	}
}

func TestStoreErrorsAreMarked(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	_, err := repo.Aggregate(context.Background(), matchstats.KindPlayer, "Faker", mustFilter(t, day(1), day(2), nil, nil))
	if !matchstats.IsStoreUnavailable(err) {
		t.Fatalf("expected store unavailable, got=%v", err)
	}
}
