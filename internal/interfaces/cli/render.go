package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

type statsOutput struct {
	Kind    matchstats.Kind
	Name    string
	Found   bool
	Summary matchstats.Summary
}

func writeJSON(w io.Writer, v any) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pct(v float64) string {
	return f2(v) + "%"
}

func summaryCells(s matchstats.Summary) []any {
	return []any{
		s.Games, s.Wins, pct(s.WinRate),
		f2(s.AvgKills), f2(s.AvgDeaths), f2(s.AvgAssists), f2(s.AvgKDA), f2(s.AvgGold),
	}
}

func summaryHeader(first string) []any {
	return []any{first, "GAMES", "WINS", "WIN%", "AVG K", "AVG D", "AVG A", "AVG KDA", "AVG GOLD"}
}

func printSummary(w io.Writer, name string, s matchstats.Summary) {
	table := newTable(w)
	table.Header(summaryHeader("NAME")...)
	table.Append(append([]any{name}, summaryCells(s)...)...)
	table.Render()
}

func resultLabel(result int) string {
	if result == 1 {
		return "W"
	}
	return "L"
}

func kdaCell(r matchstats.Row) string {
	return fmt.Sprintf("%d/%d/%d", r.Kills, r.Deaths, r.Assists)
}

// opponentLabel names the lane or team opponent the way the entity kind reads it.
func opponentLabel(kind matchstats.Kind, e matchstats.HistoryEntry) string {
	if !e.HasOpponent {
		return "-"
	}
	switch kind {
	case matchstats.KindTeam:
		return e.Opponent.TeamName
	case matchstats.KindChampion:
		return e.Opponent.Champion + " (" + e.Opponent.PlayerName + ")"
	default:
		return e.Opponent.PlayerName + " (" + e.Opponent.Champion + ")"
	}
}

func printHistory(w io.Writer, kind matchstats.Kind, items []matchstats.HistoryEntry) {
	table := newTable(w)
	table.Header("DATE", "LEAGUE", "PATCH", "SIDE", "TEAM", "PLAYER", "CHAMPION", "K/D/A", "KDA", "GOLD", "RESULT", "VS")
	for _, e := range items {
		table.Append(
			e.Date, e.League, e.Patch, e.Side, e.TeamName, e.PlayerName, e.Champion,
			kdaCell(e.Row), f2(e.KDA), e.TotalGold, resultLabel(e.Result), opponentLabel(kind, e),
		)
	}
	table.Render()
}

func printChampionPool(w io.Writer, items []matchstats.ChampionPoolEntry) {
	table := newTable(w)
	table.Header(append(summaryHeader("CHAMPION"), "PICK%", "KDA")...)
	for _, e := range items {
		row := append([]any{e.Champion}, summaryCells(e.Summary)...)
		table.Append(append(row, pct(e.PickRate), f2(e.PooledKDA))...)
	}
	table.Render()
}

func printPatchChampions(w io.Writer, items []matchstats.PatchChampion) {
	table := newTable(w)
	table.Header("CHAMPION", "POSITION", "GAMES", "WINS", "WIN%")
	for _, e := range items {
		table.Append(e.Champion, e.Position, e.Games, e.Wins, pct(e.WinRate))
	}
	table.Render()
}

func printCorrelations(w io.Writer, policy matchstats.Policy, items []matchstats.Correlation) {
	title := "ALLY"
	if !policy.SameSide() {
		title = "OPPONENT"
	}
	table := newTable(w)
	table.Header("#", title, "GAMES", "WINS", "WIN%")
	for i, e := range items {
		table.Append(i+1, e.Entity, e.Games, e.Wins, pct(e.WinRate))
	}
	table.Render()
}

func printHeadToHead(w io.Writer, c matchstats.HeadToHeadComparison) {
	fmt.Fprintln(w, "Window")
	window := newTable(w)
	window.Header(summaryHeader("ENTITY")...)
	for _, side := range []struct {
		name  string
		found bool
		s     matchstats.Summary
	}{{c.Entity1, c.Found1, c.Summary1}, {c.Entity2, c.Found2, c.Summary2}} {
		if !side.found {
			window.Append(side.name, 0, 0, "-", "-", "-", "-", "-", "-")
			continue
		}
		window.Append(append([]any{side.name}, summaryCells(side.s)...)...)
	}
	window.Render()

	if len(c.Games) == 0 {
		fmt.Fprintf(w, "\n%s and %s never met in the window.\n", c.Entity1, c.Entity2)
		return
	}

	fmt.Fprintln(w, "\nHead to head")
	stats := newTable(w)
	stats.Header(summaryHeader("ENTITY")...)
	for _, s := range c.Stats {
		stats.Append(append([]any{s.Entity}, summaryCells(s.Summary)...)...)
	}
	stats.Render()

	fmt.Fprintln(w, "\nGames")
	games := newTable(w)
	games.Header("DATE", "GAME", "ENTITY", "SIDE", "TEAM", "CHAMPION", "K/D/A", "RESULT")
	for _, g := range c.Games {
		games.Append(g.Date, g.GameID, g.Entity, g.Side, g.TeamName, g.Champion, kdaCell(g.Row), resultLabel(g.Result))
	}
	games.Render()
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No %s values stored.\n", title)
		return
	}
	table := newTable(w)
	table.Header(title)
	for _, item := range items {
		table.Append(item)
	}
	table.Render()
}

func printDateBounds(w io.Writer, b matchstats.DateBounds) {
	if b.Min == "" && b.Max == "" {
		fmt.Fprintln(w, "No games stored.")
		return
	}
	table := newTable(w)
	table.Header("FIRST", "LAST")
	table.Append(b.Min, b.Max)
	table.Render()
}
