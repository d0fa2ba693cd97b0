package sqlstore

import "github.com/riskibarqy/lol-stats/internal/domain/matchstats"

const tableMatches = "matches"

var matchColumns = []string{
	"gameid",
	"date",
	"league",
	"patch",
	"split",
	"side",
	"teamname",
	"playername",
	"position",
	"champion",
	"kills",
	"deaths",
	"assists",
	"totalgold",
	"kda",
	"result",
}

type matchRow struct {
	GameID     string  `db:"gameid"`
	Date       string  `db:"date"`
	League     string  `db:"league"`
	Patch      string  `db:"patch"`
	Split      string  `db:"split"`
	Side       string  `db:"side"`
	TeamName   string  `db:"teamname"`
	PlayerName string  `db:"playername"`
	Position   string  `db:"position"`
	Champion   string  `db:"champion"`
	Kills      int     `db:"kills"`
	Deaths     int     `db:"deaths"`
	Assists    int     `db:"assists"`
	TotalGold  int     `db:"totalgold"`
	KDA        float64 `db:"kda"`
	Result     int     `db:"result"`
}

func (r matchRow) toDomain() matchstats.Row {
	return matchstats.Row{
		GameID:     r.GameID,
		Date:       r.Date,
		League:     r.League,
		Patch:      r.Patch,
		Split:      r.Split,
		Side:       r.Side,
		TeamName:   r.TeamName,
		PlayerName: r.PlayerName,
		Position:   r.Position,
		Champion:   r.Champion,
		Kills:      r.Kills,
		Deaths:     r.Deaths,
		Assists:    r.Assists,
		TotalGold:  r.TotalGold,
		KDA:        r.KDA,
		Result:     r.Result,
	}
}

func toDomainRows(rows []matchRow) []matchstats.Row {
	out := make([]matchstats.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

type totalsRow struct {
	Games   int     `db:"games"`
	Wins    int     `db:"wins"`
	Kills   int64   `db:"kills"`
	Deaths  int64   `db:"deaths"`
	Assists int64   `db:"assists"`
	Gold    int64   `db:"gold"`
	KDA     float64 `db:"kda"`
}

func (r totalsRow) toDomain() matchstats.Totals {
	return matchstats.Totals{
		Games:   r.Games,
		Wins:    r.Wins,
		Kills:   r.Kills,
		Deaths:  r.Deaths,
		Assists: r.Assists,
		Gold:    r.Gold,
		KDA:     r.KDA,
	}
}

type entityTotalsRow struct {
	Entity string `db:"entity"`
	totalsRow
}

type correlationRow struct {
	Entity string `db:"entity"`
	Games  int    `db:"games"`
	Wins   int    `db:"wins"`
}

type patchChampionRow struct {
	Champion string `db:"champion"`
	Position string `db:"position"`
	Games    int    `db:"games"`
	Wins     int    `db:"wins"`
}

type dateBoundsRow struct {
	MinDate string `db:"min_date"`
	MaxDate string `db:"max_date"`
}
