package matchstats

import (
	"math"
	"strings"
)

// Kind names the entity a report is about.
type Kind string

const (
	KindPlayer   Kind = "player"
	KindTeam     Kind = "team"
	KindChampion Kind = "champion"
)

// TeamPosition marks the per-team pseudo rows of a game.
const TeamPosition = "team"

func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", invalid("kind", "must be one of player, team, champion")
	}
	return kind, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindPlayer, KindTeam, KindChampion:
		return true
	default:
		return false
	}
}

// Column returns the matches column that identifies entities of this kind.
func (k Kind) Column() string {
	switch k {
	case KindPlayer:
		return "playername"
	case KindTeam:
		return "teamname"
	case KindChampion:
		return "champion"
	default:
		return ""
	}
}

// TeamRows reports whether aggregates for this kind read the team pseudo rows.
func (k Kind) TeamRows() bool {
	return k == KindTeam
}

// Row is one participant-game record.
type Row struct {
	GameID     string
	Date       string
	League     string
	Patch      string
	Split      string
	Side       string
	TeamName   string
	PlayerName string
	Position   string
	Champion   string
	Kills      int
	Deaths     int
	Assists    int
	TotalGold  int
	KDA        float64
	Result     int
}

// Identity returns the value of the column kind k reads for this row.
func (r Row) Identity(k Kind) string {
	switch k {
	case KindPlayer:
		return r.PlayerName
	case KindTeam:
		return r.TeamName
	case KindChampion:
		return r.Champion
	default:
		return ""
	}
}

// Totals holds raw sums over a set of rows. Averages are derived from it so
// rounding happens in one place regardless of the store dialect.
type Totals struct {
	Games   int
	Wins    int
	Kills   int64
	Deaths  int64
	Assists int64
	Gold    int64
	KDA     float64
}

type Summary struct {
	Games      int
	Wins       int
	WinRate    float64
	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64
	AvgKDA     float64
	AvgGold    float64
}

func (t Totals) Summary() Summary {
	if t.Games <= 0 {
		return Summary{}
	}
	n := float64(t.Games)
	return Summary{
		Games:      t.Games,
		Wins:       t.Wins,
		WinRate:    WinRate(t.Wins, t.Games),
		AvgKills:   Round2(float64(t.Kills) / n),
		AvgDeaths:  Round2(float64(t.Deaths) / n),
		AvgAssists: Round2(float64(t.Assists) / n),
		AvgKDA:     Round2(t.KDA / n),
		AvgGold:    Round2(float64(t.Gold) / n),
	}
}

// PooledKDA is (kills+assists)/max(deaths,1) over the summed totals.
func (t Totals) PooledKDA() float64 {
	deaths := t.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return Round2(float64(t.Kills+t.Assists) / float64(deaths))
}

type Correlation struct {
	Entity  string
	Games   int
	Wins    int
	WinRate float64
}

type HeadToHeadStats struct {
	Entity string
	Summary
}

// HeadToHeadGame is one entity's row in a game where both entities appear
// as distinct participants. Teams are always opponents; players and
// champions may be teammates or opponents.
type HeadToHeadGame struct {
	Entity string
	Row
}

type HeadToHeadComparison struct {
	Entity1 string
	Entity2 string
	// Found1 and Found2 are false when the entity has no rows in the window.
	Found1   bool
	Found2   bool
	Summary1 Summary
	Summary2 Summary
	Stats    []HeadToHeadStats
	Games    []HeadToHeadGame
}

type HistoryEntry struct {
	Row
	HasOpponent bool
	Opponent    Row
}

type ChampionPoolEntry struct {
	Champion string
	Summary
	PickRate  float64
	PooledKDA float64
}

// ChampionTotals is the per-champion aggregate the pool report is built from.
type ChampionTotals struct {
	Champion string
	Totals
}

type PatchChampion struct {
	Champion string
	Position string
	Games    int
	Wins     int
	WinRate  float64
}

type DateBounds struct {
	Min string
	Max string
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func WinRate(wins, games int) float64 {
	if games <= 0 {
		return 0
	}
	return Round2(100 * float64(wins) / float64(games))
}
