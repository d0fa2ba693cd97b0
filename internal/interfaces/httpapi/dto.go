package httpapi

import "github.com/riskibarqy/lol-stats/internal/domain/matchstats"

type filterDTO struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Leagues   []string `json:"leagues"`
	Patches   []string `json:"patches"`
}

type summaryDTO struct {
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"winRate"`
	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`
	AvgKDA     float64 `json:"avgKda"`
	AvgGold    float64 `json:"avgGold"`
}

type entityStatsDTO struct {
	Kind    string     `json:"kind"`
	Name    string     `json:"name"`
	Found   bool       `json:"found"`
	Filter  filterDTO  `json:"filter"`
	Summary summaryDTO `json:"summary"`
}

type matchRowDTO struct {
	GameID     string  `json:"gameId"`
	Date       string  `json:"date"`
	League     string  `json:"league"`
	Patch      string  `json:"patch"`
	Split      string  `json:"split"`
	Side       string  `json:"side"`
	TeamName   string  `json:"teamName"`
	PlayerName string  `json:"playerName,omitempty"`
	Position   string  `json:"position"`
	Champion   string  `json:"champion,omitempty"`
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	Assists    int     `json:"assists"`
	TotalGold  int     `json:"totalGold"`
	KDA        float64 `json:"kda"`
	Result     int     `json:"result"`
}

type historyEntryDTO struct {
	matchRowDTO
	Opponent *matchRowDTO `json:"opponent"`
}

type correlationDTO struct {
	Entity  string  `json:"entity"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}

type correlationReportDTO struct {
	Policy  string           `json:"policy"`
	Kind    string           `json:"kind"`
	Anchors []string         `json:"anchors"`
	Items   []correlationDTO `json:"items"`
}

type headToHeadStatsDTO struct {
	Entity string `json:"entity"`
	summaryDTO
}

type headToHeadGameDTO struct {
	Entity string `json:"entity"`
	matchRowDTO
}

type headToHeadSideDTO struct {
	Name    string     `json:"name"`
	Found   bool       `json:"found"`
	Summary summaryDTO `json:"summary"`
}

type headToHeadDTO struct {
	Kind    string               `json:"kind"`
	Entity1 headToHeadSideDTO    `json:"entity1"`
	Entity2 headToHeadSideDTO    `json:"entity2"`
	Stats   []headToHeadStatsDTO `json:"stats"`
	Games   []headToHeadGameDTO  `json:"games"`
}

type championPoolDTO struct {
	Champion string `json:"champion"`
	summaryDTO
	PickRate  float64 `json:"pickRate"`
	PooledKDA float64 `json:"pooledKda"`
}

type patchChampionDTO struct {
	Champion string  `json:"champion"`
	Position string  `json:"position"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"winRate"`
}

type dateBoundsDTO struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func filterToDTO(f matchstats.Filter) filterDTO {
	return filterDTO{
		StartDate: f.Start,
		EndDate:   f.End,
		Leagues:   nonNil(f.Leagues),
		Patches:   nonNil(f.Patches),
	}
}

func summaryToDTO(s matchstats.Summary) summaryDTO {
	return summaryDTO{
		Games:      s.Games,
		Wins:       s.Wins,
		WinRate:    s.WinRate,
		AvgKills:   s.AvgKills,
		AvgDeaths:  s.AvgDeaths,
		AvgAssists: s.AvgAssists,
		AvgKDA:     s.AvgKDA,
		AvgGold:    s.AvgGold,
	}
}

func rowToDTO(r matchstats.Row) matchRowDTO {
	return matchRowDTO{
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

func historyToDTO(items []matchstats.HistoryEntry) []historyEntryDTO {
	out := make([]historyEntryDTO, 0, len(items))
	for _, item := range items {
		entry := historyEntryDTO{matchRowDTO: rowToDTO(item.Row)}
		if item.HasOpponent {
			opponent := rowToDTO(item.Opponent)
			entry.Opponent = &opponent
		}
		out = append(out, entry)
	}
	return out
}

func correlationsToDTO(items []matchstats.Correlation) []correlationDTO {
	out := make([]correlationDTO, 0, len(items))
	for _, c := range items {
		out = append(out, correlationDTO{Entity: c.Entity, Games: c.Games, Wins: c.Wins, WinRate: c.WinRate})
	}
	return out
}

func headToHeadToDTO(kind matchstats.Kind, c matchstats.HeadToHeadComparison) headToHeadDTO {
	stats := make([]headToHeadStatsDTO, 0, len(c.Stats))
	for _, s := range c.Stats {
		stats = append(stats, headToHeadStatsDTO{Entity: s.Entity, summaryDTO: summaryToDTO(s.Summary)})
	}
	games := make([]headToHeadGameDTO, 0, len(c.Games))
	for _, g := range c.Games {
		games = append(games, headToHeadGameDTO{Entity: g.Entity, matchRowDTO: rowToDTO(g.Row)})
	}
	return headToHeadDTO{
		Kind:    string(kind),
		Entity1: headToHeadSideDTO{Name: c.Entity1, Found: c.Found1, Summary: summaryToDTO(c.Summary1)},
		Entity2: headToHeadSideDTO{Name: c.Entity2, Found: c.Found2, Summary: summaryToDTO(c.Summary2)},
		Stats:   stats,
		Games:   games,
	}
}

func championPoolToDTO(items []matchstats.ChampionPoolEntry) []championPoolDTO {
	out := make([]championPoolDTO, 0, len(items))
	for _, item := range items {
		out = append(out, championPoolDTO{
			Champion:   item.Champion,
			summaryDTO: summaryToDTO(item.Summary),
			PickRate:   item.PickRate,
			PooledKDA:  item.PooledKDA,
		})
	}
	return out
}

func patchChampionsToDTO(items []matchstats.PatchChampion) []patchChampionDTO {
	out := make([]patchChampionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, patchChampionDTO{
			Champion: item.Champion,
			Position: item.Position,
			Games:    item.Games,
			Wins:     item.Wins,
			WinRate:  item.WinRate,
		})
	}
	return out
}
