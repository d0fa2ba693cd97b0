package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

type MatchHistoryService struct {
	repo matchstats.Repository
}

func NewMatchHistoryService(repo matchstats.Repository) *MatchHistoryService {
	return &MatchHistoryService{repo: repo}
}

// History returns the entity's most recent games in the window, each paired
// with the opponent at the same position (or the opposing team).
func (s *MatchHistoryService) History(ctx context.Context, kind matchstats.Kind, name string, f matchstats.Filter, limit int) ([]matchstats.HistoryEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchHistoryService.History", reportAttrs(kind, f)...)
	defer span.End()

	if err := requireKind(kind); err != nil {
		return nil, err
	}
	name, err := requireName("name", name)
	if err != nil {
		return nil, err
	}
	limit, err = matchstats.HistoryLimit(limit)
	if err != nil {
		return nil, invalidInput(err)
	}

	primary, err := s.repo.ListEntityRows(ctx, kind, name, f, limit)
	if err != nil {
		return nil, wrapStoreErr("list "+string(kind)+" history", err)
	}
	if len(primary) == 0 {
		return []matchstats.HistoryEntry{}, nil
	}

	var candidates []matchstats.Row
	for _, ids := range matchstats.Chunk(matchstats.GameIDs(primary), matchstats.OpponentChunkSize) {
		rows, err := s.repo.ListGameRows(ctx, ids, kind.TeamRows())
		if err != nil {
			return nil, wrapStoreErr("list opponent rows", err)
		}
		candidates = append(candidates, rows...)
	}

	return matchstats.JoinOpponents(kind, name, primary, candidates), nil
}
