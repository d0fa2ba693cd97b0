package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"go.opentelemetry.io/otel/attribute"
)

type CorrelationService struct {
	repo matchstats.Repository
}

func NewCorrelationService(repo matchstats.Repository) *CorrelationService {
	return &CorrelationService{repo: repo}
}

// Correlate ranks the entities seen with (allies) or against (counters) a
// set of anchors that played on one side together.
func (s *CorrelationService) Correlate(ctx context.Context, policy matchstats.Policy, kind matchstats.Kind, anchors []string, f matchstats.Filter) ([]matchstats.Correlation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CorrelationService.Correlate",
		append(reportAttrs(kind, f), attribute.String("lolstats.policy", string(policy)))...)
	defer span.End()

	policy, err := matchstats.ParsePolicy(string(policy))
	if err != nil {
		return nil, invalidInput(err)
	}
	anchors, err = matchstats.NormalizeAnchors(kind, anchors)
	if err != nil {
		return nil, invalidInput(err)
	}

	items, err := s.repo.Correlate(ctx, policy, kind, anchors, f)
	if err != nil {
		return nil, wrapStoreErr("correlate "+string(policy), err)
	}

	return matchstats.RankCorrelations(policy, anchors, items), nil
}
