package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/usecase"
)

type filterQuery struct {
	StartDate string   `query:"start_date" validate:"required"`
	EndDate   string   `query:"end_date" validate:"required"`
	Leagues   []string `query:"league" validate:"omitempty,max=50,dive,max=64"`
	Patches   []string `query:"patch" validate:"omitempty,max=50,dive,max=16"`
}

type historyQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=200"`
}

type correlationQuery struct {
	Kind    string   `query:"kind" validate:"required"`
	Anchors []string `query:"anchor" validate:"required,dive,required"`
}

type headToHeadQuery struct {
	Entity1 string `query:"entity1" validate:"required"`
	Entity2 string `query:"entity2" validate:"required"`
}

// multiValue reads a repeatable query parameter, also splitting each
// occurrence on commas.
func multiValue(q url.Values, key string) []string {
	raw := q[key]
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if item := strings.TrimSpace(part); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (h *Handler) parseFilter(r *http.Request) (matchstats.Filter, error) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.parseFilter")
	defer span.End()

	q := r.URL.Query()
	req := filterQuery{
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
		Leagues:   multiValue(q, "league"),
		Patches:   multiValue(q, "patch"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return matchstats.Filter{}, err
	}

	return usecase.ResolveFilter(req.StartDate, req.EndDate, req.Leagues, req.Patches)
}

func parseKindParam(r *http.Request) (matchstats.Kind, error) {
	kind, err := matchstats.ParseKind(r.PathValue("kind"))
	if err != nil {
		return "", wrapInvalid(err)
	}
	return kind, nil
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, wrapInvalid(&matchstats.ValidationError{Field: "limit", Reason: "must be an integer"})
	}
	return v, nil
}
