package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
)

func (h *Handler) GetCorrelations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetCorrelations")
	defer span.End()

	f, err := h.parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := r.URL.Query()
	req := correlationQuery{
		Kind:    strings.TrimSpace(q.Get("kind")),
		Anchors: multiValue(q, "anchor"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	kind, err := matchstats.ParseKind(req.Kind)
	if err != nil {
		writeError(ctx, w, wrapInvalid(err))
		return
	}

	policy := matchstats.Policy(r.PathValue("policy"))
	items, err := h.correlationService.Correlate(ctx, policy, kind, req.Anchors, f)
	if err != nil {
		h.logFailure(ctx, "correlate failed", err, "policy", policy, "kind", kind, "anchors", req.Anchors)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, correlationReportDTO{
		Policy:  strings.ToLower(strings.TrimSpace(string(policy))),
		Kind:    string(kind),
		Anchors: matchstats.NormalizeSet(req.Anchors),
		Items:   correlationsToDTO(items),
	})
}
