package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetHeadToHead")
	defer span.End()

	kind, err := parseKindParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	f, err := h.parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q := r.URL.Query()
	req := headToHeadQuery{
		Entity1: strings.TrimSpace(q.Get("entity1")),
		Entity2: strings.TrimSpace(q.Get("entity2")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.headToHeadService.Compare(ctx, kind, req.Entity1, req.Entity2, f)
	if err != nil {
		h.logFailure(ctx, "head to head failed", err, "kind", kind, "entity1", req.Entity1, "entity2", req.Entity2)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(kind, comparison))
}
