package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.catalogService.Leagues(ctx)
	if err != nil {
		h.logFailure(ctx, "list leagues failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nonNil(items))
}

func (h *Handler) ListPatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListPatches")
	defer span.End()

	items, err := h.catalogService.Patches(ctx)
	if err != nil {
		h.logFailure(ctx, "list patches failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nonNil(items))
}

func (h *Handler) GetDateBounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetDateBounds")
	defer span.End()

	bounds, err := h.catalogService.DateBounds(ctx)
	if err != nil {
		h.logFailure(ctx, "get date bounds failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dateBoundsDTO{Min: bounds.Min, Max: bounds.Max})
}

func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListEntities")
	defer span.End()

	kind, err := parseKindParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	league := strings.TrimSpace(r.URL.Query().Get("league"))
	items, err := h.catalogService.Entities(ctx, kind, league)
	if err != nil {
		h.logFailure(ctx, "list entities failed", err, "kind", kind, "league", league)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nonNil(items))
}
