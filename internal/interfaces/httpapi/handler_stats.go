package httpapi

import "net/http"

func (h *Handler) GetEntityStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetEntityStats")
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

	name := r.PathValue("name")
	summary, found, err := h.entityService.Aggregate(ctx, kind, name, f)
	if err != nil {
		h.logFailure(ctx, "aggregate entity failed", err, "kind", kind, "name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entityStatsDTO{
		Kind:    string(kind),
		Name:    name,
		Found:   found,
		Filter:  filterToDTO(f),
		Summary: summaryToDTO(summary),
	})
}

func (h *Handler) GetEntityHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetEntityHistory")
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
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, historyQuery{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	name := r.PathValue("name")
	items, err := h.matchHistoryService.History(ctx, kind, name, f, limit)
	if err != nil {
		h.logFailure(ctx, "entity history failed", err, "kind", kind, "name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyToDTO(items))
}

func (h *Handler) GetChampionPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetChampionPool")
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

	name := r.PathValue("name")
	items, err := h.entityService.ChampionPool(ctx, kind, name, f)
	if err != nil {
		h.logFailure(ctx, "champion pool failed", err, "kind", kind, "name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championPoolToDTO(items))
}

func (h *Handler) GetPatchChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPatchChampions")
	defer span.End()

	f, err := h.parseFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.entityService.PatchChampions(ctx, f)
	if err != nil {
		h.logFailure(ctx, "patch champions failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, patchChampionsToDTO(items))
}
