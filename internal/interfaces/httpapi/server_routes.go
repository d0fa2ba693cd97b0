package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/catalog/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/catalog/patches", handler.ListPatches)
	mux.HandleFunc("GET /v1/catalog/dates", handler.GetDateBounds)
	mux.HandleFunc("GET /v1/catalog/{kind}", handler.ListEntities)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/{kind}/{name}", handler.GetEntityStats)
	mux.HandleFunc("GET /v1/stats/{kind}/{name}/history", handler.GetEntityHistory)
	mux.HandleFunc("GET /v1/stats/{kind}/{name}/champions", handler.GetChampionPool)
	mux.HandleFunc("GET /v1/patches/champions", handler.GetPatchChampions)
	mux.HandleFunc("GET /v1/correlations/{policy}", handler.GetCorrelations)
	mux.HandleFunc("GET /v1/head-to-head/{kind}", handler.GetHeadToHead)
}
