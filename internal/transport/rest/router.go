package rest

import "net/http"

// NewRouter assembles the REST routes.
func NewRouter(items *ItemsHandler, claims *ClaimsHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /items", items.Report)
	mux.HandleFunc("GET /items", items.List)
	mux.HandleFunc("GET /items/{id}", items.Get)

	mux.HandleFunc("POST /items/{id}/claims", claims.Submit)
	mux.HandleFunc("POST /claims/{id}/review", claims.Review)
	mux.HandleFunc("GET /claims/mine", claims.ListMine)

	return mux
}
