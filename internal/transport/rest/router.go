package rest

import (
	"net/http"

	"github.com/heartmarshall/etymology-backend/internal/transport/middleware"
)

// NewRouter registers every route on a fresh mux and wraps it with mw.
func NewRouter(ety *EtymologyHandler, health *HealthHandler, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/etymology/search", ety.Search)
	mux.HandleFunc("GET /api/etymology/expand", ety.Expand)
	mux.HandleFunc("GET /api/etymology/neighbors", ety.Neighbors)
	mux.HandleFunc("GET /api/words/{id}", ety.Word)
	mux.HandleFunc("PUT /api/words/{id}", ety.BindWord)
	mux.HandleFunc("POST /api/cache/clear", ety.ClearCache)

	return mw(mux)
}
