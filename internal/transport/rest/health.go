package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/etymology-backend/internal/service/etymology"
)

type statsProvider interface {
	Stats() etymology.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	stats   statsProvider
	sources []string
	version string
}

// NewHealthHandler creates a HealthHandler. sources names the enabled
// external sources.
func NewHealthHandler(stats statsProvider, sources []string, version string) *HealthHandler {
	return &HealthHandler{stats: stats, sources: sources, version: version}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version,omitempty"`
	Sources   []string         `json:"sources,omitempty"`
	Caches    *etymology.Stats `json:"caches,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version, the enabled sources and the sizes of the
// in-memory caches. The service keeps no external state that could be
// down, so the status is always ok.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.stats.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Sources:   h.sources,
		Caches:    &stats,
		Timestamp: time.Now(),
	})
}
