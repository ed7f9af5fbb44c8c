package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/service/etymology"
	"github.com/heartmarshall/etymology-backend/internal/wordid"
)

const maxBodyBytes = 16 << 10

type etymologyService interface {
	Search(ctx context.Context, word, lang string, maxCount int) (*domain.EtymologyResult, error)
	Expand(ctx context.Context, word, lang string, maxCount int) (*domain.EtymologyResult, error)
	Neighbors(ctx context.Context, id string, maxCount int) (*domain.EtymologyResult, error)
	ResolveID(ctx context.Context, id string) (wordid.Ref, error)
	CacheWordForID(id, text, lang string) error
	ClearCaches(ctx context.Context)
	Stats() etymology.Stats
}

// EtymologyHandler serves the lookup API.
type EtymologyHandler struct {
	svc etymologyService
	log *slog.Logger
}

// NewEtymologyHandler creates an EtymologyHandler.
func NewEtymologyHandler(svc etymologyService, logger *slog.Logger) *EtymologyHandler {
	return &EtymologyHandler{svc: svc, log: logger.With("handler", "etymology")}
}

// WordResponse is the body of GET /api/words/{id}.
type WordResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Guessed  bool   `json:"guessed,omitempty"`
}

// BindWordRequest is the body of PUT /api/words/{id}.
type BindWordRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// ClearResponse is the body of POST /api/cache/clear.
type ClearResponse struct {
	Cleared etymology.Stats `json:"cleared"`
}

// Search handles GET /api/etymology/search?word=&language=&max=.
func (h *EtymologyHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.svc.Search)
}

// Expand handles GET /api/etymology/expand?word=&language=&max=.
func (h *EtymologyHandler) Expand(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.svc.Expand)
}

func (h *EtymologyHandler) lookup(
	w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, word, lang string, maxCount int) (*domain.EtymologyResult, error),
) {
	q := r.URL.Query()
	maxCount, err := parseMax(q.Get("max"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := fn(r.Context(), q.Get("word"), q.Get("language"), maxCount)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Neighbors handles GET /api/etymology/neighbors?id=&max=.
func (h *EtymologyHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	maxCount, err := parseMax(q.Get("max"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Neighbors(r.Context(), q.Get("id"), maxCount)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Word handles GET /api/words/{id}.
func (h *EtymologyHandler) Word(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ref, err := h.svc.ResolveID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, WordResponse{
		ID:       id,
		Text:     ref.Text,
		Language: ref.Language,
		Guessed:  ref.Guessed,
	})
}

// BindWord handles PUT /api/words/{id}, binding an id a client holds to its
// word.
func (h *EtymologyHandler) BindWord(w http.ResponseWriter, r *http.Request) {
	var req BindWordRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.log, domain.NewValidationError("body", "invalid JSON: "+err.Error()))
		return
	}

	id := r.PathValue("id")
	if err := h.svc.CacheWordForID(id, req.Text, req.Language); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ref, err := h.svc.ResolveID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, WordResponse{ID: id, Text: ref.Text, Language: ref.Language})
}

// ClearCache handles POST /api/cache/clear.
func (h *EtymologyHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	before := h.svc.Stats()
	h.svc.ClearCaches(r.Context())
	writeJSON(w, http.StatusOK, ClearResponse{Cleared: before})
}

// parseMax reads the optional max parameter. Zero and absent both mean the
// configured default.
func parseMax(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError("max", "must be a non-negative integer")
	}
	return n, nil
}
