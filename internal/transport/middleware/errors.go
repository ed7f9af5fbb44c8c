package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/etymology-backend/pkg/ctxutil"
)

// errorBody mirrors the error envelope written by the REST handlers.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{ //nolint:errcheck
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
