package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/etymology-backend/pkg/ctxutil"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/etymology/search?word=mother", nil)
	rec := httptest.NewRecorder()

	Logger(newBufferLogger(&buf))(handler).ServeHTTP(rec, req)

	logOutput := buf.String()
	for _, want := range []string{
		"http.request",
		`"method":"GET"`,
		`"path":"/api/etymology/search"`,
		`"query":"word=mother"`,
		`"status":200`,
		`"bytes":11`,
		"duration",
		`"level":"INFO"`,
	} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log to contain %s, got %q", want, logOutput)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"not found", http.StatusNotFound, `"level":"INFO"`},
		{"rate limited", http.StatusTooManyRequests, `"level":"WARN"`},
		{"server error", http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
			Logger(newBufferLogger(&buf))(handler).ServeHTTP(httptest.NewRecorder(), req)

			if !strings.Contains(buf.String(), tt.wantLevel) {
				t.Errorf("expected %s for status %d, got %q", tt.wantLevel, tt.status, buf.String())
			}
		})
	}
}

func TestLogger_IncludesContextIdentifiers(t *testing.T) {
	var buf bytes.Buffer

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "test-request-id-123")
	ctx = ctxutil.WithClientIP(ctx, "198.51.100.4")
	req = req.WithContext(ctx)

	Logger(newBufferLogger(&buf))(handler).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "test-request-id-123") {
		t.Errorf("expected log to contain request_id, got %q", logOutput)
	}
	if !strings.Contains(logOutput, `"client_ip":"198.51.100.4"`) {
		t.Errorf("expected log to contain client_ip, got %q", logOutput)
	}
	if strings.Contains(logOutput, `"query"`) {
		t.Errorf("expected no query attribute for empty query, got %q", logOutput)
	}
}
