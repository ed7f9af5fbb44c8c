package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/pkg/ctxutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, path, remote string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(okHandler())

	for i := 0; i < 10; i++ {
		rec := hit(handler, "/api/etymology/search", "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/api/etymology/search", "1.2.3.4:1234").Code)
	}

	rec := hit(handler, "/api/etymology/search", "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_PortsShareBucket(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())

	hit(handler, "/api/etymology/search", "1.1.1.1:1000")
	hit(handler, "/api/etymology/search", "1.1.1.1:2000")
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/api/etymology/search", "1.1.1.1:3000").Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())

	for i := 0; i < 2; i++ {
		hit(handler, "/api/etymology/search", "1.1.1.1:1234")
	}
	assert.Equal(t, http.StatusOK, hit(handler, "/api/etymology/search", "2.2.2.2:5678").Code)
}

func TestRateLimiter_UsesClientIPFromContext(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(1)(okHandler())

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/api/words/x", nil)
		req.RemoteAddr = "10.0.0." + strconv.Itoa(i+1) + ":1234"
		req = req.WithContext(ctxutil.WithClientIP(req.Context(), "203.0.113.9"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}

func TestRateLimiter_ExemptPaths(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(1, "/live", "/health")(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/live", "4.4.4.4:1").Code)
	}
	assert.Equal(t, http.StatusOK, hit(handler, "/api/etymology/search", "4.4.4.4:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/api/etymology/search", "4.4.4.4:1").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	// 60 per minute = 1 per second
	handler := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		hit(handler, "/api/etymology/search", "3.3.3.3:1234")
	}
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "/api/etymology/search", "3.3.3.3:1234").Code)

	now = now.Add(1100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(handler, "/api/etymology/search", "3.3.3.3:1234").Code)
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(time.Hour)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	handler := rl.Limit(5)(okHandler())
	hit(handler, "/api/etymology/search", "5.5.5.5:1")
	hit(handler, "/api/etymology/search", "6.6.6.6:1")

	now = now.Add(idleBucketTTL - time.Minute)
	hit(handler, "/api/etymology/search", "6.6.6.6:1")

	now = now.Add(2 * time.Minute)
	rl.sweep()

	_, stale := rl.buckets.Load("5.5.5.5")
	_, fresh := rl.buckets.Load("6.6.6.6")
	assert.False(t, stale, "idle bucket should be dropped")
	assert.True(t, fresh, "recent bucket should be kept")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
