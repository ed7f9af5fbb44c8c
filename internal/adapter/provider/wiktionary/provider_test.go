package wiktionary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_FetchWikitext_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "parse", q.Get("action"))
		assert.Equal(t, "wikitext", q.Get("prop"))
		assert.Equal(t, "mother", q.Get("page"))
		assert.Equal(t, "2", q.Get("formatversion"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"parse":{"title":"mother","pageid":1,"wikitext":"==English==\n===Etymology===\nFrom {{inh|en|ang|mōdor}}."}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	text, err := p.FetchWikitext(context.Background(), "mother", "en")
	require.NoError(t, err)
	assert.Contains(t, text, "{{inh|en|ang|mōdor}}")
}

func TestProvider_FetchWikitext_MissingTitle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	text, err := p.FetchWikitext(context.Background(), "qwxzv", "en")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestProvider_FetchWikitext_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":"ratelimited","info":"slow down"}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	_, err := p.FetchWikitext(context.Background(), "water", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ratelimited")
}

func TestProvider_FetchWikitext_RetryThenFail(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	_, err := p.FetchWikitext(context.Background(), "water", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wiktionary: unexpected status 503")
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_FetchWikitext_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	_, err := p.FetchWikitext(ctx, "water", "en")
	require.Error(t, err)
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word, lang string
		want       string
	}{
		{"mother", "en", "mother"},
		{" Mutter ", "de", "Mutter"},
		{"*wódr̥", "ine-pro", "Reconstruction:Proto-Indo-European/wódr̥"},
		{"*mōdēr", "gem-pro", "Reconstruction:Proto-Germanic/mōdēr"},
		{"water", "", "water"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PageTitle(tt.word, tt.lang))
		})
	}
}
