package freedict

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

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProvider_FetchEntry_Success(t *testing.T) {
	t.Parallel()

	body := `[{
		"word": "mother",
		"phonetic": "/ˈmʌðə/",
		"origin": "Old English mōdor, of Germanic origin; related to Dutch moeder and German Mutter.",
		"phonetics": [
			{"text": "/ˈmʌðə/", "audio": ""},
			{"text": "/ˈmʌðə/", "audio": "https://example.com/mother-uk.mp3"}
		],
		"meanings": [
			{"partOfSpeech": "noun", "definitions": [{"definition": "A female parent."}]},
			{"partOfSpeech": "verb", "definitions": [{"definition": "Bring up (a child) with care."}]}
		]
	}]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/mother", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	result, err := p.FetchEntry(context.Background(), "mother", "en")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "mother", result.Word)
	assert.Equal(t, "/ˈmʌðə/", result.Phonetic)
	assert.Contains(t, result.Origin, "Old English mōdor")

	require.Len(t, result.Senses, 2)
	def, pos := result.FirstDefinition()
	assert.Equal(t, "A female parent.", def)
	assert.Equal(t, "noun", pos)

	require.Len(t, result.Pronunciations, 1)
	require.NotNil(t, result.Pronunciations[0].AudioURL)
	assert.Equal(t, "https://example.com/mother-uk.mp3", *result.Pronunciations[0].AudioURL)
}

func TestProvider_FetchEntry_DefaultLanguage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/water", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	result, err := p.FetchEntry(context.Background(), "water", "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Senses)
}

func TestProvider_FetchEntry_NotFound(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusNotFound, `{"title":"No Definitions Found"}`)

	p := NewProviderWithURL(srv.URL, newTestLogger())
	result, err := p.FetchEntry(context.Background(), "asdfxyz", "en")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestProvider_FetchEntry_ServerErrorRetrySuccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"word":"test","phonetics":[],"meanings":[]}]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	result, err := p.FetchEntry(context.Background(), "test", "en")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "test", result.Word)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_FetchEntry_ServerErrorBothAttemptsFail(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	_, err := p.FetchEntry(context.Background(), "fail", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "freedict: unexpected status 502")
	assert.Equal(t, int32(2), calls.Load())
}

func TestProvider_FetchEntry_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, http.StatusOK, `not valid json`)

	p := NewProviderWithURL(srv.URL, newTestLogger())
	_, err := p.FetchEntry(context.Background(), "bad", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestMapAPIResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entries    []apiEntry
		wantSenses int
		wantProns  int
		wantOrigin string
	}{
		{
			name:    "empty",
			entries: nil,
		},
		{
			name: "origin from second entry",
			entries: []apiEntry{
				{Word: "run", Meanings: []apiMeaning{{PartOfSpeech: "verb", Definitions: []apiDefinition{{Definition: "Move fast."}}}}},
				{Word: "run", Origin: "Old English rinnan", Meanings: []apiMeaning{{PartOfSpeech: "noun", Definitions: []apiDefinition{{Definition: "An act of running."}}}}},
			},
			wantSenses: 2,
			wantOrigin: "Old English rinnan",
		},
		{
			name: "phonetics without text or audio skipped",
			entries: []apiEntry{{
				Word: "test",
				Phonetics: []apiPhonetic{
					{Text: "/tɛst/"},
					{Text: "/tɛst/", Audio: "https://example.com/test.mp3"},
					{},
					{Audio: "https://example.com/other.mp3"},
				},
			}},
			wantProns: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapAPIResponse(tt.entries)
			assert.Len(t, got.Senses, tt.wantSenses)
			assert.Len(t, got.Pronunciations, tt.wantProns)
			assert.Equal(t, tt.wantOrigin, got.Origin)
		})
	}
}

func TestDictionaryResult_Transcription(t *testing.T) {
	t.Parallel()

	result := mapAPIResponse([]apiEntry{{
		Word:      "heart",
		Phonetics: []apiPhonetic{{Audio: "https://example.com/a.mp3"}, {Text: "/hɑːt/"}},
	}})
	assert.Equal(t, "/hɑːt/", result.Transcription())

	result.Phonetic = "/hɑrt/"
	assert.Equal(t, "/hɑrt/", result.Transcription())
}
