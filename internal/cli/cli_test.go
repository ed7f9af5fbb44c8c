package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/internal/config"
	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// lookupServiceMock is a moq-style mock of lookupService.
type lookupServiceMock struct {
	FindFunc   func(ctx context.Context, word, lang string, bypassCache bool) (*domain.EtymologyResult, error)
	SelectFunc func(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection
}

func (m *lookupServiceMock) FindEtymologicalConnections(ctx context.Context, word, lang string, bypassCache bool) (*domain.EtymologyResult, error) {
	return m.FindFunc(ctx, word, lang, bypassCache)
}

func (m *lookupServiceMock) SelectConnections(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection {
	return m.SelectFunc(pool, maxCount, prioritizeRoots)
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "pipeline:\n  default_max: 4\n  max_max: 6\n  root_slots: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, factory serviceFactory, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(factory)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleResult() *domain.EtymologyResult {
	return &domain.EtymologyResult{
		SourceWord: domain.Word{Text: "mother", Language: "en", Definition: "A female parent.", Phonetic: "/ˈmʌðə/"},
		Connections: []domain.Connection{
			{
				Word:         domain.Word{Text: "Mutter", Language: "de"},
				Relationship: domain.Relationship{Type: "cognate_germanic", Confidence: 0.9, Source: domain.SourceWiktionary},
			},
			{
				Word:         domain.Word{Text: "*méh₂tēr", Language: "ine-pro"},
				Relationship: domain.Relationship{Type: domain.RelationAncestor, Confidence: 0.85, Source: domain.SourceEtymonline, SharedRoot: "*méh₂tēr"},
			},
		},
	}
}

func TestLookup_Table(t *testing.T) {
	cfgPath := writeConfig(t)

	var gotMax int
	var gotRoots bool
	factory := func(cfg *config.Config, _ *slog.Logger) lookupService {
		return &lookupServiceMock{
			FindFunc: func(_ context.Context, word, lang string, bypass bool) (*domain.EtymologyResult, error) {
				assert.Equal(t, "mother tongue", word)
				assert.Equal(t, "en", lang)
				assert.True(t, bypass)
				return sampleResult(), nil
			},
			SelectFunc: func(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection {
				gotMax, gotRoots = maxCount, prioritizeRoots
				return pool
			},
		}
	}

	out, err := run(t, factory, "--config", cfgPath, "lookup", "mother", "tongue", "--max", "10")
	require.NoError(t, err)

	assert.Equal(t, 6, gotMax, "max is clamped to pipeline.max_max")
	assert.True(t, gotRoots)
	assert.Contains(t, out, "mother (English) /ˈmʌðə/")
	assert.Contains(t, out, "A female parent.")
	assert.Contains(t, out, "WORD")
	assert.Contains(t, out, "Mutter")
	assert.Contains(t, out, "cognate_germanic")
	assert.Contains(t, out, "0.90")
}

func TestLookup_JSONAll(t *testing.T) {
	cfgPath := writeConfig(t)

	factory := func(*config.Config, *slog.Logger) lookupService {
		return &lookupServiceMock{
			FindFunc: func(context.Context, string, string, bool) (*domain.EtymologyResult, error) {
				return sampleResult(), nil
			},
			SelectFunc: func([]domain.Connection, int, bool) []domain.Connection {
				t.Error("--all must not select")
				return nil
			},
		}
	}

	out, err := run(t, factory, "-c", cfgPath, "lookup", "mother", "--all", "--json")
	require.NoError(t, err)

	var res domain.EtymologyResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Connections, 2)
}

func TestLookup_DefaultMaxAndNoRoots(t *testing.T) {
	cfgPath := writeConfig(t)

	factory := func(*config.Config, *slog.Logger) lookupService {
		return &lookupServiceMock{
			FindFunc: func(context.Context, string, string, bool) (*domain.EtymologyResult, error) {
				return &domain.EtymologyResult{SourceWord: domain.Word{Text: "zzz", Language: "en"}}, nil
			},
			SelectFunc: func(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection {
				assert.Equal(t, 4, maxCount)
				assert.False(t, prioritizeRoots)
				return pool
			},
		}
	}

	out, err := run(t, factory, "-c", cfgPath, "lookup", "zzz", "--no-roots")
	require.NoError(t, err)
	assert.Contains(t, out, "no connections found")
}

func TestLookup_Errors(t *testing.T) {
	factory := func(*config.Config, *slog.Logger) lookupService {
		return &lookupServiceMock{
			FindFunc: func(context.Context, string, string, bool) (*domain.EtymologyResult, error) {
				return nil, domain.ErrWordRequired
			},
		}
	}

	_, err := run(t, factory, "-c", writeConfig(t), "lookup", " ")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = run(t, factory, "-c", "/nonexistent/config.yaml", "lookup", "mother")
	require.Error(t, err)

	_, err = run(t, factory, "lookup")
	require.Error(t, err, "a word argument is required")
}

func TestCognates(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "cognates", "mother", "--targets", "German,la")
	require.NoError(t, err)
	assert.Contains(t, out, "mutter")
	assert.Contains(t, out, "German")

	_, err = run(t, nil, "cognates", "mother", "--targets", "xx-bogus")
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	out, err := run(t, nil, "classify", "Old English", "ine-pro")
	require.NoError(t, err)
	assert.Contains(t, out, "ang")
	assert.Contains(t, out, "Old English")
	assert.Contains(t, out, "germanic")
	assert.Contains(t, out, "true")
}
