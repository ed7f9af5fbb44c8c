package cognate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

func find(hits []Cognate, word, lang string) (Cognate, bool) {
	for _, h := range hits {
		if h.Word == word && h.Language == lang {
			return h, true
		}
	}
	return Cognate{}, false
}

func TestFindCognates_DirectHit(t *testing.T) {
	t.Parallel()

	m := NewMatcher(domain.DefaultPriors())
	hits := m.FindCognates("Mother", "en", []string{"de", "la", "fr"})

	mutter, ok := find(hits, "mutter", "de")
	require.True(t, ok)
	assert.GreaterOrEqual(t, mutter.Confidence, 0.9)
	assert.Equal(t, "mother", mutter.Concept)
	assert.Equal(t, "family", mutter.SemanticField)

	_, ok = find(hits, "mater", "la")
	assert.True(t, ok)
	for _, h := range hits {
		assert.Contains(t, []string{"de", "la", "fr"}, h.Language)
	}
}

func TestFindCognates_AllTargets(t *testing.T) {
	t.Parallel()

	hits := NewMatcher(domain.DefaultPriors()).FindCognates("water", "en", nil)

	_, ok := find(hits, "wasser", "de")
	assert.True(t, ok)
	_, ok = find(hits, "*wódr̥", "ine-pro")
	assert.True(t, ok)
	for _, h := range hits {
		assert.NotEqual(t, "en", h.Language)
	}
}

func TestFindCognates_SoundChangeFallback(t *testing.T) {
	t.Parallel()

	m := NewMatcher(domain.DefaultPriors())
	hits := m.FindCognates("thing", "en", []string{"de"})

	ding, ok := find(hits, "ding", "de")
	require.True(t, ok)
	assert.InDelta(t, 0.75, ding.Confidence, 1e-9)
	assert.Contains(t, ding.Notes, "th → d")
}

func TestFindCognates_SortedAndDeduped(t *testing.T) {
	t.Parallel()

	hits := NewMatcher(domain.DefaultPriors()).FindCognates("father", "en", []string{"la", "la", "de"})

	seen := map[string]bool{}
	for i, h := range hits {
		key := h.Language + "|" + h.Word
		assert.False(t, seen[key], key)
		seen[key] = true
		if i > 0 {
			assert.GreaterOrEqual(t, hits[i-1].Confidence, h.Confidence)
		}
	}
}

func TestFindCognates_Unknown(t *testing.T) {
	t.Parallel()

	m := NewMatcher(domain.DefaultPriors())
	assert.Empty(t, m.FindCognates("", "en", nil))
	assert.Empty(t, m.FindCognates("qqq", "en", []string{"ja"}))
}

func TestToRaw(t *testing.T) {
	t.Parallel()

	raws := ToRaw("en", []Cognate{
		{Word: "mutter", Language: "de", Confidence: 0.95},
		{Word: "mater", Language: "la", Confidence: 0.95},
	})

	require.Len(t, raws, 2)
	assert.Equal(t, domain.RelationType("cognate_germanic"), raws[0].Relationship.Type)
	assert.Equal(t, domain.RelationCognate, raws[1].Relationship.Type)
	assert.Equal(t, domain.SourceCognateDB, raws[0].Source)
}
