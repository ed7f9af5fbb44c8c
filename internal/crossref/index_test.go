package crossref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

func rooted(text, lang, root string, conf float64) domain.Connection {
	return domain.Connection{
		Word: domain.Word{Text: text, Language: lang},
		Relationship: domain.Relationship{
			Type:       domain.RelationPIEDerivative,
			Confidence: conf,
			SharedRoot: root,
			Source:     domain.SourceEtymonline,
		},
	}
}

func TestRootKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"*wódr̥", "wodr"},
		{"*wed-", "wed"},
		{"*Méh₂tēr", "meh₂ter"},
		{"Old English", ""},
		{"*ab", ""},
		{"  ", ""},
		{"root", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RootKey(tt.in), tt.in)
	}
}

func TestIndex_EnrichLinksSharedRoots(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	water := domain.Word{Text: "water", Language: "en"}
	wet := domain.Word{Text: "wet", Language: "en"}
	otter := domain.Word{Text: "otter", Language: "en"}

	x.Record(water, []domain.Connection{rooted("*wódr̥", "ine-pro", "*wed-", 0.9)})
	x.Record(otter, []domain.Connection{rooted("*udros", "ine-pro", "*wed-", 0.8)})

	got := x.Enrich(wet, []domain.Connection{rooted("*wed-", "ine-pro", "*wed-", 0.85)})

	require.Len(t, got, 2)
	assert.Equal(t, "water", got[0].Word.Text)
	assert.InDelta(t, 0.9*0.88, got[0].Relationship.Confidence, 1e-9)
	assert.Equal(t, domain.SourceCrossReference, got[0].Relationship.Source)
	assert.Equal(t, "*wed-", got[0].Relationship.SharedRoot)
	assert.True(t, got[0].Relationship.Type.IsCognate())
	assert.Contains(t, got[0].Relationship.Notes, "shared root: *wed-")
	assert.Equal(t, "otter", got[1].Word.Text)
}

func TestIndex_EnrichCapsMatchesPerRoot(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	for _, w := range []string{"water", "wet", "otter", "hydra"} {
		x.Record(domain.Word{Text: w, Language: "en"}, []domain.Connection{rooted("*wed-", "ine-pro", "*wed-", 0.8)})
	}

	got := x.Enrich(domain.Word{Text: "winter", Language: "en"},
		[]domain.Connection{rooted("*wed-", "ine-pro", "*wed-", 0.8)})
	assert.Len(t, got, 2)
}

func TestIndex_EnrichSkipsSelfAndKnown(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	water := domain.Word{Text: "water", Language: "en"}
	x.Record(water, []domain.Connection{rooted("*wódr̥", "ine-pro", "*wed-", 0.9)})
	x.Record(domain.Word{Text: "Wasser", Language: "de"}, []domain.Connection{rooted("*wódr̥", "ine-pro", "*wed-", 0.9)})

	got := x.Enrich(water, []domain.Connection{
		rooted("*wódr̥", "ine-pro", "*wed-", 0.9),
		{Word: domain.Word{Text: "wasser", Language: "de"}},
	})
	assert.Empty(t, got)
}

func TestIndex_EnrichSkipsSuspicious(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	x.Record(domain.Word{Text: "red", Language: "en"}, []domain.Connection{rooted("*h₁rewdʰ-", "ine-pro", "Old Norse rauðr", 0.9)})

	got := x.Enrich(domain.Word{Text: "fire", Language: "en"},
		[]domain.Connection{rooted("rauðr", "non", "Old Norse rauðr", 0.9)})
	assert.Empty(t, got)
}

func TestIndex_Reset(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	x.Record(domain.Word{Text: "water", Language: "en"}, []domain.Connection{rooted("*wódr̥", "ine-pro", "*wed-", 0.9)})
	require.Equal(t, 1, x.Len())

	x.Reset()
	assert.Zero(t, x.Len())
	assert.Empty(t, x.Lookup("*wed-"))
}

func TestIndex_RecordKeepsBestConfidence(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	w := domain.Word{Text: "water", Language: "en"}
	x.Record(w, []domain.Connection{rooted("a", "ine-pro", "*wed-", 0.6)})
	x.Record(w, []domain.Connection{rooted("b", "ine-pro", "*wed-", 0.9)})

	entries := x.Lookup("*wed-")
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.9, entries[0].Confidence, 1e-9)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	x := NewIndex(0.88)
	mother := domain.Word{ID: "en_mother_1", Text: "mother", Language: "en"}
	maternal := domain.Word{ID: "en_maternal_2", Text: "maternal", Language: "en"}
	x.Record(mother, []domain.Connection{rooted("Mutter", "de", "*méh₂tēr", 0.85)})

	got := x.Enrich(maternal, []domain.Connection{rooted("māter", "la", "*méh₂tēr", 0.85)})
	require.Len(t, got, 1)

	rev := Reverse(maternal, got[0])
	assert.Equal(t, maternal, rev.Word)
	assert.Equal(t, got[0].Relationship, rev.Relationship)
	assert.Equal(t, domain.SourceCrossReference, rev.Relationship.Source)
}
