package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		source    string
		want      string
	}{
		{"valid foreign word", "modor", "mother", ""},
		{"reconstructed form", "*mehter", "mother", ""},
		{"single letter", "a", "mother", ReasonTooShort},
		{"bare asterisk", "*-", "mother", ReasonTooShort},
		{"stopword", "from", "mother", ReasonStopword},
		{"language name", "Latin", "nation", ReasonStopword},
		{"suffix of source", "-logy", "biology", ReasonBareAffix},
		{"bare suffix of source", "logy", "biology", ReasonBareAffix},
		{"prefix of source", "bio-", "biology", ReasonBareAffix},
		{"affix not in source", "-ness", "mother", ""},
		{"tech prefix", "cyberspace", "space", ReasonTechCoinage},
		{"tech suffix", "fintech", "finance", ReasonTechCoinage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CheckCandidate(tt.candidate, tt.source))
		})
	}
}

func TestIsSuspicious(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSuspicious("fire", "red", false, false))
	assert.True(t, IsSuspicious("red", "fire", false, false))
	assert.True(t, IsSuspicious("three", "green", false, false), "cross-category pair")
	assert.True(t, IsSuspicious("sky", "blue", false, false), "known bad pair")
	assert.False(t, IsSuspicious("red", "blue", false, false), "same category")
	assert.False(t, IsSuspicious("mother", "mutter", false, false))
	assert.False(t, IsSuspicious("fire", "*reudh-", false, false), "reconstructed form exempt")
	assert.False(t, IsSuspicious("fire", "red", false, true), "proto-language exempt")
}

func TestIsTechCoinage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTechCoinage("nanobot"))
	assert.True(t, IsTechCoinage("webapp"))
	assert.False(t, IsTechCoinage("net"))
	assert.False(t, IsTechCoinage("water"))
}
