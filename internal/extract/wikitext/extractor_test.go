package wikitext

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

const motherPage = `{{also|Mother}}
==English==
{{wikipedia}}

===Etymology===
From {{inh|en|enm|moder}}, from {{inh|en|ang|mōdor}}, from {{inh|en|gem-pro|*mōdēr}}, from {{der|en|ine-pro|*méh₂tēr}}. Cognate with {{cog|de|Mutter}}, {{cog|nl|moeder}}, and {{m|la|māter||mother}}. Compare German ''Mütterchen''.

===Noun===
{{en-noun}}

# A female parent. {{l|en|parent}}

====Derived terms====
{{col3|en|motherhood|motherly|grandmother|mother tongue|stepmother|parent}}
* [[motherland]]

==German==
===Etymology===
{{inh|de|goh|muoter}}
`

func newExtractor() *Extractor {
	return New(domain.DefaultPriors(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func byWord(raws []domain.RawConnection) map[string]domain.RawConnection {
	out := make(map[string]domain.RawConnection, len(raws))
	for _, r := range raws {
		out[r.Word.Language+"|"+r.Word.Text] = r
	}
	return out
}

func TestExtract_MotherPage(t *testing.T) {
	t.Parallel()

	raws := newExtractor().Extract(context.Background(), motherPage, domain.Word{Text: "mother", Language: "en"})
	got := byWord(raws)

	tests := []struct {
		key  string
		typ  domain.RelationType
		conf float64
	}{
		{"enm|moder", domain.RelationAncestor, 0.80},
		{"ang|mōdor", domain.RelationAncestor, 0.80},
		{"gem-pro|*mōdēr", domain.RelationAncestor, 0.80},
		{"ine-pro|*méh₂tēr", domain.RelationAncestor, 0.80},
		{"de|Mutter", domain.RelationType("cognate_germanic"), 0.85},
		{"nl|moeder", domain.RelationType("cognate_germanic"), 0.85},
		{"la|māter", domain.RelationCognate, 0.85},
		{"de|Mütterchen", domain.RelationCognate, 0.85},
		{"en|motherhood", domain.RelationDerivative, 0.90},
		{"en|motherly", domain.RelationDerivative, 0.90},
		{"en|motherland", domain.RelationDerivative, 0.90},
		{"en|grandmother", domain.RelationCompound, 0.85},
		{"en|mother tongue", domain.RelationCompound, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r, ok := got[tt.key]
			require.True(t, ok, "missing %s", tt.key)
			assert.Equal(t, tt.typ, r.Relationship.Type)
			assert.InDelta(t, tt.conf, r.Relationship.Confidence, 1e-9)
			assert.Equal(t, domain.SourceWiktionary, r.Source)
		})
	}

	assert.Equal(t, "mother", got["la|māter"].Word.Definition)
	assert.NotContains(t, got, "goh|muoter", "other language sections are ignored")
	assert.NotContains(t, got, "en|parent", "definition links are not etymology")
}

func TestExtract_OriginIsRenderedProse(t *testing.T) {
	t.Parallel()

	raws := newExtractor().Extract(context.Background(), motherPage, domain.Word{Text: "mother", Language: "en"})
	require.NotEmpty(t, raws)

	origin := raws[0].Relationship.Origin
	assert.Contains(t, origin, "Middle English moder")
	assert.Contains(t, origin, "Old English mōdor")
	assert.Contains(t, origin, "*méh₂tēr")
	assert.NotContains(t, origin, "{{")
}

func TestExtract_AffixTemplates(t *testing.T) {
	t.Parallel()

	page := "==English==\n===Etymology===\n{{suffix|en|mother|hood}}\n"
	raws := newExtractor().Extract(context.Background(), page, domain.Word{Text: "motherhood", Language: "en"})

	require.Len(t, raws, 1)
	assert.Equal(t, "mother", raws[0].Word.Text)
	assert.Equal(t, domain.RelationDerivative, raws[0].Relationship.Type)
}

func TestExtract_LinksAndAliases(t *testing.T) {
	t.Parallel()

	page := "===Etymology===\nBorrowed from {{bor|en|OF|chaiere}}. Related to [[:fr:chaise]] and [[cathedra#Latin|cathedra]].\n"
	raws := newExtractor().Extract(context.Background(), page, domain.Word{Text: "chair", Language: "en"})
	got := byWord(raws)

	require.Contains(t, got, "fro|chaiere")
	assert.Equal(t, domain.RelationBorrowing, got["fro|chaiere"].Relationship.Type)
	require.Contains(t, got, "fr|chaise")
	assert.Equal(t, domain.RelationRelated, got["fr|chaise"].Relationship.Type)
	require.Contains(t, got, "la|cathedra")
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	e := newExtractor()
	assert.Empty(t, e.Extract(context.Background(), "", domain.Word{Text: "x", Language: "en"}))
	assert.Empty(t, e.Extract(context.Background(), "==English==\n===Noun===\n# a thing\n", domain.Word{Text: "thing", Language: "en"}))
}

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"empty string", "", ""},
		{"html tags", "<b>word</b>", "word"},
		{"wiki link with display text", "[[link|display]]", "display"},
		{"italic quotes", "''Mutter''", "Mutter"},
		{"leftover template", "from {{unknown|x}} here", "from here"},
		{"collapse spaces", "a   b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, stripMarkup(tt.in))
		})
	}
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tmpl := parseTemplate("m|la|māter||mother|pos=noun")
	assert.Equal(t, "m", tmpl.name)
	assert.Equal(t, []string{"la", "māter", "", "mother"}, tmpl.positional)
	assert.Equal(t, "noun", tmpl.named["pos"])
	assert.Equal(t, "mother", tmpl.gloss(1))
	assert.Equal(t, "", tmpl.arg(9))
}
