// Package cognate finds cognates from a curated concept table, falling back
// to per-family sound-change rules.
package cognate

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/filter"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

// Cognate is one matcher hit.
type Cognate struct {
	Word          string
	Language      string
	Confidence    float64
	SemanticField string
	Concept       string
	Notes         string
}

// Matcher looks words up in the cognate table.
type Matcher struct {
	priors domain.Priors
}

// NewMatcher creates a Matcher.
func NewMatcher(priors domain.Priors) *Matcher {
	return &Matcher{priors: priors}
}

// FindCognates returns cognates of word in the target languages, best first.
// An empty targets list means every language in the table. Sound-change
// rules only run when the table has no entry for word.
func (m *Matcher) FindCognates(word, srcLang string, targets []string) []Cognate {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return nil
	}
	srcLang = language.Normalize(srcLang)
	targets = lo.Uniq(lo.Map(targets, func(t string, _ int) string { return language.Normalize(t) }))

	out := m.direct(w, srcLang, targets)
	if len(out) == 0 {
		out = m.soundChange(w, srcLang, targets)
	}

	out = dedupe(out)
	slices.SortStableFunc(out, func(a, b Cognate) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Language, b.Language); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return out
}

func (m *Matcher) direct(w, srcLang string, targets []string) []Cognate {
	var out []Cognate
	for _, c := range concepts {
		if !slices.Contains(c.forms[srcLang], w) {
			continue
		}
		for _, lang := range sortedLangs(c.forms, targets) {
			if lang == srcLang {
				continue
			}
			for _, form := range c.forms[lang] {
				if filter.IsTrivialDerivative(w, srcLang, form, lang) {
					continue
				}
				out = append(out, Cognate{
					Word:          form,
					Language:      lang,
					Confidence:    m.priors.DirectCognate,
					SemanticField: c.field,
					Concept:       c.name,
					Notes:         fmt.Sprintf("%s %s and %s %s both mean %q", language.DisplayName(srcLang), w, language.DisplayName(lang), form, c.name),
				})
			}
		}
	}
	return out
}

func (m *Matcher) soundChange(w, srcLang string, targets []string) []Cognate {
	srcBranch := language.Branch(srcLang)
	var out []Cognate
	for _, lang := range targets {
		if lang == srcLang {
			continue
		}
		for _, r := range rulesFor(srcBranch, lang, language.Branch(lang)) {
			form := r.re.ReplaceAllString(w, r.repl)
			if form == w || filter.IsTrivialDerivative(w, srcLang, form, lang) {
				continue
			}
			out = append(out, Cognate{
				Word:       form,
				Language:   lang,
				Confidence: m.priors.SoundChange,
				Notes:      fmt.Sprintf("Regular sound correspondence %s (%s to %s)", r.name, language.DisplayName(srcLang), language.DisplayName(lang)),
			})
		}
	}
	return out
}

// ToRaw converts matcher hits into raw connections for the validator.
func ToRaw(srcLang string, cognates []Cognate) []domain.RawConnection {
	return lo.Map(cognates, func(c Cognate, _ int) domain.RawConnection {
		typ := domain.RelationCognate
		if branch := language.SharedBranch(srcLang, c.Language); branch != "" {
			typ = domain.FamilyCognate(branch)
		}
		return domain.RawConnection{
			Word: domain.RawWord{Text: c.Word, Language: c.Language},
			Relationship: domain.RawRelationship{
				Type:       typ,
				Confidence: c.Confidence,
				Notes:      c.Notes,
			},
			Source: domain.SourceCognateDB,
		}
	})
}

func dedupe(in []Cognate) []Cognate {
	best := make(map[string]int, len(in))
	out := make([]Cognate, 0, len(in))
	for _, c := range in {
		key := c.Language + "|" + strings.ToLower(c.Word)
		if i, ok := best[key]; ok {
			if c.Confidence > out[i].Confidence {
				out[i] = c
			}
			continue
		}
		best[key] = len(out)
		out = append(out, c)
	}
	return out
}

// sortedLangs lists the languages of forms that are in targets (or all of
// them when targets is empty), in a stable order.
func sortedLangs(forms map[string][]string, targets []string) []string {
	langs := lo.Keys(forms)
	if len(targets) > 0 {
		langs = lo.Filter(langs, func(l string, _ int) bool { return slices.Contains(targets, l) })
	}
	slices.Sort(langs)
	return langs
}
