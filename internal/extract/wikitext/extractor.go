// Package wikitext extracts etymological connections from Wiktionary
// wiki markup.
package wikitext

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/lexicon"
)

const (
	maxOriginLen = 400
	// derivedMargin is how much longer than the source a derived term may be
	// and still count as a derivative rather than a compound.
	derivedMargin = 4
)

var (
	langLinkRe   = regexp.MustCompile(`\[\[:?([a-z]{2,3}(?:-[a-z]{2,4})*):([^\]|#]+)(?:[|#][^\]]*)?\]\]`)
	anchorLinkRe = regexp.MustCompile(`\[\[([^\]|#:]+)#([A-Z][A-Za-z -]+)(?:\|[^\]]*)?\]\]`)
	plainLinkRe  = regexp.MustCompile(`\[\[([^\]|#:]+)(?:#[^\]|]*)?(?:\|[^\]]*)?\]\]`)
	italicRe     = regexp.MustCompile(`''([^'\n]+?)''`)
	etylRe       = regexp.MustCompile(`\{\{etyl\|([^|}]+)(?:\|[^}]*)?\}\}\s*(?:''([^'\n]+)''|\[\[([^\]|]+)(?:\|[^\]]*)?\]\])`)
	phraseRe     = regexp.MustCompile(`(?i)\b(cognates? (?:with|include|are|of)|compare|related to|borrowed from|borrowing from|inherited from)\b`)
)

// hit is one extracted (word, language) with how it was found.
type hit struct {
	text       string
	lang       string
	gloss      string
	kind       templateKind
	typ        domain.RelationType
	confidence float64
}

// Extractor turns Wiktionary wikitext into raw connections.
type Extractor struct {
	priors domain.Priors
	log    *slog.Logger
}

// New creates an Extractor.
func New(priors domain.Priors, logger *slog.Logger) *Extractor {
	return &Extractor{
		priors: priors,
		log:    logger.With("extractor", "wikitext"),
	}
}

// Extract finds connections for source in the wikitext of its page.
// Only the section for source's language is read.
func (e *Extractor) Extract(ctx context.Context, wikitext string, source domain.Word) []domain.RawConnection {
	if strings.TrimSpace(wikitext) == "" {
		return nil
	}
	sections := languageSection(splitSections(wikitext), source.Language)

	var (
		hits     []hit
		etymText []string
	)
	for _, s := range sections {
		switch {
		case isEtymology(s):
			etymText = append(etymText, s.body)
		case isDerivedTerms(s):
			hits = append(hits, e.derivedTerms(s.body, source)...)
		}
	}
	if len(etymText) == 0 && len(hits) == 0 {
		// Pages without headings: treat the whole text as etymology prose.
		if len(headingRe.FindStringIndex(wikitext)) == 0 {
			etymText = []string{wikitext}
		}
	}

	origin := ""
	for _, body := range etymText {
		hits = append(hits, e.phrases(body, source.Language)...)
		hits = append(hits, e.templates(body, source.Language, nil)...)
		hits = append(hits, e.links(body, source.Language, nil)...)
		if origin == "" {
			origin = truncate(renderEtymology(body), maxOriginLen)
		}
	}

	out := e.toRaw(hits, source, origin)
	e.log.DebugContext(ctx, "wikitext extracted",
		slog.String("word", source.Text),
		slog.Int("hits", len(hits)),
		slog.Int("connections", len(out)),
	)
	return out
}

// templates scans every innermost template in text. A non-nil override
// retypes mentions, which is how phrase context ("cognate with") reaches
// the plain {{m}} and {{l}} templates that follow it.
func (e *Extractor) templates(text, srcLang string, override *hit) []hit {
	var hits []hit
	for _, m := range templateRe.FindAllStringSubmatch(text, -1) {
		t := parseTemplate(m[1])
		spec, ok := catalog[t.name]
		if !ok || spec.kind == kindEtyl {
			continue
		}

		langTok, word := t.arg(spec.langArg), t.arg(spec.wordArg)
		if t.name == "term" && t.named["lang"] != "" {
			langTok, word = t.named["lang"], t.arg(0)
		}
		lang := normalizeLang(langTok)

		if spec.kind == kindAffix || spec.kind == kindCompound {
			for _, part := range t.positional[min(1, len(t.positional)):] {
				part = cleanTerm(part)
				if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
					continue
				}
				hits = append(hits, e.newHit(part, lang, "", spec.kind, srcLang))
			}
			continue
		}

		word = cleanTerm(word)
		if word == "" {
			continue
		}
		h := e.newHit(word, lang, cleanTerm(t.gloss(spec.wordArg)), spec.kind, srcLang)
		if override != nil && spec.kind == kindMention {
			h.typ, h.confidence = override.typ, override.confidence
		}
		hits = append(hits, h)
	}

	for _, m := range etylRe.FindAllStringSubmatch(text, -1) {
		word := cleanTerm(m[2] + m[3])
		if word == "" {
			continue
		}
		hits = append(hits, e.newHit(word, normalizeLang(m[1]), "", kindAncestor, srcLang))
	}
	return hits
}

// links scans [[lang:word]] and [[word#Language|...]] links.
func (e *Extractor) links(text, srcLang string, override *hit) []hit {
	var hits []hit
	add := func(word, lang string) {
		word = cleanTerm(word)
		if word == "" {
			return
		}
		h := e.newHit(word, lang, "", kindMention, srcLang)
		if override != nil {
			h.typ, h.confidence = override.typ, override.confidence
		}
		hits = append(hits, h)
	}
	for _, m := range langLinkRe.FindAllStringSubmatch(text, -1) {
		if language.IsKnown(m[1]) || language.IsProto(m[1]) {
			add(m[2], m[1])
		}
	}
	for _, m := range anchorLinkRe.FindAllStringSubmatch(text, -1) {
		if code, ok := language.CodeForName(m[2]); ok {
			add(m[1], code)
		}
	}
	return hits
}

// phrases finds free-text markers like "cognate with" and rescans the text
// up to the end of the sentence (or the next marker) with the marker's
// relation type.
func (e *Extractor) phrases(text, srcLang string) []hit {
	locs := phraseRe.FindAllStringSubmatchIndex(text, -1)
	var hits []hit
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		tail := text[loc[1]:end]
		if j := sentenceEnd(tail); j >= 0 {
			tail = tail[:j]
		}
		override := e.phraseHit(strings.ToLower(text[loc[2]:loc[3]]), srcLang)

		hits = append(hits, e.templates(tail, srcLang, &override)...)
		hits = append(hits, e.links(tail, srcLang, &override)...)
		hits = append(hits, e.italics(tail, &override)...)
	}
	return hits
}

// italics picks ''word'' spans preceded directly by a language name, as in
// "cognate with German ''Mutter''".
func (e *Extractor) italics(text string, override *hit) []hit {
	var hits []hit
	for _, loc := range italicRe.FindAllStringSubmatchIndex(text, -1) {
		code, _, ok := language.NameBefore(stripMarkup(text[:loc[0]]))
		if !ok {
			continue
		}
		word := cleanTerm(text[loc[2]:loc[3]])
		if word == "" {
			continue
		}
		h := *override
		h.text, h.lang = word, code
		hits = append(hits, h)
	}
	return hits
}

func (e *Extractor) phraseHit(marker, srcLang string) hit {
	switch {
	case strings.HasPrefix(marker, "cognate"), marker == "compare":
		return hit{kind: kindCognate, typ: domain.RelationCognate, confidence: e.priors.WikiCognate}
	case strings.HasPrefix(marker, "borrow"):
		return hit{kind: kindBorrowing, typ: domain.RelationBorrowing, confidence: e.priors.WikiBorrowing}
	case strings.HasPrefix(marker, "inherited"):
		return hit{kind: kindAncestor, typ: domain.RelationAncestor, confidence: e.priors.WikiDerivation}
	default:
		return hit{kind: kindMention, typ: domain.RelationRelated, confidence: e.priors.WikiMention}
	}
}

func (e *Extractor) newHit(word, lang, gloss string, kind templateKind, srcLang string) hit {
	h := hit{text: word, lang: lang, gloss: gloss, kind: kind}
	switch kind {
	case kindCognate:
		h.typ = domain.FamilyCognate(language.SharedBranch(srcLang, lang))
		h.confidence = e.priors.WikiCognate
	case kindAncestor:
		h.typ, h.confidence = domain.RelationAncestor, e.priors.WikiDerivation
	case kindBorrowing:
		h.typ, h.confidence = domain.RelationBorrowing, e.priors.WikiBorrowing
	case kindAffix:
		h.typ, h.confidence = domain.RelationDerivative, e.priors.WikiAffix
	case kindCompound:
		h.typ, h.confidence = domain.RelationCompound, e.priors.WikiAffix
	default:
		h.typ, h.confidence = domain.RelationRelated, e.priors.WikiMention
	}
	return h
}

// derivedTerms turns the terms listed in a "Derived terms" section into
// derivatives or compounds of source. Terms that neither contain source nor
// are contained in it are ignored.
func (e *Extractor) derivedTerms(body string, source domain.Word) []hit {
	src := strings.ToLower(source.Text)
	srcLen := utf8.RuneCountInString(src)

	var terms []string
	for _, m := range templateRe.FindAllStringSubmatch(body, -1) {
		t := parseTemplate(m[1])
		if columnTemplates[t.name] {
			terms = append(terms, t.positional[min(1, len(t.positional)):]...)
			continue
		}
		if spec, ok := catalog[t.name]; ok && spec.kind == kindMention {
			terms = append(terms, t.arg(spec.wordArg))
		}
	}
	for _, m := range plainLinkRe.FindAllStringSubmatch(body, -1) {
		terms = append(terms, m[1])
	}

	var hits []hit
	for _, term := range lo.Uniq(terms) {
		term = cleanTerm(term)
		lt := strings.ToLower(term)
		if lt == "" || lt == src {
			continue
		}
		h := hit{text: term, lang: source.Language}
		switch {
		case strings.Contains(lt, src) && utf8.RuneCountInString(lt) > srcLen+derivedMargin:
			h.kind, h.typ, h.confidence = kindCompound, domain.RelationCompound, e.priors.SectionCompound
		case strings.Contains(lt, src), strings.Contains(src, lt):
			h.kind, h.typ, h.confidence = kindAffix, domain.RelationDerivative, e.priors.SectionDerivative
		default:
			continue
		}
		hits = append(hits, h)
	}
	return hits
}

// toRaw filters candidates, drops repeats of (language, word) keeping the
// first, and shapes the result.
func (e *Extractor) toRaw(hits []hit, source domain.Word, origin string) []domain.RawConnection {
	seen := make(map[string]bool, len(hits))
	out := make([]domain.RawConnection, 0, len(hits))
	for _, h := range hits {
		if reason := lexicon.CheckCandidate(h.text, source.Text); reason != "" {
			continue
		}
		key := domain.WordKey(h.text, h.lang)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.RawConnection{
			Word: domain.RawWord{Text: h.text, Language: h.lang, Definition: h.gloss},
			Relationship: domain.RawRelationship{
				Type:       h.typ,
				Confidence: h.confidence,
				Notes:      describe(h, source),
				Origin:     origin,
			},
			Source: domain.SourceWiktionary,
		})
	}
	return out
}

func describe(h hit, source domain.Word) string {
	name := language.DisplayName(h.lang)
	switch h.kind {
	case kindCognate:
		return fmt.Sprintf("Cognate with %s %s", name, h.text)
	case kindAncestor:
		return fmt.Sprintf("From %s %s", name, h.text)
	case kindBorrowing:
		return fmt.Sprintf("Borrowed from %s %s", name, h.text)
	case kindAffix:
		return fmt.Sprintf("%s is formed from %s", source.Text, h.text)
	case kindCompound:
		return fmt.Sprintf("%s is part of the compound %s", source.Text, h.text)
	default:
		return fmt.Sprintf("Related to %s %s", name, h.text)
	}
}

// renderEtymology flattens etymology wikitext into prose, spelling out
// catalog templates as "Language word" so later passes can read it.
func renderEtymology(body string) string {
	rendered := templateRe.ReplaceAllStringFunc(body, func(m string) string {
		t := parseTemplate(m[2 : len(m)-2])
		spec, ok := catalog[t.name]
		if !ok {
			return ""
		}
		switch spec.kind {
		case kindEtyl:
			return language.DisplayName(normalizeLang(t.arg(0)))
		case kindMention, kindAffix, kindCompound:
			if spec.kind == kindMention {
				return cleanTerm(t.arg(spec.wordArg))
			}
			return strings.Join(lo.Map(t.positional[min(1, len(t.positional)):], func(p string, _ int) string {
				return cleanTerm(p)
			}), " + ")
		default:
			return language.DisplayName(normalizeLang(t.arg(spec.langArg))) + " " + cleanTerm(t.arg(spec.wordArg))
		}
	})
	return stripMarkup(strings.ReplaceAll(rendered, "\n", " "))
}

func sentenceEnd(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '.' && (s[i+1] == ' ' || s[i+1] == '\n') {
			return i
		}
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}
