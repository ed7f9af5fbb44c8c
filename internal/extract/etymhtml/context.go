package etymhtml

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

const contextRadius = 100

var (
	positiveRe = regexp.MustCompile(`\b(?i:from|cognate|derives?|derived|root|via)\b|\b(?:Old|Middle|Ancient) [A-Z]`)
	protoRe    = regexp.MustCompile(`\bProto-[A-Z]`)
	pieRe      = regexp.MustCompile(`\bPIE\b|\bProto-Indo-European\b`)
	negativeRe = regexp.MustCompile(`(?i)\bmeaning\b|\brefers? to\b|\bexamples?\b|\bsuch as\b`)
	morphRe    = regexp.MustCompile(`(?i)\bprefix|\bsuffix|\bcompound|\bword[- ]formation\b`)

	strictLinkRe = regexp.MustCompile(`(?i)\bfrom\b|\bcognate with\b|\bderive[sd]? from\b|\b(?:proto|old|middle)[- ][a-z]|\*\pL|\b\d{1,2}c\.|\bc\. ?\d{3,4}\b|\bcentury\b`)
	listTailRe   = regexp.MustCompile(`[\pL*'-]+,\s*(?:and\s+)?$`)
	listHeadRe   = regexp.MustCompile(`^,\s*(?:and\s+)?[A-Z]`)

	reconstructedRe = regexp.MustCompile(`\*[\pL\pM\x{02B0}-\x{02FF}\x{2080}-\x{2089}()-]+`)
	pieLabeledRe    = regexp.MustCompile(`\bPIE (?:root )?([\pL\pM\x{02B0}-\x{02FF}\x{2080}-\x{2089}-]+)`)
	fromNameRe      = regexp.MustCompile(`\bfrom ((?:[A-Z][\pL-]+ ){0,2}[A-Z][\pL-]+) ([\pL\pM'-]{2,})`)
	rootFormRe      = regexp.MustCompile(`\broot (\*[\pL\pM-]{2,})`)
)

// score is the outcome of context scoring around a candidate.
type score struct {
	positive   int
	negative   int
	morph      bool
	confidence float64
	accepted   bool
}

// scoreContext counts etymological indicators in ctx and decides whether
// a candidate found there should be accepted, and at what confidence.
func scoreContext(ctx, candidate string, p domain.Priors) score {
	s := score{
		positive: len(positiveRe.FindAllStringIndex(ctx, -1)),
		negative: len(negativeRe.FindAllStringIndex(ctx, -1)),
		morph:    morphRe.MatchString(ctx),
	}
	pie := len(pieRe.FindAllStringIndex(ctx, -1))
	// Proto-Indo-European is scored as PIE, not as a generic proto name.
	s.positive += 2*(len(protoRe.FindAllStringIndex(ctx, -1))-strings.Count(ctx, "Proto-Indo-European")) + 3*pie
	if pie > 0 && strings.HasPrefix(candidate, "*") {
		s.positive += 2
	}
	if s.morph {
		return s
	}

	s.confidence = min(p.ContextBase+p.ContextPositive*float64(s.positive)-p.ContextNegative*float64(s.negative), p.ContextCeiling)
	switch {
	case s.positive > s.negative && s.confidence > p.ContextAccept:
		s.accepted = true
	case s.positive > 0 && s.negative == 0:
		s.accepted = true
		s.confidence *= p.ContextReduced
	}
	return s
}

// relationKeywords are checked in order; earlier entries win inside a clause.
var relationKeywords = []struct {
	kw  string
	typ domain.RelationType
}{
	{"cognate", domain.RelationCognate},
	{"compare", domain.RelationCognate},
	{"cf.", domain.RelationCognate},
	{"akin to", domain.RelationCognate},
	{"source also of", domain.RelationCognate},
	{"borrowed", domain.RelationBorrowing},
	{"loan", domain.RelationBorrowing},
	{"adopted", domain.RelationBorrowing},
	{"from", domain.RelationAncestor},
}

// relationFromContext types a candidate from the text before it. Keywords
// in the candidate's own clause decide first; otherwise the nearest keyword
// in the whole window wins. Cognates are qualified by the shared branch.
func relationFromContext(before, srcLang, lang string) domain.RelationType {
	lower := strings.ToLower(before)
	typ := domain.RelationRelated

	clause := lower[strings.LastIndexAny(lower, ",;.()")+1:]
	found := false
	for _, k := range relationKeywords {
		if strings.Contains(clause, k.kw) {
			typ, found = k.typ, true
			break
		}
	}
	if !found {
		bestPos := -1
		for _, k := range relationKeywords {
			if i := strings.LastIndex(lower, k.kw); i > bestPos {
				typ, bestPos = k.typ, i
			}
		}
	}

	if typ == domain.RelationCognate {
		return domain.FamilyCognate(language.SharedBranch(srcLang, lang))
	}
	return typ
}

// hasLinkContext reports whether a linked word at [start,end) in text sits
// in a "Language word, Language word" listing or near explicit etymological
// wording.
func hasLinkContext(text string, start, end int) bool {
	before := window(text, start-80, start)
	if _, name, ok := language.NameBefore(before); ok {
		rest := strings.TrimRight(before, " \t\n")
		rest = rest[:len(rest)-len(name)]
		after := window(text, end, end+40)
		if listTailRe.MatchString(rest) || listHeadRe.MatchString(after) {
			return true
		}
	}
	return strictLinkRe.MatchString(window(text, start-50, end+50))
}

// inferRoot looks around pos for the best shared-root form: a reconstructed
// *form, then a PIE-labelled form, then "from Language word", then a
// "root *form" phrase.
func inferRoot(text string, pos int) string {
	ctx := window(text, pos-contextRadius, pos+contextRadius)
	rel := pos - max(pos-contextRadius, 0)
	best, bestDist := "", -1
	for _, loc := range reconstructedRe.FindAllStringIndex(ctx, -1) {
		m := ctx[loc[0]:loc[1]]
		if strings.Trim(m, "*-()") == "" {
			continue
		}
		d := loc[0] - rel
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = m, d
		}
	}
	if best != "" {
		return best
	}
	if m := pieLabeledRe.FindStringSubmatch(ctx); m != nil {
		return m[1]
	}
	for _, m := range fromNameRe.FindAllStringSubmatch(ctx, -1) {
		if _, ok := language.CodeForName(m[1]); ok {
			return m[1] + " " + m[2]
		}
	}
	if m := rootFormRe.FindStringSubmatch(ctx); m != nil {
		return m[1]
	}
	return ""
}
