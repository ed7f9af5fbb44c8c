package etymhtml

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

const reconstructed = `\*[\pL\pM\x{02B0}-\x{02FF}\x{2080}-\x{2089}()-]+`

var (
	pieFromRe        = regexp.MustCompile(`\bfrom (?:PIE|Proto-Indo-European)(?: root)? (` + reconstructed + `)`)
	protoFromRe      = regexp.MustCompile(`\bfrom (Proto-[A-Z]\pL+(?:[- ][A-Z]\pL+)?) (` + reconstructed + `)`)
	historicalFromRe = regexp.MustCompile(`\bfrom ((?:Old|Middle|Late|Medieval|Vulgar|Ancient|Classical|Anglo)[ -][A-Z]\pL+) ([\pL\pM'-]{2,})`)
	relatedListRe    = regexp.MustCompile(`(?i)\b(?:related to|cognate with|akin to|compare)\s+`)
)

// prose runs the high-confidence text patterns over plain text and keeps
// the matches whose surrounding context scores well enough.
func (e *Extractor) prose(ctx context.Context, text string, c *collector) {
	for _, m := range pieFromRe.FindAllStringSubmatchIndex(text, -1) {
		e.scored(ctx, text, text[m[2]:m[3]], language.PIE, m[2], domain.RelationAncestor, c)
	}
	for _, m := range protoFromRe.FindAllStringSubmatchIndex(text, -1) {
		code, ok := language.CodeForName(text[m[2]:m[3]])
		if !ok {
			code = language.PIE
		}
		e.scored(ctx, text, text[m[4]:m[5]], code, m[4], domain.RelationAncestor, c)
	}
	for _, m := range historicalFromRe.FindAllStringSubmatchIndex(text, -1) {
		code, ok := language.CodeForName(text[m[2]:m[3]])
		if !ok {
			continue
		}
		e.scored(ctx, text, text[m[4]:m[5]], code, m[4], domain.RelationAncestor, c)
	}
	for _, it := range harvestLoose(text) {
		typ := domain.FamilyCognate(language.SharedBranch(c.source.Language, it.lang))
		e.scored(ctx, text, it.text, it.lang, it.pos, typ, c)
	}
}

// harvestLoose reads "related to Dutch moeder and German Mutter" listings,
// keeping only items that name their language.
func harvestLoose(text string) []listed {
	var out []listed
	for _, loc := range relatedListRe.FindAllStringIndex(text, -1) {
		tail := blankGlosses(text[loc[1]:])
		if end := listEndRe.FindStringIndex(tail); end != nil {
			tail = tail[:end[0]]
		}
		// Same-length replacements keep item offsets valid.
		tail = strings.ReplaceAll(tail, " and ", ",    ")
		tail = strings.ReplaceAll(tail, " or ", ",   ")
		for _, item := range splitItems(tail) {
			if it, ok := parseItem(item.text); ok && it.lang != "" {
				it.pos = loc[1] + item.pos
				out = append(out, it)
			}
		}
	}
	return out
}

func (e *Extractor) scored(ctx context.Context, text, word, lang string, pos int, typ domain.RelationType, c *collector) {
	s := scoreContext(window(text, pos-contextRadius, pos+contextRadius), word, e.priors)
	if !s.accepted {
		e.log.DebugContext(ctx, "prose candidate rejected",
			slog.String("candidate", word),
			slog.Int("positive", s.positive),
			slog.Int("negative", s.negative),
			slog.Bool("morphological", s.morph),
		)
		return
	}
	root := inferRoot(text, pos)
	if strings.HasPrefix(word, "*") {
		root = word
	}
	c.add(word, lang, typ, s.confidence, describe(typ, lang, word), root)
}

// ExtractProse runs the prose patterns and the shortening pass over free
// text, such as a dictionary's origin note.
func (e *Extractor) ExtractProse(ctx context.Context, text string, source domain.Word, src domain.Source) []domain.RawConnection {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	c := newCollector(source, src, truncate(text, maxOriginLen))
	e.shortening(text, c)
	e.prose(ctx, text, c)
	e.log.DebugContext(ctx, "prose extracted",
		slog.String("word", source.Text),
		slog.String("source", string(src)),
		slog.Int("connections", len(c.out)),
	)
	return c.out
}

func describe(typ domain.RelationType, lang, word string) string {
	name := language.DisplayName(lang)
	switch {
	case typ.IsCognate():
		return fmt.Sprintf("Cognate with %s %s", name, word)
	case typ == domain.RelationAncestor:
		return fmt.Sprintf("From %s %s", name, word)
	case typ.IsBorrowing():
		return fmt.Sprintf("Borrowed from %s %s", name, word)
	case typ == domain.RelationShortenedFrom:
		return fmt.Sprintf("Shortening of %s", word)
	case typ == domain.RelationPIEDerivative:
		return fmt.Sprintf("%s %s descends from this root", name, word)
	default:
		return fmt.Sprintf("Related to %s %s", name, word)
	}
}
