// Package etymhtml extracts etymological connections from scraped
// etymology-dictionary HTML.
package etymhtml

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/filter"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/lexicon"
)

const (
	// aboutWords is how many leading words of a section must mention the
	// word for the section to count as its entry.
	aboutWords = 10
	// headingWords applies instead when the section or an enclosing
	// element has a heading.
	headingWords = 3
	maxOriginLen = 400
	maxWords     = 3
)

// Extractor turns an etymology page into raw connections.
type Extractor struct {
	priors  domain.Priors
	baseURL string
	log     *slog.Logger
}

// New creates an Extractor. baseURL is the site root, used to resolve
// links when the page has to be read with the readability fallback.
func New(priors domain.Priors, baseURL string, logger *slog.Logger) *Extractor {
	return &Extractor{
		priors:  priors,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With("extractor", "etymhtml"),
	}
}

// Extract finds connections for source in page.
func (e *Extractor) Extract(ctx context.Context, page string, source domain.Word) []domain.RawConnection {
	if strings.TrimSpace(page) == "" {
		return nil
	}
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		e.log.WarnContext(ctx, "parse page", slog.String("word", source.Text), slog.String("error", err.Error()))
		return nil
	}

	blocks := e.aboutBlocks(root, source)
	if len(blocks) == 0 {
		return e.fallback(ctx, page, source)
	}

	c := newCollector(source, domain.SourceEtymonline, truncate(blocks[0].text, maxOriginLen))
	rootInput := isRootInput(source)
	for _, b := range blocks {
		if rootInput {
			e.rootLists(b.text, c)
		}
	}
	for _, t := range []tier{tierUnderline, tierItalic, tierLink} {
		for _, b := range blocks {
			e.markedTier(b, t, c)
		}
	}
	for _, b := range blocks {
		e.shortening(b.text, c)
	}
	if len(c.out) == 0 {
		for _, b := range blocks {
			e.prose(ctx, b.text, c)
		}
	}

	e.log.DebugContext(ctx, "page extracted",
		slog.String("word", source.Text),
		slog.Int("sections", len(blocks)),
		slog.Int("connections", len(c.out)),
	)
	return c.out
}

// aboutBlocks returns the innermost entry containers that are about source.
func (e *Extractor) aboutBlocks(root *html.Node, source domain.Word) []block {
	var about []block
	for _, n := range candidateContainers(root) {
		b := flatten(n)
		lead, limit := b.text, aboutWords
		if h := headingFor(n); h != "" {
			lead, limit = h, headingWords
		}
		if isAbout(lead, source.Text, limit) {
			about = append(about, b)
		}
	}
	// Keep the innermost: drop any block that contains another one.
	return slices.DeleteFunc(slices.Clone(about), func(outer block) bool {
		return slices.ContainsFunc(about, func(inner block) bool {
			return isAncestor(outer.node, inner.node)
		})
	})
}

// isAbout reports whether the first limit words of text name word. Root
// inputs ("*wed-") also match without the asterisk, with or without a
// "PIE root" lead-in.
func isAbout(text, word string, limit int) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return false
	}
	bare := strings.TrimPrefix(w, "*")
	for _, f := range firstWords(text, limit) {
		if f == w || strings.HasPrefix(w, "*") && (f == bare || f == "*"+bare || strings.Trim(f, "-") == strings.Trim(bare, "-")) {
			return true
		}
	}
	return false
}

func isRootInput(source domain.Word) bool {
	return strings.HasPrefix(source.Text, "*") || language.IsProto(source.Language)
}

// fallback reads the page with readability when no entry section could be
// located. Only the article paragraphs about source are kept, or all of
// them when the article title is; the text-only passes run on those.
func (e *Extractor) fallback(ctx context.Context, page string, source domain.Word) []domain.RawConnection {
	pageURL, err := url.Parse(e.baseURL + "/word/" + url.PathEscape(source.Text))
	if err != nil {
		return nil
	}
	article, err := readability.FromReader(strings.NewReader(page), pageURL)
	if err != nil {
		e.log.DebugContext(ctx, "readability fallback failed", slog.String("word", source.Text), slog.String("error", err.Error()))
		return nil
	}
	if article.Node == nil {
		return nil
	}

	titled := isAbout(article.Title, source.Text, headingWords)
	var about []string
	for _, n := range paragraphs(article.Node) {
		t := strings.TrimSpace(flatten(n).text)
		if t != "" && (titled || isAbout(t, source.Text, aboutWords)) {
			about = append(about, t)
		}
	}
	if len(about) == 0 {
		e.log.DebugContext(ctx, "readability article not about word", slog.String("word", source.Text), slog.String("title", article.Title))
		return nil
	}
	text := strings.Join(about, "\n")

	c := newCollector(source, domain.SourceEtymonline, truncate(text, maxOriginLen))
	if isRootInput(source) {
		e.rootLists(text, c)
	}
	e.shortening(text, c)
	e.prose(ctx, text, c)
	e.log.DebugContext(ctx, "page extracted with readability",
		slog.String("word", source.Text),
		slog.Int("paragraphs", len(about)),
		slog.Int("connections", len(c.out)),
	)
	return c.out
}

// markedTier accepts the marked spans of one tier in a block.
func (e *Extractor) markedTier(b block, t tier, c *collector) {
	conf := map[tier]float64{
		tierUnderline: e.priors.HTMLUnderline,
		tierItalic:    e.priors.HTMLItalic,
		tierLink:      e.priors.HTMLLink,
	}[t]

	for _, m := range b.marks {
		if m.tier != t {
			continue
		}
		word := filter.CleanWordText(b.text[m.start:m.end])
		if word == "" || len(strings.Fields(word)) > maxWords {
			continue
		}

		lang := ""
		if code, _, ok := language.NameBefore(window(b.text, m.start-60, m.start)); ok {
			lang = code
		}
		switch {
		case lang != "":
		case strings.HasPrefix(word, "*"):
			lang = language.PIE
		case t == tierLink:
			// Cross-references point at the dictionary's own entries.
			lang = "en"
		default:
			continue
		}

		if t == tierLink && !hasLinkContext(b.text, m.start, m.end) {
			continue
		}

		typ := relationFromContext(window(b.text, m.start-2*contextRadius, m.start), c.source.Language, lang)
		root := inferRoot(b.text, m.start)
		if strings.HasPrefix(word, "*") {
			root = word
		}
		c.add(word, lang, typ, conf, describe(typ, lang, word), root)
	}
}

// shortening emits shortened_from for "short for X" phrasing.
func (e *Extractor) shortening(text string, c *collector) {
	for _, it := range shortenings(text) {
		c.add(it.text, c.source.Language, domain.RelationShortenedFrom, e.priors.Shortening,
			describe(domain.RelationShortenedFrom, c.source.Language, it.text), it.text)
	}
}

// rootLists handles root entries: the words the root forms become
// pie_derivative, and the attested cognates become family cognates.
func (e *Extractor) rootLists(text string, c *collector) {
	root := c.source.Text
	for _, it := range pieList(text) {
		if it.lang != "" {
			typ := domain.FamilyCognate(language.Branch(it.lang))
			c.add(it.text, it.lang, typ, e.priors.PIEEvidence, describe(typ, it.lang, it.text), root)
			continue
		}
		c.add(it.text, "en", domain.RelationPIEDerivative, e.priors.PIEDerivative,
			describe(domain.RelationPIEDerivative, "en", it.text), root)
	}
	for _, it := range evidenceList(text) {
		typ := domain.FamilyCognate(language.Branch(it.lang))
		c.add(it.text, it.lang, typ, e.priors.PIEEvidence, describe(typ, it.lang, it.text), root)
	}
}

// collector accumulates connections, first occurrence wins.
type collector struct {
	source domain.Word
	src    domain.Source
	origin string
	seen   map[string]bool
	out    []domain.RawConnection
}

func newCollector(source domain.Word, src domain.Source, origin string) *collector {
	return &collector{
		source: source,
		src:    src,
		origin: origin,
		seen:   map[string]bool{source.Key(): true},
	}
}

func (c *collector) add(word, lang string, typ domain.RelationType, conf float64, notes, root string) {
	word = filter.CleanWordText(word)
	if lexicon.CheckCandidate(word, c.source.Text) != "" {
		return
	}
	wordProto := strings.HasPrefix(word, "*") || language.IsProto(lang)
	if lexicon.IsSuspicious(c.source.Text, word, isRootInput(c.source), wordProto) {
		return
	}
	key := domain.WordKey(word, lang)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.out = append(c.out, domain.RawConnection{
		Word: domain.RawWord{Text: word, Language: lang},
		Relationship: domain.RawRelationship{
			Type:       typ,
			Confidence: conf,
			Notes:      notes,
			Origin:     c.origin,
			SharedRoot: strings.TrimSpace(root),
		},
		Source: c.src,
	})
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return window(s, 0, maxLen) + "…"
}
