package etymhtml

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type tier int

const (
	tierUnderline tier = iota
	tierItalic
	tierLink
)

// mark is a marked span inside a block's text, by byte offset.
type mark struct {
	tier  tier
	start int
	end   int
}

// block is one prose container flattened to text, with its marked spans.
type block struct {
	node  *html.Node
	text  string
	marks []mark
}

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "li": true, "ul": true, "ol": true,
	"br": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "table": true, "tr": true, "td": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "nav": true, "footer": true, "header": true,
	"form": true, "button": true, "svg": true,
}

// containerHints mark elements that hold a dictionary entry, among the
// containerTags.
var (
	containerHints = []string{"word", "entry", "etym"}
	containerTags  = map[string]bool{"div": true, "li": true, "dl": true, "dd": true, "main": true}
)

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, hint string) bool {
	return strings.Contains(strings.ToLower(attr(n, "class")), hint)
}

// candidateContainers returns the elements that may hold one entry's
// prose: sections, articles and elements with an entry-like class. When
// there are none, every paragraph is a candidate.
func candidateContainers(root *html.Node) []*html.Node {
	var out, paragraphs []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipTags[n.Data] {
				return
			}
			switch {
			case n.Data == "section" || n.Data == "article":
				out = append(out, n)
			case n.Data == "p":
				paragraphs = append(paragraphs, n)
			case containerTags[n.Data]:
				for _, h := range containerHints {
					if hasClass(n, h) {
						out = append(out, n)
						break
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if len(out) == 0 {
		return paragraphs
	}
	return out
}

// paragraphTags are the text units of a readability article.
var paragraphTags = map[string]bool{"p": true, "li": true, "dd": true, "blockquote": true, "pre": true}

// paragraphs returns the outermost paragraph-like elements under root, or
// root itself when it has none.
func paragraphs(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipTags[n.Data] {
				return
			}
			if paragraphTags[n.Data] {
				out = append(out, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if len(out) == 0 {
		return []*html.Node{root}
	}
	return out
}

func markTier(n *html.Node) (tier, bool) {
	switch {
	case n.Data == "u" || hasClass(n, "underline"):
		return tierUnderline, true
	case n.Data == "i" || n.Data == "em" || hasClass(n, "foreign") || hasClass(n, "italic"):
		return tierItalic, true
	case n.Data == "a" && (strings.Contains(attr(n, "href"), "/word/") || hasClass(n, "crossreference")):
		return tierLink, true
	}
	return 0, false
}

// flatten renders n to whitespace-collapsed text and records marked spans.
func flatten(n *html.Node) block {
	var (
		sb        strings.Builder
		marks     []mark
		lastSpace = true
	)
	space := func(r rune) {
		if !lastSpace {
			sb.WriteRune(r)
			lastSpace = true
		}
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			for _, r := range n.Data {
				if unicode.IsSpace(r) {
					space(' ')
					continue
				}
				sb.WriteRune(r)
				lastSpace = false
			}
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
		}

		isBlock := n.Type == html.ElementNode && blockTags[n.Data]
		if isBlock {
			space('\n')
		}
		t, marked := tier(0), false
		if n.Type == html.ElementNode {
			t, marked = markTier(n)
		}
		start := sb.Len()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if marked && sb.Len() > start {
			end := sb.Len()
			// Leading/trailing spaces belong to the surrounding text.
			for start < end && sb.String()[start] == ' ' {
				start++
			}
			for end > start && sb.String()[end-1] == ' ' {
				end--
			}
			if end > start {
				marks = append(marks, mark{tier: t, start: start, end: end})
			}
		}
		if isBlock {
			space('\n')
		}
	}
	walk(n)
	return block{node: n, text: sb.String(), marks: marks}
}

// headingFor returns the heading of the closest element, starting at n and
// walking up to (not including) <body>, that contains one.
func headingFor(n *html.Node) string {
	for p := n; p != nil && p.Type == html.ElementNode && p.Data != "body" && p.Data != "html"; p = p.Parent {
		if h := firstHeading(p); h != nil {
			return strings.TrimSpace(flatten(h).text)
		}
	}
	return ""
}

var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

func firstHeading(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipTags[c.Data] {
			continue
		}
		if headingTags[c.Data] {
			return c
		}
		if h := firstHeading(c); h != nil {
			return h
		}
	}
	return nil
}

// firstWords returns the first n words of s, lowercased with surrounding
// punctuation removed.
func firstWords(s string, n int) []string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(strings.ToLower(f), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsMark(r) && r != '*' && r != '-'
		})
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// isAncestor reports whether a is a proper ancestor of b.
func isAncestor(a, b *html.Node) bool {
	for p := b.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}

// window returns s[from:to] clamped to s and widened to rune boundaries.
func window(s string, from, to int) string {
	from = max(from, 0)
	to = min(to, len(s))
	for from > 0 && !utf8.RuneStart(s[from]) {
		from--
	}
	for to < len(s) && !utf8.RuneStart(s[to]) {
		to++
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
