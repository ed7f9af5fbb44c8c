package wikitext

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	wikiLinkRe   = regexp.MustCompile(`\[\[([^|\]]*\|)?([^\]]*)\]\]`)
	boldItalicRe = regexp.MustCompile(`'{2,}`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	templateRe   = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
)

// stripMarkup removes HTML tags, wiki links, quote markup and any
// template left over, collapses multiple spaces, and trims whitespace.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = htmlTagRe.ReplaceAllString(s, "")

	// [[link|display]] → display, [[word]] → word.
	s = wikiLinkRe.ReplaceAllString(s, "$2")

	s = boldItalicRe.ReplaceAllString(s, "")
	s = templateRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// cleanTerm turns a template or link argument into a bare word:
// markup, inline modifiers ("word<q:rare>") and "w:" prefixes go.
func cleanTerm(s string) string {
	if i := strings.IndexByte(s, '<'); i > 0 {
		s = s[:i]
	}
	s = stripMarkup(s)
	s = strings.TrimPrefix(s, "w:")
	return strings.TrimSpace(s)
}

// truncate cuts s to at most maxLen bytes on a rune boundary and appends an
// ellipsis when it does.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !isRuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen] + "…"
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
