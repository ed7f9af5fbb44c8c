package etymhtml

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

var (
	shorteningRe = regexp.MustCompile(`(?i)\b(?:shortening of|shortened from|short for|clipped from|clipping of|abbreviation of)\s+["“']?([\pL][\pL'-]*)`)
	pieListRe    = regexp.MustCompile(`(?i)(?:it forms all or part of|(?:it is the hypothetical )?source also of|cognate with)\s*:?\s*`)
	evidenceRe   = regexp.MustCompile(`(?i)(?:evidence for its existence is provided by|its existence is attested by)\s*:?\s*`)
	// A listing ends at a sentence that starts a new topic or at a blank line.
	listEndRe = regexp.MustCompile(`\.\s+[A-Z]|\n`)
	glossRe   = regexp.MustCompile(`"[^"]*"|“[^”]*”|\([^)]*\)`)
)

// listed is one item of a comma or semicolon separated listing.
type listed struct {
	text string
	lang string
	pos  int
}

// shortenings finds "short for X" style phrasing.
func shortenings(text string) []listed {
	var out []listed
	for _, m := range shorteningRe.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, listed{text: text[m[2]:m[3]], pos: m[2]})
	}
	return out
}

// pieList harvests the words after "It forms all or part of:" and similar
// markers up to the end of the listing. Items led by a language name are
// returned with that language; bare items have none.
func pieList(text string) []listed {
	return harvest(text, pieListRe)
}

// evidenceList harvests "Language word" items after "evidence for its
// existence is provided by:".
func evidenceList(text string) []listed {
	var out []listed
	for _, it := range harvest(text, evidenceRe) {
		if it.lang != "" {
			out = append(out, it)
		}
	}
	return out
}

func harvest(text string, marker *regexp.Regexp) []listed {
	var out []listed
	for _, loc := range marker.FindAllStringIndex(text, -1) {
		tail := blankGlosses(text[loc[1]:])
		if end := listEndRe.FindStringIndex(tail); end != nil {
			tail = tail[:end[0]]
		}
		offset := loc[1]
		for _, item := range splitItems(tail) {
			if it, ok := parseItem(item.text); ok {
				it.pos = offset + item.pos
				out = append(out, it)
			}
		}
	}
	return out
}

// blankGlosses overwrites quoted and parenthesized glosses with spaces,
// keeping byte offsets intact.
func blankGlosses(s string) string {
	return glossRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.Repeat(" ", len(m))
	})
}

func splitItems(s string) []listed {
	var out []listed
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ',' && s[i] != ';' {
			continue
		}
		out = append(out, listed{text: s[start:i], pos: start})
		start = i + 1
	}
	return out
}

// parseItem turns "Old Norse móðir" into (móðir, non) and "abound" into
// (abound, ""). Glosses in quotes or parentheses are dropped, and items of
// more than three words are rejected as prose.
func parseItem(item string) (listed, bool) {
	item = glossRe.ReplaceAllString(item, " ")
	item = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(item), "and "))
	item = strings.Trim(item, " .:")
	if item == "" {
		return listed{}, false
	}

	code, rest := nameAfter(item)
	// "Old Church Slavonic and Russian voda": skip the second name.
	for _, conj := range []string{"and ", "or "} {
		if code != "" && strings.HasPrefix(rest, conj) {
			if c, r := nameAfter(rest[len(conj):]); c != "" {
				rest = r
			}
		}
	}
	fields := strings.Fields(rest)
	switch {
	case len(fields) == 0:
		return listed{}, false
	case code != "":
		// "Sanskrit udan-" → first token is the word.
		return listed{text: strings.Trim(fields[0], ".:"), lang: code}, true
	case len(fields) > 3:
		return listed{}, false
	}
	word := strings.Join(fields, " ")
	if utf8.RuneCountInString(word) > 40 {
		return listed{}, false
	}
	return listed{text: word}, true
}

// nameAfter strips a leading language name from s.
func nameAfter(s string) (code, rest string) {
	lower := strings.ToLower(s)
	for _, n := range language.Names() {
		if !strings.HasPrefix(lower, n) {
			continue
		}
		if len(lower) > len(n) && lower[len(n)] != ' ' {
			continue
		}
		c, _ := language.CodeForName(n)
		return c, strings.TrimSpace(s[len(n):])
	}
	return "", s
}
