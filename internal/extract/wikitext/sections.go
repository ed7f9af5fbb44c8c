package wikitext

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`(?m)^(={2,6})\s*([^=\n]+?)\s*={2,6}\s*$`)

type section struct {
	level int
	title string
	body  string
}

// splitSections cuts wikitext at every heading. Each section body runs to
// the next heading of any level; text before the first heading is dropped.
func splitSections(text string) []section {
	locs := headingRe.FindAllStringSubmatchIndex(text, -1)
	out := make([]section, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, section{
			level: loc[3] - loc[2],
			title: text[loc[4]:loc[5]],
			body:  text[loc[1]:end],
		})
	}
	return out
}

// languageSection returns the subsections under the level-2 heading for
// lang. If the page has no such heading, every section is returned.
func languageSection(sections []section, lang string) []section {
	start := -1
	for i, s := range sections {
		if s.level == 2 && normalizeLang(s.title) == lang {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return sections
	}
	end := len(sections)
	for i := start; i < len(sections); i++ {
		if sections[i].level == 2 {
			end = i
			break
		}
	}
	return sections[start:end]
}

func isEtymology(s section) bool {
	return strings.HasPrefix(strings.ToLower(s.title), "etymology")
}

func isDerivedTerms(s section) bool {
	t := strings.ToLower(s.title)
	return t == "derived terms" || t == "compounds"
}
