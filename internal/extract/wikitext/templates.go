package wikitext

import (
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

type templateKind int

const (
	kindCognate templateKind = iota
	kindAncestor
	kindBorrowing
	kindMention
	kindAffix
	kindCompound
	kindEtyl
)

// templateSpec says where a template keeps its language and word among
// the positional arguments (name excluded).
type templateSpec struct {
	kind    templateKind
	langArg int
	wordArg int
}

var catalog = map[string]templateSpec{
	"cog": {kindCognate, 0, 1}, "cognate": {kindCognate, 0, 1},

	"der": {kindAncestor, 1, 2}, "der+": {kindAncestor, 1, 2}, "derived": {kindAncestor, 1, 2},
	"inh": {kindAncestor, 1, 2}, "inh+": {kindAncestor, 1, 2}, "inherited": {kindAncestor, 1, 2},
	"uder": {kindAncestor, 1, 2},

	"bor": {kindBorrowing, 1, 2}, "bor+": {kindBorrowing, 1, 2}, "borrowed": {kindBorrowing, 1, 2},
	"lbor": {kindBorrowing, 1, 2}, "learned borrowing": {kindBorrowing, 1, 2},
	"slbor": {kindBorrowing, 1, 2}, "obor": {kindBorrowing, 1, 2}, "ubor": {kindBorrowing, 1, 2},
	"cal": {kindBorrowing, 1, 2}, "clq": {kindBorrowing, 1, 2}, "calque": {kindBorrowing, 1, 2},
	"sl": {kindBorrowing, 1, 2}, "semantic loan": {kindBorrowing, 1, 2}, "psm": {kindBorrowing, 1, 2},

	"m": {kindMention, 0, 1}, "mention": {kindMention, 0, 1}, "m+": {kindMention, 0, 1},
	"l": {kindMention, 0, 1}, "link": {kindMention, 0, 1}, "ll": {kindMention, 0, 1},
	"t": {kindMention, 0, 1}, "term": {kindMention, 0, 1},

	"af": {kindAffix, 0, 1}, "affix": {kindAffix, 0, 1},
	"pre": {kindAffix, 0, 1}, "prefix": {kindAffix, 0, 1},
	"suf": {kindAffix, 0, 1}, "suffix": {kindAffix, 0, 1},
	"con": {kindAffix, 0, 1}, "confix": {kindAffix, 0, 1},
	"com": {kindCompound, 0, 1}, "compound": {kindCompound, 0, 1},

	"etyl": {kindEtyl, 0, -1},
}

// columnTemplates list related terms in "Derived terms" sections.
var columnTemplates = map[string]bool{
	"col": true, "col2": true, "col3": true, "col4": true, "col5": true,
	"der2": true, "der3": true, "der4": true, "der5": true,
	"rel2": true, "rel3": true, "rel4": true,
}

// langAliases maps the abbreviations old-style templates use for language
// tokens to codes. Anything else goes through the language classifier.
var langAliases = map[string]string{
	"oe": "ang", "me": "enm", "of": "fro", "on": "non", "ohg": "goh", "mhg": "gmh",
	"ll.": "la-lat", "ml.": "la-med", "vl.": "la-vul", "la-late": "la-lat", "la-medieval": "la-med",
	"ine": "ine-pro", "pie": "ine-pro", "gem": "gem-pro", "gmw": "gmw-pro", "itc": "itc-pro",
	"grk": "grk-pro", "cel": "cel-pro", "sla": "sla-pro", "iir": "iir-pro",
}

func normalizeLang(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if code, ok := langAliases[t]; ok {
		return code
	}
	return language.Normalize(t)
}

// template is a parsed {{name|arg|...|key=value}}.
type template struct {
	name       string
	positional []string
	named      map[string]string
}

func parseTemplate(body string) template {
	parts := strings.Split(body, "|")
	t := template{
		name:  strings.ToLower(strings.TrimSpace(parts[0])),
		named: make(map[string]string),
	}
	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok && !strings.ContainsAny(k, "[{") {
			t.named[strings.TrimSpace(k)] = strings.TrimSpace(v)
			continue
		}
		t.positional = append(t.positional, strings.TrimSpace(p))
	}
	return t
}

func (t template) arg(i int) string {
	if i < 0 || i >= len(t.positional) {
		return ""
	}
	return t.positional[i]
}

// gloss returns the translation given by t=/gloss= or by the positional
// argument two places after the word.
func (t template) gloss(wordArg int) string {
	for _, k := range []string{"t", "gloss"} {
		if v := t.named[k]; v != "" {
			return v
		}
	}
	return t.arg(wordArg + 2)
}
