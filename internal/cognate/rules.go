package cognate

import "regexp"

// soundRule rewrites a source form into a plausible target-side form.
type soundRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

func rule(name, pattern, repl string) soundRule {
	return soundRule{name: name, re: regexp.MustCompile(pattern), repl: repl}
}

// soundRules is keyed by "<source branch>><target>", where target is either
// a language code (checked first) or a branch.
var soundRules = map[string][]soundRule{
	// High German consonant shift.
	"germanic>de": {
		rule("th → d", `^th`, "d"),
		rule("t → z", `^t`, "z"),
		rule("p → pf", `^p`, "pf"),
		rule("d → t", `^d`, "t"),
		rule("k → ch", `([aeiou])k`, "${1}ch"),
		rule("v → b", `([aeiou])v`, "${1}b"),
	},
	"germanic>nl": {
		rule("th → d", `^th`, "d"),
		rule("f → v", `^f`, "v"),
		rule("s → z", `^s`, "z"),
	},
	"germanic>germanic": {
		rule("th → t", `^th`, "t"),
		rule("w → v", `^w`, "v"),
	},
	// Grimm's law, reversed.
	"germanic>italic": {
		rule("f ← p", `^f`, "p"),
		rule("th ← t", `^th`, "t"),
		rule("h ← c", `^h`, "c"),
		rule("t ← d", `^t`, "d"),
		rule("w → v", `^w`, "v"),
	},
	"germanic>hellenic": {
		rule("f ← p", `^f`, "p"),
		rule("h ← k", `^h`, "k"),
		rule("t ← d", `^t`, "d"),
	},
	"germanic>balto-slavic": {
		rule("w → v", `^w`, "v"),
		rule("t ← d", `^t`, "d"),
	},
	"italic>germanic": {
		rule("p → f", `^p`, "f"),
		rule("c → h", `^c`, "h"),
		rule("t → th", `^t`, "th"),
		rule("d → t", `^d`, "t"),
		rule("v → w", `^v`, "w"),
	},
	"italic>italic": {
		rule("ct → tt", `ct`, "tt"),
		rule("ct → ch", `ct`, "ch"),
		rule("cl → chi", `^cl`, "chi"),
		rule("pl → ll", `^pl`, "ll"),
	},
	"hellenic>italic": {
		rule("ph → f", `ph`, "f"),
		rule("k → c", `k`, "c"),
		rule("os → us", `os$`, "us"),
	},
}

// rulesFor returns the rules for a source branch and target language,
// preferring language-specific rules over branch rules.
func rulesFor(srcBranch, target, tgtBranch string) []soundRule {
	if r, ok := soundRules[srcBranch+">"+target]; ok {
		return r
	}
	return soundRules[srcBranch+">"+tgtBranch]
}
