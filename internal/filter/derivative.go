// Package filter normalizes raw extractor output into canonical connections
// and drops the ones that fail the plausibility heuristics.
package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

var inflectionalSuffixes = []string{"s", "es", "ing", "ed", "er", "est", "ly", "ness", "ment"}

var negationPrefixes = []string{"un", "dis", "non"}

// Endings removed before comparing roots across languages, longest first.
var (
	englishEndings  = []string{"ation", "tion", "sion", "ment", "ness", "ity", "ous", "ive", "ing", "ed", "er", "ly", "al", "ic", "e", "s"}
	romanceEndings  = []string{"ción", "sión", "ção", "zione", "tion", "mente", "ment", "ismo", "isme", "ista", "iste", "dad", "tad", "ité", "ità", "eza", "ez", "ia", "io", "ie", "os", "as", "es", "us", "um", "is", "er", "ar", "ir", "re", "a", "o", "e"}
	germanicEndings = []string{"schaft", "heit", "keit", "lich", "isch", "ung", "ing", "en", "er", "el", "ed", "e", "s"}
)

// suffixCorrespondences pairs English derivational suffixes with their
// regular Romance counterparts.
var suffixCorrespondences = [][2]string{
	{"tion", "ción"}, {"tion", "zione"}, {"tion", "ção"}, {"tion", "tion"},
	{"sion", "sión"}, {"sion", "sione"}, {"sion", "são"},
	{"ity", "idad"}, {"ity", "ità"}, {"ity", "ité"}, {"ity", "idade"},
	{"ty", "dad"}, {"ty", "tà"}, {"ty", "té"},
	{"ous", "oso"}, {"ous", "eux"}, {"ive", "ivo"}, {"ive", "if"},
	{"ment", "mento"}, {"ment", "miento"}, {"al", "ale"},
	{"ism", "ismo"}, {"ist", "ista"}, {"ic", "ico"}, {"ic", "ique"},
}

// IsTrivialDerivative reports whether b is merely an inflection, negation or
// regular suffix-swap of a rather than an independent etymological relative.
// The check is symmetric for same-language pairs.
func IsTrivialDerivative(a, aLang, b, bLang string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	aLang, bLang = language.Normalize(aLang), language.Normalize(bLang)

	if aLang == bLang {
		return la == lb || inflects(la, lb) || inflects(lb, la)
	}
	return crossLanguageTrivial(la, aLang, lb, bLang)
}

// inflects reports whether derived is base plus an inflectional suffix or
// a negation prefix, allowing the common English spelling changes.
func inflects(base, derived string) bool {
	for _, suf := range inflectionalSuffixes {
		if derived == base+suf {
			return true
		}
		n := len(base)
		if n < 2 {
			continue
		}
		last := base[n-1]
		// carry → carries, happy → happiness; "ing" keeps the y.
		if last == 'y' && suf != "ing" && derived == base[:n-1]+"i"+suf {
			return true
		}
		if strings.IndexByte("aeiou", suf[0]) < 0 {
			continue
		}
		// run → running, stop → stopped
		if isConsonant(last) && derived == base+string(last)+suf {
			return true
		}
		// bake → baked, make → making
		if last == 'e' && derived == base[:n-1]+suf {
			return true
		}
	}
	for _, pre := range negationPrefixes {
		if derived == pre+base || derived == pre+"-"+base {
			return true
		}
	}
	return false
}

func crossLanguageTrivial(a, aLang, b, bLang string) bool {
	aBranch, bBranch := language.Branch(aLang), language.Branch(bLang)
	aRomance, bRomance := aBranch == "italic", bBranch == "italic"
	aEnglish, bEnglish := aLang == "en", bLang == "en"

	if (aRomance || aEnglish) && (bRomance || bEnglish) && (aRomance || bRomance) {
		if matchesSuffixCorrespondence(a, b) || matchesSuffixCorrespondence(b, a) {
			return true
		}
		ra, rb := stripForBranch(a, aRomance), stripForBranch(b, bRomance)
		minLen := min(utf8.RuneCountInString(ra), utf8.RuneCountInString(rb))
		if minLen < 3 {
			return false
		}
		return levenshtein.ComputeDistance(ra, rb) <= (minLen-3)/3
	}

	if aBranch == "germanic" && bBranch == "germanic" {
		ra, rb := stripEnding(a, germanicEndings), stripEnding(b, germanicEndings)
		return utf8.RuneCountInString(ra) >= 4 && ra == rb
	}
	return false
}

func stripForBranch(w string, romance bool) string {
	if romance {
		return stripEnding(w, romanceEndings)
	}
	return stripEnding(w, englishEndings)
}

func matchesSuffixCorrespondence(en, rom string) bool {
	for _, pair := range suffixCorrespondences {
		if !strings.HasSuffix(en, pair[0]) {
			continue
		}
		stem := strings.TrimSuffix(en, pair[0])
		if len(stem) >= 2 && rom == stem+pair[1] {
			return true
		}
	}
	return false
}

// stripEnding removes the longest listed ending that leaves at least two
// characters of root.
func stripEnding(w string, endings []string) string {
	best := ""
	for _, e := range endings {
		if len(e) > len(best) && strings.HasSuffix(w, e) && utf8.RuneCountInString(w)-utf8.RuneCountInString(e) >= 2 {
			best = e
		}
	}
	return strings.TrimSuffix(w, best)
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && strings.IndexByte("aeiouy", b) < 0
}
