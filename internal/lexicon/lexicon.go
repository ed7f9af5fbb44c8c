package lexicon

import (
	"strings"
	"unicode/utf8"
)

// Rejection reasons reported by CheckCandidate.
const (
	ReasonTooShort    = "too short"
	ReasonStopword    = "common word"
	ReasonBareAffix   = "bare affix of source"
	ReasonTechCoinage = "modern coinage"
)

// IsStopword reports whether w is a common word that is never an etymon.
func IsStopword(w string) bool {
	return stopwords[strings.ToLower(strings.TrimSpace(w))]
}

// IsBareAffix reports whether candidate is an English derivational affix
// that merely repeats the start or end of source ("bio-" for "biology",
// "-logy" or "logy" for the same).
func IsBareAffix(candidate, source string) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	src := strings.ToLower(strings.TrimSpace(source))
	bare := strings.Trim(c, "-")
	if bare == "" {
		return true
	}
	if englishPrefixes[bare] && (strings.HasPrefix(src, bare) || strings.HasSuffix(c, "-") && strings.Contains(src, bare)) {
		return true
	}
	if englishSuffixes[bare] && (strings.HasSuffix(src, bare) || strings.HasPrefix(c, "-") && strings.Contains(src, bare)) {
		return true
	}
	return false
}

// IsTechCoinage reports whether w looks like a modern technical coinage.
func IsTechCoinage(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	for _, p := range techPrefixes {
		if strings.HasPrefix(w, p) && len(w) > len(p)+2 {
			return true
		}
	}
	for _, s := range techSuffixes {
		if strings.HasSuffix(w, s) && len(w) > len(s)+2 {
			return true
		}
	}
	return false
}

// CheckCandidate applies the context-free candidate filters to an extracted
// word. It returns "" if the candidate passes, otherwise the reason.
// Reconstructed (*-prefixed) forms skip the coinage check.
func CheckCandidate(candidate, source string) string {
	c := strings.TrimSpace(candidate)
	bare := strings.TrimPrefix(c, "*")
	if utf8.RuneCountInString(strings.Trim(bare, "-")) < 2 {
		return ReasonTooShort
	}
	if IsStopword(bare) {
		return ReasonStopword
	}
	if IsBareAffix(c, source) {
		return ReasonBareAffix
	}
	if !strings.HasPrefix(c, "*") && IsTechCoinage(c) {
		return ReasonTechCoinage
	}
	return ""
}

// Category returns the semantic category of w, or "".
func Category(w string) string {
	return semanticCategory[strings.ToLower(strings.TrimSpace(w))]
}

// IsSuspicious reports whether linking a and b would be a semantic false
// positive: a known bad pair, or words from two different categories.
// Reconstructed forms and proto-language words are always exempt.
func IsSuspicious(a, b string, aProto, bProto bool) bool {
	if aProto || bProto || strings.HasPrefix(a, "*") || strings.HasPrefix(b, "*") {
		return false
	}
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if knownBadPairs[pairKey(la, lb)] {
		return true
	}
	ca, cb := semanticCategory[la], semanticCategory[lb]
	return ca != "" && cb != "" && ca != cb
}
