// Package language normalizes language names and codes and answers
// family-compatibility questions. All lookups are static tables.
package language

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// PIE is the code every reconstructed *-prefixed form is forced to.
	PIE = "ine-pro"
	// Unknown is returned for empty input.
	Unknown = "und"
	// FamilyUnknown is the single FamilyPath tag of unclassified codes.
	FamilyUnknown = "unknown"
)

// namesByLength holds every alias whose key contains a letter outside a
// bare ISO code, longest first, for prose scanning.
var namesByLength = buildNameIndex()

func buildNameIndex() []string {
	names := make([]string, 0, len(nameAliases))
	for name := range nameAliases {
		if len(name) <= 3 && !strings.Contains(name, " ") {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// Normalize maps a language name or code to its normalized code.
// Normalize(Normalize(x)) == Normalize(x) for every x.
func Normalize(nameOrCode string) string {
	s := strings.ToLower(strings.TrimSpace(nameOrCode))
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" {
		return Unknown
	}
	if _, ok := languages[s]; ok {
		return s
	}
	if code, ok := nameAliases[s]; ok {
		return code
	}
	if IsProto(s) {
		return s
	}
	if base, err := language.ParseBase(s); err == nil {
		return base.String()
	}
	if tag, err := language.Parse(s); err == nil {
		base, _ := tag.Base()
		return base.String()
	}
	return s
}

// NormalizeFor normalizes lang for a given word text. Text starting with "*"
// is a reconstructed form and always gets the PIE code.
func NormalizeFor(text, lang string) string {
	if strings.HasPrefix(strings.TrimSpace(text), "*") {
		return PIE
	}
	return Normalize(lang)
}

// IsProto reports whether code names a reconstructed proto-language.
func IsProto(code string) bool {
	return strings.Contains(strings.ToLower(code), "pro")
}

// FamilyPath returns the family tags of code from finest to coarsest,
// or ["unknown"] when the code is not classified.
func FamilyPath(code string) []string {
	info, ok := languages[Normalize(code)]
	if !ok {
		return []string{FamilyUnknown}
	}
	var path []string
	for fam := info.family; fam != ""; fam = familyParent[fam] {
		path = append(path, fam)
	}
	return path
}

// Branch returns the family directly below the top-level family of code
// ("germanic" for "de", "italic" for "fr"). Codes that sit directly on a
// top-level family return that family.
func Branch(code string) string {
	path := FamilyPath(code)
	if len(path) == 1 {
		return path[0]
	}
	return path[len(path)-2]
}

// Related reports whether two languages share any family tag.
// Unknown families and proto-languages are treated permissively.
func Related(a, b string) bool {
	return compatible(a, b, false)
}

// RelatedStrict is like Related, but an unknown family on either side
// makes the pair incompatible. Proto-languages stay compatible.
func RelatedStrict(a, b string) bool {
	return compatible(a, b, true)
}

func compatible(a, b string, strict bool) bool {
	if IsProto(a) || IsProto(b) {
		return true
	}
	pa, pb := FamilyPath(a), FamilyPath(b)
	if pa[0] == FamilyUnknown || pb[0] == FamilyUnknown {
		return !strict
	}
	for _, x := range pa {
		for _, y := range pb {
			if x == y {
				return true
			}
		}
	}
	return false
}

// SharedBranch returns the branch shared by a and b, or "" if they only meet
// at a top-level family or not at all.
func SharedBranch(a, b string) string {
	ba, bb := Branch(a), Branch(b)
	if ba != bb || ba == FamilyUnknown || familyParent[ba] == "" {
		return ""
	}
	return ba
}

// DisplayName returns a human-readable name for code.
func DisplayName(code string) string {
	code = Normalize(code)
	if info, ok := languages[code]; ok {
		return info.name
	}
	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return code
}

// IsKnown reports whether code is in the classification table.
func IsKnown(code string) bool {
	_, ok := languages[code]
	return ok
}

// CodeForName resolves a language display name ("Old English") to its code.
func CodeForName(name string) (string, bool) {
	code, ok := nameAliases[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// NameBefore finds a language name that ends exactly at the end of text,
// ignoring trailing whitespace. The longest matching name wins.
func NameBefore(text string) (code, name string, ok bool) {
	lower := strings.ToLower(strings.TrimRight(text, " \t\n"))
	for _, n := range namesByLength {
		if !strings.HasSuffix(lower, n) {
			continue
		}
		start := len(lower) - len(n)
		if start > 0 && isLetter(lower[start-1]) {
			continue
		}
		return nameAliases[n], n, true
	}
	return "", "", false
}

// Names returns all prose language names, longest first.
func Names() []string {
	out := make([]string, len(namesByLength))
	copy(out, namesByLength)
	return out
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '-'
}
