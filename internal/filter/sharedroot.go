package filter

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
)

var (
	reconstructedRe = regexp.MustCompile(`\*[\p{L}\p{M}ʰʷʲ₀-₉()-]+`)
	historicalRe    = regexp.MustCompile(`\b((?:Old|Middle|Ancient|Late|Medieval|Vulgar|Classical) [A-Z][a-z]+) ([\p{L}\p{M}'-]{2,})`)
)

// InferSharedRoot derives a best-effort common ancestral form for a
// connection. It returns "" when nothing can be inferred.
func InferSharedRoot(rel domain.RawRelationship, target domain.RawWord, source domain.Word) string {
	if strings.HasPrefix(target.Text, "*") {
		return target.Text
	}
	for _, text := range []string{rel.Origin, rel.Notes} {
		if m := reconstructedRe.FindString(text); m != "" && strings.Trim(m, "*-") != "" {
			return m
		}
	}
	for _, text := range []string{rel.Origin, rel.Notes} {
		if m := historicalRe.FindStringSubmatch(text); m != nil {
			return m[1] + " " + m[2]
		}
	}

	switch {
	case rel.Type == domain.RelationDerivative || rel.Type == domain.RelationCompound:
		return source.Text
	case rel.Type == domain.RelationAncestor || rel.Type == domain.RelationShortenedFrom:
		return target.Text
	case rel.Type.IsCognate():
		return language.DisplayName(target.Language) + " " + target.Text
	}
	return ""
}

// withRootNote appends the shared root to notes unless already mentioned.
func withRootNote(notes, root string) string {
	if root == "" || strings.Contains(notes, root) {
		return notes
	}
	return strings.TrimSpace(notes + " (shared root: " + root + ")")
}
