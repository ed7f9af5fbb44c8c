// Package rank merges duplicate connections and orders them by trust.
package rank

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// Compare orders connections by priority score, then confidence, both
// descending. Remaining ties fall back to language and text so the order
// is total.
func Compare(a, b domain.Connection) int {
	if c := cmp.Compare(b.PriorityScore(), a.PriorityScore()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Relationship.Confidence, a.Relationship.Confidence); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Word.Language, b.Word.Language); c != 0 {
		return c
	}
	return cmp.Compare(domain.NormalizeText(a.Word.Text), domain.NormalizeText(b.Word.Text))
}

// Rank keeps one connection per (lowercased text, language), the one that
// sorts first under Compare, and returns the survivors in Compare order.
// The input slice is not modified.
func Rank(conns []domain.Connection) []domain.Connection {
	sorted := slices.Clone(conns)
	slices.SortStableFunc(sorted, Compare)
	return lo.UniqBy(sorted, func(c domain.Connection) string {
		return c.Word.Key()
	})
}

// IsRanked reports whether conns is already in Compare order.
func IsRanked(conns []domain.Connection) bool {
	return slices.IsSortedFunc(conns, Compare)
}
