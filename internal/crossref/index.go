// Package crossref links words found to share the same ancestral root
// across separate lookups.
package crossref

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/lexicon"
)

const (
	minKeyLen      = 3
	matchesPerRoot = 2
)

// genericRoots are root strings too vague to link unrelated words.
var genericRoots = map[string]bool{
	"root": true, "word": true, "unknown": true, "uncertain": true,
	"from": true, "the": true, "and": true, "pie": true, "proto": true,
	"latin": true, "greek": true, "english": true, "old english": true,
	"french": true, "german": true, "imitative": true, "echoic": true,
}

// Entry is one word recorded under a root.
type Entry struct {
	Text       string
	Language   string
	Root       string
	Confidence float64
}

// Index maps normalized root keys to the words that share them. It lives
// for the whole process and is only emptied by Reset.
type Index struct {
	mu       sync.RWMutex
	byRoot   map[string][]Entry
	discount float64
}

// NewIndex creates an empty Index. Synthesized connections get the
// confidence of the matched entry multiplied by discount.
func NewIndex(discount float64) *Index {
	return &Index{
		byRoot:   make(map[string][]Entry),
		discount: discount,
	}
}

// RootKey normalizes a shared-root string: the reconstruction asterisk,
// hyphens and diacritics are removed and the result is lowercased. It
// returns "" for roots that are too short or too generic to index.
func RootKey(root string) string {
	s := strings.ToLower(strings.TrimSpace(root))
	s = strings.NewReplacer("*", "", "-", "").Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) < minKeyLen || genericRoots[s] {
		return ""
	}
	return s
}

// Record files source under the shared root of every connection in conns.
// The recorded confidence is the best confidence seen for that root.
func (x *Index) Record(source domain.Word, conns []domain.Connection) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, c := range conns {
		key := RootKey(c.Relationship.SharedRoot)
		if key == "" {
			continue
		}
		entries := x.byRoot[key]
		idx := slices.IndexFunc(entries, func(e Entry) bool {
			return domain.WordKey(e.Text, e.Language) == source.Key()
		})
		if idx >= 0 {
			entries[idx].Confidence = max(entries[idx].Confidence, c.Relationship.Confidence)
			continue
		}
		x.byRoot[key] = append(entries, Entry{
			Text:       source.Text,
			Language:   source.Language,
			Root:       c.Relationship.SharedRoot,
			Confidence: c.Relationship.Confidence,
		})
	}
}

// Lookup returns the entries filed under root, best confidence first.
func (x *Index) Lookup(root string) []Entry {
	key := RootKey(root)
	if key == "" {
		return nil
	}

	x.mu.RLock()
	out := slices.Clone(x.byRoot[key])
	x.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	return out
}

// Enrich synthesizes cognate connections between source and the words
// already filed under the roots of conns. At most two matches per root are
// used; words already connected, the source itself, and semantically
// suspicious pairs are skipped.
func (x *Index) Enrich(source domain.Word, conns []domain.Connection) []domain.Connection {
	seen := make(map[string]bool, len(conns)+1)
	seen[source.Key()] = true
	for _, c := range conns {
		seen[c.Word.Key()] = true
	}
	doneRoots := make(map[string]bool)

	var out []domain.Connection
	for _, c := range conns {
		root := c.Relationship.SharedRoot
		key := RootKey(root)
		if key == "" || doneRoots[key] {
			continue
		}
		doneRoots[key] = true

		added := 0
		for _, e := range x.Lookup(root) {
			if added == matchesPerRoot {
				break
			}
			k := domain.WordKey(e.Text, e.Language)
			if seen[k] {
				continue
			}
			if lexicon.IsSuspicious(source.Text, e.Text, language.IsProto(source.Language), language.IsProto(e.Language)) {
				continue
			}
			seen[k] = true
			added++
			out = append(out, x.synthesize(source, e, root))
		}
	}
	return out
}

func (x *Index) synthesize(source domain.Word, e Entry, root string) domain.Connection {
	typ := domain.RelationCognate
	if branch := language.SharedBranch(source.Language, e.Language); branch != "" {
		typ = domain.FamilyCognate(branch)
	}
	return domain.Connection{
		Word: domain.Word{Text: e.Text, Language: e.Language},
		Relationship: domain.Relationship{
			Type:       typ,
			Confidence: e.Confidence * x.discount,
			Notes:      fmt.Sprintf("Both descend from %s (shared root: %s)", root, root),
			SharedRoot: root,
			Priority:   domain.SourceCrossReference.Priority(),
			Source:     domain.SourceCrossReference,
		},
	}
}

// Reverse returns the edge from c's word back to source. Type, confidence
// and shared root are symmetric, so only the endpoint changes.
func Reverse(source domain.Word, c domain.Connection) domain.Connection {
	return domain.Connection{
		Word:         domain.Word{ID: source.ID, Text: source.Text, Language: source.Language},
		Relationship: c.Relationship,
	}
}

// Len returns the number of indexed roots.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.byRoot)
}

// Reset empties the index.
func (x *Index) Reset() {
	x.mu.Lock()
	defer x.mu.Unlock()
	clear(x.byRoot)
}
