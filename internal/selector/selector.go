// Package selector picks the per-request subset of a ranked connection pool.
package selector

import (
	"math/rand/v2"
	"sync"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// DefaultRootSlots is the number of slots reserved for reconstructed roots.
const DefaultRootSlots = 3

// Selector draws randomized subsets from a ranked pool. The random source is
// seeded once, so a fixed seed replays the same sequence of selections.
type Selector struct {
	mu        sync.Mutex
	rng       *rand.Rand
	rootSlots int
}

// New creates a Selector. A zero seed picks a random one; rootSlots <= 0
// falls back to DefaultRootSlots.
func New(seed uint64, rootSlots int) *Selector {
	if seed == 0 {
		seed = rand.Uint64()
	}
	if rootSlots <= 0 {
		rootSlots = DefaultRootSlots
	}
	return &Selector{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rootSlots: rootSlots,
	}
}

// Select returns at most maxCount connections from pool. When the pool is
// larger, up to rootSlots reconstructed-root connections are chosen at random
// first (if prioritizeRoots), and the rest of the slots are filled at random
// from the remaining connections. The pool is not modified.
func (s *Selector) Select(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection {
	if maxCount <= 0 {
		return []domain.Connection{}
	}
	if len(pool) <= maxCount {
		out := make([]domain.Connection, len(pool))
		copy(out, pool)
		return out
	}

	var roots, rest []domain.Connection
	if prioritizeRoots {
		for _, c := range pool {
			if c.IsReconstructedRoot() {
				roots = append(roots, c)
			} else {
				rest = append(rest, c)
			}
		}
	} else {
		rest = append(rest, pool...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Connection, 0, maxCount)
	take := min(s.rootSlots, maxCount, len(roots))
	if len(roots) > take {
		s.shuffle(roots)
	}
	out = append(out, roots[:take]...)

	s.shuffle(rest)
	fill := min(maxCount-len(out), len(rest))
	out = append(out, rest[:fill]...)

	// Too few non-root entries: top up with the unused roots.
	if len(out) < maxCount {
		out = append(out, roots[take:take+min(maxCount-len(out), len(roots)-take)]...)
	}
	return out
}

func (s *Selector) shuffle(conns []domain.Connection) {
	s.rng.Shuffle(len(conns), func(i, j int) {
		conns[i], conns[j] = conns[j], conns[i]
	})
}
