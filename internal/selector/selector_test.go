package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

func pool(roots, others int) []domain.Connection {
	var out []domain.Connection
	for i := range roots {
		out = append(out, domain.Connection{Word: domain.Word{Text: fmt.Sprintf("*root%d-", i), Language: "ine-pro"}})
	}
	for i := range others {
		out = append(out, domain.Connection{Word: domain.Word{Text: fmt.Sprintf("word%d", i), Language: "de"}})
	}
	return out
}

func countRoots(conns []domain.Connection) int {
	n := 0
	for _, c := range conns {
		if c.IsReconstructedRoot() {
			n++
		}
	}
	return n
}

func TestSelect_SlotCap(t *testing.T) {
	t.Parallel()

	s := New(42, 0)
	tests := []struct {
		name      string
		pool      []domain.Connection
		max       int
		wantLen   int
		wantRoots int
	}{
		{"small pool returned whole", pool(1, 2), 10, 3, 1},
		{"exactly three roots reserved", pool(6, 20), 8, 8, 3},
		{"fewer roots than slots", pool(2, 20), 8, 8, 2},
		{"max below reserved slots", pool(5, 5), 2, 2, 2},
		{"no roots", pool(0, 12), 5, 5, 0},
		{"roots top up short rest", pool(8, 1), 6, 6, 5},
		{"zero max", pool(3, 3), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Select(tt.pool, tt.max, true)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantRoots, countRoots(got))
		})
	}
}

func TestSelect_NoRootPriority(t *testing.T) {
	t.Parallel()

	got := New(7, 3).Select(pool(10, 0), 4, false)
	assert.Len(t, got, 4)
}

func TestSelect_DoesNotMutatePool(t *testing.T) {
	t.Parallel()

	p := pool(5, 10)
	before := make([]domain.Connection, len(p))
	copy(before, p)

	New(1, 3).Select(p, 6, true)

	assert.Equal(t, before, p)
}

func TestSelect_SeedReproducible(t *testing.T) {
	t.Parallel()

	p := pool(6, 30)
	a := New(99, 3)
	b := New(99, 3)
	for range 5 {
		require.Equal(t, a.Select(p, 10, true), b.Select(p, 10, true))
	}
}

func TestSelect_Varies(t *testing.T) {
	t.Parallel()

	s := New(5, 3)
	p := pool(0, 40)
	first := s.Select(p, 5, true)
	varied := false
	for range 20 {
		if !assert.ObjectsAreEqual(first, s.Select(p, 5, true)) {
			varied = true
			break
		}
	}
	assert.True(t, varied)
}
