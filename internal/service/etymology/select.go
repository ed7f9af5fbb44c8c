package etymology

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// SelectConnections picks at most maxCount connections from a ranked pool,
// reserving slots for reconstructed roots when prioritizeRoots is set.
func (s *Service) SelectConnections(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection {
	return s.deps.Selector.Select(pool, maxCount, prioritizeRoots)
}

// Search returns a selection of the connections of word. The selection is
// cached, so repeated searches show the same subset until it expires.
func (s *Service) Search(ctx context.Context, word, lang string, maxCount int) (*domain.EtymologyResult, error) {
	maxCount = s.clampMax(maxCount)

	full, err := s.FindEtymologicalConnections(ctx, word, lang, false)
	if err != nil {
		return nil, err
	}

	key := full.SourceWord.Key() + "|" + strconv.Itoa(maxCount)
	if cached, ok := s.deps.Selections.Get(key); ok {
		return cloneResult(cached), nil
	}

	selected := domain.EtymologyResult{
		SourceWord:  full.SourceWord,
		Connections: s.SelectConnections(full.Connections, maxCount, true),
	}
	s.deps.Selections.Set(key, selected, 0)
	return cloneResult(selected), nil
}

// Expand re-runs the lookup for word without consulting either cache and
// draws a fresh selection.
func (s *Service) Expand(ctx context.Context, word, lang string, maxCount int) (*domain.EtymologyResult, error) {
	maxCount = s.clampMax(maxCount)

	full, err := s.FindEtymologicalConnections(ctx, word, lang, true)
	if err != nil {
		return nil, err
	}
	full.Connections = s.SelectConnections(full.Connections, maxCount, true)
	return full, nil
}

// Neighbors resolves a word id and searches for that word.
func (s *Service) Neighbors(ctx context.Context, id string, maxCount int) (*domain.EtymologyResult, error) {
	ref, err := s.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "neighbors",
		slog.String("id", id),
		slog.String("word", ref.Text),
		slog.String("language", ref.Language),
		slog.Bool("guessed", ref.Guessed),
	)
	res, err := s.Search(ctx, ref.Text, ref.Language, maxCount)
	if err != nil {
		return nil, fmt.Errorf("neighbors of %s: %w", id, err)
	}
	return res, nil
}

func (s *Service) clampMax(n int) int {
	if n <= 0 {
		return s.opts.DefaultMax
	}
	return min(n, s.opts.MaxMax)
}
