package etymology

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/wordid"
)

// CacheWordForID binds an id minted elsewhere (usually by a client that
// kept it from an earlier response) to its word.
func (s *Service) CacheWordForID(id, text, lang string) error {
	var errs []domain.FieldError
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	s.deps.Registry.Bind(id, strings.TrimSpace(text), language.NormalizeFor(text, lang))
	return nil
}

// ResolveID returns the word behind id. Ids unknown to the registry are
// parsed from their shape as a fallback; such refs are marked Guessed and
// bound so later lookups hit the registry.
func (s *Service) ResolveID(ctx context.Context, id string) (wordid.Ref, error) {
	if strings.TrimSpace(id) == "" {
		return wordid.Ref{}, domain.NewValidationError("id", "required")
	}
	if ref, ok := s.deps.Registry.Resolve(id); ok {
		return ref, nil
	}

	ref, ok := wordid.GuessFromID(id)
	if !ok {
		return wordid.Ref{}, fmt.Errorf("word id %q: %w", id, domain.ErrNotFound)
	}
	s.log.WarnContext(ctx, "word id guessed from its shape",
		slog.String("id", id),
		slog.String("word", ref.Text),
		slog.String("language", ref.Language),
	)
	s.deps.Registry.Bind(id, ref.Text, ref.Language)
	return ref, nil
}
