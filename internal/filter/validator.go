package filter

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/etymology-backend/internal/domain"
	"github.com/heartmarshall/etymology-backend/internal/language"
	"github.com/heartmarshall/etymology-backend/internal/lexicon"
)

// Rejection reasons, logged at debug level.
const (
	reasonEmpty         = "empty target"
	reasonSelfReference = "self reference"
	reasonTrivial       = "trivial derivative"
	reasonLowConfidence = "below confidence floor"
	reasonIncompatible  = "incompatible language families"
	reasonSuspicious    = "semantically suspicious"
	reasonFalseCognate  = "low similarity cross-family pair"
)

// Validator turns raw extractor output into canonical connections.
type Validator struct {
	priors domain.Priors
	log    *slog.Logger
}

// NewValidator creates a Validator using the given confidence priors.
func NewValidator(priors domain.Priors, logger *slog.Logger) *Validator {
	return &Validator{
		priors: priors,
		log:    logger.With("service", "validator"),
	}
}

// Validate normalizes every raw connection against source and drops the
// implausible ones. Returned connections carry no ids yet.
func (v *Validator) Validate(ctx context.Context, source domain.Word, raws []domain.RawConnection) []domain.Connection {
	out := make([]domain.Connection, 0, len(raws))
	for _, raw := range raws {
		conn, reason := v.check(source, raw)
		if reason != "" {
			v.log.DebugContext(ctx, "connection rejected",
				slog.String("word", source.Text),
				slog.String("target", raw.Word.Text),
				slog.String("target_language", raw.Word.Language),
				slog.String("type", string(raw.Relationship.Type)),
				slog.String("reason", reason),
			)
			continue
		}
		out = append(out, conn)
	}
	return out
}

func (v *Validator) check(source domain.Word, raw domain.RawConnection) (domain.Connection, string) {
	// 1. Normalize.
	target := raw.Word
	target.Text = CleanWordText(target.Text)
	if target.Text == "" {
		return domain.Connection{}, reasonEmpty
	}
	target.Language = language.NormalizeFor(target.Text, target.Language)
	rel := raw.Relationship
	if rel.Type == "" {
		rel.Type = domain.RelationRelated
	}

	// 2. Self reference.
	if domain.WordKey(target.Text, target.Language) == source.Key() {
		return domain.Connection{}, reasonSelfReference
	}

	targetProto := strings.HasPrefix(target.Text, "*") || language.IsProto(target.Language)
	sourceProto := strings.HasPrefix(source.Text, "*") || language.IsProto(source.Language)
	anyProto := targetProto || sourceProto
	crossFamily := !anyProto && source.Language != target.Language &&
		language.SharedBranch(source.Language, target.Language) == ""

	// 3. Trivial derivatives.
	if IsTrivialDerivative(source.Text, source.Language, target.Text, target.Language) {
		return domain.Connection{}, reasonTrivial
	}

	// 4. Confidence floor.
	floor := v.priors.MinConfidence
	switch {
	case anyProto:
		floor = v.priors.MinConfidenceProto
	case crossFamily && !rel.Type.IsBorrowing():
		floor = v.priors.MinConfidenceCrossFamily
	}
	if rel.Confidence < floor {
		return domain.Connection{}, reasonLowConfidence
	}

	// 5. Family compatibility.
	if !rel.Type.IsBorrowing() && !anyProto && !language.Related(source.Language, target.Language) {
		return domain.Connection{}, reasonIncompatible
	}

	// 6. Semantic suspicion and crude false-cognate detection.
	if lexicon.IsSuspicious(source.Text, target.Text, sourceProto, targetProto) {
		return domain.Connection{}, reasonSuspicious
	}
	if crossFamily {
		lenDiff := utf8.RuneCountInString(source.Text) - utf8.RuneCountInString(target.Text)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if charOverlap(source.Text, target.Text) < 0.2 && lenDiff > 3 {
			return domain.Connection{}, reasonFalseCognate
		}
	}

	// 7–8. Shared root and self-consistent notes.
	if strings.TrimSpace(rel.SharedRoot) == "" {
		rel.SharedRoot = InferSharedRoot(rel, target, source)
	}
	rel.SharedRoot = strings.TrimSpace(rel.SharedRoot)
	rel.Notes = withRootNote(rel.Notes, rel.SharedRoot)

	return domain.Connection{
		Word: domain.Word{
			Text:       target.Text,
			Language:   target.Language,
			Definition: target.Definition,
		},
		Relationship: domain.Relationship{
			Type:       rel.Type,
			Confidence: clamp01(rel.Confidence),
			Notes:      rel.Notes,
			Origin:     rel.Origin,
			SharedRoot: rel.SharedRoot,
			Priority:   raw.Source.Priority(),
			Source:     raw.Source,
		},
	}, ""
}

// CleanWordText trims whitespace, quotes and trailing punctuation from an
// extracted word while keeping a leading "*" and internal hyphens.
func CleanWordText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'“”‘’()[]{},.;:!?")
	return strings.Join(strings.Fields(s), " ")
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
