package domain

// Priors holds every hand-authored confidence constant used by the
// extractors, the cognate matcher and the validator. Values are priors,
// not statistics; tune them here rather than at call sites.
type Priors struct {
	// Wiki-markup templates.
	WikiCognate    float64
	WikiMention    float64
	WikiDerivation float64
	WikiBorrowing  float64
	WikiAffix      float64
	// "Derived terms" section.
	SectionDerivative float64
	SectionCompound   float64

	// HTML marked-word tiers.
	HTMLUnderline float64
	HTMLItalic    float64
	HTMLLink      float64
	Shortening    float64
	PIEDerivative float64
	PIEEvidence   float64

	// Context scoring: clamp(Base + Positive*pos - Negative*neg, Ceiling).
	ContextBase     float64
	ContextPositive float64
	ContextNegative float64
	ContextCeiling  float64
	ContextAccept   float64
	// ContextReduced scales confidence for the weak-accept path
	// (positive > 0, negative == 0, score below ContextAccept).
	ContextReduced float64

	// Cognate pattern matcher.
	DirectCognate float64
	SoundChange   float64

	// CrossRefDiscount multiplies the confidence of synthesized
	// cross-reference connections.
	CrossRefDiscount float64

	// Validator floors.
	MinConfidence            float64
	MinConfidenceProto       float64
	MinConfidenceCrossFamily float64
}

// DefaultPriors returns the production confidence table.
func DefaultPriors() Priors {
	return Priors{
		WikiCognate:       0.85,
		WikiMention:       0.80,
		WikiDerivation:    0.80,
		WikiBorrowing:     0.80,
		WikiAffix:         0.80,
		SectionDerivative: 0.90,
		SectionCompound:   0.85,

		HTMLUnderline: 0.90,
		HTMLItalic:    0.85,
		HTMLLink:      0.75,
		Shortening:    0.90,
		PIEDerivative: 0.85,
		PIEEvidence:   0.80,

		ContextBase:     0.60,
		ContextPositive: 0.10,
		ContextNegative: 0.05,
		ContextCeiling:  0.95,
		ContextAccept:   0.70,
		ContextReduced:  0.90,

		DirectCognate: 0.95,
		SoundChange:   0.75,

		CrossRefDiscount: 0.88,

		MinConfidence:            0.50,
		MinConfidenceProto:       0.40,
		MinConfidenceCrossFamily: 0.70,
	}
}
