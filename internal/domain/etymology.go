package domain

import "strings"

// RelationType classifies the edge between a searched word and a target word.
type RelationType string

const (
	RelationCognate       RelationType = "cognate"
	RelationDerivative    RelationType = "derivative"
	RelationCompound      RelationType = "compound"
	RelationBorrowing     RelationType = "borrowing"
	RelationLoan          RelationType = "loan"
	RelationAncestor      RelationType = "ancestor"
	RelationPIEDerivative RelationType = "pie_derivative"
	RelationShortenedFrom RelationType = "shortened_from"
	RelationShortenedTo   RelationType = "shortened_to"
	RelationSemantic      RelationType = "semantic"
	RelationRelated       RelationType = "related"
)

// FamilyCognate returns the family-qualified cognate type ("cognate_germanic").
// An empty family yields the plain cognate type.
func FamilyCognate(family string) RelationType {
	if family == "" || family == "unknown" {
		return RelationCognate
	}
	return RelationType("cognate_" + family)
}

// IsCognate reports whether t is cognate or a family-qualified cognate.
func (t RelationType) IsCognate() bool {
	return t == RelationCognate || strings.HasPrefix(string(t), "cognate_")
}

// IsBorrowing reports whether t marks a loanword relation.
func (t RelationType) IsBorrowing() bool {
	return t == RelationBorrowing || t == RelationLoan
}

// IsEtymological reports whether t is a direct word-formation relation.
func (t RelationType) IsEtymological() bool {
	switch t {
	case RelationDerivative, RelationCompound, RelationPIEDerivative,
		RelationShortenedFrom, RelationShortenedTo:
		return true
	}
	return false
}

// Weight is the type component of a connection's priority score.
func (t RelationType) Weight() int {
	switch {
	case t.IsEtymological():
		return 3
	case t.IsCognate(), t == RelationAncestor:
		return 2
	case t.IsBorrowing():
		return 1
	default:
		return 0
	}
}

// Priority is the coarse trust level shown alongside a relationship.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Source names the extractor family that produced a connection.
type Source string

const (
	SourceEtymonline     Source = "etymonline"
	SourceWiktionary     Source = "wiktionary"
	SourceDictionaryAPI  Source = "dictionary-api"
	SourceCognateDB      Source = "cognate-db"
	SourceCrossReference Source = "cross-reference"
)

// Weight is the source component of a connection's priority score.
func (s Source) Weight() int {
	switch s {
	case SourceEtymonline:
		return 3
	case SourceWiktionary:
		return 2
	case SourceDictionaryAPI:
		return 1
	default:
		return 0
	}
}

// Priority maps the source weight onto the three-level scale.
func (s Source) Priority() Priority {
	switch s.Weight() {
	case 3:
		return PriorityHigh
	case 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Word is a word in a specific language. Identity is (lowercased Text, Language);
// ID is an opaque surrogate minted by the word-id registry.
type Word struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Language     string `json:"language"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Definition   string `json:"definition,omitempty"`
	Phonetic     string `json:"phonetic,omitempty"`
}

// Key returns the identity key of the word.
func (w Word) Key() string {
	return WordKey(w.Text, w.Language)
}

// WordKey builds the identity key for (text, language).
func WordKey(text, language string) string {
	return language + "|" + NormalizeText(text)
}

// Relationship describes the edge from the searched word to a target.
// SharedRoot is empty when unknown; it is never set to a blank value.
type Relationship struct {
	Type       RelationType `json:"type"`
	Confidence float64      `json:"confidence"`
	Notes      string       `json:"notes,omitempty"`
	Origin     string       `json:"origin,omitempty"`
	SharedRoot string       `json:"sharedRoot,omitempty"`
	Priority   Priority     `json:"priority"`
	Source     Source       `json:"source"`
}

// Connection pairs the searched word (implicit) with a target word.
type Connection struct {
	ID           string       `json:"id"`
	Word         Word         `json:"word"`
	Relationship Relationship `json:"relationship"`
}

// IsReconstructedRoot reports whether the target is a reconstructed or
// proto-language form.
func (c Connection) IsReconstructedRoot() bool {
	return strings.HasPrefix(c.Word.Text, "*") || strings.Contains(c.Word.Language, "pro")
}

// PriorityScore is sourceWeight + typeWeight, the primary ranking key.
func (c Connection) PriorityScore() int {
	return c.Relationship.Source.Weight() + c.Relationship.Type.Weight()
}

// EtymologyResult is the cached unit per (normalized word, language).
type EtymologyResult struct {
	SourceWord  Word         `json:"sourceWord"`
	Connections []Connection `json:"connections"`
}

// RawWord is a target word as an extractor first sees it, before normalization.
type RawWord struct {
	Text       string
	Language   string
	Definition string
}

// RawRelationship is the extractor-side relationship before validation.
type RawRelationship struct {
	Type       RelationType
	Confidence float64
	Notes      string
	Origin     string
	SharedRoot string
}

// RawConnection is the common output shape of every extractor.
type RawConnection struct {
	Word         RawWord
	Relationship RawRelationship
	Source       Source
}
