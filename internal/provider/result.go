package provider

// DictionaryResult is the structured result from the dictionary API.
type DictionaryResult struct {
	Word           string
	Origin         string
	Phonetic       string
	Senses         []SenseResult
	Pronunciations []PronunciationResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
}

// PronunciationResult represents pronunciation data from an external dictionary.
type PronunciationResult struct {
	Transcription *string
	AudioURL      *string
}

// FirstDefinition returns the first definition and its part of speech, or
// empty strings when the result has no senses.
func (r *DictionaryResult) FirstDefinition() (definition, partOfSpeech string) {
	if r == nil || len(r.Senses) == 0 {
		return "", ""
	}
	s := r.Senses[0]
	if s.PartOfSpeech != nil {
		partOfSpeech = *s.PartOfSpeech
	}
	return s.Definition, partOfSpeech
}

// Transcription returns the top-level phonetic, falling back to the first
// pronunciation that carries one.
func (r *DictionaryResult) Transcription() string {
	if r == nil {
		return ""
	}
	if r.Phonetic != "" {
		return r.Phonetic
	}
	for _, p := range r.Pronunciations {
		if p.Transcription != nil {
			return *p.Transcription
		}
	}
	return ""
}
