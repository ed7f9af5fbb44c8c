// Package wordid mints opaque word ids and resolves them back to words.
package wordid

import (
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// Ref is the (text, language) pair an id stands for.
type Ref struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	// Guessed is set when the ref was recovered from the id shape rather
	// than from the registry.
	Guessed bool `json:"guessed,omitempty"`
}

var nonSlug = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Registry is a bidirectional id <-> (text, language) table. Both directions
// are updated under one lock.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]Ref
	byKey map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:  make(map[string]Ref),
		byKey: make(map[string]string),
	}
}

// Mint returns the id bound to (text, lang), minting and binding a new one
// if none exists.
func (r *Registry) Mint(text, lang string) string {
	key := domain.WordKey(text, lang)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byKey[key]; ok {
		return id
	}
	id := lang + "_" + slug(text) + "_" + uuid.NewString()[:8]
	r.byID[id] = Ref{Text: text, Language: lang}
	r.byKey[key] = id
	return id
}

// Bind records an externally minted id. An existing binding for the same
// (text, lang) is kept as the canonical id; the new id still resolves.
func (r *Registry) Bind(id, text, lang string) {
	if id == "" {
		return
	}
	key := domain.WordKey(text, lang)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[id] = Ref{Text: text, Language: lang}
	if _, ok := r.byKey[key]; !ok {
		r.byKey[key] = id
	}
}

// Resolve looks up id.
func (r *Registry) Resolve(id string) (Ref, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.byID[id]
	return ref, ok
}

// Len returns the number of bound ids.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Reset drops every binding.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.byID)
	clear(r.byKey)
}

func slug(text string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "x"
	}
	return s
}
