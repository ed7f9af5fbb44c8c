package wordid

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/etymology-backend/internal/language"
)

// idShape matches "<lang>_<slug>_<8 hex>". Language codes may contain
// hyphens ("ine-pro"), slugs may too.
var idShape = regexp.MustCompile(`^([a-z]{2,3}(?:-[a-z]{2,4})*)_(.+)_([0-9a-f]{8})$`)

// GuessFromID recovers a best-effort Ref from the shape of a minted id when
// the registry no longer holds it (after a restart or Reset). The text is
// the slug with hyphens turned back into spaces, so diacritics survive but
// punctuation and the reconstruction asterisk do not.
func GuessFromID(id string) (Ref, bool) {
	m := idShape.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return Ref{}, false
	}
	lang, text := m[1], m[2]
	if !language.IsKnown(lang) && !language.IsProto(lang) {
		return Ref{}, false
	}
	if language.IsProto(lang) {
		text = "*" + text
	} else {
		text = strings.ReplaceAll(text, "-", " ")
	}
	return Ref{Text: text, Language: lang, Guessed: true}, true
}
