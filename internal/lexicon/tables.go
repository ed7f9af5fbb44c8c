// Package lexicon holds the replaceable word tables behind candidate
// filtering: stopwords, English affixes, modern coinages and the
// semantic-category table used to spot false cognates.
package lexicon

// stopwords are words that show up italicized or linked in etymology prose
// without ever being etymons.
var stopwords = toSet(
	"a", "an", "the", "and", "or", "nor", "but", "of", "to", "in", "on", "at",
	"by", "for", "from", "with", "without", "as", "is", "was", "were", "be",
	"been", "are", "it", "its", "this", "that", "these", "those", "which",
	"who", "whom", "whose", "what", "also", "see", "compare", "cf", "etc",
	"perhaps", "probably", "possibly", "meaning", "meanings", "related",
	"cognate", "cognates", "word", "words", "root", "roots", "source",
	"sources", "form", "forms", "sense", "senses", "same", "used", "use",
	"not", "into", "via", "than", "then", "more", "most", "earlier", "later",
	"literally", "figurative", "figuratively", "century", "old", "middle",
	"modern", "proto", "ancient", "late", "early", "obsolete", "variant",
	"verb", "noun", "adjective", "adverb", "plural", "singular", "n", "v",
	"adj", "adv", "pl", "esp", "especially", "originally", "formerly",
	"unknown", "uncertain", "origin", "ultimately", "further", "hence",
	"thus", "so", "such", "some", "any", "all", "one's", "oneself",
	"english", "latin", "greek", "german", "french", "dutch", "norse",
	"italian", "spanish", "sanskrit", "gothic", "celtic", "germanic",
	"slavic", "irish", "welsh", "persian", "arabic", "hebrew",
	"he", "she", "they", "we", "you", "i", "his", "her", "their", "our",
	"has", "have", "had", "do", "does", "did", "can", "could", "would",
	"should", "may", "might", "will", "shall", "if", "when", "where",
	"there", "here", "no", "yes", "about", "between", "after", "before",
	"over", "under", "up", "down", "out", "off", "again", "other", "another",
	"each", "every", "both", "either", "neither", "only", "own", "very",
)

var englishPrefixes = toSet(
	"un", "re", "in", "im", "il", "ir", "dis", "en", "em", "non", "pre",
	"pro", "anti", "de", "over", "under", "mis", "sub", "super", "inter",
	"trans", "co", "con", "com", "ex", "post", "semi", "auto", "bio", "geo",
	"tele", "multi", "poly", "mono", "hyper", "hypo", "counter", "out", "fore",
	"be", "a", "ab", "ad", "circum", "contra", "extra", "intra", "mid", "neo",
	"pseudo", "self", "ultra",
)

var englishSuffixes = toSet(
	"ness", "ment", "tion", "sion", "ation", "able", "ible", "al", "ial",
	"er", "or", "ist", "ism", "ity", "ty", "ive", "ous", "ious", "ful",
	"less", "ly", "ize", "ise", "ify", "en", "ship", "hood", "dom", "ward",
	"wards", "wise", "logy", "ology", "graphy", "phobia", "cracy", "ic",
	"ical", "ent", "ant", "ance", "ence", "ure", "age", "ery", "ary", "ory",
	"ish", "let", "ling", "some", "th", "y", "s", "es", "ed", "ing", "est",
)

var techPrefixes = []string{
	"cyber", "nano", "micro", "mega", "giga", "tera", "crypto", "techno",
	"info", "robo", "e-",
}

var techSuffixes = []string{
	"tech", "net", "web", "app", "bot", "ware",
}

// semanticCategory assigns a few high-frequency words to disjoint concept
// classes. Cross-class pairs are suspicious as etymological links.
var semanticCategory = map[string]string{
	"fire": "element", "water": "element", "earth": "element", "air": "element",
	"wind": "element", "stone": "element", "ice": "element",

	"red": "color", "blue": "color", "green": "color", "yellow": "color",
	"black": "color", "white": "color", "brown": "color", "grey": "color",
	"gray": "color", "purple": "color", "orange": "color", "pink": "color",

	"one": "number", "two": "number", "three": "number", "four": "number",
	"five": "number", "six": "number", "seven": "number", "eight": "number",
	"nine": "number", "ten": "number", "hundred": "number", "thousand": "number",
}

// knownBadPairs are associations that look plausible in prose but are not
// etymological links. Keys are ordered pairs joined by "|", lowest first.
var knownBadPairs = toSet(
	pairKey("fire", "red"),
	pairKey("blood", "red"),
	pairKey("sky", "blue"),
	pairKey("water", "blue"),
	pairKey("grass", "green"),
	pairKey("sun", "yellow"),
	pairKey("gold", "yellow"),
	pairKey("night", "black"),
	pairKey("snow", "white"),
	pairKey("milk", "white"),
)

func toSet(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
