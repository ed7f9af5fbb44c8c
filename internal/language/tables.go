package language

// familyParent links each family tag to its parent. Roots map to "".
var familyParent = map[string]string{
	"indo-european":  "",
	"germanic":       "indo-european",
	"west-germanic":  "germanic",
	"north-germanic": "germanic",
	"east-germanic":  "germanic",
	"italic":         "indo-european",
	"romance":        "italic",
	"hellenic":       "indo-european",
	"celtic":         "indo-european",
	"balto-slavic":   "indo-european",
	"slavic":         "balto-slavic",
	"baltic":         "balto-slavic",
	"indo-iranian":   "indo-european",
	"indo-aryan":     "indo-iranian",
	"iranian":        "indo-iranian",
	"armenian":       "indo-european",
	"albanian":       "indo-european",
	"anatolian":      "indo-european",
	"tocharian":      "indo-european",

	"uralic": "",
	"finnic": "uralic",
	"ugric":  "uralic",

	"turkic": "",

	"afro-asiatic": "",
	"semitic":      "afro-asiatic",

	"sino-tibetan": "",
	"sinitic":      "sino-tibetan",

	"japonic":      "",
	"koreanic":     "",
	"dravidian":    "",
	"austronesian": "",
	"niger-congo":  "",
	"bantu":        "niger-congo",
	"basque":       "",
	"uto-aztecan":  "",
	"quechuan":     "",
}

// languageInfo describes one normalized language code.
type languageInfo struct {
	name   string
	family string
}

// languages is keyed by normalized code. Codes follow Wiktionary conventions,
// which reuse ISO 639-1 where it exists.
var languages = map[string]languageInfo{
	// West Germanic
	"en":  {"English", "west-germanic"},
	"enm": {"Middle English", "west-germanic"},
	"ang": {"Old English", "west-germanic"},
	"de":  {"German", "west-germanic"},
	"gmh": {"Middle High German", "west-germanic"},
	"goh": {"Old High German", "west-germanic"},
	"nl":  {"Dutch", "west-germanic"},
	"dum": {"Middle Dutch", "west-germanic"},
	"fy":  {"West Frisian", "west-germanic"},
	"ofs": {"Old Frisian", "west-germanic"},
	"osx": {"Old Saxon", "west-germanic"},
	"yi":  {"Yiddish", "west-germanic"},
	"af":  {"Afrikaans", "west-germanic"},
	"sco": {"Scots", "west-germanic"},

	// North and East Germanic
	"sv":  {"Swedish", "north-germanic"},
	"da":  {"Danish", "north-germanic"},
	"no":  {"Norwegian", "north-germanic"},
	"nb":  {"Norwegian Bokmål", "north-germanic"},
	"nn":  {"Norwegian Nynorsk", "north-germanic"},
	"is":  {"Icelandic", "north-germanic"},
	"fo":  {"Faroese", "north-germanic"},
	"non": {"Old Norse", "north-germanic"},
	"got": {"Gothic", "east-germanic"},

	// Italic and Romance
	"la":      {"Latin", "italic"},
	"la-lat":  {"Late Latin", "italic"},
	"la-med":  {"Medieval Latin", "italic"},
	"la-vul":  {"Vulgar Latin", "italic"},
	"itc-ola": {"Old Latin", "italic"},
	"osc":     {"Oscan", "italic"},
	"xum":     {"Umbrian", "italic"},
	"fr":      {"French", "romance"},
	"fro":     {"Old French", "romance"},
	"frm":     {"Middle French", "romance"},
	"xno":     {"Anglo-Norman", "romance"},
	"es":      {"Spanish", "romance"},
	"osp":     {"Old Spanish", "romance"},
	"it":      {"Italian", "romance"},
	"pt":      {"Portuguese", "romance"},
	"ro":      {"Romanian", "romance"},
	"ca":      {"Catalan", "romance"},
	"oc":      {"Occitan", "romance"},
	"gl":      {"Galician", "romance"},

	// Hellenic
	"grc": {"Ancient Greek", "hellenic"},
	"el":  {"Greek", "hellenic"},
	"gkm": {"Byzantine Greek", "hellenic"},

	// Celtic
	"ga":  {"Irish", "celtic"},
	"sga": {"Old Irish", "celtic"},
	"mga": {"Middle Irish", "celtic"},
	"gd":  {"Scottish Gaelic", "celtic"},
	"cy":  {"Welsh", "celtic"},
	"br":  {"Breton", "celtic"},
	"kw":  {"Cornish", "celtic"},
	"xtg": {"Gaulish", "celtic"},

	// Balto-Slavic
	"ru":  {"Russian", "slavic"},
	"uk":  {"Ukrainian", "slavic"},
	"be":  {"Belarusian", "slavic"},
	"pl":  {"Polish", "slavic"},
	"cs":  {"Czech", "slavic"},
	"sk":  {"Slovak", "slavic"},
	"sl":  {"Slovene", "slavic"},
	"hr":  {"Croatian", "slavic"},
	"sr":  {"Serbian", "slavic"},
	"sh":  {"Serbo-Croatian", "slavic"},
	"bg":  {"Bulgarian", "slavic"},
	"mk":  {"Macedonian", "slavic"},
	"cu":  {"Old Church Slavonic", "slavic"},
	"lt":  {"Lithuanian", "baltic"},
	"lv":  {"Latvian", "baltic"},
	"prg": {"Old Prussian", "baltic"},

	// Indo-Iranian
	"sa":  {"Sanskrit", "indo-aryan"},
	"hi":  {"Hindi", "indo-aryan"},
	"ur":  {"Urdu", "indo-aryan"},
	"bn":  {"Bengali", "indo-aryan"},
	"pa":  {"Punjabi", "indo-aryan"},
	"pi":  {"Pali", "indo-aryan"},
	"fa":  {"Persian", "iranian"},
	"peo": {"Old Persian", "iranian"},
	"pal": {"Middle Persian", "iranian"},
	"ae":  {"Avestan", "iranian"},
	"ku":  {"Kurdish", "iranian"},
	"ps":  {"Pashto", "iranian"},

	// Other Indo-European
	"hy":  {"Armenian", "armenian"},
	"xcl": {"Old Armenian", "armenian"},
	"sq":  {"Albanian", "albanian"},
	"hit": {"Hittite", "anatolian"},
	"txb": {"Tocharian B", "tocharian"},
	"xto": {"Tocharian A", "tocharian"},

	// Reconstructed languages
	"ine-pro":     {"Proto-Indo-European", "indo-european"},
	"gem-pro":     {"Proto-Germanic", "germanic"},
	"gmw-pro":     {"Proto-West Germanic", "west-germanic"},
	"itc-pro":     {"Proto-Italic", "italic"},
	"grk-pro":     {"Proto-Hellenic", "hellenic"},
	"cel-pro":     {"Proto-Celtic", "celtic"},
	"ine-bsl-pro": {"Proto-Balto-Slavic", "balto-slavic"},
	"sla-pro":     {"Proto-Slavic", "slavic"},
	"iir-pro":     {"Proto-Indo-Iranian", "indo-iranian"},
	"urj-pro":     {"Proto-Uralic", "uralic"},
	"sem-pro":     {"Proto-Semitic", "semitic"},

	// Non-Indo-European
	"fi":  {"Finnish", "finnic"},
	"et":  {"Estonian", "finnic"},
	"hu":  {"Hungarian", "ugric"},
	"tr":  {"Turkish", "turkic"},
	"ota": {"Ottoman Turkish", "turkic"},
	"az":  {"Azerbaijani", "turkic"},
	"kk":  {"Kazakh", "turkic"},
	"ar":  {"Arabic", "semitic"},
	"he":  {"Hebrew", "semitic"},
	"arc": {"Aramaic", "semitic"},
	"akk": {"Akkadian", "semitic"},
	"mt":  {"Maltese", "semitic"},
	"zh":  {"Chinese", "sinitic"},
	"ltc": {"Middle Chinese", "sinitic"},
	"och": {"Old Chinese", "sinitic"},
	"ja":  {"Japanese", "japonic"},
	"ko":  {"Korean", "koreanic"},
	"ta":  {"Tamil", "dravidian"},
	"te":  {"Telugu", "dravidian"},
	"ms":  {"Malay", "austronesian"},
	"id":  {"Indonesian", "austronesian"},
	"tl":  {"Tagalog", "austronesian"},
	"haw": {"Hawaiian", "austronesian"},
	"mi":  {"Maori", "austronesian"},
	"sw":  {"Swahili", "bantu"},
	"zu":  {"Zulu", "bantu"},
	"eu":  {"Basque", "basque"},
	"nah": {"Nahuatl", "uto-aztecan"},
	"qu":  {"Quechua", "quechuan"},
}

// nameAliases maps lowercase display names, historical labels and ISO 639-2/3
// variants to normalized codes. Keys must never equal a canonical code that
// maps elsewhere, otherwise Normalize stops being idempotent.
var nameAliases = map[string]string{
	// ISO 639-2/B and 639-3 variants
	"eng": "en", "deu": "de", "ger": "de", "nld": "nl", "dut": "nl",
	"swe": "sv", "dan": "da", "nor": "no", "isl": "is", "ice": "is",
	"lat": "la", "fra": "fr", "fre": "fr", "spa": "es", "ita": "it",
	"por": "pt", "ron": "ro", "rum": "ro", "cat": "ca", "ell": "el",
	"gre": "el", "gle": "ga", "cym": "cy", "wel": "cy", "rus": "ru",
	"ukr": "uk", "pol": "pl", "ces": "cs", "cze": "cs", "bul": "bg",
	"lit": "lt", "lav": "lv", "san": "sa", "hin": "hi", "fas": "fa",
	"per": "fa", "hye": "hy", "arm": "hy", "sqi": "sq", "alb": "sq",
	"fin": "fi", "est": "et", "hun": "hu", "tur": "tr", "ara": "ar",
	"heb": "he", "zho": "zh", "chi": "zh", "jpn": "ja", "kor": "ko",
	"eus": "eu", "baq": "eu", "swa": "sw", "msa": "ms", "may": "ms",
	"pie": "ine-pro",

	// Display names
	"english": "en", "modern english": "en", "middle english": "enm",
	"old english": "ang", "anglo-saxon": "ang",
	"german": "de", "modern german": "de", "middle high german": "gmh",
	"old high german": "goh", "dutch": "nl", "middle dutch": "dum",
	"frisian": "fy", "west frisian": "fy", "old frisian": "ofs",
	"old saxon": "osx", "yiddish": "yi", "afrikaans": "af", "scots": "sco",
	"swedish": "sv", "danish": "da", "norwegian": "no", "icelandic": "is",
	"faroese": "fo", "old norse": "non", "gothic": "got",
	"latin": "la", "classical latin": "la", "late latin": "la-lat",
	"medieval latin": "la-med", "vulgar latin": "la-vul", "old latin": "itc-ola",
	"oscan": "osc", "umbrian": "xum",
	"french": "fr", "modern french": "fr", "old french": "fro",
	"middle french": "frm", "anglo-french": "xno", "anglo-norman": "xno",
	"norman french": "xno", "old north french": "fro",
	"spanish": "es", "old spanish": "osp", "italian": "it",
	"portuguese": "pt", "romanian": "ro", "catalan": "ca",
	"occitan": "oc", "provençal": "oc", "provencal": "oc", "old provençal": "oc",
	"galician": "gl",
	"greek":    "grc", "ancient greek": "grc", "classical greek": "grc",
	"modern greek": "el", "byzantine greek": "gkm", "medieval greek": "gkm",
	"irish": "ga", "old irish": "sga", "middle irish": "mga",
	"scottish gaelic": "gd", "gaelic": "gd", "welsh": "cy", "breton": "br",
	"cornish": "kw", "gaulish": "xtg",
	"russian": "ru", "ukrainian": "uk", "belarusian": "be", "polish": "pl",
	"czech": "cs", "slovak": "sk", "slovene": "sl", "slovenian": "sl",
	"croatian": "hr", "serbian": "sr", "serbo-croatian": "sh",
	"bulgarian": "bg", "macedonian": "mk", "old church slavonic": "cu",
	"church slavonic": "cu", "old slavonic": "cu",
	"lithuanian": "lt", "latvian": "lv", "lettish": "lv", "old prussian": "prg",
	"sanskrit": "sa", "vedic sanskrit": "sa", "hindi": "hi", "urdu": "ur",
	"bengali": "bn", "punjabi": "pa", "pali": "pi",
	"persian": "fa", "farsi": "fa", "old persian": "peo",
	"middle persian": "pal", "pahlavi": "pal", "avestan": "ae",
	"kurdish": "ku", "pashto": "ps",
	"armenian": "hy", "old armenian": "xcl", "classical armenian": "xcl",
	"albanian": "sq", "hittite": "hit", "tocharian": "txb",
	"tocharian a": "xto", "tocharian b": "txb",
	"proto-indo-european": "ine-pro", "proto indo-european": "ine-pro",
	"indo-european":  "ine-pro",
	"proto-germanic": "gem-pro", "proto-west germanic": "gmw-pro",
	"west germanic": "gmw-pro", "proto-italic": "itc-pro",
	"proto-hellenic": "grk-pro", "proto-greek": "grk-pro",
	"proto-celtic": "cel-pro", "proto-balto-slavic": "ine-bsl-pro",
	"proto-slavic": "sla-pro", "proto-indo-iranian": "iir-pro",
	"proto-uralic": "urj-pro", "proto-semitic": "sem-pro",
	"finnish": "fi", "estonian": "et", "hungarian": "hu",
	"turkish": "tr", "ottoman turkish": "ota", "azerbaijani": "az",
	"kazakh": "kk", "arabic": "ar", "hebrew": "he", "biblical hebrew": "he",
	"aramaic": "arc", "akkadian": "akk", "maltese": "mt",
	"chinese": "zh", "mandarin": "zh", "middle chinese": "ltc",
	"old chinese": "och", "japanese": "ja", "korean": "ko",
	"tamil": "ta", "telugu": "te", "malay": "ms", "indonesian": "id",
	"tagalog": "tl", "hawaiian": "haw", "maori": "mi",
	"swahili": "sw", "zulu": "zu", "basque": "eu", "nahuatl": "nah",
	"quechua": "qu",
}
