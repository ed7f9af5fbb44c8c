package cognate

// concept is one row of the cognate table: a meaning and its inherited
// surface forms per language. Non-Latin scripts are romanized.
type concept struct {
	name  string
	field string
	forms map[string][]string
}

var concepts = []concept{
	// Family.
	{"mother", "family", map[string][]string{
		"en": {"mother"}, "de": {"mutter"}, "nl": {"moeder"}, "sv": {"moder", "mor"}, "da": {"moder", "mor"},
		"is": {"móðir"}, "ang": {"mōdor"}, "la": {"mater"}, "it": {"madre"}, "es": {"madre"}, "pt": {"mãe"},
		"fr": {"mère"}, "grc": {"mḗtēr"}, "sa": {"mātṛ"}, "ru": {"mat'"}, "lt": {"motina"}, "ga": {"máthair"},
		"fa": {"mādar"}, "ine-pro": {"*méh₂tēr"},
	}},
	{"father", "family", map[string][]string{
		"en": {"father"}, "de": {"vater"}, "nl": {"vader"}, "sv": {"fader", "far"}, "da": {"fader", "far"},
		"is": {"faðir"}, "got": {"fadar"}, "ang": {"fæder"}, "la": {"pater"}, "it": {"padre"}, "es": {"padre"},
		"pt": {"pai"}, "fr": {"père"}, "grc": {"patḗr"}, "sa": {"pitṛ"}, "ga": {"athair"}, "fa": {"pedar"},
		"ine-pro": {"*ph₂tḗr"},
	}},
	{"brother", "family", map[string][]string{
		"en": {"brother"}, "de": {"bruder"}, "nl": {"broer"}, "sv": {"broder", "bror"}, "da": {"broder", "bror"},
		"is": {"bróðir"}, "got": {"broþar"}, "la": {"frater"}, "it": {"fratello"}, "fr": {"frère"},
		"grc": {"phrā́tēr"}, "sa": {"bhrātṛ"}, "ru": {"brat"}, "pl": {"brat"}, "lt": {"brolis"},
		"ga": {"bráthair"}, "fa": {"barādar"}, "ine-pro": {"*bʰréh₂tēr"},
	}},
	{"sister", "family", map[string][]string{
		"en": {"sister"}, "de": {"schwester"}, "nl": {"zuster", "zus"}, "sv": {"syster"}, "da": {"søster"},
		"is": {"systir"}, "la": {"soror"}, "fr": {"sœur"}, "sa": {"svasṛ"}, "ru": {"sestra"}, "pl": {"siostra"},
		"lt": {"sesuo"}, "ga": {"siúr"}, "fa": {"xāhar"}, "ine-pro": {"*swésōr"},
	}},
	{"daughter", "family", map[string][]string{
		"en": {"daughter"}, "de": {"tochter"}, "nl": {"dochter"}, "sv": {"dotter"}, "da": {"datter"},
		"is": {"dóttir"}, "grc": {"thugátēr"}, "sa": {"duhitṛ"}, "ru": {"doč'"}, "lt": {"duktė"},
		"fa": {"doxtar"}, "ine-pro": {"*dʰugh₂tḗr"},
	}},
	{"son", "family", map[string][]string{
		"en": {"son"}, "de": {"sohn"}, "nl": {"zoon"}, "sv": {"son"}, "da": {"søn"}, "is": {"sonur"},
		"got": {"sunus"}, "sa": {"sūnu"}, "ru": {"syn"}, "pl": {"syn"}, "lt": {"sūnus"}, "ine-pro": {"*suHnús"},
	}},

	// Numbers.
	{"two", "number", map[string][]string{
		"en": {"two"}, "de": {"zwei"}, "nl": {"twee"}, "sv": {"två"}, "da": {"to"}, "is": {"tveir"},
		"la": {"duo"}, "it": {"due"}, "es": {"dos"}, "fr": {"deux"}, "grc": {"dúo"}, "sa": {"dvā"},
		"ru": {"dva"}, "lt": {"du"}, "ga": {"dó"}, "fa": {"do"}, "ine-pro": {"*dwóh₁"},
	}},
	{"three", "number", map[string][]string{
		"en": {"three"}, "de": {"drei"}, "nl": {"drie"}, "sv": {"tre"}, "da": {"tre"}, "is": {"þrír"},
		"la": {"tres"}, "it": {"tre"}, "es": {"tres"}, "fr": {"trois"}, "grc": {"treîs"}, "sa": {"trayas"},
		"ru": {"tri"}, "lt": {"trys"}, "ga": {"trí"}, "fa": {"se"}, "ine-pro": {"*tréyes"},
	}},
	{"ten", "number", map[string][]string{
		"en": {"ten"}, "de": {"zehn"}, "nl": {"tien"}, "sv": {"tio"}, "da": {"ti"}, "is": {"tíu"},
		"got": {"taihun"}, "la": {"decem"}, "it": {"dieci"}, "es": {"diez"}, "fr": {"dix"}, "grc": {"déka"},
		"sa": {"daśa"}, "ru": {"desjat'"}, "lt": {"dešimt"}, "ga": {"deich"}, "ine-pro": {"*déḱm̥"},
	}},
	{"new", "quality", map[string][]string{
		"en": {"new"}, "de": {"neu"}, "nl": {"nieuw"}, "sv": {"ny"}, "da": {"ny"}, "la": {"novus"},
		"it": {"nuovo"}, "es": {"nuevo"}, "fr": {"neuf"}, "grc": {"néos"}, "sa": {"nava"}, "ru": {"novyj"},
		"lt": {"naujas"}, "fa": {"now"}, "ine-pro": {"*néwos"},
	}},

	// Body.
	{"heart", "body", map[string][]string{
		"en": {"heart"}, "de": {"herz"}, "nl": {"hart"}, "sv": {"hjärta"}, "da": {"hjerte"}, "is": {"hjarta"},
		"la": {"cor"}, "it": {"cuore"}, "es": {"corazón"}, "fr": {"cœur"}, "grc": {"kardía"}, "ru": {"serdce"},
		"lt": {"širdis"}, "ga": {"croí"}, "ine-pro": {"*ḱḗr"},
	}},
	{"foot", "body", map[string][]string{
		"en": {"foot"}, "de": {"fuß"}, "nl": {"voet"}, "sv": {"fot"}, "da": {"fod"}, "is": {"fótur"},
		"la": {"pes"}, "it": {"piede"}, "es": {"pie"}, "fr": {"pied"}, "grc": {"poús"}, "sa": {"pād"},
		"lt": {"pėda"}, "ine-pro": {"*pṓds"},
	}},
	{"tooth", "body", map[string][]string{
		"en": {"tooth"}, "de": {"zahn"}, "nl": {"tand"}, "sv": {"tand"}, "da": {"tand"}, "is": {"tönn"},
		"la": {"dens"}, "it": {"dente"}, "es": {"diente"}, "fr": {"dent"}, "grc": {"odoús"}, "sa": {"dant"},
		"lt": {"dantis"}, "ine-pro": {"*h₃dónts"},
	}},
	{"nose", "body", map[string][]string{
		"en": {"nose"}, "de": {"nase"}, "nl": {"neus"}, "sv": {"näsa"}, "da": {"næse"}, "la": {"nasus"},
		"it": {"naso"}, "es": {"nariz"}, "fr": {"nez"}, "sa": {"nāsā"}, "ru": {"nos"}, "lt": {"nosis"},
		"ine-pro": {"*néh₂s"},
	}},
	{"knee", "body", map[string][]string{
		"en": {"knee"}, "de": {"knie"}, "nl": {"knie"}, "sv": {"knä"}, "da": {"knæ"}, "la": {"genu"},
		"it": {"ginocchio"}, "fr": {"genou"}, "grc": {"gónu"}, "sa": {"jānu"}, "ine-pro": {"*ǵónu"},
	}},

	// Nature.
	{"water", "nature", map[string][]string{
		"en": {"water"}, "de": {"wasser"}, "nl": {"water"}, "sv": {"vatten"}, "da": {"vand"}, "is": {"vatn"},
		"got": {"wato"}, "grc": {"húdōr"}, "sa": {"udan"}, "ru": {"voda"}, "pl": {"woda"}, "lt": {"vanduo"},
		"hit": {"watar"}, "ine-pro": {"*wódr̥"},
	}},
	{"night", "nature", map[string][]string{
		"en": {"night"}, "de": {"nacht"}, "nl": {"nacht"}, "sv": {"natt"}, "da": {"nat"}, "is": {"nótt"},
		"la": {"nox"}, "it": {"notte"}, "es": {"noche"}, "fr": {"nuit"}, "grc": {"núx"}, "sa": {"nakt"},
		"ru": {"noč'"}, "lt": {"naktis"}, "ine-pro": {"*nókʷts"},
	}},
	{"star", "nature", map[string][]string{
		"en": {"star"}, "de": {"stern"}, "nl": {"ster"}, "sv": {"stjärna"}, "da": {"stjerne"}, "la": {"stella"},
		"it": {"stella"}, "es": {"estrella"}, "fr": {"étoile"}, "grc": {"astḗr"}, "sa": {"tṛ́"},
		"fa": {"setāre"}, "ine-pro": {"*h₂stḗr"},
	}},
	{"sun", "nature", map[string][]string{
		"en": {"sun"}, "de": {"sonne"}, "nl": {"zon"}, "sv": {"sol"}, "da": {"sol"}, "is": {"sól"},
		"la": {"sol"}, "it": {"sole"}, "es": {"sol"}, "fr": {"soleil"}, "grc": {"hḗlios"}, "sa": {"sūrya"},
		"ru": {"solnce"}, "lt": {"saulė"}, "ine-pro": {"*sóh₂wl̥"},
	}},
	{"name", "nature", map[string][]string{
		"en": {"name"}, "de": {"name"}, "nl": {"naam"}, "sv": {"namn"}, "da": {"navn"}, "is": {"nafn"},
		"la": {"nomen"}, "it": {"nome"}, "es": {"nombre"}, "fr": {"nom"}, "grc": {"ónoma"}, "sa": {"nāman"},
		"ru": {"imja"}, "ine-pro": {"*h₁nómn̥"},
	}},
}
