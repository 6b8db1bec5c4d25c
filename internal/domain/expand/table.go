package expand

// conceptTable is the static expansion table: head word (or exact phrase) to
// related concept labels. Entries were curated from the lexicon's semantic
// frames and common query vocabulary; unknown words fall back to themselves.
var conceptTable = map[string][]string{
	"divide": {"split", "share", "distribute", "portion", "division", "allocation",
		"separate", "partition", "apportion", "allocate", "parcel", "section"},
	"share": {"divide", "distribute", "portion", "part", "allot", "allocate",
		"apportion", "parcel", "division", "split"},
	"distribute": {"divide", "share", "allocate", "apportion", "dispense",
		"allot", "parcel", "portion"},
	"portion": {"part", "share", "division", "segment", "piece", "fraction",
		"allocation", "allotment", "quota"},
	"portions": {"parts", "shares", "divisions", "segments", "pieces", "portion"},
	"part": {"portion", "share", "division", "segment", "piece", "fraction",
		"component", "section"},
	"property": {"possession", "asset", "ownership", "estate", "belonging",
		"real estate", "land", "holding"},
	"inheritance": {"heritage", "legacy", "estate", "bequest", "patrimony",
		"endowment", "succession"},
	"fraction": {"portion", "part", "division", "segment", "piece",
		"numerator", "denominator"},
	"calculate": {"compute", "determine", "figure", "reckon",
		"estimate", "assess"},
	"mathematical": {"numeric", "arithmetic", "computational", "quantitative",
		"numerical"},
	"free":       {"liberate", "release", "unbound", "unrestricted", "unfettered"},
	"obligation": {"debt", "duty", "responsibility", "commitment", "liability"},
	"debt":       {"obligation", "liability", "indebtedness", "arrears"},
	"resources":  {"assets", "materials", "supplies", "means", "funds", "wealth"},
	"assets":     {"resources", "property", "possessions", "wealth", "holdings"},
	"fairly":     {"equitably", "justly", "evenly", "equally", "impartially"},
	"fair":       {"equitable", "just", "even", "equal", "impartial"},
	"wealth":     {"riches", "assets", "fortune", "prosperity", "abundance"},
	"cake":       {"food", "dessert", "sweet", "pastry"},
	"family":     {"kin", "relatives", "household", "lineage", "clan"},
	"heir":       {"inheritor", "successor", "beneficiary", "descendant"},
	"law":        {"legal", "statute", "rule", "regulation", "code"},
	"contract":   {"agreement", "covenant", "pact", "bond"},
	"knowledge":  {"wisdom", "learning", "understanding", "insight", "study"},
	"truth":      {"reality", "fact", "veracity", "certainty"},
	"duty":       {"obligation", "responsibility", "task", "office"},
	"action":     {"act", "deed", "work", "activity", "operation"},
	"water":      {"liquid", "fluid", "river", "stream"},
	"fire":       {"flame", "heat", "burning", "blaze"},
	"earth":      {"ground", "soil", "land", "world"},
	"mind":       {"intellect", "thought", "consciousness", "psyche"},
	"speak":      {"say", "tell", "utter", "declare", "speech"},
	"speech":     {"speaking", "utterance", "words", "voice", "language"},
	"language":   {"speech", "communication", "tongue", "dialect", "linguistic"},
	"word":       {"term", "utterance", "expression", "speech"},
	"king":       {"ruler", "monarch", "sovereign", "lord"},
	"people":     {"folk", "community", "society", "population"},
	"give":       {"grant", "bestow", "donate", "offer", "provide"},
	"take":       {"seize", "grasp", "receive", "accept", "obtain"},
	"protect":    {"guard", "defend", "shield", "preserve", "shelter"},
	"path":       {"way", "road", "route", "course", "track"},
	"method":     {"way", "manner", "process", "technique", "procedure"},
	"how":        {"method", "way", "manner", "process", "technique"},
	"into":       {"toward", "towards", "to"},
	// Technical vocabulary used by the technical context category.
	"llm": {"large language model", "language model", "ai model",
		"neural network", "machine learning", "artificial intelligence"},
	"transformer": {"transform", "convert", "change", "modify",
		"neural network", "ai architecture", "model"},
	"attention": {"focus", "concentration", "awareness", "mechanism",
		"process", "neural attention"},
	"mechanism":  {"process", "method", "system", "function", "operation", "procedure"},
	"mechanisms": {"processes", "methods", "systems", "functions", "operations"},
	"natural":    {"organic", "normal", "inherent", "intrinsic", "native"},
	"processing": {"handling", "managing", "analyzing", "computing", "executing"},
	"use":        {"utilize", "employ", "apply", "operate", "function"},
	// Phrase-level entries: matched only against the exact phrase.
	"divide property":        {"partition estate", "apportion assets", "inheritance division"},
	"share resources":        {"distribute assets", "allocate supplies", "apportion wealth"},
	"divide property fairly": {"equitable partition", "inheritance", "succession",
		"estate", "legacy", "bequest"},
	"machine learning":       {"ai", "neural network", "statistical learning", "model training"},
}

// reverseTable maps each concept label back to the head words that list it,
// built once at package init. It makes expansion symmetric without storing
// every relation twice in conceptTable.
var reverseTable = buildReverseTable()

func buildReverseTable() map[string][]string {
	rev := make(map[string][]string)
	for head, concepts := range conceptTable {
		for _, c := range concepts {
			rev[c] = append(rev[c], head)
		}
	}
	return rev
}
