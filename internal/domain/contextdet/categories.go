package contextdet

// Unknown is the sentinel category when no category clears the detection
// epsilon. Scoring and assurance treat it as "no penalty, no bonus".
const Unknown = "unknown"

// Category is a fixed domain label with its detection keywords. Categories
// are process-wide constants: created once here, immutable afterwards.
type Category struct {
	Name     string
	Keywords []string
}

// categories lists every category in priority order. The order is the
// tie-break for equal detection scores, so it must stay stable.
var categories = []Category{
	{"legal", []string{
		"property", "inheritance", "debt", "obligation", "legal", "contract",
		"law", "right", "claim", "ownership", "estate", "will", "testament",
		"heir", "ancestral", "court", "judge",
	}},
	{"mathematical", []string{
		"fraction", "calculation", "mathematical", "numerator", "denominator",
		"divide", "multiply", "sum", "number", "count", "calculate", "compute",
		"equation", "ratio",
	}},
	{"economic", []string{
		"resources", "assets", "wealth", "distribution", "allocation",
		"share", "portion", "fairly", "equitably", "trade", "price", "money",
	}},
	{"physical", []string{
		"water", "fire", "earth", "air", "body", "matter", "force", "motion",
		"heat", "light", "weight",
	}},
	{"social", []string{
		"people", "family", "relative", "community", "society", "friend",
		"marriage", "festival", "custom",
	}},
	{"technical", []string{
		"llm", "transformer", "attention", "mechanism", "processing", "neural",
		"machine learning", "artificial intelligence", "algorithm", "model",
	}},
	{"literary", []string{
		"poem", "verse", "story", "epic", "hymn", "meter", "poet", "narrative",
		"chapter",
	}},
	{"generic-action", []string{
		"divide", "share", "distribute", "allocate", "split", "separate",
		"give", "take", "make", "move",
	}},
}

// Categories returns the fixed category table in priority order. Callers
// must not mutate it.
func Categories() []Category { return categories }

// keywordSet caches each category's keywords as a set for assurance overlap.
var keywordSet = buildKeywordSets()

func buildKeywordSets() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(categories))
	for _, cat := range categories {
		set := make(map[string]struct{}, len(cat.Keywords))
		for _, k := range cat.Keywords {
			set[k] = struct{}{}
		}
		out[cat.Name] = set
	}
	return out
}
