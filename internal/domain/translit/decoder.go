package translit

import "strings"

// GlossLookup resolves an entry id to its English gloss. Returns false when
// the id is not in the lexicon.
type GlossLookup func(id string) (string, bool)

// Decoder reverses assembled output: dictionary tokens back to glosses,
// fallback units back to their original characters. Anything it does not
// recognize passes through unchanged — total coverage is only guaranteed for
// this system's own output, never for foreign input.
type Decoder struct {
	lookup GlossLookup
	cmap   *CharacterMap
}

// NewDecoder builds a Decoder over the shared lexicon lookup and character map.
func NewDecoder(lookup GlossLookup, cmap *CharacterMap) *Decoder {
	return &Decoder{lookup: lookup, cmap: cmap}
}

// Decode splits encoded text on the word boundary marker and decodes each
// unit independently, joining the results with single spaces.
func (d *Decoder) Decode(encoded string) string {
	if encoded == "" {
		return ""
	}
	units := strings.Split(encoded, WordJoin)
	out := make([]string, 0, len(units))
	for _, u := range units {
		if u == "" {
			continue
		}
		out = append(out, d.decodeUnit(u))
	}
	return strings.Join(out, " ")
}

// decodeUnit decodes one word unit: whole-unit lexicon reverse lookup first,
// then character reverse mapping.
func (d *Decoder) decodeUnit(unit string) string {
	if gloss, ok := d.lookup(unit); ok {
		return primaryGloss(gloss)
	}
	return d.cmap.ReverseWord(unit)
}

// primaryGloss trims a free-text gloss to its first definition: glosses use
// ";" or "," to separate alternatives.
func primaryGloss(gloss string) string {
	if i := strings.IndexAny(gloss, ";,"); i >= 0 {
		gloss = gloss[:i]
	}
	return strings.TrimSpace(gloss)
}
