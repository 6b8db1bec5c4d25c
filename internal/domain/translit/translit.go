// Package translit provides the deterministic character-level fallback for
// words with no acceptable lexicon match, and the decoder that reverses both
// fallback segments and dictionary tokens. Transliteration never fails, which
// is what guarantees the matcher 100% input coverage.
package translit

import "strings"

// Boundary markers in assembled output. A single marker joins characters
// inside one transliterated word; a doubled marker separates words. Entry
// ids are IAST romanizations and never contain the marker rune, so decoding
// splits unambiguously.
const (
	LetterJoin = "·" // ·
	WordJoin   = LetterJoin + LetterJoin
)

// CharacterMap maps transliterable input characters (a-z, 0-9 and the space
// sentinel) to fallback script glyphs. Built once from the lexicon's reserved
// entries and immutable afterwards.
type CharacterMap struct {
	fwd map[rune]string
	rev map[string]rune
}

// NewCharacterMap builds a map from raw char→glyph pairs. Keys longer than
// one rune are ignored. When raw is empty the built-in Devanagari table is
// used, so a lexicon without reserved rows still has a total fallback.
func NewCharacterMap(raw map[string]string) *CharacterMap {
	if len(raw) == 0 {
		raw = defaultGlyphs
	}
	m := &CharacterMap{
		fwd: make(map[rune]string, len(raw)),
		rev: make(map[string]rune, len(raw)),
	}
	for k, glyph := range raw {
		runes := []rune(k)
		if len(runes) != 1 || glyph == "" {
			continue
		}
		c := runes[0]
		m.fwd[c] = glyph
		// First mapping wins on glyph collisions; raw maps are small and
		// curated, so collisions indicate a lexicon authoring error.
		if _, dup := m.rev[glyph]; !dup {
			m.rev[glyph] = c
		}
	}
	return m
}

// Glyph returns the glyph for c and whether c is transliterable.
func (m *CharacterMap) Glyph(c rune) (string, bool) {
	g, ok := m.fwd[c]
	return g, ok
}

// Char returns the input character for a glyph and whether it is known.
func (m *CharacterMap) Char(glyph string) (rune, bool) {
	c, ok := m.rev[glyph]
	return c, ok
}

// Transliterate maps each character of word through the map and joins the
// glyphs with LetterJoin. Unmapped characters pass through unchanged as
// their own piece. Self-inverse given the same map: ReverseWord recovers the
// original exactly for words of mapped characters.
func (m *CharacterMap) Transliterate(word string) string {
	var pieces []string
	for _, c := range word {
		if g, ok := m.fwd[c]; ok {
			pieces = append(pieces, g)
		} else {
			pieces = append(pieces, string(c))
		}
	}
	return strings.Join(pieces, LetterJoin)
}

// ReverseWord splits a transliterated unit on LetterJoin and reverse-maps
// each piece. Unknown pieces pass through unchanged.
func (m *CharacterMap) ReverseWord(unit string) string {
	pieces := strings.Split(unit, LetterJoin)
	var sb strings.Builder
	for _, p := range pieces {
		if c, ok := m.rev[p]; ok {
			sb.WriteRune(c)
		} else {
			sb.WriteString(p)
		}
	}
	return sb.String()
}

// defaultGlyphs is the built-in fallback table: a-z to Devanagari letters,
// 0-9 to Devanagari digits, space to the avagraha sign.
var defaultGlyphs = map[string]string{
	"a": "अ", "b": "ब", "c": "च", "d": "द",
	"e": "ए", "f": "फ", "g": "ग", "h": "ह",
	"i": "इ", "j": "ज", "k": "क", "l": "ल",
	"m": "म", "n": "न", "o": "ओ", "p": "प",
	"q": "क़", "r": "र", "s": "स", "t": "त",
	"u": "उ", "v": "व", "w": "औ", "x": "क्ष",
	"y": "य", "z": "ज़",
	"0": "०", "1": "१", "2": "२", "3": "३",
	"4": "४", "5": "५", "6": "६", "7": "७",
	"8": "८", "9": "९",
	" ": "ऽ",
}
