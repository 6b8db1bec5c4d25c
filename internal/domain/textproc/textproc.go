// Package textproc normalizes raw English input into the token stream the
// matcher consumes: lowercase, accent-folded, punctuation-stripped words with
// stop words removed. Phrase grouping is NOT done here — the matcher derives
// its own windows.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords are dropped before matching. Matching a stop word would only
// dilute concept overlap; the decoder never needs them back because encoded
// output is a token stream, not prose.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "its": true, "they": true,
	"them": true, "their": true, "we": true,
}

// accentFold strips combining marks after NFD decomposition ("résumé" →
// "resume"). Built once; Transformer values are stateless after construction.
var accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics.
func Fold(s string) string {
	folded, _, err := transform.String(accentFold, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Tokenize splits text into normalized word tokens:
//  1. Accent-fold and lowercase
//  2. Split on any non-letter/non-digit run
//  3. Drop empty tokens
//
// Stop words are retained here; use Filter to drop them. Keeping the steps
// separate lets display paths show the full word list.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	folded := Fold(text)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Filter removes stop words, preserving order.
func Filter(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

// IsStopWord reports whether w is in the stop-word table.
func IsStopWord(w string) bool { return stopWords[w] }

// Stem applies light suffix stripping for expansion lookups. It is not a
// full stemmer; it only peels the handful of inflections the concept table
// stores in base form. Words at or below 4 runes are left alone.
func Stem(w string) string {
	if len(w) <= 4 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ing"):
		return w[:len(w)-3]
	case strings.HasSuffix(w, "es"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ed"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ly"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}
