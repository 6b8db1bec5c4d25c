// Package expand maps English words and phrases to sets of semantic concepts.
// Expansion is the shared currency of the scoring pipeline: spans, frames,
// triggers, and anchors are all expanded before overlap is measured, so two
// texts match on meaning rather than on surface words.
package expand

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Set is a set of concept labels.
type Set map[string]struct{}

// NewSet builds a Set from the given labels.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Contains reports whether the concept is in the set.
func (s Set) Contains(concept string) bool {
	_, ok := s[concept]
	return ok
}

// union adds all of other into s.
func (s Set) union(other Set) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Overlap returns the Jaccard overlap |a∩b| / |a∪b|, or 0 if the union is empty.
func Overlap(a, b Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	inter := 0
	for c := range small {
		if large.Contains(c) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// HitRate returns the fraction of patterns that occur in span (word or
// substring match, case already normalized). Short patterns (< 4 chars) only
// count on whole-word hits to avoid accidental substring matches like "an"
// inside "ancestral". Returns 0 when patterns is empty.
func HitRate(span string, patterns []string) float64 {
	if len(patterns) == 0 {
		return 0
	}
	words := NewSet(strings.Fields(span)...)
	hits := 0
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if len(p) < 4 {
			if words.Contains(p) {
				hits++
			}
			continue
		}
		if strings.Contains(span, p) || words.Contains(p) {
			hits++
		}
	}
	return float64(hits) / float64(len(patterns))
}

// DefaultCacheCapacity bounds the memoization cache.
const DefaultCacheCapacity = 1024

// Expander expands words and phrases into concept sets using the static
// concept table. Results are memoized in a bounded LRU cache keyed on the
// lowercased input. The cache is the only mutable state; golang-lru is
// safe for concurrent use, and a miss simply recomputes, so correctness
// never depends on cache hits.
type Expander struct {
	cache *lru.Cache[string, Set]
}

// New creates an Expander with the given cache capacity. Capacity <= 0
// disables memoization (every call recomputes), which tests use for
// determinism checks.
func New(capacity int) *Expander {
	e := &Expander{}
	if capacity > 0 {
		// lru.New only fails on non-positive size, which is guarded above.
		e.cache, _ = lru.New[string, Set](capacity)
	}
	return e
}

// Expand returns the concept set for a word or multi-word phrase. For a
// phrase the result is the union of per-word expansions plus any phrase-level
// table entries matching the exact phrase. Unknown words expand to the
// singleton set containing the word itself, so the result is never empty for
// non-empty input.
func (e *Expander) Expand(text string) Set {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return Set{}
	}
	if e.cache != nil {
		if s, ok := e.cache.Get(key); ok {
			return s
		}
	}
	s := e.compute(key)
	if e.cache != nil {
		e.cache.Add(key, s)
	}
	return s
}

func (e *Expander) compute(key string) Set {
	out := make(Set)
	words := strings.Fields(key)
	for _, w := range words {
		out.union(expandWord(w))
	}
	if len(words) > 1 {
		// Phrase-level entries match the exact phrase.
		if concepts, ok := conceptTable[key]; ok {
			out.union(NewSet(concepts...))
			out[key] = struct{}{}
		}
	}
	return out
}

// expandWord expands a single word: its table concepts, the word itself, and
// a reverse pass pulling in any head word whose concept list contains it
// (plus that head word's own concepts). The reverse pass makes the relation
// symmetric — "split" reaches "divide" even though only "divide" lists it.
func expandWord(word string) Set {
	out := make(Set)
	out[word] = struct{}{}
	if concepts, ok := conceptTable[word]; ok {
		out.union(NewSet(concepts...))
	}
	if heads, ok := reverseTable[word]; ok {
		for _, head := range heads {
			out[head] = struct{}{}
			out.union(NewSet(conceptTable[head]...))
		}
	}
	return out
}

// CacheLen reports the number of memoized entries (0 when disabled).
func (e *Expander) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}
