// Package lexicon holds the immutable in-memory lexicon: one entry per
// Sanskrit token with its semantic metadata, plus the concept→entry inverted
// index the match finder prefilters with. A Lexicon is built once from
// ingested rows and never mutated, so it is safe to share across goroutines
// without locking.
package lexicon

import (
	"fmt"
	"sort"

	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/ports"
)

// Entry is one lexicon row with derived scoring data attached.
type Entry struct {
	ID             string
	Gloss          string
	SemanticFrame  []string
	Triggers       []string
	Anchors        []string
	Resolvers      []string
	UsageFrequency map[string]float64
	Neighbors      []string
	ScriptForm     string

	// frameConcepts is the union of expansions of every frame phrase,
	// precomputed at build time so scoring never re-expands entry data.
	frameConcepts expand.Set

	// dominantCategory is the usage-frequency category with the highest
	// weight, or "" when the distribution is empty.
	dominantCategory string
}

// FrameConcepts returns the precomputed frame concept set.
func (e *Entry) FrameConcepts() expand.Set { return e.frameConcepts }

// DominantCategory returns the highest-weight usage category, or "".
func (e *Entry) DominantCategory() string { return e.dominantCategory }

// Lexicon is the read-only collection of entries plus derived indexes.
type Lexicon struct {
	entries map[string]*Entry
	ids     []string // sorted, for deterministic iteration

	// conceptIndex maps each frame concept to the sorted ids of entries
	// whose frames produce it. The match finder's prefilter is a lookup
	// into this index; it must be exact (no entry whose frame shares a
	// concept with a span may be missing from the span's candidate set).
	conceptIndex map[string][]string

	charMap map[string]string
}

// ExpandFunc expands a word or phrase into concepts. Supplied by the caller
// so the lexicon and the expander stay decoupled.
type ExpandFunc func(string) expand.Set

// New builds a Lexicon from ingested rows. Required fields are id, gloss and
// script_form; a missing one is a load error. Duplicate ids are load errors.
// Frequency weights are clamped to [0,1] and all optional fields default to
// empty, so scoring never sees nil in a way that distinguishes "absent" from
// "empty" — both contribute 0.
func New(rows []ports.EntryRow, charMap map[string]string, expandFn ExpandFunc) (*Lexicon, error) {
	lex := &Lexicon{
		entries:      make(map[string]*Entry, len(rows)),
		conceptIndex: make(map[string][]string),
		charMap:      charMap,
	}

	for i, row := range rows {
		if row.ID == "" || row.Gloss == "" || row.ScriptForm == "" {
			return nil, fmt.Errorf("lexicon row %d: missing required field (id=%q gloss=%q script_form=%q)",
				i, row.ID, row.Gloss, row.ScriptForm)
		}
		if _, dup := lex.entries[row.ID]; dup {
			return nil, fmt.Errorf("lexicon row %d: duplicate id %q", i, row.ID)
		}

		e := &Entry{
			ID:             row.ID,
			Gloss:          row.Gloss,
			SemanticFrame:  row.SemanticFrame,
			Triggers:       row.Triggers,
			Anchors:        row.Anchors,
			Resolvers:      row.Resolvers,
			UsageFrequency: clampFrequencies(row.UsageFrequency),
			Neighbors:      row.Neighbors,
			ScriptForm:     row.ScriptForm,
		}
		e.frameConcepts = frameConcepts(e.SemanticFrame, expandFn)
		e.dominantCategory = dominant(e.UsageFrequency)

		lex.entries[e.ID] = e
		lex.ids = append(lex.ids, e.ID)
		for c := range e.frameConcepts {
			lex.conceptIndex[c] = append(lex.conceptIndex[c], e.ID)
		}
	}

	sort.Strings(lex.ids)
	for c := range lex.conceptIndex {
		sort.Strings(lex.conceptIndex[c])
	}
	return lex, nil
}

func frameConcepts(frames []string, expandFn ExpandFunc) expand.Set {
	out := make(expand.Set)
	for _, f := range frames {
		for c := range expandFn(f) {
			out[c] = struct{}{}
		}
	}
	return out
}

func clampFrequencies(freq map[string]float64) map[string]float64 {
	if len(freq) == 0 {
		return nil
	}
	out := make(map[string]float64, len(freq))
	for cat, w := range freq {
		if w < 0 {
			w = 0
		} else if w > 1 {
			w = 1
		}
		out[cat] = w
	}
	return out
}

// dominant picks the highest-weight category, ties broken by name ascending
// so the result is stable across runs.
func dominant(freq map[string]float64) string {
	best, bestW := "", -1.0
	cats := make([]string, 0, len(freq))
	for cat := range freq {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		if freq[cat] > bestW {
			best, bestW = cat, freq[cat]
		}
	}
	return best
}

// Entry returns the entry for id, or nil when absent.
func (l *Lexicon) Entry(id string) *Entry { return l.entries[id] }

// IDs returns all entry ids in ascending order. Callers must not mutate it.
func (l *Lexicon) IDs() []string { return l.ids }

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// ConceptCount returns the number of distinct concepts in the inverted index.
func (l *Lexicon) ConceptCount() int { return len(l.conceptIndex) }

// Candidates returns the sorted union of entry ids sharing at least one
// concept with the given set. An empty result means the concept prefilter
// rejected the span outright.
func (l *Lexicon) Candidates(concepts expand.Set) []string {
	seen := make(map[string]struct{})
	var out []string
	for c := range concepts {
		for _, id := range l.conceptIndex[c] {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	sort.Strings(out)
	return out
}

// CharMap returns the raw character→glyph table extracted from the lexicon's
// reserved entries. Callers must not mutate it.
func (l *Lexicon) CharMap() map[string]string { return l.charMap }

// Snapshot converts the lexicon back to its serializable row form for the
// storage adapter. Derived indexes are rebuilt on load, not persisted.
func (l *Lexicon) Snapshot() *ports.LexiconSnapshot {
	snap := &ports.LexiconSnapshot{CharMap: l.charMap}
	for _, id := range l.ids {
		e := l.entries[id]
		snap.Entries = append(snap.Entries, ports.EntryRow{
			ID:             e.ID,
			Gloss:          e.Gloss,
			SemanticFrame:  e.SemanticFrame,
			Triggers:       e.Triggers,
			Anchors:        e.Anchors,
			Resolvers:      e.Resolvers,
			UsageFrequency: e.UsageFrequency,
			Neighbors:      e.Neighbors,
			ScriptForm:     e.ScriptForm,
		})
	}
	return snap
}
