// Package contextdet detects which fixed domain category a piece of English
// text belongs to, and measures context agreement between categories. The
// whole input is scanned once per detect call using a multi-pattern scanner
// (Aho-Corasick adapter) built over every category's keywords.
package contextdet

import (
	"github.com/corey/sutra/internal/ports"
)

// detectEpsilon is the minimum score a category must reach before it can be
// primary. Below this everything is Unknown.
const detectEpsilon = 0.01

// Detection is the result of one detect call.
type Detection struct {
	// Primary is the arg-max category, or Unknown when nothing clears the
	// epsilon. Ties break by category priority order.
	Primary string
	// Scores holds the per-category score in [0,1]: keyword hits normalized
	// by the number of keywords examined. Categories with zero hits are
	// omitted.
	Scores map[string]float64
	// Keywords holds the matched keywords per category, for diagnostics.
	Keywords map[string][]string
}

// Detector scans text against the fixed category keyword tables.
type Detector struct {
	scanner  ports.PatternScanner
	patterns []string
	catOf    []int // pattern index -> index into categories
}

// BuildScanner constructs a PatternScanner over the given patterns. The
// concrete implementation is injected so domain tests need no automaton.
type BuildScanner func(patterns []string) ports.PatternScanner

// NewDetector builds a Detector using the injected scanner constructor.
func NewDetector(build BuildScanner) *Detector {
	d := &Detector{}
	for ci, cat := range categories {
		for _, kw := range cat.Keywords {
			d.patterns = append(d.patterns, kw)
			d.catOf = append(d.catOf, ci)
		}
	}
	d.scanner = build(d.patterns)
	return d
}

// Detect scores text (already lowercased by the caller) against every
// category and picks the primary. Keyword hits are substring hits, matching
// how the category tables were curated (multi-word keywords included).
func (d *Detector) Detect(text string) Detection {
	det := Detection{
		Primary:  Unknown,
		Scores:   make(map[string]float64),
		Keywords: make(map[string][]string),
	}
	if text == "" {
		return det
	}

	hits := make(map[int][]string) // category index -> matched keywords
	for _, pi := range d.scanner.Scan(text) {
		ci := d.catOf[pi]
		hits[ci] = append(hits[ci], d.patterns[pi])
	}

	bestScore := 0.0
	bestIdx := -1
	for ci, cat := range categories {
		matched := hits[ci]
		if len(matched) == 0 {
			continue
		}
		score := float64(len(matched)) / float64(len(cat.Keywords))
		det.Scores[cat.Name] = score
		det.Keywords[cat.Name] = matched
		// Strict > keeps the first (highest-priority) category on ties.
		if score > bestScore {
			bestScore = score
			bestIdx = ci
		}
	}

	if bestIdx >= 0 && bestScore >= detectEpsilon {
		det.Primary = categories[bestIdx].Name
	}
	return det
}

// Overlap measures context agreement between two category labels in [0,1].
// Equal categories overlap fully. Unknown on either side is defined as full
// overlap so indeterminate context never penalizes a match. Distinct known
// categories overlap by the Jaccard ratio of their keyword sets, so related
// domains (legal/economic both claim "property") degrade gracefully instead
// of dropping to zero.
func Overlap(a, b string) float64 {
	if a == Unknown || b == Unknown || a == "" || b == "" {
		return 1.0
	}
	if a == b {
		return 1.0
	}
	sa, oka := keywordSet[a]
	sb, okb := keywordSet[b]
	if !oka || !okb {
		// A category name outside the fixed table (entry frequency
		// distributions may use free-form names) carries no keyword
		// evidence either way.
		return 1.0
	}
	inter := 0
	for k := range sa {
		if _, ok := sb[k]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Loss is the complement of Overlap.
func Loss(a, b string) float64 { return 1.0 - Overlap(a, b) }
