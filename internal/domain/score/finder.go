package score

import (
	"sort"

	"github.com/corey/sutra/internal/domain/contextdet"
	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/domain/lexicon"
)

// earlyExitScore marks a candidate as "high scoring" for the early-exit
// bookkeeping. Scanning stops once 3×topN candidates clear this AND topN
// clear the acceptance floor — a documented approximation: omitted low
// scorers cannot change the ranking among the high scorers already found.
const earlyExitScore = 0.25

// Finder ranks candidate entries for a span.
type Finder struct {
	lex    *lexicon.Lexicon
	exp    *expand.Expander
	det    *contextdet.Detector
	scorer *Scorer
	// floor is the acceptance floor used by the early-exit rule.
	floor float64
}

// NewFinder builds a Finder sharing the scorer's collaborators. floor is the
// acceptance floor candidates must clear to count toward early exit.
func NewFinder(lex *lexicon.Lexicon, exp *expand.Expander, det *contextdet.Detector, scorer *Scorer, floor float64) *Finder {
	return &Finder{lex: lex, exp: exp, det: det, scorer: scorer, floor: floor}
}

// FindBest returns up to topN candidates for span, best first. Ties break by
// entry id ascending for determinism.
//
// The concept prefilter is exact: the candidate set is every entry sharing at
// least one concept with the span's expansion (via the lexicon's inverted
// index), so an entry with zero frame overlap — which the frame component
// would score 0 anyway — is the only thing excluded. An empty candidate set
// returns immediately with nil.
func (f *Finder) FindBest(span string, topN int, hints Hints) []Candidate {
	if span == "" || topN <= 0 {
		return nil
	}

	spanConcepts := f.exp.Expand(span)
	candidateIDs := f.lex.Candidates(spanConcepts)
	if len(candidateIDs) == 0 {
		return nil
	}

	detected := f.det.Detect(span)

	var scored []Candidate
	highCount := 0
	floorCount := 0
	for _, id := range candidateIDs {
		e := f.lex.Entry(id)
		total, breakdown := f.scorer.scoreDetected(span, spanConcepts, detected.Primary, e, hints)
		if total <= 0 {
			continue
		}
		scored = append(scored, Candidate{
			ID:        id,
			Total:     total,
			Breakdown: breakdown,
			Context:   detected.Primary,
		})
		if total > earlyExitScore {
			highCount++
		}
		if total >= f.floor {
			floorCount++
		}
		if highCount >= 3*topN && floorCount >= topN {
			break
		}
	}

	// Candidate ids were scanned in ascending order, so a stable sort on
	// score keeps equal-score candidates id-ascending.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
