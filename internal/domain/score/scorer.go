// Package score ranks lexicon entries against English spans. The scorer
// blends four weighted evidence channels (frame overlap, trigger hits,
// anchor hits, context frequency) plus small additive hint boosts; the
// finder runs the scorer over the concept-prefiltered candidate set with
// an early exit once enough strong candidates are in hand.
package score

import (
	"github.com/corey/sutra/internal/domain/contextdet"
	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/domain/lexicon"
)

// Weights holds the four component weights. Each must be in [0,1]; they are
// not required to sum to 1, but a sum above 1 changes what the acceptance
// thresholds mean and is flagged at config validation.
type Weights struct {
	Frame     float64
	Trigger   float64
	Anchor    float64
	Frequency float64
}

// DefaultWeights is the proven 40/25/20/15 split.
func DefaultWeights() Weights {
	return Weights{Frame: 0.40, Trigger: 0.25, Anchor: 0.20, Frequency: 0.15}
}

// Sum returns the total of the four weights.
func (w Weights) Sum() float64 { return w.Frame + w.Trigger + w.Anchor + w.Frequency }

// maxBoost caps the additive hint boosts.
const maxBoost = 0.20

// Hints carries caller-supplied guidance. Both fields are optional.
type Hints struct {
	// ExpectedTokens are entry ids the caller believes should appear.
	ExpectedTokens []string
	// ExpectedContext is the category the caller believes the text is in.
	ExpectedContext string
}

func (h Hints) expects(id string) bool {
	for _, t := range h.ExpectedTokens {
		if t == id {
			return true
		}
	}
	return false
}

// Breakdown retains the component values behind a total, for diagnostics.
type Breakdown struct {
	FrameOverlap    float64 `json:"frame_overlap"`
	TriggerHitRate  float64 `json:"trigger_hit_rate"`
	AnchorHitRate   float64 `json:"anchor_hit_rate"`
	FrequencyWeight float64 `json:"frequency_weight"`
	Boosts          float64 `json:"boosts"`
	Total           float64 `json:"total"`
}

// Candidate is one scored entry for a span. Transient: produced per scoring
// call and discarded once the matcher selects or rejects it.
type Candidate struct {
	ID        string
	Total     float64
	Breakdown Breakdown
	// Context is the span's detected category at scoring time.
	Context string
}

// Scorer computes weighted match scores between spans and entries.
type Scorer struct {
	lex     *lexicon.Lexicon
	exp     *expand.Expander
	det     *contextdet.Detector
	weights Weights
}

// NewScorer builds a Scorer over the shared read-only collaborators.
func NewScorer(lex *lexicon.Lexicon, exp *expand.Expander, det *contextdet.Detector, w Weights) *Scorer {
	return &Scorer{lex: lex, exp: exp, det: det, weights: w}
}

// Score computes the total score and breakdown for span against entry.
// Span is expected lowercase. Missing entry metadata contributes 0 for its
// component, never an error.
func (s *Scorer) Score(span string, e *lexicon.Entry, hints Hints) (float64, Breakdown) {
	detected := s.det.Detect(span)
	return s.scoreDetected(span, s.exp.Expand(span), detected.Primary, e, hints)
}

// scoreDetected is the inner scoring path. The finder calls it directly with
// the span expansion and detection computed once for the whole candidate set.
func (s *Scorer) scoreDetected(span string, spanConcepts expand.Set, spanContext string, e *lexicon.Entry, hints Hints) (float64, Breakdown) {
	b := Breakdown{
		FrameOverlap:   expand.Overlap(spanConcepts, e.FrameConcepts()),
		TriggerHitRate: expand.HitRate(span, e.Triggers),
		AnchorHitRate:  expand.HitRate(span, e.Anchors),
	}
	if spanContext != contextdet.Unknown {
		b.FrequencyWeight = e.UsageFrequency[spanContext]
	}

	weighted := b.FrameOverlap*s.weights.Frame +
		b.TriggerHitRate*s.weights.Trigger +
		b.AnchorHitRate*s.weights.Anchor +
		b.FrequencyWeight*s.weights.Frequency

	boosts := 0.0
	if hints.expects(e.ID) {
		boosts += 0.10
	}
	if hints.ExpectedContext != "" && e.DominantCategory() == hints.ExpectedContext {
		boosts += 0.05
	}
	// Reserved tie-break signal, folded into ambiguity-resolver matches.
	if expand.HitRate(span, e.Resolvers) > 0 {
		boosts += 0.05
	}
	if boosts > maxBoost {
		boosts = maxBoost
	}
	b.Boosts = boosts

	b.Total = clamp01(weighted + boosts)
	return b.Total, b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
