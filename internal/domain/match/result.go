package match

import (
	"strings"

	"github.com/corey/sutra/internal/domain/translit"
)

// SegmentKind tags how a segment was produced.
type SegmentKind int

const (
	// Dictionary segments carry a lexicon entry id covering one or more
	// input words.
	Dictionary SegmentKind = iota
	// Letter segments carry a character-level transliteration of exactly
	// one input word.
	Letter
)

// String returns the canonical kind label.
func (k SegmentKind) String() string {
	if k == Dictionary {
		return "DICTIONARY"
	}
	return "LETTER"
}

// Segment is one produced output unit.
type Segment struct {
	Kind SegmentKind
	// Token is the output form: the entry id for Dictionary segments, the
	// marker-joined glyph string for Letter segments.
	Token string
	// Words are the input words the segment covers.
	Words []string
	// Score is the accepted match score (0 for Letter segments).
	Score float64
}

// Result is the output of one tokenize call. Constructed once, no further
// lifecycle.
type Result struct {
	Segments []Segment
	// OriginalWords is the input token count; every input word is covered
	// by exactly one segment's Words.
	OriginalWords int
	// ReductionRatio is (words - segments) / words, 0 for empty input.
	ReductionRatio float64
	// AvgConfidence is the mean score across Dictionary segments.
	AvgConfidence float64
	// Iterations is the number of window evaluations the matcher ran.
	Iterations int
}

// Output assembles the segment list into the encoded string: segments joined
// with the word boundary marker; Letter segments already carry their internal
// letter joins.
func (r *Result) Output() string {
	tokens := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		tokens[i] = s.Token
	}
	return strings.Join(tokens, translit.WordJoin)
}

// finalize computes the aggregate metrics after the segment list is complete.
func (r *Result) finalize() {
	if r.OriginalWords > 0 {
		r.ReductionRatio = float64(r.OriginalWords-len(r.Segments)) / float64(r.OriginalWords)
	}
	sum, n := 0.0, 0
	for _, s := range r.Segments {
		if s.Kind == Dictionary {
			sum += s.Score
			n++
		}
	}
	if n > 0 {
		r.AvgConfidence = sum / float64(n)
	}
}
