// Package match runs the greedy variable-length phrase matcher: the state
// machine that walks the token stream trying the widest window first,
// shrinking on failure, and falling back to character transliteration when
// even a single word finds no acceptable entry. It also houses the pure
// accept/continue/reject decision policy and the assembled result type.
package match

import (
	"strings"

	"github.com/corey/sutra/internal/domain/contextdet"
	"github.com/corey/sutra/internal/domain/lexicon"
	"github.com/corey/sutra/internal/domain/score"
	"github.com/corey/sutra/internal/domain/translit"
)

// Matcher consumes normalized token streams and produces segments. Immutable
// after construction; safe for concurrent use (the expander cache behind the
// finder is the only shared mutable state and is internally synchronized).
type Matcher struct {
	lex    *lexicon.Lexicon
	finder *score.Finder
	cmap   *translit.CharacterMap
	cfg    Config
}

// NewMatcher wires the greedy loop over its collaborators.
func NewMatcher(lex *lexicon.Lexicon, finder *score.Finder, cmap *translit.CharacterMap, cfg Config) *Matcher {
	return &Matcher{lex: lex, finder: finder, cmap: cmap, cfg: cfg}
}

// Tokenize walks tokens producing one segment per accepted window or
// fallback word. Longer windows always win over shorter ones at the same
// position when both would clear their floors, because wider windows are
// tried first — compression beats marginal score differences by design of
// the loop order, not by comparison.
//
// Termination: every iteration either advances the cursor or shrinks the
// window, and the window is bounded below by 1, where the transliteration
// fallback never fails. Every input token therefore lands in exactly one
// segment.
func (m *Matcher) Tokenize(tokens []string, hints score.Hints) *Result {
	res := &Result{OriginalWords: len(tokens)}

	p := 0
	for p < len(tokens) {
		remaining := len(tokens) - p
		w := m.cfg.MaxWindow
		if remaining < w {
			w = remaining
		}

		emitted := false
		attempt := 0
		for w >= 1 {
			span := strings.Join(tokens[p:p+w], " ")
			attempt++
			res.Iterations++

			if cand, ok := m.acceptable(span, w, attempt, hints); ok {
				res.Segments = append(res.Segments, Segment{
					Kind:  Dictionary,
					Token: cand.ID,
					Words: tokens[p : p+w],
					Score: cand.Total,
				})
				p += w
				emitted = true
				break
			}
			w--
		}

		if !emitted {
			// Single word with no match above floor: letter fallback.
			word := tokens[p]
			res.Segments = append(res.Segments, Segment{
				Kind:  Letter,
				Token: m.cmap.Transliterate(word),
				Words: tokens[p : p+1],
			})
			p++
		}
	}

	res.finalize()
	return res
}

// acceptable returns the top candidate for span if it clears the
// length-dependent floor and survives the decision policy's context-loss
// check. The decision policy and the floors compose: an outright ACCEPT
// always passes, and a candidate the policy would merely not-accept is still
// taken when it clears the (much looser) compression floor — but a REJECT
// on context loss is final regardless of score.
func (m *Matcher) acceptable(span string, window, iteration int, hints score.Hints) (score.Candidate, bool) {
	cands := m.finder.FindBest(span, m.cfg.TopN, hints)
	if len(cands) == 0 {
		return score.Candidate{}, false
	}
	best := cands[0]

	entry := m.lex.Entry(best.ID)
	loss := contextdet.Loss(best.Context, entry.DominantCategory())

	d := Decide(best.Total, loss, iteration, Thresholds{
		Accept:        m.cfg.AcceptThreshold,
		Continue:      m.cfg.ContinueThreshold,
		ContextLoss:   m.cfg.ContextLossLimit,
		MaxIterations: m.cfg.MaxIterations,
	})
	if d == Accept {
		return best, true
	}
	if loss >= m.cfg.ContextLossLimit {
		return score.Candidate{}, false
	}

	floor := m.cfg.PhraseFloor
	if window == 1 {
		floor = m.cfg.SingleFloor
	}
	if best.Total >= floor {
		return best, true
	}
	return score.Candidate{}, false
}
