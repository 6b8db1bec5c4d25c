package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/sutra/internal/domain/contextdet"
	"github.com/corey/sutra/internal/domain/expand"
	"github.com/corey/sutra/internal/domain/lexicon"
	"github.com/corey/sutra/internal/ports"
)

// substrScanner mirrors the production automaton's substring semantics
// without the automaton dependency.
type substrScanner []string

func (s substrScanner) Scan(text string) []int {
	var out []int
	for i, p := range s {
		if p != "" && strings.Contains(text, p) {
			out = append(out, i)
		}
	}
	return out
}

func buildSubstr(patterns []string) ports.PatternScanner {
	return substrScanner(patterns)
}

type fixture struct {
	lex    *lexicon.Lexicon
	exp    *expand.Expander
	det    *contextdet.Detector
	scorer *Scorer
	finder *Finder
}

func newFixture(t *testing.T, rows []ports.EntryRow) *fixture {
	t.Helper()
	exp := expand.New(0)
	lex, err := lexicon.New(rows, nil, exp.Expand)
	require.NoError(t, err)
	det := contextdet.NewDetector(buildSubstr)
	scorer := NewScorer(lex, exp, det, DefaultWeights())
	return &fixture{
		lex:    lex,
		exp:    exp,
		det:    det,
		scorer: scorer,
		finder: NewFinder(lex, exp, det, scorer, 0.12),
	}
}

func legalShareEntry() ports.EntryRow {
	return ports.EntryRow{
		ID:             "X1",
		Gloss:          "equal division of inheritance",
		SemanticFrame:  []string{"divide property fairly"},
		Triggers:       []string{"property", "inheritance"},
		UsageFrequency: map[string]float64{"legal": 0.35},
		ScriptForm:     "अंश",
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.40, w.Frame)
	assert.Equal(t, 0.25, w.Trigger)
	assert.Equal(t, 0.20, w.Anchor)
	assert.Equal(t, 0.15, w.Frequency)
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestScore_LegalEntryOnRelatedSpan(t *testing.T) {
	f := newFixture(t, []ports.EntryRow{legalShareEntry()})
	e := f.lex.Entry("X1")

	total, b := f.scorer.Score("divide property inheritance", e, Hints{})
	assert.GreaterOrEqual(t, total, 0.58)
	assert.InDelta(t, 1.0, b.TriggerHitRate, 1e-9)
	assert.InDelta(t, 0.35, b.FrequencyWeight, 1e-9)
	assert.Greater(t, b.FrameOverlap, 0.5)
	assert.Equal(t, 0.0, b.AnchorHitRate)
}

func TestScore_NoEvidenceScoresZero(t *testing.T) {
	r := ports.EntryRow{ID: "W1", Gloss: "water", SemanticFrame: []string{"water"}, ScriptForm: "जल"}
	f := newFixture(t, []ports.EntryRow{r})

	total, b := f.scorer.Score("divide", f.lex.Entry("W1"), Hints{})
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, b.FrameOverlap)
}

func TestScore_UnknownContextNoFrequency(t *testing.T) {
	r := legalShareEntry()
	r.SemanticFrame = []string{"qqq www"}
	r.Triggers = nil
	f := newFixture(t, []ports.EntryRow{r})

	// Span hits no category keywords, so frequency contributes nothing
	// even though the entry has a legal weight.
	_, b := f.scorer.Score("qqq www", f.lex.Entry("X1"), Hints{})
	assert.Equal(t, 0.0, b.FrequencyWeight)
	assert.InDelta(t, 1.0, b.FrameOverlap, 1e-9)
}

func TestScore_ExpectedTokenBoost(t *testing.T) {
	f := newFixture(t, []ports.EntryRow{legalShareEntry()})
	e := f.lex.Entry("X1")
	span := "divide property inheritance"

	plain, _ := f.scorer.Score(span, e, Hints{})
	boosted, b := f.scorer.Score(span, e, Hints{ExpectedTokens: []string{"X1"}})
	assert.InDelta(t, 0.10, b.Boosts, 1e-9)
	assert.InDelta(t, plain+0.10, boosted, 1e-9)
}

func TestScore_BoostsCapAtMax(t *testing.T) {
	r := legalShareEntry()
	r.Resolvers = []string{"property"}
	f := newFixture(t, []ports.EntryRow{r})

	// Expected token (0.10) + expected context (0.05) + resolver hit (0.05).
	_, b := f.scorer.Score("divide property inheritance", f.lex.Entry("X1"),
		Hints{ExpectedTokens: []string{"X1"}, ExpectedContext: "legal"})
	assert.InDelta(t, 0.20, b.Boosts, 1e-9)
}

func TestScore_TotalClampedToOne(t *testing.T) {
	r := ports.EntryRow{
		ID:             "M1",
		Gloss:          "max",
		SemanticFrame:  []string{"divide property"},
		Triggers:       []string{"divide", "property"},
		Anchors:        []string{"divide", "property"},
		Resolvers:      []string{"divide"},
		UsageFrequency: map[string]float64{"generic-action": 1.0},
		ScriptForm:     "म",
	}
	f := newFixture(t, []ports.EntryRow{r})

	total, _ := f.scorer.Score("divide property", f.lex.Entry("M1"),
		Hints{ExpectedTokens: []string{"M1"}, ExpectedContext: "generic-action"})
	assert.Equal(t, 1.0, total)
}
