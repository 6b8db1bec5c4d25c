package score

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/sutra/internal/ports"
)

func TestFindBest_EmptyInputs(t *testing.T) {
	f := newFixture(t, []ports.EntryRow{legalShareEntry()})
	assert.Nil(t, f.finder.FindBest("", 5, Hints{}))
	assert.Nil(t, f.finder.FindBest("divide", 0, Hints{}))
}

func TestFindBest_PrefilterExcludesUnrelated(t *testing.T) {
	water := ports.EntryRow{ID: "W1", Gloss: "water", SemanticFrame: []string{"water"}, ScriptForm: "जल"}
	f := newFixture(t, []ports.EntryRow{legalShareEntry(), water})

	got := f.finder.FindBest("divide property inheritance", 5, Hints{})
	require.Len(t, got, 1)
	assert.Equal(t, "X1", got[0].ID)
}

func TestFindBest_NoCandidates(t *testing.T) {
	f := newFixture(t, []ports.EntryRow{legalShareEntry()})
	assert.Nil(t, f.finder.FindBest("zzz qqq", 5, Hints{}))
}

func TestFindBest_EqualScoresOrderByID(t *testing.T) {
	a := ports.EntryRow{ID: "b2", Gloss: "g", SemanticFrame: []string{"water"}, ScriptForm: "र"}
	b := ports.EntryRow{ID: "a1", Gloss: "g", SemanticFrame: []string{"water"}, ScriptForm: "र"}
	f := newFixture(t, []ports.EntryRow{a, b})

	got := f.finder.FindBest("water", 5, Hints{})
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
	assert.Equal(t, got[0].Total, got[1].Total)
}

func TestFindBest_TruncatesToTopN(t *testing.T) {
	rows := []ports.EntryRow{
		{ID: "e1", Gloss: "g", SemanticFrame: []string{"water"}, ScriptForm: "र"},
		{ID: "e2", Gloss: "g", SemanticFrame: []string{"water river"}, ScriptForm: "र"},
		{ID: "e3", Gloss: "g", SemanticFrame: []string{"river stream"}, ScriptForm: "र"},
		{ID: "e4", Gloss: "g", SemanticFrame: []string{"water stream"}, ScriptForm: "र"},
	}
	f := newFixture(t, rows)

	got := f.finder.FindBest("water", 2, Hints{})
	assert.Len(t, got, 2)
}

func TestFindBest_CarriesDetectedContext(t *testing.T) {
	f := newFixture(t, []ports.EntryRow{legalShareEntry()})
	got := f.finder.FindBest("divide property inheritance", 1, Hints{})
	require.Len(t, got, 1)
	assert.Equal(t, "legal", got[0].Context)
}

// TestFindBest_MatchesDirectScoring cross-checks the prefiltered ranking
// against scoring every entry directly.
func TestFindBest_MatchesDirectScoring(t *testing.T) {
	rows := []ports.EntryRow{
		legalShareEntry(),
		{ID: "A1", Gloss: "g", SemanticFrame: []string{"divide into portions"},
			Triggers: []string{"portion"}, ScriptForm: "र"},
		{ID: "B1", Gloss: "g", SemanticFrame: []string{"distribute wealth"},
			Triggers: []string{"wealth", "distribute"}, ScriptForm: "र"},
		{ID: "C1", Gloss: "g", SemanticFrame: []string{"water fire earth"}, ScriptForm: "र"},
	}
	f := newFixture(t, rows)
	span := "divide property inheritance"

	var want []Candidate
	for _, id := range f.lex.IDs() {
		total, bd := f.scorer.Score(span, f.lex.Entry(id), Hints{})
		if total <= 0 {
			continue
		}
		want = append(want, Candidate{ID: id, Total: total, Breakdown: bd})
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].Total > want[j].Total })

	got := f.finder.FindBest(span, len(rows), Hints{})
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.InDelta(t, want[i].Total, got[i].Total, 1e-9)
	}
}
