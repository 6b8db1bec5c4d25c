package bboltstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/sutra/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSnapshot() *ports.LexiconSnapshot {
	return &ports.LexiconSnapshot{
		Entries: []ports.EntryRow{{
			ID:             "aMSaH",
			Gloss:          "share; portion",
			SemanticFrame:  []string{"divide property fairly"},
			Triggers:       []string{"property", "inheritance"},
			UsageFrequency: map[string]float64{"legal": 0.35},
			ScriptForm:     "अंशः",
		}},
		CharMap: map[string]string{"a": "अ", " ": "ऽ"},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveLexicon("fp1", testSnapshot()))

	got, err := s.LoadLexicon("fp1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testSnapshot(), got)
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)
	got, err := s.LoadLexicon("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SeparateFingerprints(t *testing.T) {
	s := newTestStore(t)
	snapA := testSnapshot()
	snapB := testSnapshot()
	snapB.Entries[0].ID = "other"
	require.NoError(t, s.SaveLexicon("fpA", snapA))
	require.NoError(t, s.SaveLexicon("fpB", snapB))

	gotA, err := s.LoadLexicon("fpA")
	require.NoError(t, err)
	gotB, err := s.LoadLexicon("fpB")
	require.NoError(t, err)
	assert.Equal(t, "aMSaH", gotA.Entries[0].ID)
	assert.Equal(t, "other", gotB.Entries[0].ID)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveLexicon("fp1", testSnapshot()))
	require.NoError(t, s.DeleteLexicon("fp1"))

	got, err := s.LoadLexicon("fp1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteMissingIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.DeleteLexicon("never-saved"))
}

func TestStore_SaveNilSnapshot(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveLexicon("fp1", nil))
}

func TestStore_OverwriteSameFingerprint(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveLexicon("fp1", testSnapshot()))

	updated := testSnapshot()
	updated.Entries[0].Gloss = "revised"
	require.NoError(t, s.SaveLexicon("fp1", updated))

	got, err := s.LoadLexicon("fp1")
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Entries[0].Gloss)
}
