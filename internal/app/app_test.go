package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/sutra/data"
	"github.com/corey/sutra/internal/adapters/bboltstore"
	"github.com/corey/sutra/internal/domain/match"
	"github.com/corey/sutra/internal/domain/score"
)

func loadTestApp(t *testing.T) *App {
	t.Helper()
	a, err := LoadEmbedded(match.DefaultConfig())
	require.NoError(t, err)
	return a
}

func TestLoadEmbedded(t *testing.T) {
	a := loadTestApp(t)
	assert.GreaterOrEqual(t, a.Lexicon().Len(), 20)
	// Reserved rows supply a-z, 0-9 and the space sentinel.
	assert.Len(t, a.Lexicon().CharMap(), 37)
	assert.Empty(t, a.Warnings())
}

func TestTokenize_PhraseCompression(t *testing.T) {
	a := loadTestApp(t)
	res := a.Tokenize("divide the property inheritance", score.Hints{})

	require.Len(t, res.Segments, 1)
	seg := res.Segments[0]
	assert.Equal(t, match.Dictionary, seg.Kind)
	assert.Equal(t, "saMpraBinna", seg.Token)
	assert.Equal(t, 3, res.OriginalWords) // "the" dropped before matching
	assert.Greater(t, seg.Score, 0.5)
}

func TestTokenize_Empty(t *testing.T) {
	a := loadTestApp(t)
	res := a.Tokenize("", score.Hints{})
	assert.Empty(t, res.Segments)
	assert.Equal(t, "", res.Output())
}

func TestDecode_KnownToken(t *testing.T) {
	a := loadTestApp(t)
	assert.Equal(t, "share", a.Decode("aMSaH"))
}

func TestEncodeDecode_DictionaryRoundTrip(t *testing.T) {
	a := loadTestApp(t)
	res := a.Tokenize("divide the property inheritance", score.Hints{})
	assert.Equal(t, "divided", a.Decode(res.Output()))
}

func TestEncodeDecode_FallbackRoundTrip(t *testing.T) {
	a := loadTestApp(t)
	res := a.Tokenize("xylophone77", score.Hints{})

	require.Len(t, res.Segments, 1)
	assert.Equal(t, match.Letter, res.Segments[0].Kind)
	assert.Equal(t, "xylophone77", a.Decode(res.Output()))
}

func TestMatches_ExpectedTokenHintBoosts(t *testing.T) {
	a := loadTestApp(t)
	span := "divide property fairly"

	find := func(cands []score.Candidate, id string) *score.Candidate {
		for i := range cands {
			if cands[i].ID == id {
				return &cands[i]
			}
		}
		return nil
	}

	plain := find(a.Matches(span, 10, score.Hints{}), "aMSaH")
	hinted := find(a.Matches(span, 10, score.Hints{ExpectedTokens: []string{"aMSaH"}}), "aMSaH")
	require.NotNil(t, plain)
	require.NotNil(t, hinted)
	assert.InDelta(t, plain.Total+0.10, hinted.Total, 1e-9)
}

func TestMatches_RankedDescending(t *testing.T) {
	a := loadTestApp(t)
	cands := a.Matches("divide property", 3, score.Hints{})
	require.NotEmpty(t, cands)
	assert.LessOrEqual(t, len(cands), 3)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].Total, cands[i].Total)
	}
}

func TestContext_LegalText(t *testing.T) {
	a := loadTestApp(t)
	det := a.Context("Property inheritance law and the estate")
	assert.Equal(t, "legal", det.Primary)
	assert.NotEmpty(t, det.Keywords["legal"])
}

func TestNew_SurfacesConfigWarnings(t *testing.T) {
	cfg := match.DefaultConfig()
	cfg.PhraseFloor = -1
	a, err := LoadEmbedded(cfg)
	require.NoError(t, err)
	assert.Len(t, a.Warnings(), 1)
	assert.Equal(t, 0.0, a.Config().PhraseFloor)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV("/nonexistent/lexicon.csv", match.DefaultConfig())
	assert.Error(t, err)
}

func writeEmbeddedCopy(t *testing.T) string {
	t.Helper()
	raw, err := data.FS.ReadFile(data.LexiconPath)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lexicon.csv")
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}

func TestLoadCached_PopulatesAndReusesSnapshot(t *testing.T) {
	csvPath := writeEmbeddedCopy(t)
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	cfg := match.DefaultConfig()

	first, err := LoadCached(csvPath, dbPath, cfg)
	require.NoError(t, err)

	fp, err := Fingerprint(csvPath)
	require.NoError(t, err)
	store, err := bboltstore.NewStore(dbPath)
	require.NoError(t, err)
	snap, err := store.LoadLexicon(fp)
	require.NoError(t, store.Close())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Len(t, snap.Entries, first.Lexicon().Len())

	second, err := LoadCached(csvPath, dbPath, cfg)
	require.NoError(t, err)
	assert.Equal(t, first.Lexicon().Len(), second.Lexicon().Len())
	assert.Equal(t,
		first.Tokenize("divide the property inheritance", score.Hints{}).Output(),
		second.Tokenize("divide the property inheritance", score.Hints{}).Output())
}

func TestCompile(t *testing.T) {
	csvPath := writeEmbeddedCopy(t)
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	fp, err := Compile(csvPath, dbPath, match.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, fp, 64)

	want, err := Fingerprint(csvPath)
	require.NoError(t, err)
	assert.Equal(t, want, fp)
}

func TestFingerprint_TracksContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.csv")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))
	fp1, err := Fingerprint(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	fp2, err := Fingerprint(path)
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp2)
}
