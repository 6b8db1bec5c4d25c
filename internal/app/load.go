package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/corey/sutra/data"
	"github.com/corey/sutra/internal/adapters/bboltstore"
	"github.com/corey/sutra/internal/adapters/lexiconcsv"
	"github.com/corey/sutra/internal/domain/match"
)

// LoadEmbedded builds an App from the compiled-in starter lexicon.
func LoadEmbedded(cfg match.Config) (*App, error) {
	f, err := data.FS.Open(data.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("open embedded lexicon: %w", err)
	}
	defer f.Close()

	rows, charMap, err := lexiconcsv.Load(f)
	if err != nil {
		return nil, err
	}
	return New(rows, charMap, cfg)
}

// LoadCSV builds an App from a lexicon CSV on disk.
func LoadCSV(path string, cfg match.Config) (*App, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	rows, charMap, err := lexiconcsv.Load(f)
	if err != nil {
		return nil, err
	}
	return New(rows, charMap, cfg)
}

// LoadCached builds an App from a lexicon CSV, going through the bbolt
// snapshot cache: if a snapshot exists for the file's current fingerprint it
// is used directly; otherwise the CSV is parsed and the snapshot written for
// next time. The store handle is closed before returning — the App holds
// everything in memory.
func LoadCached(csvPath, dbPath string, cfg match.Config) (*App, error) {
	fp, err := Fingerprint(csvPath)
	if err != nil {
		return nil, err
	}

	store, err := bboltstore.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	snap, err := store.LoadLexicon(fp)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		return New(snap.Entries, snap.CharMap, cfg)
	}

	a, err := LoadCSV(csvPath, cfg)
	if err != nil {
		return nil, err
	}
	if err := store.SaveLexicon(fp, a.Lexicon().Snapshot()); err != nil {
		return nil, fmt.Errorf("cache lexicon: %w", err)
	}
	return a, nil
}

// Compile parses a lexicon CSV and writes its snapshot into the bbolt cache,
// returning the fingerprint it was stored under.
func Compile(csvPath, dbPath string, cfg match.Config) (string, error) {
	a, err := LoadCSV(csvPath, cfg)
	if err != nil {
		return "", err
	}
	fp, err := Fingerprint(csvPath)
	if err != nil {
		return "", err
	}

	store, err := bboltstore.NewStore(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	if err := store.SaveLexicon(fp, a.Lexicon().Snapshot()); err != nil {
		return "", err
	}
	return fp, nil
}

// Fingerprint returns the hex SHA-256 of the file's contents. Any content
// change invalidates cached snapshots.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
