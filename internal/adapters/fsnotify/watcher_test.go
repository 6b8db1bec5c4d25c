package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}))

	// Give the event loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("change callback never fired")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	fired := make(chan struct{}, 1)
	require.NoError(t, w.Watch(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}))

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_WatchMissingDir(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()
	assert.Error(t, w.Watch("/nonexistent-dir-xyz/lexicon.csv", func() {}))
}
