package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, "transitions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fade:\n  duration: 0.25\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_IgnoresNonConfigFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestWatcher_CloseIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("configs/display.yaml"))
	assert.True(t, isConfigFile("a/b.YML"))
	assert.False(t, isConfigFile("readme.md"))
	assert.False(t, isConfigFile("display.yaml.bak"))
}
