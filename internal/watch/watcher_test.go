package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func newTestWatcher(t *testing.T, path string) (*Watcher, chan struct{}) {
	t.Helper()

	fired := make(chan struct{}, 8)

	w, err := New(path, func() { fired <- struct{}{} })
	require.NoError(t, err)
	t.Cleanup(w.Stop)

	w.SetDebounceDelay(50 * time.Millisecond)
	w.Start()

	return w, fired
}

func TestWatcher_FiresOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gocalc.yaml")
	writeFile(t, path, "verbose: false\n")

	_, fired := newTestWatcher(t, path)

	writeFile(t, path, "verbose: true\n")

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected onChange after content change")
	}
}

func TestWatcher_IgnoresRewriteWithSameContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gocalc.yaml")
	writeFile(t, path, "verbose: true\n")

	_, fired := newTestWatcher(t, path)

	writeFile(t, path, "verbose: true\n")

	select {
	case <-fired:
		t.Fatal("unexpected onChange for unchanged content")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gocalc.yaml")
	writeFile(t, path, "verbose: true\n")

	_, fired := newTestWatcher(t, path)

	writeFile(t, filepath.Join(dir, "other.yaml"), "unrelated\n")

	select {
	case <-fired:
		t.Fatal("unexpected onChange for sibling file")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_FiresOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gocalc.yaml")

	// The watched file does not exist yet.
	_, fired := newTestWatcher(t, path)

	writeFile(t, path, "verbose: true\n")

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected onChange after file creation")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "file.yaml"), func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestContentSum(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")

	writeFile(t, a, "same")
	writeFile(t, b, "same")
	assert.Equal(t, ContentSum(a), ContentSum(b))

	writeFile(t, b, "different")
	assert.NotEqual(t, ContentSum(a), ContentSum(b))

	assert.Zero(t, ContentSum(filepath.Join(dir, "missing")))
}
