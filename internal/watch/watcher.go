// Package watch provides a debounced single-file change watcher.
package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches one file and invokes a callback when its content changes.
type Watcher struct {
	path          string
	onChange      func()
	debounceDelay time.Duration
	fsw           *fsnotify.Watcher

	mu      sync.Mutex
	lastSum uint64
	timer   *time.Timer
	done    chan struct{}
}

// New creates a watcher for path. onChange runs after the debounce delay
// whenever the file content actually changed.
func New(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize watcher: %w", err)
	}

	// Watch the parent directory: editors replace files on save, which
	// drops a watch held on the file itself.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()

		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:          path,
		onChange:      onChange,
		debounceDelay: 500 * time.Millisecond,
		fsw:           fsw,
		lastSum:       contentSum(path),
		done:          make(chan struct{}),
	}

	return w, nil
}

// SetDebounceDelay sets the quiet period before onChange fires.
func (w *Watcher) SetDebounceDelay(delay time.Duration) {
	w.debounceDelay = delay
}

// Start begins processing events in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.mu.Lock()
				// Reset timer if already set
				if w.timer != nil {
					w.timer.Stop()
				}
				// Debounce so editors that fire several events per save
				// trigger one reload.
				w.timer = time.AfterFunc(w.debounceDelay, w.fire)
				w.mu.Unlock()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			log.Printf("Warning: watch error: %v", err)

		case <-w.done:
			return
		}
	}
}

// fire re-hashes the file and invokes onChange when the content differs
// from the last observed state. Touches and metadata-only events are
// dropped here.
func (w *Watcher) fire() {
	sum := contentSum(w.path)

	w.mu.Lock()
	changed := sum != w.lastSum
	w.lastSum = sum
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
}

// Stop shuts the watcher down and cancels any pending callback.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

// contentSum hashes the file content; a missing or unreadable file hashes
// to zero.
func contentSum(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	return xxhash.Sum64(data)
}
