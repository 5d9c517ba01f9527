package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MeshWatcher watches a mesh file and triggers a callback when it
// changes, debouncing rapid write bursts from editors and exporters
type MeshWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// NewMeshWatcher creates a watcher for the given file. callback runs
// after the file has been quiet for the debounce interval.
func NewMeshWatcher(path string, debounce time.Duration, callback func(string)) (*MeshWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(absPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &MeshWatcher{
		watcher:  watcher,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for file changes
func (mw *MeshWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-mw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					mw.handleChange()
				}

			case err, ok := <-mw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange resets the debounce timer for the watched file
func (mw *MeshWatcher) handleChange() {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if mw.timer != nil {
		mw.timer.Stop()
	}
	mw.timer = time.AfterFunc(mw.debounce, func() {
		mw.callback(mw.path)
	})
}

// Close stops the watcher
func (mw *MeshWatcher) Close() error {
	mw.mu.Lock()
	if mw.timer != nil {
		mw.timer.Stop()
	}
	mw.mu.Unlock()
	return mw.watcher.Close()
}
