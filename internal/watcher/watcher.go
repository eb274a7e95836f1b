// Package watcher provides file system watching with debouncing for the
// project document.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the project file for changes and sends notifications.
type Watcher struct {
	fsWatcher   *fsnotify.Watcher
	projectPath string
	debounce    time.Duration
	onChange    chan struct{}
	done        chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	ProjectPath string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(projectPath string) Config {
	return Config{
		ProjectPath: projectPath,
		DebounceDur: 500 * time.Millisecond,
	}
}

// New creates a new project file watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher:   fsw,
		projectPath: cfg.ProjectPath,
		debounce:    cfg.DebounceDur,
		onChange:    make(chan struct{}, 1),
		done:        make(chan struct{}),
	}, nil
}

// Start begins watching the directory containing the project file.
// Returns a channel that receives a signal when the project changes.
func (w *Watcher) Start() (<-chan struct{}, error) {
	// Watch the directory, not the file: editors and our own atomic save
	// replace the file by rename, which drops a direct file watch.
	dir := filepath.Dir(w.projectPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				// Non-blocking send - drop if channel full
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Continue watching. Callers can wrap the watcher if they need
			// error visibility.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent checks if the event should trigger a reload.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	// Writes for in-place edits, create/rename for atomic replacement.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	return filepath.Base(event.Name) == filepath.Base(w.projectPath)
}
