package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. Editors often save by writing a temp file and renaming it
// over the original, so the parent directory is watched and events are filtered by name.
type Watcher struct {
	w       *fsnotify.Watcher
	changed chan struct{}
}

// Watch starts watching path. The parent directory must exist; the file itself may not exist yet.
// onError, if non-nil, receives watcher errors from the background goroutine.
func Watch(path string, onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	w := &Watcher{w: fw, changed: make(chan struct{}, 1)}
	go w.loop(target, onError)
	return w, nil
}

func (w *Watcher) loop(target string, onError func(error)) {
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Changed returns a channel that receives a value after the file changes. Bursts of events collapse into one.
// Poll it once per frame with a non-blocking select.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
