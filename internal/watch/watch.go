// Package watch notices external modification of the open file. Events are
// drained non-blocking at the top of each dispatch cycle; the watcher
// goroutine inside fsnotify only feeds a channel and never touches editor
// state, keeping the single-owner model intact.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher tracks at most one file, the active buffer's source path.
// A nil *Watcher is valid and inert, so a failed construction simply turns
// the feature off.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
}

// New creates a watcher. Callers may use the nil result on error.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsw: fsw}, nil
}

// Point re-targets the watcher at path, dropping the previous target and
// any queued events (including those caused by our own save). Errors are
// swallowed: losing the watch degrades the feature, never the editor.
func (w *Watcher) Point(path string) {
	if w == nil || w.fsw == nil {
		return
	}
	if w.path != "" {
		_ = w.fsw.Remove(w.path)
		w.path = ""
	}
	w.drain()
	if path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if err := w.fsw.Add(abs); err != nil {
		return
	}
	w.path = abs
}

// Modified drains queued events and reports whether the watched file was
// written or replaced since the last call. Never blocks.
func (w *Watcher) Modified() bool {
	if w == nil || w.fsw == nil || w.path == "" {
		return false
	}
	modified := false
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return modified
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				modified = true
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return modified
			}
		default:
			return modified
		}
	}
}

// drain silently discards queued events and errors.
func (w *Watcher) drain() {
	if w == nil || w.fsw == nil {
		return
	}
	for {
		select {
		case <-w.fsw.Events:
		case <-w.fsw.Errors:
		default:
			return
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	if w == nil || w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}
