package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNilWatcherIsInert(t *testing.T) {
	var w *Watcher
	w.Point("/tmp/x")
	if w.Modified() {
		t.Error("nil watcher reported a modification")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestUnpointedWatcher(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()
	if w.Modified() {
		t.Error("unpointed watcher reported a modification")
	}
}

func TestModifiedAfterExternalWrite(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Point(path)

	if w.Modified() {
		t.Fatal("modification reported before any write")
	}

	if err := os.WriteFile(path, []byte("v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !w.Modified() {
		if time.Now().After(deadline) {
			t.Fatal("external write never observed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// The flag is edge-triggered: once drained it stays clear.
	time.Sleep(50 * time.Millisecond)
	if w.Modified() {
		t.Error("modification reported twice for one write")
	}
}

func TestPointDropsQueuedEvents(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Point(path)
	if err := os.WriteFile(path, []byte("v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Give the event time to arrive, then re-point: the queued event from
	// our own write must be discarded.
	time.Sleep(100 * time.Millisecond)
	w.Point(path)
	if w.Modified() {
		t.Error("re-pointing kept a stale event")
	}
}
