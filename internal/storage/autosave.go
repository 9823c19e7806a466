package storage

import (
	"time"

	"github.com/gustedit/gust/internal/buffer"
)

// Autosaver writes time-gated recovery snapshots of a dirty buffer. It is a
// side-channel safety net: snapshots never touch the original file, never
// clear the dirty flag, and never reset undo/redo history.
//
// Check is called opportunistically at the start of each command-dispatch
// cycle, so the real-world granularity is bounded by how often the user
// submits commands, not by wall-clock ticks.
type Autosaver struct {
	interval time.Duration
	last     time.Time

	now func() time.Time
}

// NewAutosaver creates an autosaver. A zero interval disables it.
func NewAutosaver(interval time.Duration) *Autosaver {
	return &Autosaver{
		interval: interval,
		last:     time.Now(),
		now:      time.Now,
	}
}

// Interval returns the configured autosave interval.
func (a *Autosaver) Interval() time.Duration {
	return a.interval
}

// Check writes a recovery snapshot when the interval is configured, the
// buffer is dirty, and enough time has passed since the last snapshot.
// Unnamed buffers reset the timer without writing (there is no stable path
// to hash). Returns the recovery path when a snapshot was written.
func (a *Autosaver) Check(b *buffer.Buffer) (string, bool) {
	if a.interval == 0 {
		return "", false
	}
	if !b.Dirty || a.now().Sub(a.last) < a.interval {
		return "", false
	}
	a.last = a.now()
	if b.Path == "" {
		return "", false
	}
	path, err := WriteRecovery(b.Path, b.Lines)
	if err != nil {
		return "", false
	}
	return path, true
}
