// Package term wraps the process-wide raw terminal state behind a scoped
// session guard. Raw mode is exclusive state: enable and restore must occur
// in strict, non-overlapping pairs around each line read, and restore must
// run on every exit path or the terminal is left unusable after the process
// exits.
package term

import (
	"errors"
	"os"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a non-tty.
var ErrNotTerminal = errors.New("not a terminal")

// RawSession holds the saved terminal attributes for one raw-mode read.
// Construction switches the descriptor into raw mode; Restore puts the
// saved attributes back. Restore is idempotent so a deferred call and an
// explicit early call cannot double-restore.
type RawSession struct {
	fd       int
	saved    *xterm.State
	restored bool
}

// OpenRaw saves the current attributes of fd and switches it to raw mode.
func OpenRaw(fd int) (*RawSession, error) {
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	saved, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawSession{fd: fd, saved: saved}, nil
}

// Restore reinstates the attributes captured by OpenRaw. Only the first
// call has any effect.
func (s *RawSession) Restore() error {
	if s == nil || s.restored {
		return nil
	}
	s.restored = true
	return xterm.Restore(s.fd, s.saved)
}

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd int) bool {
	return xterm.IsTerminal(fd)
}

// Width returns the column count of the controlling terminal, or 80 when
// it cannot be determined.
func Width() int {
	w, _, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
