// Package history provides the bounded undo/redo snapshot stacks guarding
// structural buffer mutations.
package history

import (
	"errors"

	"github.com/gustedit/gust/internal/buffer"
)

// DefaultLimit is the capacity of each stack.
const DefaultLimit = 200

// Errors reported by undo/redo.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Stack is a bounded LIFO of buffer snapshots. Pushing at capacity evicts
// the oldest (bottom) entry so the most recent history survives.
type Stack struct {
	entries []buffer.Snapshot
	limit   int
}

// NewStack creates a stack with the given capacity.
func NewStack(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Push adds a snapshot, evicting the oldest entry at capacity.
func (s *Stack) Push(snap buffer.Snapshot) {
	if len(s.entries) >= s.limit {
		excess := len(s.entries) - s.limit + 1
		s.entries = append(s.entries[:0], s.entries[excess:]...)
	}
	s.entries = append(s.entries, snap)
}

// Pop removes and returns the newest snapshot.
func (s *Stack) Pop() (buffer.Snapshot, bool) {
	if len(s.entries) == 0 {
		return buffer.Snapshot{}, false
	}
	snap := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return snap, true
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all snapshots.
func (s *Stack) Clear() {
	s.entries = nil
}
