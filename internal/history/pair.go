package history

import "github.com/gustedit/gust/internal/buffer"

// Pair couples an undo stack and a redo stack over one buffer.
//
// The governing invariant lives here, not in callers: every structural
// mutation records a pre-image and clears redo, while undo and redo move
// snapshots between the stacks without ever clearing the other side.
type Pair struct {
	undo *Stack
	redo *Stack
}

// NewPair creates an undo/redo pair with the given per-stack capacity.
func NewPair(limit int) *Pair {
	return &Pair{
		undo: NewStack(limit),
		redo: NewStack(limit),
	}
}

// Record captures the buffer's pre-mutation content onto the undo stack and
// clears the redo stack. Call it immediately before any structural mutation
// other than undo/redo.
func (p *Pair) Record(b *buffer.Buffer) {
	p.undo.Push(b.Snapshot())
	p.redo.Clear()
}

// Undo pops the undo stack, pushes the current content onto redo, and
// installs the popped snapshot as current. Returns ErrNothingToUndo when
// the undo stack is empty; the buffer is untouched in that case.
func (p *Pair) Undo(b *buffer.Buffer) error {
	snap, ok := p.undo.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	p.redo.Push(b.Snapshot())
	snap.Restore(b)
	return nil
}

// Redo mirrors Undo, moving a snapshot from redo back to undo.
func (p *Pair) Redo(b *buffer.Buffer) error {
	snap, ok := p.redo.Pop()
	if !ok {
		return ErrNothingToRedo
	}
	p.undo.Push(b.Snapshot())
	snap.Restore(b)
	return nil
}

// CanUndo reports whether an undo is available.
func (p *Pair) CanUndo() bool { return p.undo.Len() > 0 }

// CanRedo reports whether a redo is available.
func (p *Pair) CanRedo() bool { return p.redo.Len() > 0 }

// Clear drops both stacks, e.g. after switching to another buffer.
func (p *Pair) Clear() {
	p.undo.Clear()
	p.redo.Clear()
}
