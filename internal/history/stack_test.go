package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gustedit/gust/internal/buffer"
)

func bufWith(lines ...string) *buffer.Buffer {
	b := buffer.New()
	b.SetLines(lines)
	b.Dirty = false
	return b
}

func TestStackEvictsOldest(t *testing.T) {
	s := NewStack(3)
	for i := 0; i < 5; i++ {
		b := bufWith(fmt.Sprintf("line %d", i))
		s.Push(b.Snapshot())
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	// Newest out first; the two oldest are gone.
	for _, want := range []string{"line 4", "line 3", "line 2"} {
		snap, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop failed, want %q", want)
		}
		if got := snap.Lines()[0]; got != want {
			t.Errorf("popped %q, want %q", got, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack succeeded")
	}
}

func TestPairUndoRedoRoundTrip(t *testing.T) {
	b := bufWith("one")
	p := NewPair(DefaultLimit)

	p.Record(b)
	b.Append("two")
	p.Record(b)
	b.Append("three")

	if err := p.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.LineCount(); got != 2 {
		t.Fatalf("after undo, LineCount = %d, want 2", got)
	}
	if err := p.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("after second undo, LineCount = %d, want 1", got)
	}
	if err := p.Undo(b); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Undo on empty stack = %v, want ErrNothingToUndo", err)
	}

	if err := p.Redo(b); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if err := p.Redo(b); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := b.LineCount(); got != 3 {
		t.Fatalf("after redo, LineCount = %d, want 3", got)
	}
	if err := p.Redo(b); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("Redo past the end = %v, want ErrNothingToRedo", err)
	}
}

func TestRecordClearsRedo(t *testing.T) {
	b := bufWith("one")
	p := NewPair(DefaultLimit)

	p.Record(b)
	b.Append("two")
	if err := p.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !p.CanRedo() {
		t.Fatal("expected a redo after undo")
	}

	p.Record(b)
	b.Append("elsewhere")
	if p.CanRedo() {
		t.Error("redo survived a new mutation")
	}
}

func TestUndoMarksDirty(t *testing.T) {
	b := bufWith("one")
	p := NewPair(DefaultLimit)
	p.Record(b)
	b.Append("two")
	b.Dirty = false

	if err := p.Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !b.Dirty {
		t.Error("undo did not mark the buffer dirty")
	}
}

func TestPairClear(t *testing.T) {
	b := bufWith("one")
	p := NewPair(DefaultLimit)
	p.Record(b)
	p.Clear()
	if p.CanUndo() || p.CanRedo() {
		t.Error("Clear left stack entries behind")
	}
}
