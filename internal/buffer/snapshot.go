package buffer

// Snapshot is an immutable copy of a buffer's line sequence at one instant.
// It is owned solely by whatever stack holds it; neither the buffer nor the
// caller can alias its backing storage.
type Snapshot struct {
	lines []string
}

// Snapshot captures the buffer's current line sequence.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{lines: append([]string(nil), b.Lines...)}
}

// Lines returns a fresh copy of the snapshot's line sequence.
func (s Snapshot) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Len returns the number of lines in the snapshot.
func (s Snapshot) Len() int {
	return len(s.lines)
}

// Restore installs the snapshot's content as the buffer's current lines and
// marks the buffer dirty.
func (s Snapshot) Restore(b *Buffer) {
	b.Lines = s.Lines()
	b.Dirty = true
}
