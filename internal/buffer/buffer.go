package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrInvalidRange   = errors.New("invalid range")
	ErrLineOutOfRange = errors.New("line out of range")
)

// Buffer is the in-memory representation of one file: an ordered line
// sequence plus editing state. Lines never contain line terminators; the
// loader splits on them and the saver re-adds exactly one newline per line.
//
// A Buffer has a single owner. Switching buffers moves the value wholesale
// into a side list; nothing shares mutable access to it.
type Buffer struct {
	Path  string
	Lines []string
	Dirty bool

	// Per-buffer display and save flags.
	Number    bool
	Backup    bool
	Highlight bool
}

// New creates an empty, unnamed buffer with default flags.
func New() *Buffer {
	return &Buffer{
		Number: true,
		Backup: true,
	}
}

// FromLines creates a buffer over the given lines. The slice is copied.
func FromLines(lines []string) *Buffer {
	b := New()
	b.Lines = append([]string(nil), lines...)
	return b
}

// Name returns the buffer's path, or "(unnamed)" for a fresh buffer.
func (b *Buffer) Name() string {
	if b.Path == "" {
		return "(unnamed)"
	}
	return b.Path
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// CharCount returns the byte size the buffer would occupy on disk:
// every line plus its newline.
func (b *Buffer) CharCount() int {
	n := 0
	for _, l := range b.Lines {
		n += len(l) + 1
	}
	return n
}

// SetLines replaces the whole line sequence and marks the buffer dirty.
// The given slice is owned by the buffer afterwards.
func (b *Buffer) SetLines(lines []string) {
	b.Lines = lines
	b.Dirty = true
}

// Append adds lines at the end and marks the buffer dirty.
func (b *Buffer) Append(lines ...string) {
	b.Lines = append(b.Lines, lines...)
	b.Dirty = true
}

// InsertAt inserts lines before the zero-based index idx, clamped to the
// line count, and marks the buffer dirty.
func (b *Buffer) InsertAt(idx int, lines []string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(b.Lines) {
		idx = len(b.Lines)
	}
	out := make([]string, 0, len(b.Lines)+len(lines))
	out = append(out, b.Lines[:idx]...)
	out = append(out, lines...)
	out = append(out, b.Lines[idx:]...)
	b.Lines = out
	b.Dirty = true
}

// DeleteRange removes the 1-based inclusive range [lo, hi] and returns the
// number of lines removed. The range must already be validated.
func (b *Buffer) DeleteRange(lo, hi int) int {
	if lo < 1 {
		lo = 1
	}
	if hi > len(b.Lines) {
		hi = len(b.Lines)
	}
	if lo > hi {
		return 0
	}
	removed := hi - lo + 1
	b.Lines = append(b.Lines[:lo-1], b.Lines[hi:]...)
	b.Dirty = true
	return removed
}

// SpliceRange replaces the 1-based inclusive range [lo, hi] with repl and
// marks the buffer dirty. Bounds are clamped; an inverted pair degenerates
// to an insertion after hi, never a panic.
func (b *Buffer) SpliceRange(lo, hi int, repl []string) {
	if lo < 1 {
		lo = 1
	}
	if hi < 0 {
		hi = 0
	}
	if hi > len(b.Lines) {
		hi = len(b.Lines)
	}
	if lo > hi+1 {
		lo = hi + 1
	}
	out := make([]string, 0, len(b.Lines)-(hi-lo+1)+len(repl))
	out = append(out, b.Lines[:lo-1]...)
	out = append(out, repl...)
	out = append(out, b.Lines[hi:]...)
	b.Lines = out
	b.Dirty = true
}

// SplitText splits raw file text into terminator-free lines. A trailing
// newline does not produce a final empty line; CRLF is treated as one
// terminator.
func SplitText(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
