// Package linereader implements the raw-mode terminal line editor: it turns
// an unbuffered byte stream into edited, history-aware, completion-aware
// input lines.
//
// Cursor math is byte-indexed. Multi-byte encoded glyphs are inserted
// byte-wise and are not composed into single cursor units; this is a known
// limitation, not a defect.
package linereader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gustedit/gust/internal/term"
)

const (
	colorReset = "\x1b[0m"
	eraseLine  = "\x1b[2K"

	// Candidate grids print a fixed number of entries per row.
	gridColumns = 6
)

// inputFile is the subset of *os.File the reader needs from stdin.
type inputFile interface {
	io.Reader
	Fd() uintptr
}

// Reader reads edited input lines from a terminal. One Reader owns the
// input history; per-read edit state lives on the stack of ReadLine.
type Reader struct {
	hist       *History
	commands   []string
	inputColor string

	in  inputFile
	out io.Writer

	// buffered is the shared reader for all non-raw input: the fallback
	// path and plain prompts. Raw reads bypass it entirely, so no typed
	// bytes can be stranded in its buffer during an edit.
	buffered *bufio.Reader
}

// New creates a reader over stdin/stdout with the default history capacity.
func New() *Reader {
	return NewWithHistory(NewHistory(HistoryLimit))
}

// NewWithHistory creates a reader with a caller-supplied history.
func NewWithHistory(h *History) *Reader {
	return &Reader{
		hist: h,
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

// SetCommands installs the registered command names used for completion.
func (r *Reader) SetCommands(cmds []string) {
	r.commands = append([]string(nil), cmds...)
}

// SetInputColor sets the ANSI color prefix echoed before typed input.
func (r *Reader) SetInputColor(c string) {
	r.inputColor = c
}

// History returns the reader's input history.
func (r *Reader) History() *History {
	return r.hist
}

// ReadLine reads one edited line. On a terminal it switches stdin to raw
// mode for the duration of the read and restores the saved attributes on
// every exit path exactly once. Off-terminal, or when raw mode cannot be
// engaged, it degrades to buffered line input with no escape handling.
//
// End of input is reported as io.EOF with an empty line; the line is not
// appended to history in that case.
func (r *Reader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return r.readBuffered()
	}
	sess, err := term.OpenRaw(fd)
	if err != nil {
		return r.readBuffered()
	}
	defer sess.Restore()

	return r.editLoop(prompt)
}

// ReadPlain reads one buffered line after printing a prompt, without raw
// mode, escape handling, or history. Used for multi-line text entry and
// confirmations.
func (r *Reader) ReadPlain(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.readRawLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

// readBuffered is the degraded, line-buffered input path. The result still
// feeds the history.
func (r *Reader) readBuffered() (string, error) {
	line, err := r.readRawLine()
	if err != nil {
		return "", err
	}
	r.hist.Remember(line)
	return line, nil
}

func (r *Reader) readRawLine() (string, error) {
	if r.buffered == nil {
		r.buffered = bufio.NewReader(r.in)
	}
	line, err := r.buffered.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// editLoop runs the per-byte state machine over the reader's input stream.
// The prompt has already been printed and the terminal is in raw mode (or
// the stream is a test script); output uses \r\n line breaks accordingly.
func (r *Reader) editLoop(prompt string) (string, error) {
	var buf string
	cursor := 0
	histIdx := r.hist.Len()

	byteBuf := make([]byte, 1)
	for {
		n, err := r.in.Read(byteBuf)
		if err != nil || n == 0 {
			// End of stream: the cancellation path. The deferred
			// restore in ReadLine puts the terminal back.
			fmt.Fprint(r.out, "\r\n")
			if err == nil || err == io.EOF {
				return "", io.EOF
			}
			return "", err
		}

		switch b := byteBuf[0]; b {
		case '\r', '\n':
			fmt.Fprint(r.out, "\r\n")
			r.hist.Remember(buf)
			return buf, nil

		case 0x03: // Ctrl-C: interrupted read, line discarded
			fmt.Fprint(r.out, "^C\r\n")
			return "", nil

		case 0x7f, 0x08: // DEL / Backspace
			if cursor > 0 {
				buf = buf[:cursor-1] + buf[cursor:]
				cursor--
				r.redraw(prompt, buf, cursor)
			}

		case '\t':
			buf, cursor = r.completeInput(prompt, buf, cursor)

		case 0x1b:
			buf, cursor, histIdx = r.handleEscape(prompt, buf, cursor, histIdx)

		default:
			buf = buf[:cursor] + string(b) + buf[cursor:]
			cursor++
			r.redraw(prompt, buf, cursor)
		}
	}
}

// handleEscape consumes the remainder of an ESC sequence. Only CSI A/B/C/D
// are recognized; anything else is ignored with no state change.
func (r *Reader) handleEscape(prompt, buf string, cursor, histIdx int) (string, int, int) {
	b, ok := r.readByte()
	if !ok || b != '[' {
		return buf, cursor, histIdx
	}
	b, ok = r.readByte()
	if !ok {
		return buf, cursor, histIdx
	}

	switch b {
	case 'A': // up: previous history entry, clamped at the oldest
		if histIdx > 0 {
			histIdx--
			buf = r.hist.At(histIdx)
			cursor = len(buf)
			r.redraw(prompt, buf, cursor)
		}
	case 'B': // down: next entry, or clear past the newest
		if histIdx < r.hist.Len()-1 {
			histIdx++
			buf = r.hist.At(histIdx)
			cursor = len(buf)
		} else {
			histIdx = r.hist.Len()
			buf = ""
			cursor = 0
		}
		r.redraw(prompt, buf, cursor)
	case 'C':
		if cursor < len(buf) {
			cursor++
			r.redraw(prompt, buf, cursor)
		}
	case 'D':
		if cursor > 0 {
			cursor--
			r.redraw(prompt, buf, cursor)
		}
	}
	return buf, cursor, histIdx
}

func (r *Reader) readByte() (byte, bool) {
	one := make([]byte, 1)
	n, err := r.in.Read(one)
	if err != nil || n == 0 {
		return 0, false
	}
	return one[0], true
}

// completeInput runs TAB completion. Zero candidates is a no-op; one
// candidate replaces the last token and moves the cursor to the end;
// several are printed in a fixed grid below the prompt, after which the
// unmodified prompt and buffer are redrawn. No common-prefix extension.
func (r *Reader) completeInput(prompt, buf string, cursor int) (string, int) {
	opts := r.complete(buf)
	switch len(opts) {
	case 0:
		return buf, cursor
	case 1:
		buf = applyCompletion(buf, opts[0])
		cursor = len(buf)
		r.redraw(prompt, buf, cursor)
		return buf, cursor
	}

	fmt.Fprint(r.out, "\r\n")
	for i, o := range opts {
		fmt.Fprintf(r.out, "%s  ", o)
		if (i+1)%gridColumns == 0 {
			fmt.Fprint(r.out, "\r\n")
		}
	}
	if len(opts)%gridColumns != 0 {
		fmt.Fprint(r.out, "\r\n")
	}
	r.redraw(prompt, buf, cursor)
	return buf, cursor
}

// redraw repaints the whole line: erase, prompt, colored buffer, then move
// the terminal cursor left so it matches the logical one. Always a full
// repaint; per-keystroke cost is traded for correctness.
func (r *Reader) redraw(prompt, buf string, cursor int) {
	fmt.Fprintf(r.out, "\r%s%s%s%s%s", eraseLine, prompt, r.inputColor, buf, colorReset)
	if tail := len(buf) - cursor; tail > 0 {
		fmt.Fprintf(r.out, "\x1b[%dD", tail)
	}
}
