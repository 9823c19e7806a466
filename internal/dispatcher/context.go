// Package dispatcher routes submitted command lines to handlers operating
// on a shared execution context.
package dispatcher

import (
	"fmt"
	"io"
	"os"

	"github.com/gustedit/gust/internal/buffer"
	"github.com/gustedit/gust/internal/history"
	"github.com/gustedit/gust/internal/linereader"
	"github.com/gustedit/gust/internal/storage"
	"github.com/gustedit/gust/internal/term"
	"github.com/gustedit/gust/internal/theme"
	"github.com/gustedit/gust/internal/toolchain"
	"github.com/gustedit/gust/internal/watch"
)

// Context carries the editor state handlers operate on. Everything is
// owned by the single foreground loop; handlers never retain it.
type Context struct {
	Buf    *buffer.Buffer
	Others []*buffer.Buffer
	Hist   *history.Pair

	Theme theme.Theme
	Pal   theme.Palette
	Color bool

	Wrap     bool
	Truncate bool

	LastSearch string
	LastICase  bool

	Aliases map[string]string

	Out    io.Writer
	Reader *linereader.Reader
	Runner *toolchain.Runner
	Saver  *storage.Autosaver
	Watch  *watch.Watcher

	Version string

	// ReadPlain reads one buffered input line, used for dot-terminated
	// text entry and confirmations.
	ReadPlain func(prompt string) (string, error)

	// TermWidth reports the terminal column count; overridable in tests.
	TermWidth func() int
}

// NewContext assembles a context with working defaults around a fresh
// buffer.
func NewContext() *Context {
	reader := linereader.New()
	return &Context{
		Buf:       buffer.New(),
		Hist:      history.NewPair(history.DefaultLimit),
		Wrap:      true,
		Aliases:   make(map[string]string),
		Out:       os.Stdout,
		Reader:    reader,
		Runner:    toolchain.NewRunner(),
		Saver:     storage.NewAutosaver(0),
		ReadPlain: reader.ReadPlain,
		TermWidth: term.Width,
	}
}

// SetTheme installs a theme, its palette, and the matching input color on
// the line reader.
func (c *Context) SetTheme(t theme.Theme) {
	c.Theme = t
	c.Pal = theme.PaletteFor(t, c.Color)
	if c.Reader != nil {
		c.Reader.SetInputColor(c.Pal.Input)
	}
}

// Prompt renders the current prompt, star-prefixed when dirty.
func (c *Context) Prompt() string {
	return theme.PromptText(c.Buf.Dirty, c.Pal, c.Color)
}

// Status prints the one-line buffer summary shown before each prompt.
func (c *Context) Status() {
	wrap := "off"
	if c.Wrap {
		wrap = "on"
	}
	c.dimf("[%s] lines=%d chars=%d lang=%s theme=%s wrap:%s",
		c.Buf.Name(), c.Buf.LineCount(), c.Buf.CharCount(),
		toolchain.LangOf(c.Buf), c.Theme, wrap)
}

// width returns the terminal width for truncation.
func (c *Context) width() int {
	if c.TermWidth != nil {
		return c.TermWidth()
	}
	return 80
}

// printLine prints one 1-based line with the optional number gutter.
func (c *Context) printLine(i int) {
	if i == 0 || i > c.Buf.LineCount() {
		return
	}
	line := c.Buf.Lines[i-1]
	gw := 0
	if c.Buf.Number {
		gw = digitsFor(c.Buf.LineCount()) + 3
		fmt.Fprintf(c.Out, "%s%*d | %s", c.Pal.Gutter, gw-3, i, theme.Reset)
	}
	if c.Truncate {
		max := c.width()
		if max > gw {
			max -= gw
		}
		if max > 0 && len(line) > max {
			line = line[:max-1] + "…"
		}
	}
	fmt.Fprintln(c.Out, line)
}

// printRange prints the 1-based inclusive range [lo, hi], clamped.
func (c *Context) printRange(lo, hi int) {
	if c.Buf.LineCount() == 0 {
		fmt.Fprintln(c.Out, "(empty)")
		return
	}
	if lo < 1 {
		lo = 1
	}
	if hi > c.Buf.LineCount() {
		hi = c.Buf.LineCount()
	}
	for i := lo; i <= hi; i++ {
		c.printLine(i)
	}
}

func digitsFor(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

// Message helpers. Palette fields are empty with color off, so these are
// safe unconditionally.

func (c *Context) okf(format string, args ...any) {
	fmt.Fprintf(c.Out, c.Pal.OK+format+theme.Reset+"\n", args...)
}

func (c *Context) warnf(format string, args ...any) {
	fmt.Fprintf(c.Out, c.Pal.Warn+format+theme.Reset+"\n", args...)
}

func (c *Context) errf(format string, args ...any) {
	fmt.Fprintf(c.Out, c.Pal.Err+format+theme.Reset+"\n", args...)
}

func (c *Context) dimf(format string, args ...any) {
	fmt.Fprintf(c.Out, c.Pal.Dim+format+theme.Reset+"\n", args...)
}
