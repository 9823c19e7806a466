package dispatcher

import (
	"fmt"
	"strings"

	"github.com/gustedit/gust/internal/buffer"
	"github.com/gustedit/gust/internal/linereader"
	"github.com/gustedit/gust/internal/storage"
)

// Load opens path into the context's buffer. A missing or unreadable file
// starts a fresh named buffer, matching how the editor creates new files.
func (c *Context) Load(path string) {
	path = linereader.ExpandHome(path)
	lines, err := storage.Load(path)
	if err != nil {
		c.Buf = buffer.New()
		c.Buf.Path = path
		c.Hist.Clear()
		c.Watch.Point("")
		c.warnf("(new) %s (%v)", path, err)
		return
	}
	c.Buf = buffer.New()
	c.Buf.Path = path
	c.Buf.Lines = lines
	c.Hist.Clear()
	c.Watch.Point(path)
	c.okf("opened %s", path)
}

func cmdOpen(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: open <path>")
		return nil
	}
	if ctx.Buf.Dirty {
		ctx.warnf("unsaved changes, save first")
		return nil
	}
	ctx.Load(arg)
	return nil
}

func cmdInfo(ctx *Context, _ string) error {
	star := ""
	if ctx.Buf.Dirty {
		star = " *"
	}
	fmt.Fprintf(ctx.Out, "file: %s%s\n", ctx.Buf.Name(), star)
	fmt.Fprintf(ctx.Out, "  lines: %d\n", ctx.Buf.LineCount())
	fmt.Fprintf(ctx.Out, "  chars: %d\n", ctx.Buf.CharCount())
	return nil
}

// save writes the buffer to the given path, or its own path when empty.
// On success the buffer adopts the target path and drops its dirty flag.
func (c *Context) save(pathArg string) {
	target := pathArg
	if target == "" {
		target = c.Buf.Path
	}
	if target == "" {
		c.warnf("save: no filename")
		return
	}
	target = linereader.ExpandHome(target)

	if err := storage.Save(target, c.Buf.Lines, c.Buf.Backup); err != nil {
		c.errf("save: %v", err)
		return
	}
	c.Buf.Path = target
	c.Buf.Dirty = false
	c.Watch.Point(target)
	c.okf("saved to %s", target)
}

func cmdWrite(ctx *Context, arg string) error {
	ctx.save(arg)
	return nil
}

func cmdWriteQuit(ctx *Context, _ string) error {
	ctx.save("")
	ctx.dimf("bye!")
	return ErrQuit
}

func cmdQuit(ctx *Context, _ string) error {
	if ctx.Buf.Dirty {
		answer := ""
		if ctx.ReadPlain != nil {
			answer, _ = ctx.ReadPlain(ctx.Pal.Warn + "Unsaved changes. Quit anyway? [y/N] " + resetIf(ctx))
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return nil
		}
	}
	ctx.dimf("bye!")
	return ErrQuit
}

func cmdRecover(ctx *Context, _ string) error {
	if ctx.Buf.Path == "" {
		ctx.warnf("recover: buffer has no filename")
		return nil
	}
	lines, err := storage.ReadRecovery(ctx.Buf.Path)
	if err != nil {
		ctx.warnf("recover: no recovery snapshot for %s", ctx.Buf.Name())
		return nil
	}
	ctx.Hist.Record(ctx.Buf)
	ctx.Buf.SetLines(lines)
	ctx.okf("recovered %d line(s) from snapshot", len(lines))
	return nil
}

func resetIf(c *Context) string {
	if c.Color {
		return "\x1b[0m"
	}
	return ""
}
