package dispatcher

import (
	"fmt"
	"strconv"

	"github.com/gustedit/gust/internal/buffer"
)

func cmdPrint(ctx *Context, arg string) error {
	lo, hi, err := buffer.ParseRange(arg, ctx.Buf.LineCount())
	if err != nil {
		ctx.warnf("bad range")
		return nil
	}
	ctx.printRange(lo, hi)
	return nil
}

func cmdReadLineNum(ctx *Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ctx.warnf("usage: r <n>")
		return nil
	}
	ctx.printLine(n)
	return nil
}

func cmdGoto(ctx *Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ctx.warnf("usage: goto <n>")
		return nil
	}
	ctx.printLine(n)
	return nil
}

// readDotLines collects input lines until a lone "." or end of input.
func (c *Context) readDotLines() []string {
	var lines []string
	for {
		s, err := c.ReadPlain("> ")
		if err != nil || s == "." {
			return lines
		}
		lines = append(lines, s)
	}
}

func cmdAppend(ctx *Context, _ string) error {
	ctx.Hist.Record(ctx.Buf)
	fmt.Fprintln(ctx.Out, "enter text; '.' on a line ends")
	ctx.Buf.Append(ctx.readDotLines()...)
	ctx.Buf.Dirty = true
	return nil
}

func cmdInsert(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: insert <n>")
		return nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		ctx.warnf("usage: insert <n>")
		return nil
	}
	ctx.Hist.Record(ctx.Buf)
	fmt.Fprintln(ctx.Out, "enter text; '.' on a line ends")
	ctx.Buf.InsertAt(n-1, ctx.readDotLines())
	ctx.Buf.Dirty = true
	return nil
}

func cmdDelete(ctx *Context, arg string) error {
	if ctx.Buf.LineCount() == 0 {
		fmt.Fprintln(ctx.Out, "(empty)")
		return nil
	}
	if arg == "" {
		ctx.warnf("usage: delete <range>")
		return nil
	}
	lo, hi, err := buffer.ParseRange(arg, ctx.Buf.LineCount())
	if err != nil {
		ctx.warnf("bad range")
		return nil
	}
	ctx.Hist.Record(ctx.Buf)
	removed := ctx.Buf.DeleteRange(lo, hi)
	fmt.Fprintf(ctx.Out, "deleted %d line(s)\n", removed)
	return nil
}

func cmdUndo(ctx *Context, _ string) error {
	if err := ctx.Hist.Undo(ctx.Buf); err != nil {
		fmt.Fprintln(ctx.Out, "nothing to undo")
		return nil
	}
	fmt.Fprintln(ctx.Out, "undo")
	return nil
}

func cmdRedo(ctx *Context, _ string) error {
	if err := ctx.Hist.Redo(ctx.Buf); err != nil {
		fmt.Fprintln(ctx.Out, "nothing to redo")
		return nil
	}
	fmt.Fprintln(ctx.Out, "redo")
	return nil
}
