package dispatcher

import (
	"fmt"

	"github.com/gustedit/gust/internal/buffer"
	"github.com/gustedit/gust/internal/theme"
)

// Buffer switching moves whole Buffer values between the active slot and
// the side list; the undo/redo stacks belong to the active content and are
// dropped on a switch.

func cmdNew(ctx *Context, _ string) error {
	ctx.Others = append(ctx.Others, ctx.Buf)
	ctx.Buf = buffer.New()
	ctx.Hist.Clear()
	ctx.Watch.Point("")
	ctx.okf("(new buffer)")
	return nil
}

func cmdBufNext(ctx *Context, _ string) error {
	if len(ctx.Others) == 0 {
		fmt.Fprintln(ctx.Out, "(only one buffer)")
		return nil
	}
	ctx.Others = append([]*buffer.Buffer{ctx.Buf}, ctx.Others...)
	ctx.Buf = ctx.Others[len(ctx.Others)-1]
	ctx.Others = ctx.Others[:len(ctx.Others)-1]
	ctx.switchedTo("bnext")
	return nil
}

func cmdBufPrev(ctx *Context, _ string) error {
	if len(ctx.Others) == 0 {
		fmt.Fprintln(ctx.Out, "(only one buffer)")
		return nil
	}
	last := ctx.Others[len(ctx.Others)-1]
	ctx.Others = append([]*buffer.Buffer{ctx.Buf}, ctx.Others[:len(ctx.Others)-1]...)
	ctx.Buf = last
	ctx.switchedTo("bprev")
	return nil
}

func (c *Context) switchedTo(cmd string) {
	c.Hist.Clear()
	c.Watch.Point(c.Buf.Path)
	fmt.Fprintf(c.Out, "[%s] %s\n", cmd, c.Buf.Name())
}

func cmdBufList(ctx *Context, _ string) error {
	bold, reset := "", ""
	if ctx.Color {
		bold, reset = "\x1b[1m", theme.Reset
	}
	fmt.Fprintf(ctx.Out, "%s* 0 %s%s\n", bold, ctx.Buf.Name(), reset)
	for i, b := range ctx.Others {
		fmt.Fprintf(ctx.Out, "  %d %s\n", i+1, b.Name())
	}
	return nil
}
