package dispatcher

import (
	"fmt"
	"strings"

	"github.com/gustedit/gust/internal/theme"
)

func cmdNumber(ctx *Context, _ string) error {
	ctx.Buf.Number = !ctx.Buf.Number
	state := "off"
	if ctx.Buf.Number {
		state = "on"
	}
	fmt.Fprintf(ctx.Out, "number: %s\n", state)
	return nil
}

func cmdTheme(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: theme <name>")
		return nil
	}
	ctx.SetTheme(theme.Parse(arg))
	ctx.okf("theme set")
	return nil
}

func cmdAlias(ctx *Context, arg string) error {
	from, to, _ := strings.Cut(arg, " ")
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		ctx.warnf("usage: alias <from> <to...>")
		return nil
	}
	ctx.Aliases[strings.ToLower(from)] = to
	fmt.Fprintf(ctx.Out, "alias: %s -> %s\n", from, to)
	return nil
}

func cmdClear(ctx *Context, _ string) error {
	// Scrollback, home, screen.
	fmt.Fprint(ctx.Out, "\x1b[3J\x1b[H\x1b[2J")
	return nil
}
