package dispatcher

import (
	"fmt"

	"github.com/gustedit/gust/internal/theme"
)

func cmdVersion(ctx *Context, _ string) error {
	v := "gust " + ctx.Version
	if ctx.Color {
		fmt.Fprintf(ctx.Out, "%s%s%s\n", ctx.Pal.Title, v, theme.Reset)
	} else {
		fmt.Fprintln(ctx.Out, v)
	}
	return nil
}

func cmdHelp(ctx *Context, _ string) error {
	fmt.Fprintln(ctx.Out, theme.Gradient("Commands (gust)", ctx.Pal, ctx.Color))
	rows := []struct{ cmd, desc string }{
		{"open <path>", "open file"},
		{"info", "buffer info"},
		{"w|write [path]", "save"},
		{"wq", "save & quit"},
		{"q|quit", "quit"},
		{"p|print [range]", "print lines"},
		{"r <n>", "print line"},
		{"a|append", "append lines"},
		{"i|insert <n>", "insert before n"},
		{"d|delete <range>", "delete lines"},
		{"find <text>", "search"},
		{"findi <text>", "search (icase)"},
		{"goto <n>", "jump to line"},
		{"number", "toggle line nums"},
		{"theme <name>", "set theme"},
		{"alias <from> <to...>", "make alias"},
		{"new", "new buffer"},
		{"bnext|bprev|lsb", "buffer mgmt"},
		{"pwd|cd <dir>", "filesystem"},
		{"ls [-l] [-a] [path]", "list dir"},
		{"undo|redo", "undo/redo"},
		{"recover", "load autosave snapshot"},
		{"clear", "clear screen"},
		{"version", "show version"},
		{"gofmt [range]", "format Go with gofmt"},
		{"go run/vet/build", "run the go tool"},
		{"go-snip main", "insert Go snippet"},
		{"go-detect", "is this Go?"},
		{"go-explain", "describe Go helpers"},
	}
	for _, row := range rows {
		fmt.Fprintf(ctx.Out, "  %s%-26s%s  %s\n", ctx.Pal.HelpCmd, row.cmd, theme.Reset, row.desc)
	}
	fmt.Fprintf(ctx.Out, "%sthemes:%s default, dark, neon, matrix, paper%s\n",
		ctx.Pal.HelpArg, ctx.Pal.HelpText, theme.Reset)
	return nil
}

func cmdGoExplain(ctx *Context, _ string) error {
	fmt.Fprintln(ctx.Out, "Go helpers in gust:")
	fmt.Fprintln(ctx.Out, "  version            -> show gust version")
	fmt.Fprintln(ctx.Out, "  gofmt [range]      -> run gofmt on buffer or range")
	fmt.Fprintln(ctx.Out, "  go run/vet/build   -> run the go tool in current dir")
	fmt.Fprintln(ctx.Out, "  go-snip main       -> insert Go main")
	fmt.Fprintln(ctx.Out, "  go-snip struct Foo -> insert struct")
	fmt.Fprintln(ctx.Out, "  go-run             -> quick scratch compile+run")
	return nil
}
