package dispatcher

import (
	"fmt"
	"strings"

	"github.com/gustedit/gust/internal/buffer"
	"github.com/gustedit/gust/internal/toolchain"
)

// cmdGofmt formats the whole buffer or a line range via gofmt. The splice
// is undo-guarded; a formatter failure leaves the buffer untouched.
func cmdGofmt(ctx *Context, arg string) error {
	lo, hi := 1, ctx.Buf.LineCount()
	ranged := arg != ""
	if ranged {
		var err error
		lo, hi, err = buffer.ParseRange(arg, ctx.Buf.LineCount())
		// A bare line number past the end parses as an inverted pair.
		if err != nil || lo > hi {
			ctx.errf("gofmt: bad range")
			return nil
		}
	}

	var in []string
	if ranged {
		in = append(in, ctx.Buf.Lines[lo-1:hi]...)
	} else {
		in = ctx.Buf.Lines
	}

	formatted, err := ctx.Runner.Format(in)
	if err != nil {
		ctx.errf("%v", err)
		return nil
	}

	ctx.Hist.Record(ctx.Buf)
	if ranged {
		ctx.Buf.SpliceRange(lo, hi, formatted)
	} else {
		ctx.Buf.SetLines(formatted)
	}
	ctx.okf("gofmt applied")
	return nil
}

// cmdGo runs a go subcommand with inherited stdio; bare `go` defaults to
// vet, the cheap sanity check.
func cmdGo(ctx *Context, arg string) error {
	args := strings.Fields(arg)
	if len(args) == 0 {
		args = []string{"vet"}
	}
	return runGo(ctx, args)
}

func cmdGoVet(ctx *Context, _ string) error   { return runGo(ctx, []string{"vet"}) }
func cmdGoBuild(ctx *Context, _ string) error { return runGo(ctx, []string{"build"}) }

// cmdGoRun writes the buffer to a scratch file and compiles and runs it,
// without touching the file on disk.
func cmdGoRun(ctx *Context, _ string) error {
	ctx.dimf("[go-run] compiling...")
	status, err := ctx.Runner.RunBuffer(ctx.Buf.Lines)
	if err != nil {
		ctx.errf("go-run: %v", err)
		return nil
	}
	if status != 0 {
		ctx.errf("go-run: exited with status %d", status)
	}
	return nil
}

func runGo(ctx *Context, args []string) error {
	ctx.dimf("[go %s]", strings.Join(args, " "))
	status, err := ctx.Runner.RunInherited("go", args...)
	if err != nil {
		ctx.errf("go: %v", err)
		return nil
	}
	ctx.dimf("go exited with status %d", status)
	return nil
}

func cmdGoSnip(ctx *Context, arg string) error {
	if arg == "" {
		ctx.warnf("usage: go-snip <main|pkg|struct Foo>")
		return nil
	}
	var snip []string
	switch {
	case arg == "main":
		snip = []string{
			"package main",
			"",
			`import "fmt"`,
			"",
			"func main() {",
			`	fmt.Println("hello from gust")`,
			"}",
		}
	case arg == "pkg":
		snip = []string{
			"package mypkg",
			"",
			"// Hi says hello.",
			"func Hi() string {",
			`	return "hi from mypkg"`,
			"}",
		}
	case strings.HasPrefix(arg, "struct "):
		name := strings.TrimSpace(strings.TrimPrefix(arg, "struct "))
		snip = []string{
			fmt.Sprintf("type %s struct {", name),
			"	ID uint32",
			"}",
			"",
			fmt.Sprintf("func New%s(id uint32) *%s {", name, name),
			fmt.Sprintf("	return &%s{ID: id}", name),
			"}",
		}
	default:
		ctx.warnf("go-snip: unknown snippet (try: main, pkg, struct Foo)")
		return nil
	}
	ctx.Hist.Record(ctx.Buf)
	ctx.Buf.Append(snip...)
	ctx.okf("snippet inserted")
	return nil
}

func cmdGoDetect(ctx *Context, _ string) error {
	if toolchain.LangOf(ctx.Buf) == "go" {
		ctx.okf("this buffer looks like Go")
	} else {
		ctx.warnf("this buffer does NOT look like Go")
	}
	return nil
}
