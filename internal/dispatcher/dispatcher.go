package dispatcher

import (
	"errors"
	"strings"
)

// ErrQuit signals that the editor should exit normally.
var ErrQuit = errors.New("quit requested")

// HandlerFunc executes one command. arg is the remainder of the line after
// the command word, already trimmed.
type HandlerFunc func(ctx *Context, arg string) error

// Dispatcher maps command names to handlers. Handlers report user-level
// problems themselves; a returned error is reserved for control flow
// (ErrQuit) and unexpected failures.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	names    []string
}

// New creates a dispatcher with the full command set registered.
func New() *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]HandlerFunc)}
	d.registerAll()
	return d
}

// register binds a handler under one or more names. The first name is
// canonical and appears in the completion candidate list along with every
// short form.
func (d *Dispatcher) register(h HandlerFunc, names ...string) {
	for _, n := range names {
		d.handlers[n] = h
		d.names = append(d.names, n)
	}
}

// Names returns every registered command name, used as the completion
// candidate set.
func (d *Dispatcher) Names() []string {
	return append([]string(nil), d.names...)
}

// Dispatch runs one submitted line: autosave and external-modification
// checks first, then alias expansion and the matched handler. Unknown
// commands are reported and ignored. Returns ErrQuit when the session
// should end.
func (d *Dispatcher) Dispatch(ctx *Context, line string) error {
	if path, ok := ctx.Saver.Check(ctx.Buf); ok {
		ctx.dimf("(autosaved to %s)", path)
	}
	if ctx.Watch.Modified() {
		ctx.warnf("%s changed on disk", ctx.Buf.Name())
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	line = strings.TrimPrefix(line, ":")

	line = expandAlias(ctx, line)

	cmd := line
	rest := ""
	if idx := strings.IndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' }); idx >= 0 {
		cmd, rest = line[:idx], strings.TrimSpace(line[idx:])
	}

	h, ok := d.handlers[strings.ToLower(cmd)]
	if !ok {
		ctx.warnf("unknown command — type 'help'")
		return nil
	}
	return h(ctx, rest)
}

// expandAlias substitutes the first word when it names an alias. Expansion
// is a single level; the alias body is not re-expanded.
func expandAlias(ctx *Context, line string) string {
	first, rest, _ := strings.Cut(line, " ")
	exp, ok := ctx.Aliases[strings.ToLower(first)]
	if !ok {
		return line
	}
	if rest == "" {
		return exp
	}
	return exp + " " + rest
}

// registerAll wires the full command table.
func (d *Dispatcher) registerAll() {
	d.register(cmdHelp, "help", "h", "?")
	d.register(cmdVersion, "version", "ver")
	d.register(cmdOpen, "open")
	d.register(cmdInfo, "info")
	d.register(cmdWrite, "write", "w")
	d.register(cmdWriteQuit, "wq")
	d.register(cmdQuit, "quit", "q")
	d.register(cmdPrint, "print", "p")
	d.register(cmdReadLineNum, "r")
	d.register(cmdGoto, "goto")
	d.register(cmdAppend, "append", "a")
	d.register(cmdInsert, "insert", "i")
	d.register(cmdDelete, "delete", "d")
	d.register(cmdFind, "find")
	d.register(cmdFindI, "findi")
	d.register(cmdNumber, "number")
	d.register(cmdTheme, "theme")
	d.register(cmdAlias, "alias")
	d.register(cmdNew, "new")
	d.register(cmdBufNext, "bnext")
	d.register(cmdBufPrev, "bprev")
	d.register(cmdBufList, "lsb")
	d.register(cmdPwd, "pwd")
	d.register(cmdCd, "cd")
	d.register(cmdLs, "ls")
	d.register(cmdClear, "clear")
	d.register(cmdUndo, "undo", "u")
	d.register(cmdRedo, "redo")
	d.register(cmdRecover, "recover")
	d.register(cmdGofmt, "gofmt")
	d.register(cmdGo, "go")
	d.register(cmdGoRun, "go-run")
	d.register(cmdGoVet, "go-vet")
	d.register(cmdGoBuild, "go-build")
	d.register(cmdGoSnip, "go-snip")
	d.register(cmdGoDetect, "go-detect")
	d.register(cmdGoExplain, "go-explain")
}
