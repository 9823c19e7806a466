// Package toolchain invokes external developer tools as child processes:
// gofmt over buffer content and go subcommands with inherited stdio. The
// editor blocks until the child exits; there is no cancellation or timeout.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gustedit/gust/internal/buffer"
	"github.com/gustedit/gust/internal/storage"
)

// Runner executes toolchain subprocesses. The zero value inherits the
// process's standard streams.
type Runner struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// NewRunner returns a Runner wired to the process's own streams.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// RunInherited runs a command with inherited standard streams and blocks
// until it exits. It returns the exit status; a missing executable or a
// spawn failure is an error.
func (r *Runner) RunInherited(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exit, ok := err.(*exec.ExitError); ok {
		return exit.ExitCode(), nil
	}
	return -1, err
}

// ScratchPath returns a unique file path under the system temp directory.
func ScratchPath(suffix string) string {
	return filepath.Join(os.TempDir(), "gust-"+uuid.NewString()+suffix)
}

// Format runs gofmt over the given lines and returns the formatted lines.
// On failure the error carries gofmt's diagnostics and the input is
// untouched.
func (r *Runner) Format(lines []string) ([]string, error) {
	scratch := ScratchPath(".go")
	if err := storage.Save(scratch, lines, false); err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	defer os.Remove(scratch)

	out, err := exec.Command("gofmt", "-w", scratch).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return nil, fmt.Errorf("gofmt: %w", err)
		}
		return nil, fmt.Errorf("gofmt: %s", msg)
	}
	return storage.Load(scratch)
}

// RunBuffer writes the lines to a scratch source file and executes it with
// `go run`, streams inherited. The scratch file is removed afterwards.
func (r *Runner) RunBuffer(lines []string) (int, error) {
	scratch := ScratchPath(".go")
	if err := storage.Save(scratch, lines, false); err != nil {
		return -1, err
	}
	defer os.Remove(scratch)
	return r.RunInherited("go", "run", scratch)
}

// DetectLang maps a file path to a coarse language name by extension.
func DetectLang(path string) string {
	if path == "" {
		return "plain"
	}
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "go":
		return "go"
	case "rs":
		return "rust"
	case "c", "cc", "cpp", "cxx", "h", "hpp":
		return "cpp"
	case "py":
		return "python"
	case "sh", "bash", "zsh":
		return "shell"
	case "js", "ts":
		return "js"
	case "html", "htm":
		return "html"
	case "css":
		return "css"
	case "json":
		return "json"
	default:
		return "plain"
	}
}

// LangOf is DetectLang over a buffer's path.
func LangOf(b *buffer.Buffer) string {
	return DetectLang(b.Path)
}
