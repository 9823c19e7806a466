// Package app assembles the editor and runs the command loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gustedit/gust/internal/config"
	"github.com/gustedit/gust/internal/dispatcher"
	"github.com/gustedit/gust/internal/linereader"
	"github.com/gustedit/gust/internal/script"
	"github.com/gustedit/gust/internal/storage"
	"github.com/gustedit/gust/internal/term"
	"github.com/gustedit/gust/internal/theme"
	"github.com/gustedit/gust/internal/watch"
)

// Options configure application startup.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
	// Debug forces debug-level logging.
	Debug bool
	// Files are the paths given on the command line; the first is opened.
	Files []string
}

// App is the assembled editor.
type App struct {
	cfg    config.Config
	log    *Logger
	reader *linereader.Reader
	disp   *dispatcher.Dispatcher
	ctx    *dispatcher.Context
	wtch   *watch.Watcher
}

// Version is stamped via ldflags at build time.
var Version = "v0.1.0"

// New builds the application: configuration, init script, theme, line
// reader, watcher, and dispatcher, in that order.
func New(opts Options) (*App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	log := NewLogger(ParseLogLevel(cfg.LogLevel), os.Stderr)

	aliases := make(map[string]string)
	if initPath, err := config.InitScriptPath(); err == nil {
		err := script.RunFile(initPath, script.Bindings{
			Set: func(key, value string) error {
				return ApplySetting(&cfg, key, value)
			},
			Alias: func(from, to string) {
				aliases[from] = to
			},
		})
		if err != nil {
			log.Warn("init script failed: %v", err)
		}
	}

	wtch, err := watch.New()
	if err != nil {
		log.Warn("file watcher unavailable: %v", err)
		wtch = nil
	}

	reader := linereader.NewWithHistory(linereader.NewHistory(cfg.HistorySize))
	disp := dispatcher.New()

	ctx := dispatcher.NewContext()
	ctx.Color = term.IsTerminal(int(os.Stdout.Fd()))
	ctx.Reader = reader
	ctx.ReadPlain = reader.ReadPlain
	ctx.Saver = storage.NewAutosaver(time.Duration(cfg.AutosaveSec) * time.Second)
	ctx.Watch = wtch
	ctx.Wrap = cfg.Wrap
	ctx.Truncate = cfg.Truncate
	ctx.Aliases = aliases
	ctx.Version = Version
	ctx.Buf.Number = cfg.Number
	ctx.Buf.Backup = cfg.Backup
	ctx.SetTheme(theme.Parse(cfg.Theme))

	reader.SetCommands(disp.Names())

	a := &App{
		cfg:    cfg,
		log:    log,
		reader: reader,
		disp:   disp,
		ctx:    ctx,
		wtch:   wtch,
	}

	if len(opts.Files) > 0 {
		a.ctx.Load(opts.Files[0])
		a.ctx.Buf.Number = cfg.Number
		a.ctx.Buf.Backup = cfg.Backup
	}

	log.Debug("started with config %s, theme %s", cfgPath, cfg.Theme)
	return a, nil
}

// Run executes the command loop until quit or end of input.
func (a *App) Run() error {
	fmt.Fprintf(a.ctx.Out, "%sgust — editing %s (%d lines). type 'help'%s\n",
		a.ctx.Pal.Accent, a.ctx.Buf.Name(), a.ctx.Buf.LineCount(), theme.Reset)

	for {
		a.ctx.Status()
		line, err := a.reader.ReadLine(a.ctx.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if err := a.disp.Dispatch(a.ctx, line); err != nil {
			if errors.Is(err, dispatcher.ErrQuit) {
				return nil
			}
			a.log.Error("command failed: %v", err)
			fmt.Fprintf(a.ctx.Out, "error: %v\n", err)
		}
	}
}

// Shutdown releases resources. Safe to call on every exit path.
func (a *App) Shutdown() {
	if a == nil {
		return
	}
	if err := a.wtch.Close(); err != nil {
		a.log.Debug("closing watcher: %v", err)
	}
}
