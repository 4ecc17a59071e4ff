package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/lined/internal/config"
	"github.com/dshills/lined/internal/editor"
	"github.com/dshills/lined/internal/fileio"
	"github.com/dshills/lined/internal/renderer"
	"github.com/dshills/lined/internal/renderer/core"
	"github.com/dshills/lined/internal/watcher"
	"github.com/dshills/lined/internal/window"
)

// defaultTextHeight is used until the backend reports its size.
const defaultTextHeight = 24

// writeSuppression is how long the watcher ignores a file the editor
// has just written.
const writeSuppression = time.Second

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	if app.opts.Debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = filepath.Join(os.TempDir(), "lined-debug.log")
		}
	}
	app.config = cfg

	// 2. Logger
	if cfg.Log.File != "" {
		logger, f, err := OpenLogFile(cfg.Log.File, ParseLogLevel(cfg.Log.Level))
		if err != nil {
			return &InitError{Component: "log", Err: err}
		}
		app.logger = logger
		app.logFile = f
	}
	log := app.Logger().WithComponent("app")
	log.Info("starting: files=%v", app.opts.Files)

	// 3. Windows
	app.windows = window.NewSet()
	if err := app.openWindows(); err != nil {
		return err
	}

	// 4. Editor
	app.editor = editor.New(app.windows, editor.Options{
		TabWidth:     cfg.Editor.TabWidth,
		UndoLevels:   cfg.Editor.UndoLevels,
		ConfirmWrite: cfg.Editor.ConfirmWrite,
		Height:       defaultTextHeight,
		OnWrite:      app.beforeWrite,
		Logger:       app.Logger().WithComponent("editor"),
	})

	// 5. File watcher. Failure is not fatal.
	if cfg.Editor.WatchFiles {
		if err := app.startWatching(); err != nil {
			log.Warn("file watching disabled: %v", err)
		}
	}

	return nil
}

// openWindows creates one window per startup file, or a scratch window.
func (app *Application) openWindows() error {
	undo := app.config.Editor.UndoLevels
	log := app.Logger().WithComponent("app")

	for _, path := range app.opts.Files {
		if path == "-" {
			content, err := app.readStdin()
			if err != nil {
				return NewOperationError("read", "standard input", err)
			}
			w := app.windows.Create("", content, undo)
			log.Info("opened standard input: window=%s lines=%d", w.ID, w.Buffer.Len())
			continue
		}

		content, err := fileio.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			w := app.windows.Create(path, nil, undo)
			log.Info("new file %s: window=%s", path, w.ID)
		case err != nil:
			return NewOperationError("open", path, err)
		default:
			w := app.windows.Create(path, content, undo)
			log.Info("opened %s: window=%s lines=%d", path, w.ID, w.Buffer.Len())
		}
	}

	if app.windows.Len() == 0 {
		app.windows.Create("", nil, undo)
	}
	return nil
}

func (app *Application) readStdin() ([]string, error) {
	if app.opts.StdinIsTerminal != nil && app.opts.StdinIsTerminal() {
		return nil, ErrStdinIsTerminal
	}
	if app.opts.Stdin == nil {
		return nil, nil
	}
	return fileio.Read(app.opts.Stdin)
}

func (app *Application) startWatching() error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	app.watcher = w

	log := app.Logger().WithComponent("watcher")
	for _, win := range app.windows.All() {
		if win.Path == "" {
			continue
		}
		if err := w.Watch(win.Path); err != nil {
			log.Warn("cannot watch %s: %v", win.Path, err)
		}
	}
	return nil
}

// beforeWrite keeps the editor's own writes from being reported as
// external changes and starts watching newly named files.
func (app *Application) beforeWrite(path string) {
	if app.watcher == nil {
		return
	}
	app.watcher.Suppress(path, writeSuppression)
	if !app.watcher.IsWatching(path) {
		if err := app.watcher.Watch(path); err != nil {
			app.Logger().WithComponent("watcher").Warn("cannot watch %s: %v", path, err)
		}
	}
}

// rendererOptions builds renderer styles from the UI config.
func rendererOptions(cfg config.Config) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	opts.TabWidth = cfg.Editor.TabWidth

	text, err := styleFromConfig(cfg.UI.TextFg, cfg.UI.TextBg)
	if err != nil {
		return opts, err
	}
	opts.TextStyle = text

	status, err := styleFromConfig(cfg.UI.StatusFg, cfg.UI.StatusBg)
	if err != nil {
		return opts, err
	}
	if status.Foreground.IsDefault() && status.Background.IsDefault() {
		status = status.Reverse()
	}
	opts.StatusStyle = status

	return opts, nil
}

func styleFromConfig(fg, bg string) (core.Style, error) {
	style := core.DefaultStyle()
	if c, ok, err := config.ParseColor(fg); err != nil {
		return style, fmt.Errorf("foreground %q: %w", fg, err)
	} else if ok {
		style.Foreground = core.ColorFromColorful(c)
	}
	if c, ok, err := config.ParseColor(bg); err != nil {
		return style, fmt.Errorf("background %q: %w", bg, err)
	} else if ok {
		style.Background = core.ColorFromColorful(c)
	}
	return style, nil
}
