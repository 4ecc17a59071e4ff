// Package app wires configuration, logging, windows, the editor, the
// renderer and the file watcher together and runs the event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/lined/internal/config"
	"github.com/dshills/lined/internal/editor"
	"github.com/dshills/lined/internal/renderer"
	"github.com/dshills/lined/internal/renderer/backend"
	"github.com/dshills/lined/internal/watcher"
	"github.com/dshills/lined/internal/window"
)

// Application is the central coordinator for all lined components.
type Application struct {
	mu sync.RWMutex

	config  config.Config
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	windows  *window.Set
	editor   *editor.Editor
	renderer *renderer.Renderer
	backend  backend.Backend
	watcher  *watcher.Watcher

	running   atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Files are files to open on startup. "-" reads standard input.
	Files []string

	// Debug enables debug logging, to a temp file when no log file is set.
	Debug bool

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogFile overrides the configured log file when set.
	LogFile string

	// Stdin is read for the "-" file. Nil means no input.
	Stdin io.Reader

	// StdinIsTerminal reports whether Stdin is an interactive terminal.
	StdinIsTerminal func() bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.release()
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Shutdown stops the event loop and releases resources. It is safe to
// call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
	})

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil && app.running.Load() {
		// Wake PollEvent so the loop sees done.
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}

	app.release()
}

// release closes the watcher and the log file.
func (app *Application) release() {
	app.closeOnce.Do(func() {
		errs := NewErrorList()
		if app.watcher != nil {
			errs.Add(app.watcher.Close())
		}

		s := app.metrics.Snapshot()
		app.Logger().Info("shutdown: uptime=%s keys=%d avg=%s max=%s renders=%d file_changes=%d",
			s.Uptime, s.Inputs, s.InputAverage, s.InputMax, s.Renders, s.FileChanges)
		if err := errs.AsError(); err != nil {
			app.Logger().Warn("shutdown: %v", err)
		}

		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() config.Config {
	return app.config
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Windows returns the window set.
func (app *Application) Windows() *window.Set {
	return app.windows
}

// Renderer returns the renderer, which exists while Run is active.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}
