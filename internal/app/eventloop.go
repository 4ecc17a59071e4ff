package app

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/dshills/lined/internal/editor"
	"github.com/dshills/lined/internal/renderer"
	"github.com/dshills/lined/internal/renderer/backend"
)

// Run initializes the backend and runs the event loop until the user
// quits, Shutdown is called, or a fatal error occurs. A normal quit
// returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	opts, err := rendererOptions(app.config)
	if err != nil {
		return &InitError{Component: "renderer", Err: err}
	}
	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	r := renderer.New(b, opts)
	app.mu.Lock()
	app.renderer = r
	app.mu.Unlock()
	app.editor.SetHeight(r.TextHeight())

	if app.watcher != nil {
		go app.forwardFileEvents(b)
	}

	return app.eventLoop(b, r)
}

// eventLoop draws, waits for one event and handles it.
func (app *Application) eventLoop(b backend.Backend, r *renderer.Renderer) error {
	log := app.Logger().WithComponent("app")

	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		start := time.Now()
		r.Render(app.editor.Frame())
		app.metrics.RecordRender(time.Since(start))

		ev := b.PollEvent()

		select {
		case <-app.done:
			return nil
		default:
		}

		err := app.handleBackendEvent(ev, r)
		if errors.Is(err, ErrQuit) {
			log.Info("quit")
			return nil
		}
		if err != nil {
			log.Error("fatal: %v", err)
			return err
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
func (app *Application) handleBackendEvent(ev backend.Event, r *renderer.Renderer) error {
	switch ev.Type {
	case backend.EventKey:
		k, ok := convertKey(ev)
		if !ok {
			return nil
		}
		start := time.Now()
		err := app.editor.HandleKey(k)
		app.metrics.RecordInput(time.Since(start))
		return err
	case backend.EventResize:
		app.editor.SetHeight(r.TextHeight())
	case backend.EventInterrupt:
		if ev.Payload != "" {
			app.editor.Notify(ev.Payload)
		}
	}
	return nil
}

// forwardFileEvents turns watcher events into status notices. It ends
// when the watcher is closed.
func (app *Application) forwardFileEvents(b backend.Backend) {
	log := app.Logger().WithComponent("watcher")
	events := app.watcher.Events()
	errs := app.watcher.Errors()

	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Info("%s: %s", ev.Op, ev.Path)
			app.metrics.RecordFileChange()
			b.PostEvent(backend.Event{
				Type:    backend.EventInterrupt,
				Payload: filepath.Base(ev.Path) + " changed on disk",
			})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// convertKey maps a backend key event to an editor key.
func convertKey(ev backend.Event) (editor.Key, bool) {
	switch ev.Key {
	case backend.KeyRune:
		return editor.Rune(ev.Rune), true
	case backend.KeyEscape:
		return editor.Special(editor.KeyEscape), true
	case backend.KeyEnter:
		return editor.Special(editor.KeyEnter), true
	case backend.KeyTab:
		return editor.Special(editor.KeyTab), true
	case backend.KeyBackspace:
		return editor.Special(editor.KeyBackspace), true
	case backend.KeyDelete:
		return editor.Special(editor.KeyDelete), true
	case backend.KeyUp:
		return editor.Special(editor.KeyUp), true
	case backend.KeyDown:
		return editor.Special(editor.KeyDown), true
	case backend.KeyLeft:
		return editor.Special(editor.KeyLeft), true
	case backend.KeyRight:
		return editor.Special(editor.KeyRight), true
	case backend.KeyCtrlC:
		return editor.Special(editor.KeyCtrlC), true
	default:
		return editor.Key{}, false
	}
}
