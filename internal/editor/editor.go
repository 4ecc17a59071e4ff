package editor

import (
	"errors"

	"github.com/dshills/lined/internal/engine/clipboard"
	"github.com/dshills/lined/internal/renderer"
	"github.com/dshills/lined/internal/renderer/statusline"
	"github.com/dshills/lined/internal/window"
)

// Logger is the logging surface the editor writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// debugLogger is implemented by loggers that can report whether debug
// messages are written at all.
type debugLogger interface {
	DebugEnabled() bool
}

type nopLogger struct{}

func (nopLogger) DebugEnabled() bool { return false }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Options configures an Editor.
type Options struct {
	// TabWidth is the number of spaces Tab inserts.
	TabWidth int
	// UndoLevels bounds the history of windows the editor creates.
	UndoLevels int
	// ConfirmWrite asks before w and W write a file.
	ConfirmWrite bool
	// Height is the number of text rows on screen.
	Height int
	// OnWrite, when set, is called with the path just before a file is
	// written.
	OnWrite func(path string)
	Logger  Logger
}

// DefaultOptions returns the default editor options.
func DefaultOptions() Options {
	return Options{
		TabWidth:     4,
		UndoLevels:   1000,
		ConfirmWrite: true,
		Height:       24,
	}
}

// Editor is the modal command interpreter.
type Editor struct {
	windows *window.Set
	clip    *clipboard.Clipboard
	opts    Options
	log     Logger

	mode    Mode
	status  *statusline.StatusLine
	pattern string

	prompt  prompt
	confirm confirm
}

// New creates an editor over windows. An empty set gets a scratch window.
func New(windows *window.Set, opts Options) *Editor {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	if opts.Height <= 0 {
		opts.Height = 1
	}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}
	if windows.Len() == 0 {
		windows.Add(window.NewEmpty(opts.UndoLevels))
	}
	e := &Editor{
		windows: windows,
		clip:    clipboard.New(),
		opts:    opts,
		log:     log,
		status:  statusline.New(),
	}
	e.refresh(windows.Current())
	return e
}

// Windows returns the editor's window set.
func (e *Editor) Windows() *window.Set {
	return e.windows
}

// Clipboard returns the clipboard shared by every window.
func (e *Editor) Clipboard() *clipboard.Clipboard {
	return e.clip
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Pattern returns the last search pattern.
func (e *Editor) Pattern() string {
	return e.pattern
}

// Status returns the current status line text.
func (e *Editor) Status() string {
	return e.status.String()
}

// Message returns the message part of the status line.
func (e *Editor) Message() string {
	msg, _ := e.status.Message()
	return msg
}

// SetHeight updates the number of text rows, e.g. after a resize.
func (e *Editor) SetHeight(height int) {
	e.opts.Height = max(height, 1)
	e.refresh(e.windows.Current())
}

// Notify shows msg on the status line without touching any window.
func (e *Editor) Notify(msg string) {
	e.status.SetMessage(msg, statusline.MessageInfo)
}

// HandleKey runs k against the current window. It returns ErrQuit when
// the user confirms quitting and a *FatalError when a write fails.
func (e *Editor) HandleKey(k Key) error {
	w := e.windows.Current()

	var err error
	switch e.mode {
	case ModeNormal:
		err = e.handleNormal(w, k)
	case ModeInsert:
		e.handleInsert(w, k)
	case ModeReplace:
		e.handleReplace(w, k)
	case ModePrompt:
		err = e.handlePrompt(w, k)
	case ModeConfirm:
		err = e.handleConfirm(w, k)
	}

	if e.mode != ModeInsert && w.Buffer.Dirty() {
		e.commit(w)
	}
	e.refresh(e.windows.Current())

	if err == nil || errors.Is(err, ErrQuit) || IsFatal(err) {
		return err
	}
	e.fail(err)
	return nil
}

// commit records the window's pending edits as one undo step.
func (e *Editor) commit(w *window.Window) {
	d, err := w.Commit()
	if err != nil {
		e.log.Error("commit failed: window=%s err=%v", w.ID, err)
		return
	}
	if dl, ok := e.log.(debugLogger); ok && !dl.DebugEnabled() {
		return
	}
	e.log.Debug("commit window=%s %s", w.ID, d)
}

// refresh clamps w's cursor, scrolls it into view and rebuilds the status.
func (e *Editor) refresh(w *window.Window) {
	w.ClampCursor()
	w.ScrollIntoView(e.opts.Height)
	e.status.SetPositions(w.Cursor, w.Mark)
	e.status.SetHistory(w.History.UndoCount(), w.History.RedoCount())
	e.status.SetFile(w.Name(), w.Modified())
	e.status.SetMode(e.mode.DisplayName())
}

func (e *Editor) info(msg string) {
	e.status.SetMessage(msg, statusline.MessageInfo)
}

func (e *Editor) fail(err error) {
	e.status.SetMessage(err.Error(), statusline.MessageError)
}

// Frame describes the current screen for the renderer.
func (e *Editor) Frame() renderer.Frame {
	w := e.windows.Current()
	f := renderer.Frame{
		Lines:  w.Buffer.Live(),
		Top:    w.Top,
		Cursor: w.Cursor,
		Status: e.status.String(),
	}
	switch e.mode {
	case ModePrompt:
		f.Prompt = e.prompt.label + string(e.prompt.input)
		f.Prompting = true
	case ModeConfirm:
		f.Prompt = e.confirm.question
		f.Prompting = true
	}
	return f
}
