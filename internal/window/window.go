// Package window holds per-window editor state and the ordered set of
// windows the editor cycles through.
package window

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/engine/history"
)

// Window is one independently editable buffer with its own cursor,
// mark, viewport and undo history.
type Window struct {
	// ID identifies the window in logs.
	ID uuid.UUID

	// Path is the file the window reads from and writes to.
	// Empty for a scratch window.
	Path string

	Buffer  *buffer.Buffer
	History *history.History

	Cursor buffer.Position
	Mark   buffer.Position

	// Top is the first buffer line shown on screen.
	Top int

	// saved is the newest undo entry at the time of the last load or write.
	saved *history.Diff
}

// New creates a window over content. Empty content yields one empty line.
func New(path string, content []string, undoLevels int) *Window {
	return &Window{
		ID:      uuid.New(),
		Path:    path,
		Buffer:  buffer.New(content...),
		History: history.NewHistory(undoLevels),
	}
}

// NewEmpty creates a scratch window holding one empty line.
func NewEmpty(undoLevels int) *Window {
	return New("", nil, undoLevels)
}

// Name returns the display name of the window.
func (w *Window) Name() string {
	if w.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(w.Path)
}

// Commit records pending edits as one undo step.
func (w *Window) Commit() (*history.Diff, error) {
	return w.History.Commit(w.Buffer)
}

// Undo reverts the last commit and puts the cursor on the first line
// it touched.
func (w *Window) Undo() (*history.Diff, error) {
	d, err := w.History.Undo(w.Buffer)
	if err != nil {
		return nil, err
	}
	w.Cursor = buffer.Position{Line: d.First, Offset: w.Cursor.Offset}
	w.ClampCursor()
	return d, nil
}

// Redo reapplies the last undone commit and puts the cursor on the
// first line it touched.
func (w *Window) Redo() (*history.Diff, error) {
	d, err := w.History.Redo(w.Buffer)
	if err != nil {
		return nil, err
	}
	w.Cursor = buffer.Position{Line: d.First, Offset: w.Cursor.Offset}
	w.ClampCursor()
	return d, nil
}

// ClampCursor keeps cursor and mark inside the buffer.
func (w *Window) ClampCursor() {
	w.Cursor = w.Buffer.Clamp(w.Cursor)
	w.Mark = w.Buffer.Clamp(w.Mark)
}

// ScrollIntoView moves the viewport so the cursor line is one of the
// height visible lines.
func (w *Window) ScrollIntoView(height int) {
	height = max(height, 1)
	if w.Cursor.Line < w.Top {
		w.Top = w.Cursor.Line
	}
	if w.Cursor.Line >= w.Top+height {
		w.Top = w.Cursor.Line - height + 1
	}
	w.Top = min(max(w.Top, 0), max(w.Buffer.Len()-1, 0))
}

// Modified reports whether the window has edits since it was loaded
// or last written.
func (w *Window) Modified() bool {
	return w.History.Latest() != w.saved
}

// MarkSaved records the current history position as matching the file.
func (w *Window) MarkSaved() {
	w.saved = w.History.Latest()
}
