package history

import (
	"errors"
	"fmt"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/engine/lines"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// Stack is a LIFO sequence of diffs.
type Stack struct {
	diffs []*Diff
}

// Push adds d on top of the stack.
func (s *Stack) Push(d *Diff) {
	s.diffs = append(s.diffs, d)
}

// Pop removes and returns the top diff, or nil when empty.
func (s *Stack) Pop() *Diff {
	if len(s.diffs) == 0 {
		return nil
	}
	d := s.diffs[len(s.diffs)-1]
	s.diffs[len(s.diffs)-1] = nil
	s.diffs = s.diffs[:len(s.diffs)-1]
	return d
}

// Peek returns the top diff without removing it.
func (s *Stack) Peek() *Diff {
	if len(s.diffs) == 0 {
		return nil
	}
	return s.diffs[len(s.diffs)-1]
}

// Len returns the number of diffs on the stack.
func (s *Stack) Len() int {
	return len(s.diffs)
}

// Clear drops every diff.
func (s *Stack) Clear() {
	s.diffs = nil
}

// trim drops the oldest diffs until at most limit remain.
func (s *Stack) trim(limit int) {
	if excess := len(s.diffs) - limit; excess > 0 {
		s.diffs = append([]*Diff(nil), s.diffs[excess:]...)
	}
}

// History manages undo/redo state for one buffer.
type History struct {
	undo Stack
	redo Stack

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Commit records the difference between buf's snapshot and its live
// content as one undo step, brings the snapshot up to date and clears
// the redo stack.
func (h *History) Commit(buf *buffer.Buffer) (*Diff, error) {
	d := Compute(buf.Snapshot(), buf.Live())
	if err := d.ApplyForward(buf.Snapshot()); err != nil {
		// The snapshot no longer matches any diff baseline; start over.
		buf.Sync()
		return nil, fmt.Errorf("advancing snapshot: %w", err)
	}
	h.undo.Push(d)
	h.undo.trim(h.maxEntries)
	h.redo.Clear()
	return d, nil
}

// Undo reverts the most recent commit on both the live store and the
// snapshot and moves it onto the redo stack.
func (h *History) Undo(buf *buffer.Buffer) (*Diff, error) {
	d := h.undo.Pop()
	if d == nil {
		return nil, ErrNothingToUndo
	}
	if err := applyBoth(buf, d.ApplyReverse); err != nil {
		h.undo.Push(d)
		return nil, err
	}
	h.redo.Push(d)
	return d, nil
}

// Redo reapplies the most recently undone commit and moves it back onto
// the undo stack.
func (h *History) Redo(buf *buffer.Buffer) (*Diff, error) {
	d := h.redo.Pop()
	if d == nil {
		return nil, ErrNothingToRedo
	}
	if err := applyBoth(buf, d.ApplyForward); err != nil {
		h.redo.Push(d)
		return nil, err
	}
	h.undo.Push(d)
	return d, nil
}

func applyBoth(buf *buffer.Buffer, apply func(*lines.Store) error) error {
	if err := apply(buf.Live()); err != nil {
		return err
	}
	if err := apply(buf.Snapshot()); err != nil {
		buf.Sync()
		return err
	}
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.undo.Len() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.redo.Len() > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return h.undo.Len()
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return h.redo.Len()
}

// Latest returns the most recent undo entry, or nil when there is none.
func (h *History) Latest() *Diff {
	return h.undo.Peek()
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
