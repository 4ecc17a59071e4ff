// Package clipboard holds the line register shared by every window.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/dshills/lined/internal/engine/lines"
)

// ErrInvalidRange indicates a copy range whose first line lies after its last.
var ErrInvalidRange = errors.New("invalid copy range")

// Clipboard is a process-wide sequence of lines.
// Its contents are always a private copy: copying from a buffer and
// pasting into one both duplicate the lines.
type Clipboard struct {
	store *lines.Store
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{store: &lines.Store{}}
}

// CopyRange replaces the clipboard with lines from..to of s.
// An inverted range leaves the clipboard untouched.
func (c *Clipboard) CopyRange(s *lines.Store, from, to int) error {
	if from > to {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}
	if from < 0 || to >= s.Len() {
		return fmt.Errorf("copy %d..%d: %w", from, to, lines.ErrOutOfRange)
	}
	c.store = s.Slice(from, to)
	return nil
}

// Paste inserts a copy of the clipboard right after line after
// (lines.Head pastes at the top) and returns how many lines it inserted.
func (c *Clipboard) Paste(s *lines.Store, after int) (int, error) {
	if c.store.IsEmpty() {
		return 0, nil
	}
	if after != lines.Head && (after < 0 || after >= s.Len()) {
		return 0, fmt.Errorf("paste after %d: %w", after, lines.ErrOutOfRange)
	}
	if err := s.InsertAt(after+1, c.store.Lines()...); err != nil {
		return 0, err
	}
	return c.store.Len(), nil
}

// Len returns the number of lines held.
func (c *Clipboard) Len() int {
	return c.store.Len()
}

// Empty returns true if nothing has been copied.
func (c *Clipboard) Empty() bool {
	return c.store.IsEmpty()
}

// Lines returns a copy of the clipboard contents.
func (c *Clipboard) Lines() []string {
	return c.store.Lines()
}
