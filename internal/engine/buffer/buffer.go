package buffer

import (
	"errors"

	"github.com/dshills/lined/internal/engine/lines"
)

// Errors returned by buffer operations.
var (
	// ErrInvalidPosition indicates a position outside the buffer.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidRange indicates a range whose start lies after its end.
	ErrInvalidRange = errors.New("invalid range")
)

// Buffer is the content of one window: the live line store plus the
// snapshot taken at the last commit.
type Buffer struct {
	live     *lines.Store
	snapshot *lines.Store
}

// New creates a buffer from the given lines. An empty argument list
// produces a buffer with one empty line, so a buffer is never empty.
func New(content ...string) *Buffer {
	if len(content) == 0 {
		content = []string{""}
	}
	live := lines.New(content...)
	return &Buffer{live: live, snapshot: live.Clone()}
}

// NewFromStore creates a buffer that takes ownership of s.
func NewFromStore(s *lines.Store) *Buffer {
	if s == nil || s.IsEmpty() {
		return New()
	}
	return &Buffer{live: s, snapshot: s.Clone()}
}

// Live returns the store that edits are applied to.
func (b *Buffer) Live() *lines.Store {
	return b.live
}

// Snapshot returns the store as of the last commit.
// Only the history package should mutate it.
func (b *Buffer) Snapshot() *lines.Store {
	return b.snapshot
}

// Len returns the number of live lines.
func (b *Buffer) Len() int {
	return b.live.Len()
}

// Line returns the live line at index i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	return b.live.At(i)
}

// Text returns the whole live content.
func (b *Buffer) Text() string {
	return b.live.String()
}

// Dirty reports whether the live content differs from the snapshot.
func (b *Buffer) Dirty() bool {
	return !b.live.Equal(b.snapshot)
}

// Sync discards the snapshot and re-clones it from the live store.
func (b *Buffer) Sync() {
	b.snapshot = b.live.Clone()
}

// Reset replaces the live content and snapshot with content.
func (b *Buffer) Reset(content ...string) {
	if len(content) == 0 {
		content = []string{""}
	}
	b.live = lines.New(content...)
	b.snapshot = b.live.Clone()
}

// Clamp clamps p against the live store.
func (b *Buffer) Clamp(p Position) Position {
	return Clamp(b.live, p)
}

// Valid reports whether p addresses an existing line and an offset
// inside [0, len(line)].
func (b *Buffer) Valid(p Position) bool {
	if p.Line < 0 || p.Line >= b.live.Len() {
		return false
	}
	return p.Offset >= 0 && p.Offset <= len(b.live.At(p.Line))
}
