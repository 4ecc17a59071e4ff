package lines

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Head is passed to InsertAfter to insert before the first line.
const Head = -1

// ErrOutOfRange indicates a line index outside [0, Len).
var ErrOutOfRange = errors.New("line index out of range")

// Store is an ordered sequence of lines.
// The zero value is an empty store ready for use.
type Store struct {
	lines []string
}

// New creates a store holding the given lines.
func New(lines ...string) *Store {
	return &Store{lines: slices.Clone(lines)}
}

// Len returns the number of lines.
func (s *Store) Len() int {
	return len(s.lines)
}

// IsEmpty returns true if the store holds no lines.
func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, i, len(s.lines))
	}
	return nil
}

// Get returns the line at index i.
func (s *Store) Get(i int) (string, error) {
	if err := s.check(i); err != nil {
		return "", err
	}
	return s.lines[i], nil
}

// At returns the line at index i, or "" when i is out of range.
// It is meant for callers that already hold a valid index.
func (s *Store) At(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

// Replace overwrites the line at index i.
func (s *Store) Replace(i int, line string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.lines[i] = line
	return nil
}

// InsertAfter inserts line immediately after index after.
// Passing Head inserts at the front and always succeeds.
func (s *Store) InsertAfter(after int, line string) error {
	if after == Head {
		s.lines = slices.Insert(s.lines, 0, line)
		return nil
	}
	if err := s.check(after); err != nil {
		return err
	}
	s.lines = slices.Insert(s.lines, after+1, line)
	return nil
}

// InsertAt inserts lines so that the first of them ends up at index i.
// i may equal Len, which appends.
func (s *Store) InsertAt(i int, lines ...string) error {
	if i < 0 || i > len(s.lines) {
		return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, i, len(s.lines))
	}
	s.lines = slices.Insert(s.lines, i, lines...)
	return nil
}

// Append adds lines at the end of the store.
func (s *Store) Append(lines ...string) {
	s.lines = append(s.lines, lines...)
}

// Remove deletes the line at index i.
func (s *Store) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.lines = slices.Delete(s.lines, i, i+1)
	return nil
}

// RemoveRange deletes count lines starting at from.
// A zero count is a no-op as long as from is a valid insertion point.
func (s *Store) RemoveRange(from, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count == 0 {
		if from < 0 || from > len(s.lines) {
			return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, from, len(s.lines))
		}
		return nil
	}
	if err := s.check(from); err != nil {
		return err
	}
	if err := s.check(from + count - 1); err != nil {
		return err
	}
	s.lines = slices.Delete(s.lines, from, from+count)
	return nil
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return &Store{lines: slices.Clone(s.lines)}
}

// Slice returns a copy of the inclusive range [from, to].
// Both bounds are clamped to existing indices; an inverted range
// yields an empty store.
func (s *Store) Slice(from, to int) *Store {
	from = max(from, 0)
	to = min(to, len(s.lines)-1)
	if from > to {
		return &Store{}
	}
	return &Store{lines: slices.Clone(s.lines[from : to+1])}
}

// Lines returns a copy of all lines.
func (s *Store) Lines() []string {
	return slices.Clone(s.lines)
}

// Equal reports whether both stores hold the same lines in the same order.
func (s *Store) Equal(other *Store) bool {
	return slices.Equal(s.lines, other.lines)
}

// Size returns the total number of bytes across all lines.
func (s *Store) Size() int {
	n := 0
	for _, l := range s.lines {
		n += len(l)
	}
	return n
}

// String concatenates all lines verbatim.
func (s *Store) String() string {
	var sb strings.Builder
	sb.Grow(s.Size())
	for _, l := range s.lines {
		sb.WriteString(l)
	}
	return sb.String()
}
