// Package search finds literal substrings in a line store.
package search

import (
	"errors"
	"strings"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/engine/lines"
)

// Errors returned by FindNext.
var (
	ErrNotFound     = errors.New("pattern not found")
	ErrEmptyPattern = errors.New("empty search pattern")
)

// FindNext returns the first match of pattern on a line after fromLine,
// wrapping past the end of the store. fromLine itself is checked last,
// so a match on the starting line is only reported after a full wrap.
// Matching is byte-wise; pattern is never interpreted.
func FindNext(s *lines.Store, fromLine int, pattern string) (buffer.Position, error) {
	if pattern == "" {
		return buffer.Position{}, ErrEmptyPattern
	}
	n := s.Len()
	if n == 0 {
		return buffer.Position{}, ErrNotFound
	}
	start := fromLine + 1
	if start < 0 || start >= n {
		start = 0
	}
	for i := range n {
		line := (start + i) % n
		if off := strings.Index(s.At(line), pattern); off >= 0 {
			return buffer.Position{Line: line, Offset: off}, nil
		}
	}
	return buffer.Position{}, ErrNotFound
}
