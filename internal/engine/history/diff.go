package history

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/lined/internal/engine/lines"
)

// Diff is one contiguous changed region between two line stores.
//
// Removed held lines [First, LastOriginal] of the original store and
// Inserted holds lines [First, LastChanged] of the changed store. A Last
// index of First-1 means the corresponding side is empty. A Diff owns its
// regions and is never modified after Compute returns it.
type Diff struct {
	First        int
	LastOriginal int
	LastChanged  int
	Removed      *lines.Store
	Inserted     *lines.Store
}

// Compute returns the minimal contiguous region in which changed differs
// from original. Identical stores yield a one-line diff over the last
// line whose two sides are equal.
func Compute(original, changed *lines.Store) *Diff {
	no, nc := original.Len(), changed.Len()

	first := 0
	for first < no && first < nc && original.At(first) == changed.At(first) {
		first++
	}

	var lastO, lastC int
	if first == no && first == nc {
		first = nc - 1
		lastO, lastC = first, first
	} else {
		tail := 0
		for tail < no-first && tail < nc-first &&
			original.At(no-1-tail) == changed.At(nc-1-tail) {
			tail++
		}
		lastO = no - 1 - tail
		lastC = nc - 1 - tail
	}

	return &Diff{
		First:        first,
		LastOriginal: lastO,
		LastChanged:  lastC,
		Removed:      original.Slice(first, lastO),
		Inserted:     changed.Slice(first, lastC),
	}
}

// IsNoop reports whether both sides of the diff hold the same lines.
func (d *Diff) IsNoop() bool {
	return d.Removed.Equal(d.Inserted)
}

// ApplyForward turns the original content into the changed content.
func (d *Diff) ApplyForward(s *lines.Store) error {
	return replaceRegion(s, d.First, d.Removed.Len(), d.Inserted)
}

// ApplyReverse turns the changed content back into the original content.
func (d *Diff) ApplyReverse(s *lines.Store) error {
	return replaceRegion(s, d.First, d.Inserted.Len(), d.Removed)
}

func replaceRegion(s *lines.Store, at, count int, with *lines.Store) error {
	if err := s.RemoveRange(at, count); err != nil {
		return fmt.Errorf("removing %d lines at %d: %w", count, at, err)
	}
	if err := s.InsertAt(at, with.Lines()...); err != nil {
		return fmt.Errorf("inserting %d lines at %d: %w", with.Len(), at, err)
	}
	return nil
}

// EditDistance returns the character-level Levenshtein distance between
// the removed and inserted text.
func (d *Diff) EditDistance() int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(d.Removed.String(), d.Inserted.String(), false)
	return dmp.DiffLevenshtein(diffs)
}

// String returns a short description for logs.
func (d *Diff) String() string {
	return fmt.Sprintf("diff{first=%d -%d +%d lines, distance=%d}",
		d.First, d.Removed.Len(), d.Inserted.Len(), d.EditDistance())
}
