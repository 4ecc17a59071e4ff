package history

import (
	"testing"

	"github.com/dshills/lined/internal/engine/lines"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                string
		original, changed   []string
		first, lastO, lastC int
		removed, inserted   []string
	}{
		{
			name:     "replace middle",
			original: []string{"a", "b", "c", "d"},
			changed:  []string{"a", "X", "Y", "d"},
			first:    1, lastO: 2, lastC: 2,
			removed:  []string{"b", "c"},
			inserted: []string{"X", "Y"},
		},
		{
			name:     "pure insertion",
			original: []string{"a", "b"},
			changed:  []string{"a", "x", "b"},
			first:    1, lastO: 0, lastC: 1,
			removed:  nil,
			inserted: []string{"x"},
		},
		{
			name:     "pure deletion",
			original: []string{"a", "b", "c"},
			changed:  []string{"a", "c"},
			first:    1, lastO: 1, lastC: 0,
			removed:  []string{"b"},
			inserted: nil,
		},
		{
			name:     "append at end",
			original: []string{"a"},
			changed:  []string{"a", "b", "c"},
			first:    1, lastO: 0, lastC: 2,
			removed:  nil,
			inserted: []string{"b", "c"},
		},
		{
			name:     "edit first line",
			original: []string{"a", "b"},
			changed:  []string{"A", "b"},
			first:    0, lastO: 0, lastC: 0,
			removed:  []string{"a"},
			inserted: []string{"A"},
		},
		{
			name:     "repeated lines",
			original: []string{"x", "x", "x"},
			changed:  []string{"x", "x"},
			first:    2, lastO: 2, lastC: 1,
			removed:  []string{"x"},
			inserted: nil,
		},
		{
			name:     "no change",
			original: []string{"a", "b"},
			changed:  []string{"a", "b"},
			first:    1, lastO: 1, lastC: 1,
			removed:  []string{"b"},
			inserted: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(lines.New(tt.original...), lines.New(tt.changed...))

			if d.First != tt.first || d.LastOriginal != tt.lastO || d.LastChanged != tt.lastC {
				t.Errorf("bounds = (%d, %d, %d), want (%d, %d, %d)",
					d.First, d.LastOriginal, d.LastChanged, tt.first, tt.lastO, tt.lastC)
			}
			if !d.Removed.Equal(lines.New(tt.removed...)) {
				t.Errorf("removed = %q, want %q", d.Removed.Lines(), tt.removed)
			}
			if !d.Inserted.Equal(lines.New(tt.inserted...)) {
				t.Errorf("inserted = %q, want %q", d.Inserted.Lines(), tt.inserted)
			}
		})
	}
}

func TestNoChangeDiffIsNoop(t *testing.T) {
	s := lines.New("abc\n", "def\n")
	d := Compute(s, s.Clone())

	if !d.IsNoop() {
		t.Errorf("expected content-equal regions, got -%q +%q", d.Removed.Lines(), d.Inserted.Lines())
	}
	if d.EditDistance() != 0 {
		t.Errorf("EditDistance() = %d, want 0", d.EditDistance())
	}
}

func TestApplyForwardAndReverse(t *testing.T) {
	original := lines.New("a\n", "b\n", "c\n", "d\n")
	changed := lines.New("a\n", "B\n", "new\n", "d\n", "e\n")
	d := Compute(original, changed)

	s := original.Clone()
	if err := d.ApplyForward(s); err != nil {
		t.Fatalf("ApplyForward failed: %v", err)
	}
	if !s.Equal(changed) {
		t.Errorf("forward = %q, want %q", s.Lines(), changed.Lines())
	}

	if err := d.ApplyReverse(s); err != nil {
		t.Fatalf("ApplyReverse failed: %v", err)
	}
	if !s.Equal(original) {
		t.Errorf("reverse = %q, want %q", s.Lines(), original.Lines())
	}
}

func TestDiffOwnsItsRegions(t *testing.T) {
	original := lines.New("a\n", "b\n")
	changed := lines.New("a\n", "x\n")
	d := Compute(original, changed)

	_ = changed.Replace(1, "mutated\n")
	_ = original.Replace(1, "mutated\n")

	if d.Inserted.At(0) != "x\n" || d.Removed.At(0) != "b\n" {
		t.Errorf("diff regions changed with their sources: -%q +%q", d.Removed.Lines(), d.Inserted.Lines())
	}
}

func TestEditDistance(t *testing.T) {
	d := Compute(lines.New("abc\n"), lines.New("abd\n", "e\n"))
	if got := d.EditDistance(); got != 3 {
		t.Errorf("EditDistance() = %d, want 3", got)
	}
}
