package buffer

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.Len() != 1 {
		t.Errorf("expected 1 line, got %d", b.Len())
	}
	if b.Line(0) != "" {
		t.Errorf("expected empty line, got %q", b.Line(0))
	}
	if b.Dirty() {
		t.Error("new buffer should not be dirty")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := New("abc\n", "def\n")
	_ = b.Live().Replace(0, "xyz\n")

	if b.Snapshot().At(0) != "abc\n" {
		t.Errorf("snapshot followed live edit: %q", b.Snapshot().At(0))
	}
	if !b.Dirty() {
		t.Error("buffer should be dirty after edit")
	}

	b.Sync()
	if b.Dirty() {
		t.Error("buffer should be clean after Sync")
	}
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		content []string
		pos     Position
		text    string
		want    []string
		wantPos Position
	}{
		{"middle", []string{"abc\n"}, Position{0, 1}, "XY", []string{"aXYbc\n"}, Position{0, 3}},
		{"split", []string{"abc\n"}, Position{0, 1}, "\n", []string{"a\n", "bc\n"}, Position{1, 0}},
		{"multi line", []string{"abc\n"}, Position{0, 3}, "1\n2\n3", []string{"abc1\n", "2\n", "3\n"}, Position{2, 1}},
		{"empty buffer", nil, Position{0, 0}, "Z", []string{"Z"}, Position{0, 1}},
		{"multibyte", []string{"ab\n"}, Position{0, 1}, "é", []string{"aéb\n"}, Position{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.content...)
			got, err := b.InsertText(tt.pos, tt.text)
			if err != nil {
				t.Fatalf("InsertText failed: %v", err)
			}
			if got != tt.wantPos {
				t.Errorf("position = %s, want %s", got, tt.wantPos)
			}
			assertLines(t, b, tt.want...)
		})
	}
}

func TestInsertTextInvalidPosition(t *testing.T) {
	b := New("abc\n")
	if _, err := b.InsertText(Position{3, 0}, "x"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
	if _, err := b.InsertText(Position{0, 9}, "x"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestReplaceChar(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		r    rune
		want []string
	}{
		{"ascii", Position{0, 1}, 'X', []string{"aXc\n"}},
		{"tab becomes space", Position{0, 0}, '\t', []string{" bc\n"}},
		{"newline splits", Position{0, 1}, '\n', []string{"a\n", "bc\n"}},
		{"multibyte over ascii", Position{0, 2}, 'ö', []string{"abö\n"}},
		{"on the newline inserts", Position{0, 3}, 'X', []string{"abcX\n"}},
		{"newline on the newline", Position{0, 3}, '\n', []string{"abc\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("abc\n")
			if _, err := b.ReplaceChar(tt.pos, tt.r); err != nil {
				t.Fatalf("ReplaceChar failed: %v", err)
			}
			assertLines(t, b, tt.want...)
		})
	}
}

func TestReplaceCharOverMultibyte(t *testing.T) {
	b := New("aé€\n")
	if _, err := b.ReplaceChar(Position{0, 1}, 'x'); err != nil {
		t.Fatalf("ReplaceChar failed: %v", err)
	}
	assertLines(t, b, "ax€\n")
}

func TestDeleteChar(t *testing.T) {
	b := New("aé\n", "def\n")

	pos, ok, err := b.DeleteChar(Position{0, 1})
	if err != nil || !ok {
		t.Fatalf("DeleteChar failed: ok=%v err=%v", ok, err)
	}
	assertLines(t, b, "a\n", "def\n")

	// On the newline: join.
	_, ok, _ = b.DeleteChar(pos)
	if !ok {
		t.Fatal("expected join")
	}
	assertLines(t, b, "adef\n")
}

func TestDeleteCharAtBufferEnd(t *testing.T) {
	b := New("ab\n")

	if _, ok, _ := b.DeleteChar(Position{0, 2}); ok {
		t.Error("deleting the final newline should be a no-op")
	}
	assertLines(t, b, "ab\n")

	b = New("ab")
	if _, ok, _ := b.DeleteChar(Position{0, 2}); ok {
		t.Error("deleting past the end should be a no-op")
	}
}

func TestBackspace(t *testing.T) {
	b := New("ab\n", "cé\n")

	pos, ok, _ := b.Backspace(Position{1, 3})
	if !ok || pos != (Position{1, 1}) {
		t.Fatalf("Backspace = %s, %v", pos, ok)
	}
	assertLines(t, b, "ab\n", "c\n")

	pos, _, _ = b.Backspace(Position{1, 0})
	if pos != (Position{0, 2}) {
		t.Errorf("join position = %s", pos)
	}
	assertLines(t, b, "abc\n")

	if _, ok, _ := b.Backspace(Position{0, 0}); ok {
		t.Error("backspace at buffer start should be a no-op")
	}
}

func TestOpenLine(t *testing.T) {
	b := New("abc")

	pos, err := b.OpenLine(Position{0, 1})
	if err != nil {
		t.Fatalf("OpenLine failed: %v", err)
	}
	if pos != (Position{1, 0}) {
		t.Errorf("position = %s", pos)
	}
	assertLines(t, b, "abc\n", "\n")
}

func TestDeleteLines(t *testing.T) {
	b := New("0\n", "1\n", "2\n")

	if err := b.DeleteLines(2, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if err := b.DeleteLines(1, 2); err != nil {
		t.Fatalf("DeleteLines failed: %v", err)
	}
	assertLines(t, b, "0\n")

	if err := b.DeleteLines(0, 0); err != nil {
		t.Fatalf("DeleteLines failed: %v", err)
	}
	assertLines(t, b, "")
}

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := b.Live().Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines = %q, want %q", got, want)
		}
	}
}
