package window

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/lined/internal/engine/buffer"
)

func TestNew_EmptyContentHasOneLine(t *testing.T) {
	w := New("", nil, 0)
	require.Equal(t, 1, w.Buffer.Len())
	require.Equal(t, "[scratch]", w.Name())
	require.False(t, w.Modified())
}

func TestNewEmpty(t *testing.T) {
	w := NewEmpty(10)
	require.Equal(t, 1, w.Buffer.Len())
	require.Equal(t, "", w.Buffer.Line(0))
	require.Empty(t, w.Path)
	require.Equal(t, 10, w.History.MaxEntries())
	require.NotEqual(t, NewEmpty(10).ID, w.ID)
}

func TestName_UsesBaseName(t *testing.T) {
	w := New("/tmp/dir/notes.txt", []string{"x\n"}, 0)
	require.Equal(t, "notes.txt", w.Name())
}

func TestUndoRedo_MovesCursorToChange(t *testing.T) {
	w := New("", []string{"a\n", "b\n", "c\n"}, 0)
	require.NoError(t, w.Buffer.Live().Replace(2, "C\n"))
	_, err := w.Commit()
	require.NoError(t, err)
	require.True(t, w.Modified())

	w.Cursor = buffer.Position{Line: 0, Offset: 1}
	_, err = w.Undo()
	require.NoError(t, err)
	require.Equal(t, buffer.Position{Line: 2, Offset: 1}, w.Cursor)
	require.Equal(t, "a\nb\nc\n", w.Buffer.Text())
	require.False(t, w.Modified())

	_, err = w.Redo()
	require.NoError(t, err)
	require.Equal(t, "a\nb\nC\n", w.Buffer.Text())
}

func TestMarkSaved(t *testing.T) {
	w := New("f.txt", []string{"a\n"}, 0)
	require.NoError(t, w.Buffer.Live().Replace(0, "b\n"))
	_, err := w.Commit()
	require.NoError(t, err)

	w.MarkSaved()
	require.False(t, w.Modified())
}

func TestUndo_ClampsCursorAfterShrink(t *testing.T) {
	w := New("", []string{"a\n"}, 0)
	require.NoError(t, w.Buffer.Live().InsertAfter(0, "longer line\n"))
	_, err := w.Commit()
	require.NoError(t, err)

	w.Cursor = buffer.Position{Line: 1, Offset: 8}
	w.Mark = buffer.Position{Line: 1, Offset: 3}
	_, err = w.Undo()
	require.NoError(t, err)
	require.Equal(t, buffer.Position{Line: 0, Offset: 1}, w.Cursor)
	require.Equal(t, buffer.Position{Line: 0, Offset: 1}, w.Mark)
}

func TestScrollIntoView(t *testing.T) {
	content := make([]string, 50)
	for i := range content {
		content[i] = "line\n"
	}
	w := New("", content, 0)

	w.Cursor.Line = 30
	w.ScrollIntoView(10)
	require.Equal(t, 21, w.Top)

	w.Cursor.Line = 5
	w.ScrollIntoView(10)
	require.Equal(t, 5, w.Top)

	w.Cursor.Line = 10
	w.ScrollIntoView(10)
	require.Equal(t, 5, w.Top, "cursor already visible")
}

func TestSet_CycleNextWrapsAndKeepsState(t *testing.T) {
	s := NewSet()
	require.Nil(t, s.Current())

	a := s.Create("a.txt", []string{"a\n"}, 0)
	b := s.Create("b.txt", []string{"b\n", "bb\n"}, 0)
	require.Same(t, a, s.Current())

	a.Cursor = buffer.Position{Line: 0, Offset: 1}
	a.Top = 0
	b.Cursor = buffer.Position{Line: 1, Offset: 2}

	require.Same(t, b, s.CycleNext())
	require.Equal(t, 1, s.Index())
	require.Same(t, a, s.CycleNext())
	require.Equal(t, buffer.Position{Line: 0, Offset: 1}, a.Cursor)
	require.Equal(t, buffer.Position{Line: 1, Offset: 2}, b.Cursor)
	require.Equal(t, 2, s.Len())

	w, ok := s.ByPath("b.txt")
	require.True(t, ok)
	require.Same(t, b, w)
}

func TestSet_IDsAreUnique(t *testing.T) {
	s := NewSet()
	a := s.Create("", nil, 0)
	b := s.Create("", nil, 0)
	require.NotEqual(t, a.ID, b.ID)
}
