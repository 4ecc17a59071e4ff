package statusline

import (
	"testing"

	"github.com/dshills/lined/internal/engine/buffer"
)

func TestStatusLineString(t *testing.T) {
	s := New()
	s.SetMessage("copied 2 lines", MessageInfo)
	s.SetPositions(buffer.Position{Line: 4, Offset: 2}, buffer.Position{Line: 1})
	s.SetHistory(3, 1)
	s.SetFile("notes.txt", false)

	want := "[copied 2 lines] 5:3 mark 2:1 undo 3 redo 1 notes.txt"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatusLineModifiedAndMode(t *testing.T) {
	s := New()
	s.SetFile("[scratch]", true)
	s.SetMode("INSERT")

	want := "[] 1:1 mark 1:1 undo 0 redo 0 [scratch] [+] -- INSERT --"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatusLineClearMessage(t *testing.T) {
	s := New()
	s.SetMessage("pattern not found", MessageError)
	if _, typ := s.Message(); typ != MessageError {
		t.Errorf("message type = %v, want MessageError", typ)
	}
	s.ClearMessage()
	if msg, typ := s.Message(); msg != "" || typ != MessageNone {
		t.Errorf("after ClearMessage got %q/%v", msg, typ)
	}
}
