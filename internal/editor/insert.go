package editor

import (
	"strings"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/window"
)

// handleInsert edits w until Escape. The whole session is committed as
// one undo step when it ends.
func (e *Editor) handleInsert(w *window.Window, k Key) {
	var (
		p   = w.Cursor
		err error
	)
	live := w.Buffer.Live()

	switch k.Code {
	case KeyEscape, KeyCtrlC:
		e.mode = ModeNormal
		if w.Buffer.Dirty() {
			e.commit(w)
		}
		return
	case KeyRune:
		p, err = w.Buffer.InsertRune(p, k.Rune)
	case KeyEnter:
		p, err = w.Buffer.InsertText(p, "\n")
	case KeyTab:
		p, err = w.Buffer.InsertText(p, strings.Repeat(" ", e.opts.TabWidth))
	case KeyBackspace:
		p, _, err = w.Buffer.Backspace(p)
	case KeyDelete:
		p, _, err = w.Buffer.DeleteChar(p)
	case KeyLeft:
		p = buffer.PrevChar(live, p)
	case KeyRight:
		p = buffer.NextChar(live, p)
	case KeyUp:
		p = buffer.PrevLine(live, p)
	case KeyDown:
		p = buffer.NextLine(live, p)
	}
	if err != nil {
		e.log.Error("insert failed: window=%s at=%s err=%v", w.ID, w.Cursor, err)
		e.fail(err)
		return
	}
	w.Cursor = p
}

// handleReplace overwrites the character under the cursor with the next
// typed character and returns to normal mode.
func (e *Editor) handleReplace(w *window.Window, k Key) {
	e.mode = ModeNormal

	var r rune
	switch k.Code {
	case KeyRune:
		r = k.Rune
	case KeyEnter:
		r = '\n'
	case KeyTab:
		r = '\t'
	default:
		return
	}
	p, err := w.Buffer.ReplaceChar(w.Cursor, r)
	if err != nil {
		e.fail(err)
		return
	}
	w.Cursor = p
}
