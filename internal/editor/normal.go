package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/lined/internal/engine/buffer"
	"github.com/dshills/lined/internal/engine/clipboard"
	"github.com/dshills/lined/internal/engine/history"
	"github.com/dshills/lined/internal/engine/search"
	"github.com/dshills/lined/internal/fileio"
	"github.com/dshills/lined/internal/window"
)

func (e *Editor) handleNormal(w *window.Window, k Key) error {
	e.status.ClearMessage()

	switch k.Code {
	case KeyRune:
	case KeyLeft:
		k = Rune('h')
	case KeyRight:
		k = Rune('l')
	case KeyDown:
		k = Rune('j')
	case KeyUp:
		k = Rune('k')
	case KeyEscape, KeyNone:
		return nil
	case KeyCtrlC:
		k = Rune('q')
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, k)
	}

	live := w.Buffer.Live()
	switch k.Rune {
	// Movement.
	case 'h':
		w.Cursor = buffer.PrevChar(live, w.Cursor)
	case 'l':
		w.Cursor = buffer.NextChar(live, w.Cursor)
	case 'j':
		w.Cursor = buffer.NextLine(live, w.Cursor)
	case 'k':
		w.Cursor = buffer.PrevLine(live, w.Cursor)
	case 'H':
		w.Cursor = buffer.LineStart(w.Cursor)
	case 'L':
		w.Cursor = buffer.LineEnd(live, w.Cursor)
	case 'U':
		w.Cursor = buffer.BufferStart(live, w.Cursor)
	case 'D':
		w.Cursor = buffer.BufferEnd(live, w.Cursor)
	case 'u':
		e.scroll(w, -e.halfScreen())
	case 'd':
		e.scroll(w, e.halfScreen())
	case 'g':
		e.startPrompt("goto line: ", e.gotoLine)

	// Editing.
	case 'i':
		e.mode = ModeInsert
	case 'r':
		e.mode = ModeReplace
	case 'x':
		return e.deleteChar(w)
	case 'X':
		return e.deleteMarked(w)
	case 'o':
		p, err := w.Buffer.OpenLine(w.Cursor)
		if err != nil {
			return err
		}
		w.Cursor = p

	// Mark and clipboard.
	case 'm':
		w.Mark = w.Cursor
		e.info("mark set")
	case 'c':
		return e.copyMarked(w)
	case 'p':
		return e.paste(w)

	// History.
	case '[':
		e.undo(w)
	case ']':
		e.redo(w)

	// Files.
	case 'w':
		return e.write(w)
	case 'W':
		e.startPrompt("write as: ", e.writeAs)

	// Search.
	case 'F':
		e.startPrompt("find: ", e.find)
	case 'f':
		return e.findAgain(w)

	// Windows.
	case 'n':
		next := e.windows.CycleNext()
		e.info(fmt.Sprintf("window %d/%d %s", e.windows.Index()+1, e.windows.Len(), next.Name()))

	case 'q':
		e.quit()

	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, k)
	}
	return nil
}

func (e *Editor) halfScreen() int {
	return max(e.opts.Height/2, 1)
}

// scroll moves the viewport and the cursor by n lines.
func (e *Editor) scroll(w *window.Window, n int) {
	last := w.Buffer.Len() - 1
	w.Top = min(max(w.Top+n, 0), last)
	w.Cursor = w.Buffer.Clamp(buffer.Position{
		Line:   min(max(w.Cursor.Line+n, 0), last),
		Offset: w.Cursor.Offset,
	})
}

func (e *Editor) gotoLine(w *window.Window, input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidLineSpec, input)
	}
	if n < 1 || n > w.Buffer.Len() {
		return fmt.Errorf("%w: %d", errLineOutOfRange, n)
	}
	w.Cursor = buffer.Position{Line: n - 1}
	return nil
}

func (e *Editor) deleteChar(w *window.Window) error {
	p, _, err := w.Buffer.DeleteChar(w.Cursor)
	if err != nil {
		return err
	}
	w.Cursor = p
	return nil
}

func (e *Editor) deleteMarked(w *window.Window) error {
	from, to := buffer.Ordered(w.Mark, w.Cursor)
	if err := w.Buffer.DeleteLines(from.Line, to.Line); err != nil {
		return err
	}
	n := to.Line - from.Line + 1
	w.Cursor = buffer.Position{Line: from.Line}
	w.Mark = w.Cursor
	e.info(fmt.Sprintf("deleted %d %s", n, plural(n, "line")))
	return nil
}

func (e *Editor) copyMarked(w *window.Window) error {
	err := e.clip.CopyRange(w.Buffer.Live(), w.Mark.Line, w.Cursor.Line)
	if errors.Is(err, clipboard.ErrInvalidRange) {
		return errors.New("invalid range: mark is below the cursor")
	}
	if err != nil {
		return err
	}
	e.info(fmt.Sprintf("copied %d %s", e.clip.Len(), plural(e.clip.Len(), "line")))
	return nil
}

func (e *Editor) paste(w *window.Window) error {
	if e.clip.Empty() {
		return errClipboardEmpty
	}
	n, err := e.clip.Paste(w.Buffer.Live(), w.Cursor.Line)
	if err != nil {
		return err
	}
	e.info(fmt.Sprintf("pasted %d %s", n, plural(n, "line")))
	return nil
}

func (e *Editor) undo(w *window.Window) {
	d, err := w.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		return
	}
	if err != nil {
		e.log.Error("undo failed: window=%s err=%v", w.ID, err)
		e.fail(err)
		return
	}
	e.log.Debug("undo window=%s %s", w.ID, d)
}

func (e *Editor) redo(w *window.Window) {
	d, err := w.Redo()
	if errors.Is(err, history.ErrNothingToRedo) {
		return
	}
	if err != nil {
		e.log.Error("redo failed: window=%s err=%v", w.ID, err)
		e.fail(err)
		return
	}
	e.log.Debug("redo window=%s %s", w.ID, d)
}

func (e *Editor) write(w *window.Window) error {
	if w.Path == "" {
		return errNoFileName
	}
	if !e.opts.ConfirmWrite {
		return e.writeFile(w)
	}
	e.startConfirm(fmt.Sprintf("write %s? (y/n) ", w.Path), e.writeFile)
	return nil
}

func (e *Editor) writeAs(w *window.Window, input string) error {
	path := strings.TrimSpace(input)
	if path == "" {
		return errNoFileName
	}
	write := func(w *window.Window) error {
		if err := e.writeFileTo(w, path); err != nil {
			return err
		}
		if w.Path == "" {
			w.Path = path
			w.MarkSaved()
		}
		return nil
	}
	if !e.opts.ConfirmWrite {
		return write(w)
	}
	e.startConfirm(fmt.Sprintf("write %s? (y/n) ", path), write)
	return nil
}

func (e *Editor) writeFile(w *window.Window) error {
	return e.writeFileTo(w, w.Path)
}

func (e *Editor) writeFileTo(w *window.Window, path string) error {
	if e.opts.OnWrite != nil {
		e.opts.OnWrite(path)
	}
	n, err := fileio.WriteFile(path, w.Buffer.Live())
	if err != nil {
		e.log.Error("write failed: window=%s path=%s err=%v", w.ID, path, err)
		return &FatalError{Op: "write", Path: path, Err: err}
	}
	if path == w.Path {
		w.MarkSaved()
	}
	e.log.Info("wrote %d bytes to %s", n, path)
	e.info(fmt.Sprintf("wrote %d bytes to %s", n, path))
	return nil
}

func (e *Editor) find(w *window.Window, input string) error {
	if input != "" {
		e.pattern = input
	}
	return e.findAgain(w)
}

func (e *Editor) findAgain(w *window.Window) error {
	if e.pattern == "" {
		return errNoPattern
	}
	p, err := search.FindNext(w.Buffer.Live(), w.Cursor.Line, e.pattern)
	if err != nil {
		return fmt.Errorf("%w: %s", err, e.pattern)
	}
	w.Cursor = p
	e.info("found " + e.pattern)
	return nil
}

func (e *Editor) quit() {
	question := "quit? (y/n) "
	for _, w := range e.windows.All() {
		if w.Modified() {
			question = "unsaved changes, quit? (y/n) "
			break
		}
	}
	e.startConfirm(question, func(*window.Window) error {
		return ErrQuit
	})
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
