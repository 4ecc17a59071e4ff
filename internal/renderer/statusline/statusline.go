// Package statusline formats the one-line status summary shown under the
// text area.
package statusline

import (
	"strconv"
	"strings"

	"github.com/dshills/lined/internal/engine/buffer"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine holds the state summarised on the status row.
type StatusLine struct {
	message     string
	messageType MessageType

	cursor buffer.Position
	mark   buffer.Position
	undo   int
	redo   int

	filename string
	modified bool
	mode     string
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetMessage sets the message describing the last command.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage removes the current message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// SetPositions records the cursor and mark.
func (s *StatusLine) SetPositions(cursor, mark buffer.Position) {
	s.cursor = cursor
	s.mark = mark
}

// SetHistory records the undo and redo depth.
func (s *StatusLine) SetHistory(undo, redo int) {
	s.undo = undo
	s.redo = redo
}

// SetFile records the window name and whether it has unsaved edits.
func (s *StatusLine) SetFile(name string, modified bool) {
	s.filename = name
	s.modified = modified
}

// SetMode records the mode label. The normal mode passes "".
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// String renders the status as
//
//	[message] line:col mark line:col undo n redo n name
//
// Lines and columns are 1-based; the column counts bytes.
func (s *StatusLine) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(s.message)
	b.WriteString("] ")
	writePosition(&b, s.cursor)
	b.WriteString(" mark ")
	writePosition(&b, s.mark)
	b.WriteString(" undo ")
	b.WriteString(strconv.Itoa(s.undo))
	b.WriteString(" redo ")
	b.WriteString(strconv.Itoa(s.redo))
	b.WriteByte(' ')
	b.WriteString(s.filename)
	if s.modified {
		b.WriteString(" [+]")
	}
	if s.mode != "" {
		b.WriteString(" -- ")
		b.WriteString(s.mode)
		b.WriteString(" --")
	}
	return b.String()
}

func writePosition(b *strings.Builder, p buffer.Position) {
	b.WriteString(strconv.Itoa(p.Line + 1))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(p.Offset + 1))
}
