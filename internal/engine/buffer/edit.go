package buffer

import (
	"fmt"
	"strings"
)

// splitAt breaks line at offset, terminating the head with a newline.
func splitAt(line string, offset int) (head, tail string) {
	return line[:offset] + "\n", line[offset:]
}

// InsertText inserts text at p and returns the position just after it.
// Each newline in text splits the current line.
func (b *Buffer) InsertText(p Position, text string) (Position, error) {
	if !b.Valid(p) {
		return p, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			line := b.live.At(p.Line)
			_ = b.live.Replace(p.Line, line[:p.Offset]+text+line[p.Offset:])
			p.Offset += len(text)
			break
		}
		line := b.live.At(p.Line)
		head, tail := splitAt(line[:p.Offset]+text[:i]+line[p.Offset:], p.Offset+i)
		_ = b.live.Replace(p.Line, head)
		_ = b.live.InsertAfter(p.Line, tail)
		p = Position{Line: p.Line + 1}
		text = text[i+1:]
	}
	return p, nil
}

// InsertRune inserts a single rune at p.
func (b *Buffer) InsertRune(p Position, r rune) (Position, error) {
	return b.InsertText(p, string(r))
}

// ReplaceChar overwrites the codepoint at p with r.
// A newline splits the line at p instead, and a tab is stored as a space.
// On a line's newline, an empty line or past the end the rune is
// inserted instead, so the newline stays last.
func (b *Buffer) ReplaceChar(p Position, r rune) (Position, error) {
	if !b.Valid(p) {
		return p, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	line := b.live.At(p.Line)
	switch r {
	case '\n':
		head, tail := splitAt(line, p.Offset)
		_ = b.live.Replace(p.Line, head)
		_ = b.live.InsertAfter(p.Line, tail)
		return Position{Line: p.Line + 1}, nil
	case '\t':
		r = ' '
	}
	end := p.Offset
	if end < len(line) && line[end] != '\n' {
		end = min(end+RuneLen(line[end]), len(line))
	}
	_ = b.live.Replace(p.Line, line[:p.Offset]+string(r)+line[end:])
	return p, nil
}

// DeleteChar removes the codepoint at p. On a line's newline it joins the
// next line onto this one. At the end of the buffer, including the final
// newline, it does nothing and reports false.
func (b *Buffer) DeleteChar(p Position) (Position, bool, error) {
	if !b.Valid(p) {
		return p, false, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	line := b.live.At(p.Line)
	if p.Offset >= len(line) {
		return p, false, nil
	}
	if line[p.Offset] == '\n' {
		if p.Line+1 >= b.live.Len() {
			return p, false, nil
		}
		next := b.live.At(p.Line + 1)
		_ = b.live.Replace(p.Line, line[:p.Offset]+next)
		_ = b.live.Remove(p.Line + 1)
		return p, true, nil
	}
	end := min(p.Offset+RuneLen(line[p.Offset]), len(line))
	_ = b.live.Replace(p.Line, line[:p.Offset]+line[end:])
	return p, true, nil
}

// Backspace removes the codepoint before p, joining with the previous
// line at offset 0. It reports false at the start of the buffer.
func (b *Buffer) Backspace(p Position) (Position, bool, error) {
	if !b.Valid(p) {
		return p, false, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	if p.Offset == 0 {
		if p.Line == 0 {
			return p, false, nil
		}
		prev := b.live.At(p.Line - 1)
		joinAt := len(strings.TrimSuffix(prev, "\n"))
		_ = b.live.Replace(p.Line-1, prev[:joinAt]+b.live.At(p.Line))
		_ = b.live.Remove(p.Line)
		return Position{Line: p.Line - 1, Offset: joinAt}, true, nil
	}
	q := PrevChar(b.live, p)
	line := b.live.At(p.Line)
	_ = b.live.Replace(p.Line, line[:q.Offset]+line[p.Offset:])
	return q, true, nil
}

// OpenLine inserts an empty line after p's line and returns its start.
// An unterminated line gets its newline first so the two stay separate.
func (b *Buffer) OpenLine(p Position) (Position, error) {
	if p.Line < 0 || p.Line >= b.live.Len() {
		return p, fmt.Errorf("%w: %s", ErrInvalidPosition, p)
	}
	line := b.live.At(p.Line)
	if !strings.HasSuffix(line, "\n") {
		_ = b.live.Replace(p.Line, line+"\n")
	}
	_ = b.live.InsertAfter(p.Line, "\n")
	return Position{Line: p.Line + 1}, nil
}

// DeleteLines removes lines from..to inclusive. Removing every line
// leaves a single empty line behind.
func (b *Buffer) DeleteLines(from, to int) error {
	if from > to {
		return fmt.Errorf("%w: lines %d..%d", ErrInvalidRange, from, to)
	}
	if from < 0 || to >= b.live.Len() {
		return fmt.Errorf("%w: lines %d..%d", ErrInvalidPosition, from, to)
	}
	if err := b.live.RemoveRange(from, to-from+1); err != nil {
		return err
	}
	if b.live.IsEmpty() {
		b.live.Append("")
	}
	return nil
}
