package buffer

import (
	"strings"

	"github.com/dshills/lined/internal/engine/lines"
)

// RuneLen returns the length of the UTF-8 sequence announced by lead.
// It follows the historical lead-byte table, which still admits the
// obsolete 5 and 6 byte forms. Continuation and invalid bytes count as 1.
func RuneLen(lead byte) int {
	switch {
	case lead >= 0xFC:
		return 6
	case lead >= 0xF8:
		return 5
	case lead >= 0xF0:
		return 4
	case lead >= 0xE0:
		return 3
	case lead >= 0xC0:
		return 2
	default:
		return 1
	}
}

// IsContinuation reports whether b is a UTF-8 continuation byte.
func IsContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

// lastIndex returns the last valid byte index of line, or 0 for an empty line.
func lastIndex(line string) int {
	return max(len(line)-1, 0)
}

// snapBack moves offset left until it sits on a lead byte.
func snapBack(line string, offset int) int {
	for offset > 0 && offset < len(line) && IsContinuation(line[offset]) {
		offset--
	}
	return offset
}

// NextChar moves one codepoint forward.
// Stepping off the end of a line lands at the start of the next one;
// on the last line the move does nothing.
func NextChar(s *lines.Store, p Position) Position {
	line := s.At(p.Line)
	next := p.Offset
	if next < len(line) {
		next += RuneLen(line[next])
	} else {
		next++
	}
	if next < len(line) {
		return Position{Line: p.Line, Offset: next}
	}
	if p.Line >= s.Len()-1 {
		return p
	}
	return Position{Line: p.Line + 1}
}

// PrevChar moves one codepoint backward.
// From offset 0 it goes to the last byte of the previous line;
// at the start of the buffer it does nothing.
func PrevChar(s *lines.Store, p Position) Position {
	if p.Offset <= 0 {
		if p.Line <= 0 {
			return Position{Line: 0}
		}
		prev := s.At(p.Line - 1)
		return Position{Line: p.Line - 1, Offset: snapBack(prev, lastIndex(prev))}
	}
	line := s.At(p.Line)
	off := min(p.Offset, len(line)) - 1
	for off > 0 && IsContinuation(line[off]) {
		off--
	}
	return Position{Line: p.Line, Offset: off}
}

// NextLine moves down one line, keeping the offset where the
// destination is long enough.
func NextLine(s *lines.Store, p Position) Position {
	if p.Line >= s.Len()-1 {
		return p
	}
	return verticalTo(s, p.Line+1, p.Offset)
}

// PrevLine moves up one line, keeping the offset where the
// destination is long enough.
func PrevLine(s *lines.Store, p Position) Position {
	if p.Line <= 0 {
		return p
	}
	return verticalTo(s, p.Line-1, p.Offset)
}

func verticalTo(s *lines.Store, line, offset int) Position {
	text := s.At(line)
	if offset > lastIndex(text) {
		offset = lastIndex(text)
	}
	return Position{Line: line, Offset: snapBack(text, offset)}
}

// LineStart returns the first position of p's line.
func LineStart(p Position) Position {
	return Position{Line: p.Line}
}

// LineEnd returns the last byte of p's line, which is its newline
// when the line has one.
func LineEnd(s *lines.Store, p Position) Position {
	text := s.At(p.Line)
	return Position{Line: p.Line, Offset: snapBack(text, lastIndex(text))}
}

// BufferStart returns a position on the first line, keeping the offset.
func BufferStart(s *lines.Store, p Position) Position {
	return Clamp(s, Position{Line: 0, Offset: p.Offset})
}

// BufferEnd returns a position on the last line, keeping the offset.
func BufferEnd(s *lines.Store, p Position) Position {
	return Clamp(s, Position{Line: s.Len() - 1, Offset: p.Offset})
}

// Clamp forces p into the store: the line into [0, Len-1] and the
// offset onto a lead byte no further than the line's newline. An
// unterminated line also admits len(line), the append position.
func Clamp(s *lines.Store, p Position) Position {
	if s.Len() == 0 {
		return Position{}
	}
	p.Line = min(max(p.Line, 0), s.Len()-1)
	text := s.At(p.Line)
	limit := len(text)
	if strings.HasSuffix(text, "\n") {
		limit--
	}
	p.Offset = min(max(p.Offset, 0), limit)
	p.Offset = snapBack(text, p.Offset)
	return p
}
