// Package buffer holds the editable text of one window together with the
// cursor model used to address it.
//
// A Buffer pairs the live line store with a snapshot: a deep copy of the
// content as of the last commit. Edits always go to the live store. The
// history package diffs live against snapshot to record an undo step and
// then advances the snapshot, so right after a commit both stores are equal.
//
// Position Types:
//
// A Position is a (line, byte offset) pair. Offsets count bytes, not runes,
// but every navigation function in this package keeps the offset on the
// lead byte of a UTF-8 sequence:
//
//	pos := buffer.Position{}
//	pos = buffer.NextChar(buf.Live(), pos) // skips a whole codepoint
//	pos = buffer.PrevChar(buf.Live(), pos) // back to where it started
//
// Sequence lengths come from the lead byte alone (see RuneLen); the bytes
// that follow are not validated.
package buffer
