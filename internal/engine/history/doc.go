// Package history provides diff-based undo/redo for editor buffers.
//
// Instead of storing whole-buffer copies, every undo step is a Diff: the
// single contiguous run of lines that differs between a buffer's snapshot
// and its live content, with both the old and the new lines retained.
//
// # Diffs
//
// Compute trims the common prefix and the common suffix of two line
// stores. Whatever remains in the middle is the changed region:
//
//	before: a b c d      first = 1
//	after:  a X Y d      removed = [b c], inserted = [X Y]
//
// Inserting, deleting, joining, pasting and deleting a line range all
// produce one such region when compared with the pre-edit snapshot.
//
// # History Stack
//
// The History type manages the undo and redo stacks of one window:
//
//	h := NewHistory(1000) // Max 1000 undo entries
//
//	// After a batch of edits to buf.Live():
//	h.Commit(buf)
//
//	// Undo/redo
//	h.Undo(buf)
//	h.Redo(buf)
//
// Commit pushes the diff, advances the snapshot and clears the redo stack.
// Undo and redo replay the diff on both the live store and the snapshot, so
// the snapshot always matches live content between commands.
package history
