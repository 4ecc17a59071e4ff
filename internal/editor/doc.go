// Package editor implements the modal command layer of lined.
//
// An Editor owns the window set, the shared clipboard and the last search
// pattern, and consumes one decoded Key at a time:
//
//	normal  ──i──▶ insert  ──Esc──▶ normal   (one undo step per insert session)
//	normal  ──r──▶ replace ──rune─▶ normal
//	normal  ──g F W──▶ prompt ──Enter/Esc──▶ normal
//	normal  ──w W q──▶ confirm ──y/n──▶ normal
//
// The current window is looked up once per key and handed to the command
// that runs. After every key the cursor is clamped, the viewport follows
// the cursor and the status line is rebuilt. Normal-mode edits are
// committed to the window's history as one step each.
//
// HandleKey only returns an error when the editor must stop: ErrQuit for
// a confirmed quit, or a *FatalError when a file cannot be written.
// Everything else is reported on the status line.
package editor
