// Package lines provides the line store used by every editor buffer.
//
// A Store is an ordered, index-addressed sequence of lines. Each line keeps
// its trailing newline, except possibly the final line of a file, so that
// concatenating the store reproduces the original bytes exactly:
//
//	s := lines.New("alpha\n", "beta\n")
//	_ = s.InsertAfter(0, "inserted\n") // alpha, inserted, beta
//	_ = s.Remove(2)                    // alpha, inserted
//	text := s.String()                 // "alpha\ninserted\n"
//
// Lines are Go strings. They are immutable, so a cloned or sliced store never
// shares mutable state with its source, and an edit to one store can never
// show up in another.
//
// A Store is not safe for concurrent use. The editor runs single-threaded.
package lines
