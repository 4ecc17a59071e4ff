package editor

import (
	"errors"
	"fmt"
)

// ErrQuit signals that the user confirmed quitting.
var ErrQuit = errors.New("quit requested")

// Status messages for conditions reported on the status line.
var (
	errNoFileName      = errors.New("no file name")
	errNoPattern       = errors.New("no previous pattern")
	errLineOutOfRange  = errors.New("line out of range")
	errClipboardEmpty  = errors.New("clipboard empty")
	errUnknownCommand  = errors.New("unknown command")
	errInvalidLineSpec = errors.New("not a line number")
)

// FatalError is an error the editor cannot continue after, such as a
// file that cannot be written.
type FatalError struct {
	Op   string
	Path string
	Err  error
}

func (e *FatalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a *FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
