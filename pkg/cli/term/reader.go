// Package term provides the terminal side of the line editor: decoding key
// presses from the terminal input, putting the terminal into raw mode and
// writing edits to the terminal output.
package term

import (
	"errors"
	"fmt"
	"os"

	"src.autocli.sh/pkg/logutil"
	"src.autocli.sh/pkg/ui"
)

var logger = logutil.GetLogger("[cli/term] ")

// Reader reads keys from the terminal.
type Reader interface {
	// ReadKey reads a single key from the terminal, decoding escape
	// sequences. An undecodable sequence results in an error for which
	// IsReadErrorRecoverable returns true; the caller should ignore it and
	// read again.
	ReadKey() (ui.Key, error)
	// ReadRawKey reads a single byte from the terminal and returns it as a
	// key with no modifier, without attempting to decode escape sequences.
	ReadRawKey() (ui.Key, error)
	// Close releases resources associated with the Reader. Any outstanding
	// ReadKey or ReadRawKey call will be aborted, returning ErrStopped.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a ReadKey or
// ReadRawKey method.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

// An undecodable byte sequence.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}

// IsReadErrorRecoverable returns whether an error returned by Reader is
// recoverable, i.e. the input was undecodable and the caller may simply read
// again.
func IsReadErrorRecoverable(err error) bool {
	var se seqError
	return errors.As(err, &se) || err == errTimeout
}
