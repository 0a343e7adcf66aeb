// Package sys provide system utilities with the same API across Unix flavors.
//
// The subpackage eunix provides the termios and select wrappers used for
// putting the terminal into raw mode and reading from it with a timeout.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 16

// NotifySignals returns a channel on which the signals that should terminate
// an interactive session get delivered.
func NotifySignals() chan os.Signal { return notifySignals() }

// StopSignals stops delivering signals to a channel returned by
// NotifySignals.
func StopSignals(ch chan os.Signal) { stopSignals(ch) }

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
