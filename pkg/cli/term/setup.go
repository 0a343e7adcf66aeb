package term

import "os"

// Setup sets up the terminal so that it is suitable for the Reader and
// Writer to use: input is delivered byte by byte without echo, and Ctrl-C
// arrives as a key instead of a signal. It returns a function that restores
// the original terminal config; the caller must call it on every exit path.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}
