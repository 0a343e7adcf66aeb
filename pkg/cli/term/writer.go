package term

import (
	"io"
	"strings"
)

// Writer renders edits of a single-line buffer onto the terminal.
//
// It never queries the terminal: the caller tracks the logical cursor and the
// Writer assumes that every byte it writes shows up as written. Only printable
// characters, spaces, newlines and backspaces are written; a backspace is
// assumed to move the cursor left without erasing, so erasure is simulated by
// overwriting with spaces and moving back again.
type Writer struct {
	out    io.Writer
	prompt string
	err    error
}

// NewWriter returns a Writer that writes to out and uses the given prompt.
func NewWriter(out io.Writer, prompt string) *Writer {
	return &Writer{out: out, prompt: prompt}
}

// Write writes p unchanged. It makes Writer usable as the output of commands.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.out.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Err returns the first error encountered when writing, if any. Once an error
// has been encountered, all further writes are dropped.
func (w *Writer) Err() error { return w.err }

func (w *Writer) writeString(s string) {
	if s != "" {
		w.Write([]byte(s))
	}
}

// Echo writes s at the current terminal cursor.
func (w *Writer) Echo(s string) { w.writeString(s) }

// Back moves the terminal cursor n columns to the left.
func (w *Writer) Back(n int) { w.writeString(backspaces(n)) }

// Newline moves the terminal cursor to the start of the next line.
func (w *Writer) Newline() { w.writeString("\n") }

// Prompt writes the prompt.
func (w *Writer) Prompt() { w.writeString(w.prompt) }

// Rewrite redraws text from column start to its end, after the terminal
// cursor has been placed at column start. If the previous rendering was
// oldLen long and longer than text, the leftover characters are blanked. The
// terminal cursor is left at column start.
func (w *Writer) Rewrite(text string, oldLen, start int) {
	var sb strings.Builder
	sb.WriteString(text[start:])
	if extra := oldLen - len(text); extra > 0 {
		// Clear the characters from the end.
		sb.WriteString(strings.Repeat(" ", extra))
		sb.WriteString(backspaces(extra))
	}
	// Back to where we started.
	sb.WriteString(backspaces(len(text) - start))
	w.writeString(sb.String())
}

// ClearLine blanks a rendering that is oldLen long, with the terminal cursor
// at column cursor. The terminal cursor is left at column 0.
func (w *Writer) ClearLine(oldLen, cursor int) {
	w.writeString(backspaces(cursor) +
		strings.Repeat(" ", oldLen) + backspaces(oldLen))
}

func backspaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("\b", n)
}
