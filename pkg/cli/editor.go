// Package cli implements the interactive line editor of the command shell.
//
// The editor reads keys from a term.Reader, keeps the line being edited in a
// linebuf.Buffer and renders every edit incrementally with a term.Writer.
// Completed lines are resolved against a complete.Catalog and handed to an
// Executor.
package cli

import (
	"errors"
	"io"

	"src.autocli.sh/pkg/cli/complete"
	"src.autocli.sh/pkg/cli/histutil"
	"src.autocli.sh/pkg/cli/linebuf"
	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/logutil"
	"src.autocli.sh/pkg/ui"
)

var logger = logutil.GetLogger("[cli] ")

// DefaultDisplayChars is the default set of characters that can be typed into
// the buffer.
const DefaultDisplayChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-= /"

// DefaultListingWidth is the width used for listing commands when the
// terminal width is unknown.
const DefaultListingWidth = 80

// ErrExit may be returned by Executor.Execute to end the read loop.
var ErrExit = errors.New("exit")

// Executor executes commands entered in the editor.
type Executor interface {
	// Catalog returns the commands known to the executor. It must return the
	// same value every time it is called.
	Catalog() *complete.Catalog
	// Execute runs the named command, which is always a name in the catalog.
	// Output should be written to tty.Out. Returning ErrExit ends the read
	// loop; other errors are shown to the user.
	Execute(tty TTY, name string) error
}

// TTY gives a running command access to the terminal. A command may read keys
// from Reader while it runs; the state of the editor is left untouched.
type TTY struct {
	Reader term.Reader
	Out    io.Writer
}

// EditorSpec specifies the configuration of an Editor.
type EditorSpec struct {
	Reader   term.Reader
	Writer   *term.Writer
	Executor Executor

	// History to use. If nil, an empty history is used.
	History *histutil.Store
	// Characters that may be inserted into the buffer. If empty,
	// DefaultDisplayChars is used.
	DisplayChars string
	// Returns the width of the terminal, used for listing commands. If nil or
	// returning a non-positive value, DefaultListingWidth is used.
	Width func() int
}

// Editor is the line editor. Its state consists of the buffer, the cursor
// within the buffer and the index into the history; there is no separate
// mode.
type Editor struct {
	reader   term.Reader
	writer   *term.Writer
	executor Executor
	catalog  *complete.Catalog
	history  *histutil.Store
	walker   *histutil.Walker
	width    func() int

	displayChars [256]bool
	handlers     map[ui.Key]func() error

	buf    linebuf.Buffer
	cursor int
}

// NewEditor creates a new Editor from the spec.
func NewEditor(spec EditorSpec) *Editor {
	history := spec.History
	if history == nil {
		history = histutil.NewMemStore()
	}
	displayChars := spec.DisplayChars
	if displayChars == "" {
		displayChars = DefaultDisplayChars
	}
	ed := &Editor{
		reader:   spec.Reader,
		writer:   spec.Writer,
		executor: spec.Executor,
		catalog:  spec.Executor.Catalog(),
		history:  history,
		walker:   histutil.NewWalker(history),
		width:    spec.Width,
	}
	for i := 0; i < len(displayChars); i++ {
		ed.displayChars[displayChars[i]] = true
	}
	ed.handlers = ed.defaultHandlers()
	return ed
}

// Buffer returns the content of the buffer.
func (ed *Editor) Buffer() string { return ed.buf.String() }

// Cursor returns the position of the cursor in the buffer.
func (ed *Editor) Cursor() int { return ed.cursor }

// HistoryIndex returns the index of the history entry being browsed, 0 if
// none.
func (ed *Editor) HistoryIndex() int { return ed.walker.Index() }

// History returns the history used by the editor.
func (ed *Editor) History() *histutil.Store { return ed.history }

// ReadLoop writes the prompt and handles keys until a command returns
// ErrExit, in which case it returns nil. It also returns when reading from the
// terminal or writing to it fails, or when the state of the buffer turns out
// to be inconsistent.
func (ed *Editor) ReadLoop() error {
	ed.writer.Prompt()
	for {
		k, err := ed.reader.ReadKey()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				continue
			}
			return err
		}
		err = ed.Handle(k)
		if err == ErrExit {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Handle handles a single key. Keys that are not bound and are not
// displayable characters are ignored.
func (ed *Editor) Handle(k ui.Key) error {
	var err error
	if h, ok := ed.handlers[k]; ok {
		err = h()
	} else if c, ok := ed.displayChar(k); ok {
		err = ed.insert(c)
	}
	if err != nil {
		if errors.Is(err, linebuf.ErrOutOfRange) {
			logger.Printf("inconsistent state %q, cursor %d: %v", ed.buf.String(), ed.cursor, err)
		}
		return err
	}
	return ed.writer.Err()
}

func (ed *Editor) displayChar(k ui.Key) (byte, bool) {
	if k.Mod != 0 || k.Rune < 0 || k.Rune > 0xff || !ed.displayChars[k.Rune] {
		return 0, false
	}
	return byte(k.Rune), true
}

// Resets the cursor and the history index for a new line.
func (ed *Editor) resetLine() {
	ed.cursor = 0
	ed.walker.Reset()
}
