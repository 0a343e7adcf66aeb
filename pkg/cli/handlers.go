package cli

import (
	"fmt"
	"strings"

	"src.autocli.sh/pkg/cli/complete"
	"src.autocli.sh/pkg/cli/histutil"
	"src.autocli.sh/pkg/ui"
)

func (ed *Editor) defaultHandlers() map[ui.Key]func() error {
	return map[ui.Key]func() error{
		ui.K(ui.Enter):         ed.enter,
		ui.K('?'):              ed.listMatches,
		ui.K('C', ui.Ctrl):     ed.cancel,
		ui.K(ui.Tab):           ed.complete,
		ui.K(ui.Backspace):     ed.backspace,
		ui.K(ui.Delete):        ed.deleteForward,
		ui.K(ui.Left):          ed.left,
		ui.K(ui.Right):         ed.right,
		ui.K(ui.Home):          ed.home,
		ui.K('A', ui.Ctrl):     ed.home,
		ui.K(ui.End):           ed.end,
		ui.K('E', ui.Ctrl):     ed.end,
		ui.K(ui.Up):            func() error { return ed.recall(histutil.Up) },
		ui.K(ui.Down):          func() error { return ed.recall(histutil.Down) },
		ui.K(ui.Left, ui.Ctrl): ed.wordLeft,
	}
}

func (ed *Editor) insert(c byte) error {
	if err := ed.buf.InsertAt(ed.cursor, c); err != nil {
		return err
	}
	ed.writer.Echo(string(c))
	ed.cursor++
	ed.writer.Rewrite(ed.buf.String(), ed.buf.Len()-1, ed.cursor)
	return nil
}

func (ed *Editor) enter() error {
	ed.buf.Normalize(false)
	var err error
	if ed.buf.Len() > 0 {
		text := ed.buf.String()
		err = ed.respond(func() error { return ed.execute(text) })
		ed.history.Record(text)
		ed.buf.Clear()
	} else {
		ed.writer.Newline()
		ed.writer.Prompt()
	}
	ed.resetLine()
	return err
}

// Resolves text against the catalog and executes the command it designates.
func (ed *Editor) execute(text string) error {
	name, outcome := ed.catalog.Resolve(text)
	switch outcome {
	case complete.NoMatch:
		fmt.Fprint(ed.writer, "Invalid command\n")
	case complete.Ambiguous:
		fmt.Fprint(ed.writer, "Ambiguous command\n")
	default:
		logger.Printf("executing %q as %q", text, name)
		err := ed.executor.Execute(TTY{ed.reader, ed.writer}, name)
		if err == ErrExit {
			return err
		} else if err != nil {
			logger.Printf("command %q failed: %v", name, err)
			fmt.Fprintf(ed.writer, "%s: %v\n", name, err)
		}
	}
	return nil
}

func (ed *Editor) listMatches() error {
	// Show the question mark at the end of the typed line.
	ed.writer.Echo(ed.buf.Slice(ed.cursor) + "?")
	ed.buf.Normalize(true)
	valid := false
	ed.respond(func() error {
		valid = ed.list(ed.buf.Trimmed(false))
		return nil
	})
	if valid {
		ed.writer.Echo(ed.buf.String())
	} else {
		// Keep the invalid line in history so that it can be recalled and
		// corrected.
		ed.history.Record(ed.buf.String())
		ed.buf.Clear()
	}
	ed.cursor = ed.buf.Len()
	ed.walker.Reset()
	return nil
}

func (ed *Editor) cancel() error {
	ed.writer.Echo("^C")
	ed.writer.Newline()
	ed.writer.Prompt()
	ed.buf.Clear()
	ed.resetLine()
	return nil
}

func (ed *Editor) complete() error {
	prefix := strings.Join(ed.buf.Fields(), " ")
	ext, ok := complete.Complete(prefix, ed.catalog)
	if !ok {
		return nil
	}
	ed.writer.ClearLine(ed.buf.Len(), ed.cursor)
	ed.buf.Set(prefix)
	if err := ed.buf.Append(ext); err != nil {
		return err
	}
	if len(ed.catalog.Match(ed.buf.String())) == 1 {
		// The command is complete; make room for arguments.
		if err := ed.buf.Append(' '); err != nil {
			return err
		}
	}
	ed.writer.Echo(ed.buf.String())
	ed.cursor = ed.buf.Len()
	return nil
}

func (ed *Editor) backspace() error {
	if ed.cursor == 0 {
		return nil
	}
	if _, err := ed.buf.DeleteAt(ed.cursor - 1); err != nil {
		return err
	}
	ed.writer.Back(1)
	ed.cursor--
	ed.writer.Rewrite(ed.buf.String(), ed.buf.Len()+1, ed.cursor)
	return nil
}

func (ed *Editor) deleteForward() error {
	if ed.cursor >= ed.buf.Len() {
		return nil
	}
	if _, err := ed.buf.DeleteAt(ed.cursor); err != nil {
		return err
	}
	ed.writer.Rewrite(ed.buf.String(), ed.buf.Len()+1, ed.cursor)
	return nil
}

func (ed *Editor) left() error {
	if ed.cursor > 0 {
		ed.writer.Back(1)
		ed.cursor--
	}
	return nil
}

func (ed *Editor) right() error {
	if ed.cursor < ed.buf.Len() {
		ed.writer.Echo(string(ed.buf.At(ed.cursor)))
		ed.cursor++
	}
	return nil
}

func (ed *Editor) home() error {
	ed.writer.Back(ed.cursor)
	ed.cursor = 0
	return nil
}

func (ed *Editor) end() error {
	ed.writer.Echo(ed.buf.Slice(ed.cursor))
	ed.cursor = ed.buf.Len()
	return nil
}

func (ed *Editor) recall(dir histutil.Direction) error {
	var cmd string
	var err error
	if dir == histutil.Up {
		cmd, err = ed.walker.Prev()
	} else {
		cmd, err = ed.walker.Next()
	}
	if err == histutil.ErrEndOfHistory {
		return nil
	}
	ed.writer.ClearLine(ed.buf.Len(), ed.cursor)
	ed.buf.Set(cmd)
	ed.cursor = ed.buf.Len()
	ed.writer.Echo(cmd)
	return nil
}

// Moves the cursor to the start of the word before it. Trailing whitespace is
// ignored; if there is no space before the cursor, it moves to column 0.
func (ed *Editor) wordLeft() error {
	trimmed := ed.buf.Trimmed(true)
	end := ed.cursor - 1
	if end < 0 {
		end = 0
	} else if end > len(trimmed) {
		end = len(trimmed)
	}
	newCursor := strings.LastIndexByte(trimmed[:end], ' ') + 1
	ed.writer.Back(ed.cursor - newCursor)
	ed.cursor = newCursor
	return nil
}
