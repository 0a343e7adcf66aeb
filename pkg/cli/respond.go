package cli

// Runs f as the response to a line submitted with Enter or ?. The response
// starts on a new line, and is always followed by a newline and a fresh
// prompt, whether f returns normally, returns an error or panics. The prompt
// is left out when f returns ErrExit.
func (ed *Editor) respond(f func() error) (err error) {
	ed.writer.Newline()
	defer func() {
		ed.writer.Newline()
		if err != ErrExit {
			ed.writer.Prompt()
		}
	}()
	return f()
}
