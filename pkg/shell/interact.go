package shell

import (
	"os"

	"src.autocli.sh/pkg/cli"
	"src.autocli.sh/pkg/cli/histutil"
	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/config"
	"src.autocli.sh/pkg/errutil"
	"src.autocli.sh/pkg/sys"
)

// Interact runs an interactive session on the terminal connected to fds[0] and
// fds[1], until a command ends it or reading from the terminal fails. The
// terminal is put into raw mode for the duration of the session, and restored
// on every way out, including panics and terminating signals.
func Interact(fds [3]*os.File, cfg *config.Config) (err error) {
	restore, err := term.Setup(fds[0], fds[1])
	if err != nil {
		return err
	}
	defer func() { err = errutil.Multi(err, restore()) }()
	defer func() {
		if r := recover(); r != nil {
			restore()
			logger.Printf("panic: %v\n%s", r, sys.DumpStack())
			panic(r)
		}
	}()
	stopSignals := handleSignals(restore, fds[2], os.Exit)
	defer stopSignals()

	reader, err := term.NewReader(fds[0])
	if err != nil {
		return err
	}
	defer reader.Close()

	ed := cli.NewEditor(cli.EditorSpec{
		Reader:       reader,
		Writer:       term.NewWriter(fds[1], cfg.Prompt),
		Executor:     NewExecutor(cfg),
		History:      histutil.NewMemStore(),
		DisplayChars: cfg.DisplayChars,
		Width: func() int {
			_, col := sys.WinSize(fds[1])
			return col
		},
	})
	logger.Println("session started")
	err = ed.ReadLoop()
	logger.Println("session ended:", err)
	return err
}
