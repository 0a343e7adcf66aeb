package shell

import (
	"fmt"

	"src.autocli.sh/pkg/cli"
	"src.autocli.sh/pkg/cli/complete"
	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/config"
	"src.autocli.sh/pkg/ui"
)

// Executor runs the commands of the shell. A command with a configured text
// prints it; otherwise the builtin action of the command is run, if any.
type Executor struct {
	cfg      *config.Config
	catalog  *complete.Catalog
	quitKey  ui.Key
	builtins map[string]func(cli.TTY) error
}

var _ cli.Executor = (*Executor)(nil)

// NewExecutor creates an Executor for the commands in the configuration.
func NewExecutor(cfg *config.Config) *Executor {
	e := &Executor{cfg: cfg, catalog: cfg.Catalog(), quitKey: cfg.QuitKey()}
	e.builtins = map[string]func(cli.TTY) error{
		"hello":   hello,
		"display": e.display,
		"exit":    exit,
		"x":       exit,
	}
	return e
}

func (e *Executor) Catalog() *complete.Catalog { return e.catalog }

func (e *Executor) Execute(tty cli.TTY, name string) error {
	if cmd, ok := e.cfg.Command(name); ok && cmd.Say != "" {
		_, err := fmt.Fprintln(tty.Out, cmd.Say)
		return err
	}
	if f, ok := e.builtins[name]; ok {
		return f(tty)
	}
	_, err := fmt.Fprintf(tty.Out, "No action attached to command '%s'", name)
	return err
}

func hello(tty cli.TTY) error {
	_, err := fmt.Fprint(tty.Out, "Hello there\n")
	return err
}

func exit(cli.TTY) error { return cli.ErrExit }

// Shows every key read from the terminal, up to and including the quit key.
func (e *Executor) display(tty cli.TTY) error {
	fmt.Fprintf(tty.Out, "Quit with '%s'\n", e.quitKey)
	for {
		k, err := tty.Reader.ReadKey()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				continue
			}
			return err
		}
		if _, err := fmt.Fprint(tty.Out, k.String()+" "); err != nil {
			return err
		}
		if k == e.quitKey {
			break
		}
	}
	_, err := fmt.Fprint(tty.Out, "\n")
	return err
}
