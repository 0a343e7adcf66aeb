// Package shell is the entry point for the interactive command shell.
package shell

import (
	"errors"
	"os"

	"src.autocli.sh/pkg/config"
	"src.autocli.sh/pkg/logutil"
	"src.autocli.sh/pkg/prog"
	"src.autocli.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// ErrNotTerminal is returned when the input of the shell is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Program is the shell subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	cfg, err := config.Load(f.Config)
	if err != nil {
		return err
	}
	if !sys.IsATTY(fds[0].Fd()) {
		return ErrNotTerminal
	}
	return Interact(fds, cfg)
}
