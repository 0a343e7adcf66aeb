// Autocli is an interactive command shell with its own line editor. It
// supports completion of command names with Tab, listing of commands with ?
// and history recall with the arrow keys.
package main

import (
	"os"

	"src.autocli.sh/pkg/buildinfo"
	"src.autocli.sh/pkg/prog"
	"src.autocli.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, shell.Program{})))
}
