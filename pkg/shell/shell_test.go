package shell_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"src.autocli.sh/pkg/config"
	"src.autocli.sh/pkg/must"
	"src.autocli.sh/pkg/prog/progtest"
	. "src.autocli.sh/pkg/shell"
	"src.autocli.sh/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatAutocli = progtest.ThatAutocli
)

func TestProgram_Errors(t *testing.T) {
	badConfig := filepath.Join(t.TempDir(), "bad.yaml")
	must.WriteFile(badConfig, "commands: []\n")

	Test(t, Program{},
		ThatAutocli().ExitsWith(2).WritesStderr("stdin is not a terminal\n"),
		ThatAutocli("foo").ExitsWith(2).
			WritesStderrContaining("arguments are not supported\nUsage:"),
		ThatAutocli("-config", badConfig).ExitsWith(2).
			WritesStderrContaining("no command defined"),
	)
}

func TestInteract(t *testing.T) {
	p := testutil.NewPTY(t)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Interact([3]*os.File{p.TTY, p.TTY, p.TTY}, config.Default())
	}()

	p.WaitFor(t, "auto_cli:$")
	p.Type(t, "hel\t\r")
	p.WaitFor(t, "Hello there")

	p.Type(t, "ba\r")
	p.WaitFor(t, "Ambiguous command")

	p.Type(t, "bar?")
	p.WaitFor(t, "barbaz")

	p.Type(t, "\x03")
	p.WaitFor(t, "^C")

	p.Type(t, "x\r")
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Interact -> %v, want nil", err)
		}
	case <-time.After(testutil.Scaled(2 * time.Second)):
		t.Fatalf("Interact did not return; output: %q", p.Output())
	}
}
