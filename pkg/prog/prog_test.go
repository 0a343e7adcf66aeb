package prog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.autocli.sh/pkg/logutil"
	"src.autocli.sh/pkg/must"
	. "src.autocli.sh/pkg/prog"
	"src.autocli.sh/pkg/prog/progtest"
)

var (
	Test        = progtest.Test
	ThatAutocli = progtest.ThatAutocli
)

func TestCommonFlagHandling(t *testing.T) {
	Test(t, testProgram{},
		ThatAutocli("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatAutocli("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatAutocli("-help").
			WritesStdoutContaining("Usage: autocli [flags]"),
	)
}

func TestLogFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log")
	t.Cleanup(func() { logutil.SetOutputFile("") })

	Test(t, testProgram{logMessage: "a log message"},
		ThatAutocli("-log", logPath).DoesNothing(),
		ThatAutocli("-log", filepath.Join(logPath, "bad")).
			WritesStderrContaining("not a directory"),
	)

	if log := must.ReadFileString(logPath); !strings.Contains(log, "a log message") {
		t.Errorf("log file contains %q, want it to contain the message", log)
	}
}

func TestFlagsArePassedToProgram(t *testing.T) {
	var got Flags
	Test(t, testProgram{flags: &got},
		ThatAutocli("-config", "conf.yaml").DoesNothing(),
	)
	if got.Config != "conf.yaml" {
		t.Errorf("got Config %q, want %q", got.Config, "conf.yaml")
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatAutocli().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatAutocli().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatAutocli().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatAutocli().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatAutocli().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatAutocli().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatAutocli().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	logMessage  string
	returnErr   error
	flags       *Flags
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	if p.flags != nil {
		*p.flags = *f
	}
	if p.logMessage != "" {
		logutil.GetLogger("[test] ").Print(p.logMessage)
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}
