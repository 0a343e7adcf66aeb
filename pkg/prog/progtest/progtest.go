// Package progtest provides a framework for testing [prog.Program]
// implementations by running them with pipes in place of the standard files.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.autocli.sh/pkg/must"
	"src.autocli.sh/pkg/prog"
)

// Case is a test case for a program, created with ThatAutocli and refined
// with its methods.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit int
	// Expected stdout and stderr, or substrings of them if the corresponding
	// contains field is true.
	out, err                 string
	outContains, errContains bool
}

// ThatAutocli returns a Case that runs the program with the given arguments.
// By default the case expects the program to exit with 0 and write nothing.
func ThatAutocli(args ...string) Case {
	return Case{args: append([]string{"autocli"}, args...)}
}

// WithStdin returns an altered Case that feeds s to the program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c unchanged. It makes the expectation explicit.
func (c Case) DoesNothing() Case { return c }

// ExitsWith returns an altered Case that expects the given exit status.
func (c Case) ExitsWith(exit int) Case {
	c.want.exit = exit
	return c
}

// WritesStdout returns an altered Case that expects the given stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out, c.want.outContains = s, false
	return c
}

// WritesStdoutContaining returns an altered Case that expects stdout to
// contain s.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out, c.want.outContains = s, true
	return c
}

// WritesStderr returns an altered Case that expects the given stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err, c.want.errContains = s, false
	return c
}

// WritesStderrContaining returns an altered Case that expects stderr to
// contain s.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err, c.want.errContains = s, true
	return c
}

// Test runs p against each of the cases.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, out, err := Run(p, c.stdin, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %v, want %v", exit, c.want.exit)
			}
			checkOutput(t, "stdout", out, c.want.out, c.want.outContains)
			checkOutput(t, "stderr", err, c.want.err, c.want.errContains)
		})
	}
}

func checkOutput(t *testing.T, name, got, want string, contains bool) {
	t.Helper()
	if contains {
		if !strings.Contains(got, want) {
			t.Errorf("got %s %q, want it to contain %q", name, got, want)
		}
	} else if got != want {
		t.Errorf("got %s %q, want %q", name, got, want)
	}
}

// Run runs p with the given stdin and arguments, which include the program
// name, and returns the exit status along with the output written to stdout
// and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh := readAllAsync(r1)
	errCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}
