package clitest

import (
	"strings"
	"testing"

	"src.autocli.sh/pkg/cli"
	"src.autocli.sh/pkg/cli/histutil"
	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/ui"
)

// Prompt is the prompt used by editors created with Setup.
const Prompt = "> "

// Fixture is a test fixture wrapping an Editor driven by a FakeReader.
type Fixture struct {
	Editor   *cli.Editor
	Reader   *FakeReader
	Executor *FakeExecutor
	Out      *strings.Builder
}

// Setup sets up a Fixture. The editor uses the given executor, or a
// FakeExecutor with an empty catalog if it is nil, and an empty history.
// Further changes to the spec can be made with fns.
func Setup(exec *FakeExecutor, fns ...func(*cli.EditorSpec)) *Fixture {
	if exec == nil {
		exec = NewFakeExecutor()
	}
	reader := NewFakeReader()
	out := &strings.Builder{}
	spec := cli.EditorSpec{
		Reader:   reader,
		Writer:   term.NewWriter(out, Prompt),
		Executor: exec,
		History:  histutil.NewMemStore(),
	}
	for _, fn := range fns {
		fn(&spec)
	}
	return &Fixture{cli.NewEditor(spec), reader, exec, out}
}

// Handle handles the keys in order, failing the test if any of them results
// in an error.
func (f *Fixture) Handle(t *testing.T, keys ...ui.Key) {
	t.Helper()
	for _, k := range keys {
		if err := f.Editor.Handle(k); err != nil {
			t.Fatalf("Handle(%v) -> %v", k, err)
		}
	}
}

// Type handles a key for each byte of s.
func (f *Fixture) Type(t *testing.T, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		f.Handle(t, ui.K(rune(s[i])))
	}
}

// TakeOutput returns what has been written to the terminal since the last
// call, and resets it.
func (f *Fixture) TakeOutput() string {
	s := f.Out.String()
	f.Out.Reset()
	return s
}

// TestState checks the buffer and cursor of the editor.
func (f *Fixture) TestState(t *testing.T, wantBuf string, wantCursor int) {
	t.Helper()
	if buf := f.Editor.Buffer(); buf != wantBuf {
		t.Errorf("buffer is %q, want %q", buf, wantBuf)
	}
	if cursor := f.Editor.Cursor(); cursor != wantCursor {
		t.Errorf("cursor is %d, want %d", cursor, wantCursor)
	}
}
