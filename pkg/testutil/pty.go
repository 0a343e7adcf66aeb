package testutil

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// PTY is a pseudo-terminal for tests. Everything written to the terminal side
// is collected in the background and can be waited for.
type PTY struct {
	// The controlling side, standing for the user.
	Master *os.File
	// The terminal side, to be used as the input and output of the program
	// being tested.
	TTY *os.File

	mu     sync.Mutex
	output strings.Builder
	done   chan struct{}
}

// NewPTY opens a pseudo-terminal, skipping the test if that fails. The
// terminal is closed when the test finishes.
func NewPTY(t *testing.T) *PTY {
	t.Helper()
	master, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	p := &PTY{Master: master, TTY: tty, done: make(chan struct{})}
	go p.collect()
	t.Cleanup(func() {
		tty.Close()
		master.Close()
		<-p.done
	})
	return p
}

func (p *PTY) collect() {
	defer close(p.done)
	buf := make([]byte, 1024)
	for {
		n, err := p.Master.Read(buf)
		if n > 0 {
			p.mu.Lock()
			p.output.Write(buf[:n])
			p.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Type writes s to the terminal as if typed by the user.
func (p *PTY) Type(t *testing.T, s string) {
	t.Helper()
	if _, err := p.Master.WriteString(s); err != nil {
		t.Fatalf("write to pty: %v", err)
	}
}

// Output returns everything written to the terminal so far.
func (p *PTY) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.output.String()
}

// WaitFor waits until the output contains s, failing the test after a scaled
// timeout of one second.
func (p *PTY) WaitFor(t *testing.T, s string) {
	t.Helper()
	deadline := time.Now().Add(Scaled(time.Second))
	for !strings.Contains(p.Output(), s) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q; output so far: %q", s, p.Output())
		}
		time.Sleep(time.Millisecond)
	}
}
