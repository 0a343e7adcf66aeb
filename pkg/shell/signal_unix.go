//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"src.autocli.sh/pkg/sys"
)

// Starts handling terminating signals in the background: the terminal is
// restored and the process exits with 128 plus the signal number. It returns
// a function that stops the handling.
func handleSignals(restore func() error, stderr io.Writer, exit func(int)) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			logger.Println("signal", signalName(sig))
			exit(handleSignal(sig, restore, stderr))
		}
	}()
	return func() {
		sys.StopSignals(sigCh)
		close(sigCh)
	}
}

func handleSignal(sig os.Signal, restore func() error, stderr io.Writer) int {
	if err := restore(); err != nil {
		logger.Println("failed to restore terminal:", err)
	}
	if sig == syscall.SIGQUIT {
		fmt.Fprint(stderr, sys.DumpStack())
	}
	fmt.Fprintf(stderr, "\nterminated by %s\n", signalName(sig))
	return 128 + int(sig.(syscall.Signal))
}

func signalName(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}
