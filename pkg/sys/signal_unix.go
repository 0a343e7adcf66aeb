//go:build unix

package sys

import (
	"os"
	"os/signal"
	"syscall"
)

func notifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	// SIGINT is not in the list: the terminal is in raw mode with ISIG off
	// while the editor runs, so Ctrl-C arrives as a key.
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	return sigCh
}

func stopSignals(ch chan os.Signal) {
	signal.Stop(ch)
}
