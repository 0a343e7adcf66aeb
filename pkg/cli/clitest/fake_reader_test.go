package clitest

import (
	"errors"
	"io"
	"testing"

	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/ui"
)

func TestFakeReader(t *testing.T) {
	errBad := errors.New("bad")
	r := NewFakeReader(ui.K('a'))
	r.FeedString("b")
	r.FeedError(errBad)

	if n := r.Pending(); n != 3 {
		t.Errorf("Pending() -> %d, want 3", n)
	}
	for _, want := range []ui.Key{ui.K('a'), ui.K('b')} {
		if k, err := r.ReadKey(); k != want || err != nil {
			t.Errorf("ReadKey() -> (%v, %v), want (%v, nil)", k, err, want)
		}
	}
	if _, err := r.ReadRawKey(); err != errBad {
		t.Errorf("ReadRawKey() -> error %v, want %v", err, errBad)
	}
	if _, err := r.ReadKey(); err != io.EOF {
		t.Errorf("ReadKey() on empty queue -> error %v, want io.EOF", err)
	}

	r.Feed(ui.K('c'))
	r.Close()
	if !r.Closed() {
		t.Errorf("Closed() -> false after Close")
	}
	if _, err := r.ReadKey(); err != term.ErrStopped {
		t.Errorf("ReadKey() after Close -> error %v, want ErrStopped", err)
	}
}
