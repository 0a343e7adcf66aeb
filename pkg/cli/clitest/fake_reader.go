// Package clitest provides utilities for testing the line editor.
package clitest

import (
	"io"

	"src.autocli.sh/pkg/cli/term"
	"src.autocli.sh/pkg/ui"
)

// An item that FakeReader returns, either a key or an error.
type readItem struct {
	key ui.Key
	err error
}

// FakeReader is an implementation of term.Reader that returns keys and errors
// fed to it in order, and io.EOF when there are no more.
type FakeReader struct {
	items  []readItem
	closed bool
}

var _ term.Reader = (*FakeReader)(nil)

// NewFakeReader creates a FakeReader that returns the given keys.
func NewFakeReader(keys ...ui.Key) *FakeReader {
	r := &FakeReader{}
	r.Feed(keys...)
	return r
}

// Feed adds keys to the end of the queue.
func (r *FakeReader) Feed(keys ...ui.Key) {
	for _, k := range keys {
		r.items = append(r.items, readItem{key: k})
	}
}

// FeedString adds a key for each byte of s to the end of the queue.
func (r *FakeReader) FeedString(s string) {
	for i := 0; i < len(s); i++ {
		r.Feed(ui.K(rune(s[i])))
	}
}

// FeedError adds an error to the end of the queue.
func (r *FakeReader) FeedError(err error) {
	r.items = append(r.items, readItem{err: err})
}

// Pending returns the number of items that have not been read.
func (r *FakeReader) Pending() int { return len(r.items) }

// Closed returns whether Close has been called.
func (r *FakeReader) Closed() bool { return r.closed }

func (r *FakeReader) ReadKey() (ui.Key, error) {
	if r.closed {
		return ui.Key{}, term.ErrStopped
	}
	if len(r.items) == 0 {
		return ui.Key{}, io.EOF
	}
	item := r.items[0]
	r.items = r.items[1:]
	return item.key, item.err
}

// ReadRawKey behaves the same as ReadKey.
func (r *FakeReader) ReadRawKey() (ui.Key, error) { return r.ReadKey() }

func (r *FakeReader) Close() { r.closed = true }
