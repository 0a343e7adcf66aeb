// Package linebuf implements the text buffer of the line editor.
//
// A Buffer holds single-byte characters. Mutating methods validate indices and
// never leave the buffer partially modified; read-only string operations
// delegate to the strings package on a snapshot of the contents.
package linebuf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is matched by errors.Is for all *OutOfRangeError values.
var ErrOutOfRange = errors.New("index out of range")

// ErrTypeMismatch is matched by errors.Is for all *TypeMismatchError values.
var ErrTypeMismatch = errors.New("type mismatch")

// OutOfRangeError is returned when an index passed to a Buffer method is
// outside the valid range.
type OutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for buffer of length %d",
		e.Op, e.Index, e.Len)
}

// Is supports errors.Is(err, ErrOutOfRange).
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// TypeMismatchError is returned by Append when given a value that is neither a
// character nor a sequence of characters.
type TypeMismatchError struct {
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("a character or a sequence of characters is required, got %T", e.Value)
}

// Is supports errors.Is(err, ErrTypeMismatch).
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// Buffer is a mutable sequence of single-byte characters. The zero value is an
// empty buffer ready to use.
type Buffer struct {
	b []byte
}

// New returns a Buffer with the given initial content.
func New(s string) *Buffer {
	return &Buffer{[]byte(s)}
}

// Len returns the number of characters in the buffer.
func (buf *Buffer) Len() int { return len(buf.b) }

// String returns the content of the buffer.
func (buf *Buffer) String() string { return string(buf.b) }

// At returns the character at index i. It panics if i is out of range, like
// indexing a string does.
func (buf *Buffer) At(i int) byte { return buf.b[i] }

// Slice returns the content from index i to the end. It panics if i is out
// of range, like slicing a string does.
func (buf *Buffer) Slice(i int) string { return string(buf.b[i:]) }

// InsertAt inserts c before index i. Valid values of i are 0 to Len()
// inclusive.
func (buf *Buffer) InsertAt(i int, c byte) error {
	if i < 0 || i > len(buf.b) {
		return &OutOfRangeError{"insert", i, len(buf.b)}
	}
	buf.b = append(buf.b, 0)
	copy(buf.b[i+1:], buf.b[i:])
	buf.b[i] = c
	return nil
}

// DeleteAt removes and returns the character at index i. Valid values of i are
// 0 to Len() exclusive.
func (buf *Buffer) DeleteAt(i int) (byte, error) {
	if i < 0 || i >= len(buf.b) {
		return 0, &OutOfRangeError{"delete", i, len(buf.b)}
	}
	c := buf.b[i]
	buf.b = append(buf.b[:i], buf.b[i+1:]...)
	return c, nil
}

// Append appends v to the end of the buffer. The value may be a byte, a rune
// that fits in one byte, a string or a []byte; other values result in a
// *TypeMismatchError and leave the buffer unchanged.
func (buf *Buffer) Append(v any) error {
	switch v := v.(type) {
	case byte:
		buf.b = append(buf.b, v)
	case rune:
		if v < 0 || v > 0xff {
			return &TypeMismatchError{v}
		}
		buf.b = append(buf.b, byte(v))
	case string:
		buf.b = append(buf.b, v...)
	case []byte:
		buf.b = append(buf.b, v...)
	default:
		return &TypeMismatchError{v}
	}
	return nil
}

// Set replaces the content of the buffer.
func (buf *Buffer) Set(s string) {
	buf.b = append(buf.b[:0], s...)
}

// Clear empties the buffer.
func (buf *Buffer) Clear() {
	buf.b = buf.b[:0]
}

// Normalize collapses every run of whitespace into a single space and strips
// leading and trailing whitespace. If keepTrailingSpace is true and the buffer
// ends in a space and is not all whitespace, a single trailing space is kept.
func (buf *Buffer) Normalize(keepTrailingSpace bool) {
	s := buf.String()
	normalized := strings.Join(strings.Fields(s), " ")
	if keepTrailingSpace && normalized != "" && strings.HasSuffix(s, " ") {
		normalized += " "
	}
	buf.Set(normalized)
}

// Trimmed returns the content with whitespace stripped from the end, and from
// the start too unless endOnly is true. It does not modify the buffer.
func (buf *Buffer) Trimmed(endOnly bool) string {
	if endOnly {
		return strings.TrimRightFunc(buf.String(), isSpace)
	}
	return strings.TrimSpace(buf.String())
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Equal reports whether the content of the buffer is s.
func (buf *Buffer) Equal(s string) bool { return string(buf.b) == s }

// Contains reports whether s is within the content of the buffer.
func (buf *Buffer) Contains(s string) bool { return strings.Contains(buf.String(), s) }
