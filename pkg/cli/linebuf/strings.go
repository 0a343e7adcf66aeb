package linebuf

import "strings"

// The following methods are the string operations available on a Buffer. They
// operate on a snapshot of the content and never modify the buffer.

// Lower returns the content with all letters mapped to lower case.
func (buf *Buffer) Lower() string { return strings.ToLower(buf.String()) }

// Upper returns the content with all letters mapped to upper case.
func (buf *Buffer) Upper() string { return strings.ToUpper(buf.String()) }

// HasPrefix reports whether the content begins with prefix.
func (buf *Buffer) HasPrefix(prefix string) bool { return strings.HasPrefix(buf.String(), prefix) }

// HasSuffix reports whether the content ends with suffix.
func (buf *Buffer) HasSuffix(suffix string) bool { return strings.HasSuffix(buf.String(), suffix) }

// Index returns the index of the first instance of s, or -1.
func (buf *Buffer) Index(s string) int { return strings.Index(buf.String(), s) }

// LastIndex returns the index of the last instance of s, or -1.
func (buf *Buffer) LastIndex(s string) int { return strings.LastIndex(buf.String(), s) }

// Count counts the non-overlapping instances of s.
func (buf *Buffer) Count(s string) int { return strings.Count(buf.String(), s) }

// Fields splits the content around runs of whitespace.
func (buf *Buffer) Fields() []string { return strings.Fields(buf.String()) }

// Split splits the content around each instance of sep.
func (buf *Buffer) Split(sep string) []string { return strings.Split(buf.String(), sep) }

// TrimSpace returns the content with leading and trailing whitespace removed.
func (buf *Buffer) TrimSpace() string { return strings.TrimSpace(buf.String()) }
