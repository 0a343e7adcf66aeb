// Package histutil provides the command history of the line editor.
package histutil

import "errors"

// ErrEndOfHistory is returned by Walker when there are no more entries in the
// requested direction.
var ErrEndOfHistory = errors.New("end of history")

// Direction is the direction of a history recall.
type Direction int

// Possible values of Direction.
const (
	// Up moves to an older entry.
	Up Direction = iota
	// Down moves to a newer entry.
	Down
)

// Store keeps the commands entered during a session, most recent first. Index
// 0 is a placeholder for the empty line being edited, so the most recent
// command is at index 1. No two adjacent entries are the same.
//
// A Store is meant to be used from a single goroutine.
type Store struct {
	// cmds[0] is always "".
	cmds []string
}

// NewMemStore returns a Store holding the given commands, oldest first.
// Adjacent duplicates are collapsed.
func NewMemStore(texts ...string) *Store {
	s := &Store{cmds: []string{""}}
	for _, text := range texts {
		s.Record(text)
	}
	return s
}

// Len returns the number of entries, including the placeholder at index 0.
func (s *Store) Len() int { return len(s.cmds) }

// Get returns the entry at index i. Get(0) is always "". It panics if i is out
// of range.
func (s *Store) Get(i int) string { return s.cmds[i] }

// Entries returns the recorded commands, most recent first, without the
// placeholder.
func (s *Store) Entries() []string {
	return append([]string(nil), s.cmds[1:]...)
}

// Record adds cmd as the most recent entry, unless it is the same as the
// current most recent entry. It returns whether the command was added.
func (s *Store) Record(cmd string) bool {
	if len(s.cmds) > 1 && s.cmds[1] == cmd {
		return false
	}
	s.cmds = append(s.cmds, "")
	copy(s.cmds[2:], s.cmds[1:])
	s.cmds[1] = cmd
	return true
}

// Recall moves index one entry in the given direction and returns the entry
// there along with the new index. If the move would go past the oldest entry
// or before index 0, ok is false and index is returned unchanged.
func (s *Store) Recall(dir Direction, index int) (cmd string, newIndex int, ok bool) {
	switch dir {
	case Up:
		if index < 0 || index >= len(s.cmds)-1 {
			return "", index, false
		}
		index++
	case Down:
		if index <= 0 || index >= len(s.cmds) {
			return "", index, false
		}
		index--
	default:
		return "", index, false
	}
	return s.cmds[index], index, true
}
