package histutil

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_Record(t *testing.T) {
	s := NewMemStore()
	if s.Len() != 1 || s.Get(0) != "" {
		t.Fatalf("new store should only contain the placeholder")
	}
	for _, cmd := range []string{"a", "b", "b", "a", "a", "c"} {
		s.Record(cmd)
	}
	want := []string{"c", "a", "b", "a"}
	if diff := cmp.Diff(want, s.Entries()); diff != "" {
		t.Errorf("Entries (-want +got):\n%s", diff)
	}
	if s.Get(0) != "" {
		t.Errorf("Get(0) -> %q, want empty", s.Get(0))
	}
}

func TestStore_Record_ReturnValue(t *testing.T) {
	s := NewMemStore("hello")
	if s.Record("hello") {
		t.Errorf("Record of the most recent entry should return false")
	}
	if !s.Record("bar") {
		t.Errorf("Record of a new entry should return true")
	}
}

func TestStore_NoAdjacentDuplicates(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cmds := []string{"a", "b", "c"}
	s := NewMemStore()
	for i := 0; i < 200; i++ {
		s.Record(cmds[r.Intn(len(cmds))])
	}
	entries := s.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i] == entries[i-1] {
			t.Fatalf("adjacent duplicates %q at %d", entries[i], i)
		}
	}
}

var recallTests = []struct {
	dir       Direction
	index     int
	wantCmd   string
	wantIndex int
	wantOK    bool
}{
	{Up, 0, "new", 1, true},
	{Up, 1, "old", 2, true},
	{Up, 2, "", 2, false},
	{Down, 2, "new", 1, true},
	{Down, 1, "", 0, true},
	{Down, 0, "", 0, false},
	{Up, -1, "", -1, false},
	{Down, 3, "", 3, false},
}

func TestStore_Recall(t *testing.T) {
	s := NewMemStore("old", "new")
	for _, test := range recallTests {
		cmd, index, ok := s.Recall(test.dir, test.index)
		if cmd != test.wantCmd || index != test.wantIndex || ok != test.wantOK {
			t.Errorf("Recall(%v, %d) -> (%q, %d, %v), want (%q, %d, %v)",
				test.dir, test.index, cmd, index, ok,
				test.wantCmd, test.wantIndex, test.wantOK)
		}
	}
}

func TestWalker(t *testing.T) {
	s := NewMemStore("old", "new")
	w := NewWalker(s)

	if _, err := w.Next(); err != ErrEndOfHistory {
		t.Errorf("Next at index 0 -> %v, want ErrEndOfHistory", err)
	}
	for _, want := range []string{"new", "old"} {
		cmd, err := w.Prev()
		if cmd != want || err != nil {
			t.Errorf("Prev -> (%q, %v), want (%q, nil)", cmd, err, want)
		}
	}
	if _, err := w.Prev(); err != ErrEndOfHistory {
		t.Errorf("Prev at oldest -> %v, want ErrEndOfHistory", err)
	}
	if w.Index() != 2 {
		t.Errorf("Index -> %d, want 2", w.Index())
	}
	if cmd, err := w.Next(); cmd != "new" || err != nil {
		t.Errorf("Next -> (%q, %v), want (new, nil)", cmd, err)
	}
	w.Reset()
	if w.Index() != 0 {
		t.Errorf("Index after Reset -> %d, want 0", w.Index())
	}
}

func TestWalker_EmptyStore(t *testing.T) {
	w := NewWalker(NewMemStore())
	if _, err := w.Prev(); err != ErrEndOfHistory {
		t.Errorf("Prev on empty store -> %v, want ErrEndOfHistory", err)
	}
}
