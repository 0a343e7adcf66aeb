package histutil

// Walker walks through the entries of a Store, keeping the current index.
// Index 0 means that no entry is being browsed.
type Walker struct {
	store *Store
	index int
}

// NewWalker returns a Walker at index 0 of the given Store.
func NewWalker(store *Store) *Walker {
	return &Walker{store: store}
}

// Index returns the current index.
func (w *Walker) Index() int { return w.index }

// Reset moves the walker back to index 0.
func (w *Walker) Reset() { w.index = 0 }

// Prev moves to the next older entry and returns it.
func (w *Walker) Prev() (string, error) { return w.move(Up) }

// Next moves to the next newer entry and returns it. Moving to index 0
// returns "".
func (w *Walker) Next() (string, error) { return w.move(Down) }

func (w *Walker) move(dir Direction) (string, error) {
	cmd, index, ok := w.store.Recall(dir, w.index)
	if !ok {
		return "", ErrEndOfHistory
	}
	w.index = index
	return cmd, nil
}
