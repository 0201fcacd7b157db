package tableui

// ColumnIndexTracker remembers the column index every observed cell occupied
// as of the last reconciliation. Comparing a stored index with a cell's
// current index is how the width post-fixer tells column insertion from
// deletion: a higher current index means columns appeared to the cell's
// left, a lower one means columns were removed.
//
// Keys are cell identities (pointers), not positions. Entries are added
// lazily on first observation and never removed; a stale entry for a deleted
// cell is only index history and is never dereferenced as a live node.
type ColumnIndexTracker struct {
	indexes map[*Element]int
}

// NewColumnIndexTracker creates an empty tracker.
func NewColumnIndexTracker() *ColumnIndexTracker {
	return &ColumnIndexTracker{indexes: make(map[*Element]int)}
}

// Lookup returns the stored column index for a cell and whether the cell has
// been observed before.
func (t *ColumnIndexTracker) Lookup(cell *Element) (int, bool) {
	idx, ok := t.indexes[cell]
	return idx, ok
}

// Record stores the cell's current column index.
func (t *ColumnIndexTracker) Record(cell *Element, index int) {
	t.indexes[cell] = index
}

// Len returns the number of tracked cells, stale entries included.
func (t *ColumnIndexTracker) Len() int {
	return len(t.indexes)
}
