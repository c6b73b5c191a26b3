package hpack

// dynamicTable is the per-connection, per-direction FIFO described in RFC
// 7541 §2.3.2: entries are inserted at the front and evicted from the back
// whenever the running size total exceeds maxSize. entries[0] is always
// the most recently inserted field, matching wire index 62.
type dynamicTable struct {
	entries []HeaderField
	size    uint32
	maxSize uint32
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	return &dynamicTable{maxSize: maxSize}
}

func (t *dynamicTable) Len() int { return len(t.entries) }

func (t *dynamicTable) Size() uint32 { return t.size }

func (t *dynamicTable) MaxSize() uint32 { return t.maxSize }

// insert adds f to the table, evicting older entries until the size
// invariant holds. A field whose own size exceeds maxSize empties the
// table entirely rather than being stored (RFC 7541 §4.4).
func (t *dynamicTable) insert(f HeaderField) {
	sz := f.Size()
	if sz > t.maxSize {
		t.entries = t.entries[:0]
		t.size = 0
		return
	}
	t.entries = append(t.entries, HeaderField{})
	copy(t.entries[1:], t.entries)
	t.entries[0] = f
	t.size += sz
	t.evict()
}

func (t *dynamicTable) evict() {
	for t.size > t.maxSize && len(t.entries) > 0 {
		last := t.entries[len(t.entries)-1]
		t.entries = t.entries[:len(t.entries)-1]
		t.size -= last.Size()
	}
}

// setMaxSize applies a new SETTINGS_HEADER_TABLE_SIZE-derived limit,
// evicting immediately if the table is now over budget (RFC 7541 §4.2).
func (t *dynamicTable) setMaxSize(n uint32) {
	t.maxSize = n
	t.evict()
}

// lookup returns the entry at 0-based position i (0 = most recently
// inserted, i.e. wire index 62).
func (t *dynamicTable) lookup(i int) (HeaderField, bool) {
	if i < 0 || i >= len(t.entries) {
		return HeaderField{}, false
	}
	return t.entries[i], true
}

// resolveIndex maps a single HPACK wire index (1-based, spanning the
// static table then the dynamic table per RFC 7541 §2.3.3) to a field.
func resolveIndex(idx uint64, dyn *dynamicTable) (HeaderField, bool) {
	if f, ok := staticTableLookup(idx); ok {
		return f, true
	}
	dynIdx := int(idx) - staticTableSize - 1
	return dyn.lookup(dynIdx)
}
