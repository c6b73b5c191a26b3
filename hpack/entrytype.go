package hpack

// entryType classifies the first byte of an HPACK header block entry (RFC
// 7541 §6).
type entryType int

const (
	entryIndexedHeaderField entryType = iota
	entryLiteralIncrementalIndexing
	entryLiteralNeverIndexed
	entryLiteralWithoutIndexing
	entryDynamicTableSizeUpdate
)

func (t entryType) String() string {
	switch t {
	case entryIndexedHeaderField:
		return "IndexedHeaderField"
	case entryLiteralIncrementalIndexing:
		return "LiteralIncrementalIndexing"
	case entryLiteralNeverIndexed:
		return "LiteralNeverIndexed"
	case entryLiteralWithoutIndexing:
		return "LiteralWithoutIndexing"
	case entryDynamicTableSizeUpdate:
		return "DynamicTableSizeUpdate"
	default:
		return "UnknownEntryType"
	}
}

// classifyEntry inspects the first octet of an entry and returns its type
// along with the prefix mask (all-ones value of the index/length prefix)
// and the prefix value already extracted from the low bits.
func classifyEntry(first byte) (typ entryType, prefixMask, prefixValue uint64) {
	switch {
	case first&0x80 != 0:
		return entryIndexedHeaderField, 0x7f, uint64(first & 0x7f)
	case first&0x40 != 0:
		return entryLiteralIncrementalIndexing, 0x3f, uint64(first & 0x3f)
	case first&0x20 != 0:
		return entryDynamicTableSizeUpdate, 0x1f, uint64(first & 0x1f)
	case first&0x10 != 0:
		return entryLiteralNeverIndexed, 0xf, uint64(first & 0xf)
	default:
		return entryLiteralWithoutIndexing, 0xf, uint64(first & 0xf)
	}
}
