package hpack

// ListAccumulator implements HeaderFieldListener by collecting every
// resolved field into a slice and keeping two independent running totals:
// the RFC 7540 §6.5.2 header-list size (name+value+32 per field, for
// SETTINGS_MAX_HEADER_LIST_SIZE enforcement) and the block's
// uncompressed/compressed byte totals reported at block end (RFC 7541
// §4.15). Both are updated as fields and the block end arrive. Exceeding
// MaxHeaderListSize does not stop decoding or collection; Overflowed
// reports it.
type ListAccumulator struct {
	MaxHeaderListSize uint32

	Fields []HeaderField

	// TotalUncompressedBytes and TotalCompressedBytes hold the most
	// recently completed block's totals, as reported by OnHeaderBlockEnd.
	TotalUncompressedBytes uint64
	TotalCompressedBytes   uint64

	total uint32
}

func (a *ListAccumulator) OnHeaderBlockStart() {
	a.Fields = a.Fields[:0]
	a.total = 0
}

func (a *ListAccumulator) OnHeaderField(f HeaderField) {
	a.total += f.Size()
	a.Fields = append(a.Fields, f)
}

func (a *ListAccumulator) OnHeaderBlockEnd(totalUncompressedBytes, totalCompressedBytes uint64) {
	a.TotalUncompressedBytes = totalUncompressedBytes
	a.TotalCompressedBytes = totalCompressedBytes
}

// Overflowed reports whether the accumulated list has exceeded
// MaxHeaderListSize. Callers check this after EndHeaderBlock rather than
// trusting an oversized list that decoded successfully.
func (a *ListAccumulator) Overflowed() bool {
	return a.MaxHeaderListSize != 0 && a.total > a.MaxHeaderListSize
}

var _ HeaderFieldListener = (*ListAccumulator)(nil)
