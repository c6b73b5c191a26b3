package h2testing

// IndexedHeaderField encodes an HPACK "Indexed Header Field" entry (RFC
// 7541 §6.1) for wire index idx.
func IndexedHeaderField(idx uint64) []byte {
	return encodeVarint(0x80, 0x7f, idx)
}

// LiteralWithIncrementalIndexingNewName encodes a literal entry that adds
// name/value to the dynamic table (RFC 7541 §6.2.1), with a literal name.
func LiteralWithIncrementalIndexingNewName(name, value string) []byte {
	b := encodeVarint(0x40, 0x3f, 0)
	b = append(b, encodeString(name, false)...)
	b = append(b, encodeString(value, false)...)
	return b
}

// LiteralWithIncrementalIndexingIndexedName encodes the same entry type
// but referencing an already-indexed name.
func LiteralWithIncrementalIndexingIndexedName(nameIdx uint64, value string) []byte {
	b := encodeVarint(0x40, 0x3f, nameIdx)
	b = append(b, encodeString(value, false)...)
	return b
}

// LiteralWithoutIndexing encodes an RFC 7541 §6.2.2 entry.
func LiteralWithoutIndexing(name, value string) []byte {
	b := encodeVarint(0x00, 0xf, 0)
	b = append(b, encodeString(name, false)...)
	b = append(b, encodeString(value, false)...)
	return b
}

// DynamicTableSizeUpdate encodes an RFC 7541 §6.3 entry.
func DynamicTableSizeUpdate(newSize uint64) []byte {
	return encodeVarint(0x20, 0x1f, newSize)
}

func encodeVarint(flagBits byte, prefixMax uint64, v uint64) []byte {
	if v < prefixMax {
		return []byte{flagBits | byte(v)}
	}
	b := []byte{flagBits | byte(prefixMax)}
	v -= prefixMax
	for v >= 0x80 {
		b = append(b, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func encodeString(s string, huffman bool) []byte {
	flag := byte(0)
	if huffman {
		flag = 0x80
	}
	b := encodeVarint(flag, 0x7f, uint64(len(s)))
	return append(b, s...)
}
