package hpack

// HeaderField is a decoded (name, value) pair together with the indexing
// instruction the encoder chose for it (RFC 7541 §6). Sensitive is set for
// entries encoded as "Literal Header Field Never Indexed" (§6.2.3): callers
// must not write these into any cache that might leak across requests
// (e.g. an HTTP access log).
type HeaderField struct {
	Name      string
	Value     string
	Sensitive bool
}

// Size returns the entry size HPACK uses for dynamic-table accounting
// (RFC 7541 §4.1): 32 plus the octet length of name and value.
func (f HeaderField) Size() uint32 {
	return uint32(len(f.Name)+len(f.Value)) + entryOverhead
}

// entryOverhead is the constant added to every dynamic table entry's size
// to account for the cost of a linked-list/hash-table entry (RFC 7541
// §4.1), independent of Go's own in-memory representation.
const entryOverhead = 32
