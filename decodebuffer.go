package http2

import "github.com/domsolutions/h2dec/http2utils"

// DecodeBuffer is a non-owning view over a contiguous byte range with a
// cursor. It never copies the bytes it wraps and never outlives the call
// stack frame that constructed it: callers are expected to declare it as a
// local value and pass its address down, never store it in a field that
// survives past the return of the function that built it.
//
// DecodeBuffer MUST NOT be used from concurrently running goroutines.
type DecodeBuffer struct {
	buf    []byte
	cursor int

	// parent is non-nil when this DecodeBuffer is a subset view. Release
	// advances parent.cursor by however much of the subset was consumed.
	parent *DecodeBuffer
}

// NewDecodeBuffer wraps b for decoding starting at offset 0.
func NewDecodeBuffer(b []byte) DecodeBuffer {
	return DecodeBuffer{buf: b}
}

// Remaining returns the number of bytes not yet consumed.
func (db *DecodeBuffer) Remaining() int {
	return len(db.buf) - db.cursor
}

// HasData reports whether there is at least one unconsumed byte.
func (db *DecodeBuffer) HasData() bool {
	return db.Remaining() > 0
}

// Offset returns how many bytes have been consumed from the start of buf.
func (db *DecodeBuffer) Offset() int {
	return db.cursor
}

// Peek returns the unconsumed bytes without advancing the cursor. The
// returned slice aliases the caller's buffer and must not be retained past
// the current call.
func (db *DecodeBuffer) Peek() []byte {
	return db.buf[db.cursor:]
}

// MinLengthRemaining returns min(n, db.Remaining()).
func (db *DecodeBuffer) MinLengthRemaining(n int) int {
	return http2utils.Min(n, db.Remaining())
}

// Advance moves the cursor forward by n bytes. n must not exceed Remaining.
func (db *DecodeBuffer) Advance(n int) {
	if n > db.Remaining() {
		panic("http2: DecodeBuffer.Advance: n exceeds remaining bytes")
	}
	db.cursor += n
}

// DecodeUint8 decodes and consumes one byte.
func (db *DecodeBuffer) DecodeUint8() uint8 {
	v := db.buf[db.cursor]
	db.cursor++
	return v
}

// DecodeUint16 decodes and consumes a 2-byte big-endian integer.
func (db *DecodeBuffer) DecodeUint16() uint16 {
	b := db.buf[db.cursor : db.cursor+2]
	db.cursor += 2
	return uint16(b[0])<<8 | uint16(b[1])
}

// DecodeUint24 decodes and consumes a 3-byte big-endian integer.
func (db *DecodeBuffer) DecodeUint24() uint32 {
	b := db.buf[db.cursor : db.cursor+3]
	db.cursor += 3
	return http2utils.BytesToUint24(b)
}

// DecodeUint31 decodes and consumes a 4-byte big-endian integer, masking
// off the reserved high bit.
func (db *DecodeBuffer) DecodeUint31() uint32 {
	b := db.buf[db.cursor : db.cursor+4]
	db.cursor += 4
	return http2utils.BytesToUint31(b)
}

// DecodeUint32 decodes and consumes a 4-byte big-endian integer without
// masking any bit (used for error codes, which occupy the full 32 bits).
func (db *DecodeBuffer) DecodeUint32() uint32 {
	b := db.buf[db.cursor : db.cursor+4]
	db.cursor += 4
	return http2utils.BytesToUint32(b)
}

// Subset constructs a view over the next min(maxLen, db.Remaining()) bytes
// of db. The parent's cursor is not advanced until the returned buffer's
// Release method is called: this models the C++ original's "subset view
// advances the parent cursor when dropped" without relying on destructors.
//
// At most one live subset per parent is supported at a time; subsets may be
// nested (a subset's parent may itself be a subset).
func (db *DecodeBuffer) Subset(maxLen int) DecodeBuffer {
	n := db.MinLengthRemaining(maxLen)
	return DecodeBuffer{
		buf:    db.buf[db.cursor : db.cursor+n],
		parent: db,
	}
}

// Release advances the parent buffer's cursor by the number of bytes this
// subset consumed, and detaches from the parent so a second Release is a
// no-op. Every subset created via Subset must have Release called on it
// exactly once before the parent is used again.
func (db *DecodeBuffer) Release() {
	if db.parent == nil {
		return
	}
	db.parent.Advance(db.cursor)
	db.parent = nil
}
