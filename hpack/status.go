package hpack

import http2 "github.com/domsolutions/h2dec"

// Status and DecodeBuffer are the same types the frame-layer decoder uses:
// HPACK blocks arrive as fragments inside HEADERS/CONTINUATION/PUSH_PROMISE
// frames, so this package reuses the frame layer's non-owning cursor
// buffer rather than defining a second one.
type Status = http2.Status

const (
	StatusDone       = http2.StatusDone
	StatusInProgress = http2.StatusInProgress
	StatusError      = http2.StatusError
)

// DecodeBuffer is re-exported so callers outside this module don't need to
// import the frame-layer package directly just to build one.
type DecodeBuffer = http2.DecodeBuffer

// NewDecodeBuffer wraps b for HPACK decoding starting at offset 0.
func NewDecodeBuffer(b []byte) DecodeBuffer {
	return http2.NewDecodeBuffer(b)
}
