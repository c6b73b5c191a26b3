// Package h2testing builds wire-format HTTP/2 frames and HPACK header
// blocks for use as test fixtures. It exists purely to construct inputs;
// production code never imports it.
package h2testing

import (
	"github.com/valyala/fastrand"

	http2 "github.com/domsolutions/h2dec"
	"github.com/domsolutions/h2dec/http2utils"
)

// FrameHeader writes a 9-byte HTTP/2 frame header for a payload of the
// given length.
func FrameHeader(length int, typ http2.FrameType, flags http2.FrameFlags, stream uint32) []byte {
	b := make([]byte, http2.DefaultFrameSize)
	http2utils.Uint24ToBytes(b[0:3], uint32(length))
	b[3] = byte(typ)
	b[4] = byte(flags)
	http2utils.Uint32ToBytes(b[5:9], stream&(1<<31-1))
	return b
}

// Frame builds one complete frame (header + payload) for payload.
func Frame(typ http2.FrameType, flags http2.FrameFlags, stream uint32, payload []byte) []byte {
	return append(FrameHeader(len(payload), typ, flags, stream), payload...)
}

// PadPayload wraps content in the Pad-Length-prefixed padded payload shape
// shared by DATA, HEADERS and PUSH_PROMISE, using a random pad length and
// random pad bytes the same way http2utils.AddPadding does for any other
// outbound payload in this module.
func PadPayload(content []byte) []byte {
	padded := http2utils.AddPadding(append([]byte(nil), content...))
	// AddPadding's layout (len-prefix, content, random bytes) already
	// matches RFC 7540's Pad Length octet followed by padding octets.
	return padded
}

// RandomStreamID returns an odd, non-reserved stream id suitable for a
// client-initiated test stream.
func RandomStreamID() uint32 {
	return (fastrand.Uint32n(1<<30) << 1) | 1
}

// SplitAt splits wire into n roughly-equal pieces, for exercising a
// decoder's resumability against an arbitrary chunking of the same bytes.
func SplitAt(wire []byte, n int) [][]byte {
	if n <= 0 {
		n = 1
	}
	chunkLen := (len(wire) + n - 1) / n
	var chunks [][]byte
	for i := 0; i < len(wire); i += chunkLen {
		end := i + chunkLen
		if end > len(wire) {
			end = len(wire)
		}
		chunks = append(chunks, wire[i:end])
	}
	return chunks
}
