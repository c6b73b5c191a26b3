package http2

// DefaultFrameSize is the length of the frame header common to every HTTP/2
// frame (RFC 7540 §4.1): a 3-byte length, 1-byte type, 1-byte flags and
// 4-byte stream id (high bit reserved).
const DefaultFrameSize = 9

// DefaultMaxFrameSize is the SETTINGS_MAX_FRAME_SIZE default; the frame
// decoder compares each frame's declared length against whatever limit the
// caller configured, defaulting to this value.
const DefaultMaxFrameSize = 1 << 14

// Header is the decoded 9-byte frame header shared by every frame type.
// It is a plain value: nothing here ever mutates after DecodeHeader returns
// it, and it is cheap enough to copy freely.
type Header struct {
	length uint32
	typ    FrameType
	flags  FrameFlags
	stream uint32
}

// Length returns the payload length as declared in the wire header. It is
// not validated against SETTINGS_MAX_FRAME_SIZE by this type; callers that
// enforce a maximum do so in the frame decoder.
func (h Header) Length() uint32 { return h.length }

// Type returns the frame type tag.
func (h Header) Type() FrameType { return h.typ }

// Flags returns the raw flags byte.
func (h Header) Flags() FrameFlags { return h.flags }

// Stream returns the stream identifier with the reserved bit already
// masked off.
func (h Header) Stream() uint32 { return h.stream }

// Is reports whether the frame's type equals t.
func (h Header) Is(t FrameType) bool { return h.typ == t }

// Has reports whether every bit in mask is set in the frame's flags.
func (h Header) Has(mask FrameFlags) bool { return h.flags.Has(mask) }

// DecodeHeader decodes a 9-byte frame header from buf. The caller must have
// already ensured buf.Remaining() >= DefaultFrameSize.
func DecodeHeader(buf *DecodeBuffer) Header {
	length := buf.DecodeUint24()
	typ := FrameType(buf.DecodeUint8())
	flags := FrameFlags(buf.DecodeUint8())
	stream := buf.DecodeUint31()
	return Header{length: length, typ: typ, flags: flags, stream: stream}
}

// frameHeaderDecoder is the resumable counterpart of DecodeHeader: it can
// be fed a DecodeBuffer that doesn't yet hold the full 9 bytes, across as
// many Resume calls as it takes for them to arrive.
type frameHeaderDecoder struct {
	acc fixedAccumulator
}

func (d *frameHeaderDecoder) reset() {
	d.acc.reset()
}

// Start begins decoding a header from buf. It returns StatusDone with the
// decoded Header if buf already holds all 9 bytes, or StatusInProgress if
// the caller must call Resume once more bytes are available.
func (d *frameHeaderDecoder) Start(buf *DecodeBuffer) (Header, Status) {
	d.reset()
	return d.Resume(buf)
}

func (d *frameHeaderDecoder) Resume(buf *DecodeBuffer) (Header, Status) {
	if !d.acc.fill(buf, DefaultFrameSize) {
		return Header{}, StatusInProgress
	}
	scratch := NewDecodeBuffer(d.acc.bytes(DefaultFrameSize))
	return DecodeHeader(&scratch), StatusDone
}
