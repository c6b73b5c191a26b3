package http2

// payloadDecoder is implemented by every per-frame-type payload decoder.
// Start resets the decoder's internal stage and begins consuming buf;
// Resume continues from wherever the previous call left off.
type payloadDecoder interface {
	Start(h Header, buf *DecodeBuffer, l Listener) Status
	Resume(h Header, buf *DecodeBuffer, l Listener) Status
}

type frameDecoderState int

const (
	stateHeader frameDecoderState = iota
	statePayload
)

// Http2FrameDecoder is the top-level resumable frame decoder (spec §4.5).
// One instance tracks a single connection's frame stream; it must not be
// shared across goroutines, and must not be reused across connections
// without a fresh Reset.
//
// Bytes handed to DecodeFrame may be split at any boundary, including
// mid-header and mid-payload: the decoder returns StatusInProgress and
// picks up exactly where it left off on the next call with more data. The
// sequence of listener callbacks produced is the same regardless of how
// the input happened to be chunked, except that callbacks carrying payload
// bytes (DATA payload, HPACK fragments, padding and other opaque data)
// fire once per piece of payload available in a call: their number
// depends on the chunking, their concatenated bytes do not.
type Http2FrameDecoder struct {
	listener     Listener
	maxFrameSize uint32
	errored      bool

	state          frameDecoderState
	headerDec      frameHeaderDecoder
	headerStarted  bool
	header         Header
	payloadStarted bool
	payloadLeft    int
	current        payloadDecoder

	dataDec           dataPayloadDecoder
	headersDec        headersPayloadDecoder
	priorityDec       priorityPayloadDecoder
	rstStreamDec      rstStreamPayloadDecoder
	settingsDec       settingsPayloadDecoder
	pushPromiseDec    pushPromisePayloadDecoder
	pingDec           pingPayloadDecoder
	goAwayDec         goAwayPayloadDecoder
	windowUpdateDec   windowUpdatePayloadDecoder
	continuationDec   continuationPayloadDecoder
	altSvcDec         altSvcPayloadDecoder
	priorityUpdateDec priorityUpdatePayloadDecoder
	unknownDec        unknownPayloadDecoder
}

// NewHttp2FrameDecoder constructs a decoder that reports to l. l must not
// be nil; pass NoopListener{} embedded in a wrapper if only some callbacks
// matter.
func NewHttp2FrameDecoder(l Listener) *Http2FrameDecoder {
	return &Http2FrameDecoder{listener: l, maxFrameSize: DefaultMaxFrameSize}
}

// SetMaxFrameSize configures the SETTINGS_MAX_FRAME_SIZE value this
// decoder enforces against each frame's declared length. The default is
// DefaultMaxFrameSize (16384), matching the HTTP/2 default.
func (d *Http2FrameDecoder) SetMaxFrameSize(n uint32) {
	d.maxFrameSize = n
}

// Reset clears all per-connection state so the decoder can be reused. The
// configured listener and maxFrameSize are preserved.
func (d *Http2FrameDecoder) Reset() {
	l, max := d.listener, d.maxFrameSize
	*d = Http2FrameDecoder{listener: l, maxFrameSize: max}
}

func (d *Http2FrameDecoder) fail() {
	if d.errored {
		return
	}
	d.errored = true
	d.listener = NoopListener{}
}

func (d *Http2FrameDecoder) selectPayloadDecoder(t FrameType) payloadDecoder {
	switch t {
	case FrameTypeData:
		return &d.dataDec
	case FrameTypeHeaders:
		return &d.headersDec
	case FrameTypePriority:
		return &d.priorityDec
	case FrameTypeRstStream:
		return &d.rstStreamDec
	case FrameTypeSettings:
		return &d.settingsDec
	case FrameTypePushPromise:
		return &d.pushPromiseDec
	case FrameTypePing:
		return &d.pingDec
	case FrameTypeGoAway:
		return &d.goAwayDec
	case FrameTypeWindowUpdate:
		return &d.windowUpdateDec
	case FrameTypeContinuation:
		return &d.continuationDec
	case FrameTypeAltSvc:
		return &d.altSvcDec
	case FrameTypePriorityUpdate:
		return &d.priorityUpdateDec
	default:
		return &d.unknownDec
	}
}

// DecodeFrame drives the decoder forward using whatever bytes buf
// currently exposes. It may decode zero, one or several whole frames in a
// single call, stopping as soon as buf runs dry mid-frame. The caller owns
// buf and must supply the remainder on a subsequent call starting where
// this one left off.
func (d *Http2FrameDecoder) DecodeFrame(buf *DecodeBuffer) Status {
	if d.errored {
		return StatusError
	}
	for {
		switch d.state {
		case stateHeader:
			var h Header
			var st Status
			if !d.headerStarted {
				h, st = d.headerDec.Start(buf)
				d.headerStarted = true
			} else {
				h, st = d.headerDec.Resume(buf)
			}
			if st == StatusInProgress {
				return StatusInProgress
			}
			d.headerStarted = false
			d.header = h
			d.listener.OnFrameHeader(h)
			if h.Length() > d.maxFrameSize {
				d.listener.OnFrameSizeError(h)
				d.fail()
				return StatusError
			}
			d.payloadLeft = int(h.Length())
			d.current = d.selectPayloadDecoder(h.Type())
			d.payloadStarted = false
			d.state = statePayload

		case statePayload:
			sub := buf.Subset(d.payloadLeft)
			var st Status
			if !d.payloadStarted {
				st = d.current.Start(d.header, &sub, d.listener)
				d.payloadStarted = true
			} else {
				st = d.current.Resume(d.header, &sub, d.listener)
			}
			d.payloadLeft -= sub.Offset()
			sub.Release()
			switch st {
			case StatusInProgress:
				return StatusInProgress
			case StatusError:
				d.fail()
				return StatusError
			}
			d.state = stateHeader
		}

		if !buf.HasData() {
			return StatusInProgress
		}
	}
}
