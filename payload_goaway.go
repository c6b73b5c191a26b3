package http2

// goAwayPayloadDecoder decodes a GOAWAY frame's payload (RFC 7540 §6.8): a
// fixed 8-byte prefix followed by opaque additional debug data.
type goAwayPayloadDecoder struct {
	acc              fixedAccumulator
	stage            int
	remainingContent int
}

const (
	goAwayStageFixed = iota
	goAwayStageOpaque
	goAwayStageDone
)

func (d *goAwayPayloadDecoder) Start(h Header, buf *DecodeBuffer, l Listener) Status {
	d.acc.reset()
	d.stage = goAwayStageFixed
	if h.Length() < GoAwayFieldsSize {
		l.OnFrameSizeError(h)
		return StatusError
	}
	return d.Resume(h, buf, l)
}

func (d *goAwayPayloadDecoder) Resume(h Header, buf *DecodeBuffer, l Listener) Status {
	if d.stage == goAwayStageFixed {
		if !d.acc.fill(buf, GoAwayFieldsSize) {
			return StatusInProgress
		}
		scratch := NewDecodeBuffer(d.acc.bytes(GoAwayFieldsSize))
		f := DecodeGoAwayFields(&scratch)
		l.OnGoAwayStart(h, f)
		d.remainingContent = int(h.Length()) - GoAwayFieldsSize
		d.stage = goAwayStageOpaque
	}

	if d.stage == goAwayStageOpaque {
		for d.remainingContent > 0 {
			n := buf.MinLengthRemaining(d.remainingContent)
			if n == 0 {
				return StatusInProgress
			}
			chunk := buf.Peek()[:n]
			buf.Advance(n)
			l.OnGoAwayOpaqueData(h, chunk)
			d.remainingContent -= n
		}
		d.stage = goAwayStageDone
	}

	l.OnGoAwayEnd(h)
	return StatusDone
}
