package http2

// pushPromisePayloadDecoder decodes a PUSH_PROMISE frame's payload (RFC
// 7540 §6.6): optional padding, a 4-byte promised stream id, an HPACK
// header block fragment, then the padding bytes.
type pushPromisePayloadDecoder struct {
	padding          paddingDecoder
	streamAcc        fixedAccumulator
	stage            int
	remainingContent int
}

const (
	pushPromiseStagePadLength = iota
	pushPromiseStageStreamID
	pushPromiseStageFragment
	pushPromiseStagePadding
	pushPromiseStageDone
)

func (d *pushPromisePayloadDecoder) Start(h Header, buf *DecodeBuffer, l Listener) Status {
	d.padding.reset(h)
	d.streamAcc.reset()
	d.stage = pushPromiseStagePadLength
	return d.Resume(h, buf, l)
}

func (d *pushPromisePayloadDecoder) Resume(h Header, buf *DecodeBuffer, l Listener) Status {
	if d.stage == pushPromiseStagePadLength {
		done, content, tooLong := d.padding.decodePadLength(h, buf)
		if !done {
			return StatusInProgress
		}
		if tooLong {
			missing := int(d.padding.padLength) - (int(h.Length()) - 1)
			l.OnPaddingTooLong(h, missing)
			return StatusError
		}
		if content < PushPromiseFieldsSize {
			l.OnFrameSizeError(h)
			return StatusError
		}
		if d.padding.padded {
			l.OnPadLength(h, d.padding.padLength)
		}
		d.remainingContent = content
		d.stage = pushPromiseStageStreamID
	}

	if d.stage == pushPromiseStageStreamID {
		if !d.streamAcc.fill(buf, PushPromiseFieldsSize) {
			return StatusInProgress
		}
		scratch := NewDecodeBuffer(d.streamAcc.bytes(PushPromiseFieldsSize))
		f := DecodePushPromiseFields(&scratch)
		d.remainingContent -= PushPromiseFieldsSize
		l.OnPushPromiseStart(h, f)
		d.stage = pushPromiseStageFragment
	}

	if d.stage == pushPromiseStageFragment {
		for d.remainingContent > 0 {
			n := buf.MinLengthRemaining(d.remainingContent)
			if n == 0 {
				return StatusInProgress
			}
			chunk := buf.Peek()[:n]
			buf.Advance(n)
			l.OnHpackFragment(h, chunk)
			d.remainingContent -= n
		}
		d.stage = pushPromiseStagePadding
	}

	if d.stage == pushPromiseStagePadding {
		if st := d.padding.consumePadding(h, buf, l); st != StatusDone {
			return st
		}
		d.stage = pushPromiseStageDone
	}

	l.OnPushPromiseEnd(h)
	return StatusDone
}
