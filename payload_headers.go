package http2

// headersPayloadDecoder decodes a HEADERS frame's payload (RFC 7540 §6.2):
// optional padding, an optional 5-byte priority structure, then an HPACK
// header block fragment, then the padding bytes.
type headersPayloadDecoder struct {
	padding          paddingDecoder
	priorityAcc      fixedAccumulator
	stage            int
	remainingContent int
}

const (
	headersStagePadLength = iota
	headersStagePriority
	headersStageFragment
	headersStagePadding
	headersStageDone
)

func (d *headersPayloadDecoder) Start(h Header, buf *DecodeBuffer, l Listener) Status {
	d.padding.reset(h)
	d.priorityAcc.reset()
	d.stage = headersStagePadLength
	l.OnHeadersStart(h)
	return d.Resume(h, buf, l)
}

func (d *headersPayloadDecoder) Resume(h Header, buf *DecodeBuffer, l Listener) Status {
	if d.stage == headersStagePadLength {
		done, content, tooLong := d.padding.decodePadLength(h, buf)
		if !done {
			return StatusInProgress
		}
		if tooLong {
			missing := int(d.padding.padLength) - (int(h.Length()) - 1)
			l.OnPaddingTooLong(h, missing)
			return StatusError
		}
		if d.padding.padded {
			l.OnPadLength(h, d.padding.padLength)
		}
		d.remainingContent = content
		d.stage = headersStagePriority
	}

	if d.stage == headersStagePriority {
		if h.Has(FlagPriority) {
			if d.remainingContent < PriorityFieldsSize {
				l.OnFrameSizeError(h)
				return StatusError
			}
			if !d.priorityAcc.fill(buf, PriorityFieldsSize) {
				return StatusInProgress
			}
			scratch := NewDecodeBuffer(d.priorityAcc.bytes(PriorityFieldsSize))
			p := DecodePriorityFields(&scratch)
			l.OnHeadersPriority(h, p)
			d.remainingContent -= PriorityFieldsSize
		}
		d.stage = headersStageFragment
	}

	if d.stage == headersStageFragment {
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
		d.stage = headersStagePadding
	}

	if d.stage == headersStagePadding {
		if st := d.padding.consumePadding(h, buf, l); st != StatusDone {
			return st
		}
		d.stage = headersStageDone
	}

	l.OnHeadersEnd(h)
	return StatusDone
}
