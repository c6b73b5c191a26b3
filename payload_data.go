package http2

// dataPayloadDecoder decodes a DATA frame's payload (RFC 7540 §6.1):
// optional padding, then up to Length bytes of stream data.
type dataPayloadDecoder struct {
	padding          paddingDecoder
	stage            int
	remainingContent int
}

const (
	dataStagePadLength = iota
	dataStageContent
	dataStagePadding
	dataStageDone
)

func (d *dataPayloadDecoder) Start(h Header, buf *DecodeBuffer, l Listener) Status {
	d.padding.reset(h)
	d.stage = dataStagePadLength
	l.OnDataStart(h)
	return d.Resume(h, buf, l)
}

func (d *dataPayloadDecoder) Resume(h Header, buf *DecodeBuffer, l Listener) Status {
	if d.stage == dataStagePadLength {
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
		d.stage = dataStageContent
	}

	if d.stage == dataStageContent {
		for d.remainingContent > 0 {
			n := buf.MinLengthRemaining(d.remainingContent)
			if n == 0 {
				return StatusInProgress
			}
			chunk := buf.Peek()[:n]
			buf.Advance(n)
			l.OnDataPayload(h, chunk)
			d.remainingContent -= n
		}
		d.stage = dataStagePadding
	}

	if d.stage == dataStagePadding {
		if st := d.padding.consumePadding(h, buf, l); st != StatusDone {
			return st
		}
		d.stage = dataStageDone
	}

	l.OnDataEnd(h)
	return StatusDone
}
