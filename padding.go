package http2

// paddingDecoder implements the padding policy shared by DATA, HEADERS and
// PUSH_PROMISE frames (spec §4.4.1): an optional 1-byte Pad Length field at
// the start of the payload when FlagPadded is set, and that many padding
// bytes at the end, after whatever content the frame type itself defines.
//
// Splitting this out once avoids repeating the same pad-length validation
// in every padded frame type's payload decoder.
type paddingDecoder struct {
	acc              fixedAccumulator
	padded           bool
	gotPadLength     bool
	padLength        uint8
	remainingPadding int
}

func (p *paddingDecoder) reset(h Header) {
	p.acc.reset()
	p.padded = h.Has(FlagPadded)
	p.gotPadLength = false
	p.padLength = 0
	p.remainingPadding = 0
}

// decodePadLength resumes decoding the optional Pad Length field. done is
// false while more bytes are needed. When done is true, contentLength is
// how many bytes of the frame's declared length remain for the frame
// type's own content (after subtracting the pad length field itself and
// the trailing padding), and tooLong reports PadLength+1 > header.Length().
func (p *paddingDecoder) decodePadLength(h Header, buf *DecodeBuffer) (done bool, contentLength int, tooLong bool) {
	if !p.padded {
		return true, int(h.Length()), false
	}
	if !p.gotPadLength {
		if !p.acc.fill(buf, 1) {
			return false, 0, false
		}
		p.padLength = p.acc.bytes(1)[0]
		p.gotPadLength = true
	}
	total := int(h.Length()) - 1
	if int(p.padLength) > total {
		return true, 0, true
	}
	p.remainingPadding = int(p.padLength)
	return true, total - int(p.padLength), false
}

// consumePadding streams whatever padding bytes are currently available in
// buf to the listener, returning StatusInProgress until all of PadLength
// bytes have been delivered.
func (p *paddingDecoder) consumePadding(h Header, buf *DecodeBuffer, l Listener) Status {
	if p.remainingPadding == 0 {
		return StatusDone
	}
	n := buf.MinLengthRemaining(p.remainingPadding)
	if n > 0 {
		chunk := buf.Peek()[:n]
		buf.Advance(n)
		l.OnPadding(h, chunk)
		p.remainingPadding -= n
	}
	if p.remainingPadding > 0 {
		return StatusInProgress
	}
	return StatusDone
}
