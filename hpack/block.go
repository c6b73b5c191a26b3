package hpack

// blockDecoder repeatedly decodes entries out of a byte stream, invoking a
// callback for each fully-decoded one. betweenEntries is true exactly when
// the stream position sits on an entry boundary: the field exists so a
// caller assembling a block across several frames can tell "ran out of
// bytes between entries" (fine, more CONTINUATION frames are expected)
// apart from "ran out of bytes mid-entry" (also fine, same reason, but
// useful for diagnostics).
type blockDecoder struct {
	entry          *entryDecoder
	entryStarted   bool
	betweenEntries bool
}

func newBlockDecoder(maxStringSize uint64) *blockDecoder {
	return &blockDecoder{entry: newEntryDecoder(maxStringSize), betweenEntries: true}
}

// decodeEntries decodes as many complete entries as buf currently makes
// available, calling onEntry for each. It returns StatusInProgress when
// buf runs out mid-entry and StatusDone when it runs out between entries;
// either way the caller resumes by calling decodeEntries again once more
// bytes of the same header block have arrived.
func (b *blockDecoder) decodeEntries(buf *DecodeBuffer, onEntry func(decodedEntry) error) (Status, error) {
	for buf.HasData() || b.entryStarted {
		var e decodedEntry
		var st Status
		var err error
		if !b.entryStarted {
			e, st, err = b.entry.Start(buf)
			b.entryStarted = true
			b.betweenEntries = false
		} else {
			e, st, err = b.entry.Resume(buf)
		}
		if err != nil {
			return StatusError, err
		}
		if st != StatusDone {
			return StatusInProgress, nil
		}
		b.entryStarted = false
		b.betweenEntries = true
		if err := onEntry(e); err != nil {
			return StatusError, err
		}
	}
	return StatusDone, nil
}
