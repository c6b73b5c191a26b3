package hpack

// decodedEntry is the raw result of decoding one header block entry,
// before dynamic-table name resolution (which state.go performs, since it
// is the layer that owns the table).
type decodedEntry struct {
	typ                 entryType
	index               uint64 // index for IndexedHeaderField / name index for literals with one
	hasNameIndex        bool
	name                string // literal name, only set when hasNameIndex is false
	value               string
	sensitive           bool
	newDynamicTableSize uint64
}

const (
	entryStageFirstByte = iota
	entryStageIndex
	entryStageName
	entryStageValue
	entryStageDone
)

// entryDecoder resumably decodes a single HPACK header block entry (RFC
// 7541 §6): first byte classification, an index/length varint, and for
// literal entries with no name index, a literal name and value.
type entryDecoder struct {
	stage int

	indexDec     varintDecoder
	nameStr      stringDecoder
	nameStarted  bool
	valueStr     stringDecoder
	valueStarted bool

	result decodedEntry
}

// newEntryDecoder constructs an entryDecoder whose name/value string
// decoders are tagged with the right too-long error and string size limit
// (RFC 7541 §4.12/§6.3) once, up front, rather than on every reset.
func newEntryDecoder(maxStringSize uint64) *entryDecoder {
	d := &entryDecoder{}
	d.nameStr.tooLongErr = ErrNameTooLong
	d.nameStr.maxLength = maxStringSize
	d.valueStr.tooLongErr = ErrValueTooLong
	d.valueStr.maxLength = maxStringSize
	return d
}

func (d *entryDecoder) reset() {
	d.stage = entryStageFirstByte
	d.nameStarted = false
	d.valueStarted = false
	d.result = decodedEntry{}
}

func (d *entryDecoder) Start(buf *DecodeBuffer) (decodedEntry, Status, error) {
	d.reset()
	return d.Resume(buf)
}

func (d *entryDecoder) Resume(buf *DecodeBuffer) (decodedEntry, Status, error) {
	if d.stage == entryStageFirstByte {
		if !buf.HasData() {
			return decodedEntry{}, StatusInProgress, nil
		}
		first := buf.DecodeUint8()
		typ, mask, val := classifyEntry(first)
		d.result.typ = typ
		d.stage = entryStageIndex
		idx, st, err := d.indexDec.Start(val, mask, buf)
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		if st != StatusDone {
			return decodedEntry{}, StatusInProgress, nil
		}
		if done, err := d.afterIndex(idx); err != nil {
			return decodedEntry{}, StatusError, err
		} else if done {
			return d.result, StatusDone, nil
		}
	} else if d.stage == entryStageIndex {
		idx, st, err := d.indexDec.Resume(buf)
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		if st != StatusDone {
			return decodedEntry{}, StatusInProgress, nil
		}
		if done, err := d.afterIndex(idx); err != nil {
			return decodedEntry{}, StatusError, err
		} else if done {
			return d.result, StatusDone, nil
		}
	}

	if d.stage == entryStageName {
		var st Status
		var err error
		if !d.nameStarted {
			st, err = d.nameStr.Start(buf)
			d.nameStarted = true
		} else {
			st, err = d.nameStr.Resume(buf)
		}
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		if st != StatusDone {
			return decodedEntry{}, StatusInProgress, nil
		}
		name, err := d.nameStr.value()
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		d.result.name = name
		d.stage = entryStageValue
	}

	if d.stage == entryStageValue {
		var st Status
		var err error
		if !d.valueStarted {
			st, err = d.valueStr.Start(buf)
			d.valueStarted = true
		} else {
			st, err = d.valueStr.Resume(buf)
		}
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		if st != StatusDone {
			return decodedEntry{}, StatusInProgress, nil
		}
		value, err := d.valueStr.value()
		if err != nil {
			return decodedEntry{}, StatusError, err
		}
		d.result.value = value
		d.stage = entryStageDone
	}

	return d.result, StatusDone, nil
}

// afterIndex interprets the fully decoded index/length varint according
// to the entry's type, reporting whether the entry is already complete
// (done) or whether it still needs a literal name and/or value.
func (d *entryDecoder) afterIndex(idx uint64) (done bool, err error) {
	switch d.result.typ {
	case entryIndexedHeaderField:
		if idx == 0 {
			return false, newError(ErrIndexOutOfRange, "index 0 is not valid for an indexed header field")
		}
		d.result.index = idx
		d.stage = entryStageDone
		return true, nil
	case entryDynamicTableSizeUpdate:
		d.result.newDynamicTableSize = idx
		d.stage = entryStageDone
		return true, nil
	default: // literal types
		d.result.sensitive = d.result.typ == entryLiteralNeverIndexed
		if idx == 0 {
			d.result.hasNameIndex = false
			d.stage = entryStageName
		} else {
			d.result.hasNameIndex = true
			d.result.index = idx
			d.stage = entryStageValue
		}
		return false, nil
	}
}
