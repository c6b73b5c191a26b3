package hpack

// HeaderFieldListener receives fully resolved header fields as an HPACK
// header block is decoded, plus block boundary notifications.
type HeaderFieldListener interface {
	OnHeaderBlockStart()
	OnHeaderField(f HeaderField)
	// OnHeaderBlockEnd reports the block's totals: totalUncompressedBytes
	// is the sum of len(name)+len(value) across every emitted field,
	// totalCompressedBytes is the number of HPACK wire bytes consumed
	// across every DecodeFragment call that belonged to this block.
	OnHeaderBlockEnd(totalUncompressedBytes, totalCompressedBytes uint64)
}

// decoderState owns the dynamic table and mediates the §4.2 size-update
// acknowledgement protocol: a local SETTINGS_HEADER_TABLE_SIZE change only
// takes effect once the peer's encoder sends a matching Dynamic Table Size
// Update entry, and until it does, the decoder must require and bound that
// entry according to every limit announced since the previous block.
type decoderState struct {
	table *dynamicTable
	block *blockDecoder
	cfg   Config

	// lowestHeaderTableSize is the lowest SETTINGS_HEADER_TABLE_SIZE value
	// acknowledged since the end of the previous header block; resets to
	// finalHeaderTableSize when a block ends.
	lowestHeaderTableSize uint32
	// finalHeaderTableSize is the most recently acknowledged value.
	finalHeaderTableSize uint32

	inBlock           bool
	requireSizeUpdate bool
	allowSizeUpdate   bool
	sizeUpdatesSeen   int

	blockUncompressedBytes uint64
	blockCompressedBytes   uint64
}

func newDecoderState(initialMaxSize uint32, cfg Config) *decoderState {
	return &decoderState{
		table:                 newDynamicTable(initialMaxSize),
		block:                 newBlockDecoder(cfg.MaxStringSize),
		cfg:                   cfg,
		finalHeaderTableSize:  initialMaxSize,
		lowestHeaderTableSize: initialMaxSize,
	}
}

// applyHeaderTableSizeSetting records a local SETTINGS_HEADER_TABLE_SIZE
// change. It does not touch the dynamic table itself: the table only
// shrinks (or grows) once the peer's encoder sends a matching Dynamic
// Table Size Update entry. Call once per distinct value acknowledged,
// in the order acknowledged, between decoding the SETTINGS ACK and the next header
// block (RFC 7541 §4.2).
func (s *decoderState) applyHeaderTableSizeSetting(newMax uint32) {
	if newMax < s.lowestHeaderTableSize {
		s.lowestHeaderTableSize = newMax
	}
	s.finalHeaderTableSize = newMax
}

func (s *decoderState) decodeFragment(buf *DecodeBuffer, l HeaderFieldListener) (Status, error) {
	if !s.inBlock {
		s.beginBlock(l)
	}
	st, err := s.block.decodeEntries(buf, func(e decodedEntry) error {
		return s.applyEntry(e, l)
	})
	s.blockCompressedBytes += uint64(buf.Offset())
	if s.cfg.MaxHeaderBlockSize != 0 && s.blockCompressedBytes > s.cfg.MaxHeaderBlockSize {
		return StatusError, newError(ErrCompressedHeaderSizeExceedsLimit, "")
	}
	if err != nil {
		return StatusError, err
	}
	return st, nil
}

// beginBlock resets block-scoped flags (RFC 7541 §4.13.3) and computes
// whether this block's first entry must be a dynamic table size update:
// required exactly when the table's current limit is still above the
// lowest limit acknowledged since the previous block. An update is always
// permitted at the start of a block regardless (RFC 7541 §6.3), subject to
// the lowest/final bounds enforced in applySizeUpdate.
func (s *decoderState) beginBlock(l HeaderFieldListener) {
	currentLimit := s.table.MaxSize()
	s.requireSizeUpdate = s.lowestHeaderTableSize < currentLimit
	s.allowSizeUpdate = true
	s.sizeUpdatesSeen = 0
	s.blockUncompressedBytes = 0
	s.blockCompressedBytes = 0
	s.inBlock = true
	l.OnHeaderBlockStart()
}

// endBlock is called once the caller knows no further fragments belong to
// the current header block (END_HEADERS seen). It is an error to end a
// block while an entry is only partially decoded, or while a required
// size update was never satisfied.
func (s *decoderState) endBlock(l HeaderFieldListener) error {
	if s.block.entryStarted {
		return newError(ErrTruncatedHeaderBlock, "")
	}
	if s.requireSizeUpdate {
		return newError(ErrMissingDynamicTableSizeUpdate, "")
	}
	s.inBlock = false
	// Start a fresh tracking window for settings acknowledged between
	// this block and the next.
	s.lowestHeaderTableSize = s.finalHeaderTableSize
	l.OnHeaderBlockEnd(s.blockUncompressedBytes, s.blockCompressedBytes)
	return nil
}

func (s *decoderState) applyEntry(e decodedEntry, l HeaderFieldListener) error {
	if e.typ == entryDynamicTableSizeUpdate {
		if !s.allowSizeUpdate {
			return newError(ErrDynamicTableSizeUpdateNotAllowed, "")
		}
		return s.applySizeUpdate(e.newDynamicTableSize)
	}

	if s.requireSizeUpdate {
		return newError(ErrMissingDynamicTableSizeUpdate, "")
	}
	// A size update may no longer appear once a regular entry has started
	// the block (RFC 7541 §4.2: it "MUST occur at the beginning").
	s.allowSizeUpdate = false

	var field HeaderField
	switch e.typ {
	case entryIndexedHeaderField:
		f, ok := resolveIndex(e.index, s.table)
		if !ok {
			return newError(ErrIndexOutOfRange, "")
		}
		field = f
	default:
		name := e.name
		if e.hasNameIndex {
			f, ok := resolveIndex(e.index, s.table)
			if !ok {
				return newError(ErrIndexOutOfRange, "")
			}
			name = f.Name
		}
		field = HeaderField{Name: name, Value: e.value, Sensitive: e.sensitive}
		if e.typ == entryLiteralIncrementalIndexing {
			s.table.insert(field)
		}
	}

	s.blockUncompressedBytes += uint64(len(field.Name) + len(field.Value))
	l.OnHeaderField(field)
	return nil
}

// applySizeUpdate validates and applies one dynamic table size update
// entry against the bounds established by beginBlock (RFC 7541 §4.2). A
// size exceeding the most recently acknowledged setting is rejected
// outright; if this is still the required first update, it is held to the
// stricter low water mark as well.
func (s *decoderState) applySizeUpdate(newSize uint64) error {
	if newSize > uint64(s.finalHeaderTableSize) {
		return newError(ErrDynamicTableSizeUpdateAboveAcknowledgedSetting, "")
	}
	if s.requireSizeUpdate && newSize > uint64(s.lowestHeaderTableSize) {
		return newError(ErrInitialDynamicTableSizeUpdateAboveLowWaterMark, "")
	}
	s.table.setMaxSize(uint32(newSize))
	s.requireSizeUpdate = false
	s.sizeUpdatesSeen++
	if s.sizeUpdatesSeen >= 2 {
		s.allowSizeUpdate = false
	}
	return nil
}
