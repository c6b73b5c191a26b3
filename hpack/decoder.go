package hpack

// Config holds the tunable limits a Decoder enforces (RFC 7541 §4.12,
// §6.3). The zero value is not meant to be used directly; NewDecoder
// fills in defaults for any field left unset.
type Config struct {
	// MaxStringSize bounds a single HPACK string literal's declared
	// length (name or value independently). Zero means "default to
	// MaxHeaderBlockSize if set, else a generous fixed ceiling" — see
	// NewDecoder.
	MaxStringSize uint64
	// MaxHeaderBlockSize bounds the cumulative HPACK wire-byte count of a
	// single header block, summed across every DecodeFragment call that
	// belongs to it. Zero means unlimited.
	MaxHeaderBlockSize uint64
}

// Option configures a Decoder at construction time.
type Option func(*Config)

// WithMaxStringSize overrides the per-string length ceiling.
func WithMaxStringSize(n uint64) Option {
	return func(c *Config) { c.MaxStringSize = n }
}

// WithMaxHeaderBlockSize overrides the per-block cumulative byte ceiling.
// A value of 0 leaves the block unbounded.
func WithMaxHeaderBlockSize(n uint64) Option {
	return func(c *Config) { c.MaxHeaderBlockSize = n }
}

// Decoder is the top-level, resumable HPACK decoder (RFC 7541). One
// instance tracks one direction of one HTTP/2 connection's dynamic table
// and must not be shared between goroutines, nor reused across
// connections.
type Decoder struct {
	state *decoderState
}

// NewDecoder constructs a Decoder whose dynamic table starts at
// initialMaxSize, the value this endpoint advertises for
// SETTINGS_HEADER_TABLE_SIZE. With no options, MaxStringSize defaults to
// MaxHeaderBlockSize when one is given, otherwise to
// defaultMaxStringLength, and MaxHeaderBlockSize defaults to unlimited.
func NewDecoder(initialMaxSize uint32, opts ...Option) *Decoder {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxStringSize == 0 {
		if cfg.MaxHeaderBlockSize != 0 {
			cfg.MaxStringSize = cfg.MaxHeaderBlockSize
		} else {
			cfg.MaxStringSize = defaultMaxStringLength
		}
	}
	return &Decoder{state: newDecoderState(initialMaxSize, cfg)}
}

// ApplyHeaderTableSizeSetting must be called whenever this endpoint's own
// SETTINGS_HEADER_TABLE_SIZE changes, before any header block that should
// observe the new limit is decoded (RFC 7541 §4.2).
func (d *Decoder) ApplyHeaderTableSizeSetting(newMax uint32) {
	d.state.applyHeaderTableSizeSetting(newMax)
}

// DecodeFragment feeds one HPACK header block fragment — the payload of a
// single HEADERS/CONTINUATION/PUSH_PROMISE frame, already stripped of any
// padding and of the priority or promised-stream-id substructures — into
// the decoder. l's OnHeaderBlockStart fires on the first fragment of a new
// block, and OnHeaderField fires as each entry resolves, which may span
// several DecodeFragment calls.
func (d *Decoder) DecodeFragment(buf *DecodeBuffer, l HeaderFieldListener) (Status, error) {
	return d.state.decodeFragment(buf, l)
}

// EndHeaderBlock must be called once the fragment belonging to the frame
// carrying END_HEADERS has been passed to DecodeFragment, to catch a block
// that ended mid-entry or never satisfied a required size update.
func (d *Decoder) EndHeaderBlock(l HeaderFieldListener) error {
	return d.state.endBlock(l)
}

// DynamicTableSize reports the dynamic table's current total entry size.
func (d *Decoder) DynamicTableSize() uint32 {
	return d.state.table.Size()
}

// DynamicTableLen reports the number of entries currently in the dynamic
// table.
func (d *Decoder) DynamicTableLen() int {
	return d.state.table.Len()
}
