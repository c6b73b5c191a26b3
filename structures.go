package http2

// This file implements the fixed-structure decoders of spec §3.3/§4.2: pure
// functions that consume exactly EncodedSize(Struct) bytes from a
// DecodeBuffer already known to hold that many. Callers (the per-frame
// payload decoders) are responsible for verifying buf.Remaining() is
// sufficient before calling these — that's what fixedAccumulator is for.

// PriorityFields is the 5-byte structure carried by PRIORITY frames and,
// optionally, by HEADERS frames with the PRIORITY flag set.
type PriorityFields struct {
	Exclusive        bool
	StreamDependency uint32 // 31 bits
	Weight           uint16 // stored as raw+1, range 1..256
}

const PriorityFieldsSize = 5

// DecodePriorityFields decodes the 5-byte priority structure.
func DecodePriorityFields(buf *DecodeBuffer) PriorityFields {
	raw := buf.DecodeUint32()
	weight := buf.DecodeUint8()
	return PriorityFields{
		Exclusive:        raw&0x80000000 != 0,
		StreamDependency: raw & 0x7fffffff,
		Weight:           uint16(weight) + 1,
	}
}

// RstStreamFields is the 4-byte structure carried by RST_STREAM frames.
type RstStreamFields struct {
	ErrorCode ErrorCode
}

const RstStreamFieldsSize = 4

func DecodeRstStreamFields(buf *DecodeBuffer) RstStreamFields {
	return RstStreamFields{ErrorCode: ErrorCode(buf.DecodeUint32())}
}

// SettingFields is one 6-byte (parameter, value) record inside a SETTINGS
// frame's payload.
type SettingFields struct {
	Parameter SettingParameter
	Value     uint32
}

const SettingFieldsSize = 6

func DecodeSettingFields(buf *DecodeBuffer) SettingFields {
	param := SettingParameter(buf.DecodeUint16())
	value := buf.DecodeUint32()
	return SettingFields{Parameter: param, Value: value}
}

// PushPromiseFields is the 4-byte structure at the start of a PUSH_PROMISE
// frame's payload (after any padding length byte).
type PushPromiseFields struct {
	PromisedStreamID uint32 // 31 bits
}

const PushPromiseFieldsSize = 4

func DecodePushPromiseFields(buf *DecodeBuffer) PushPromiseFields {
	return PushPromiseFields{PromisedStreamID: buf.DecodeUint31()}
}

// PingFields is the 8 opaque bytes carried by PING frames.
type PingFields struct {
	OpaqueData [8]byte
}

const PingFieldsSize = 8

func DecodePingFields(buf *DecodeBuffer) PingFields {
	var f PingFields
	copy(f.OpaqueData[:], buf.Peek()[:8])
	buf.Advance(8)
	return f
}

// GoAwayFields is the 8-byte fixed prefix of a GOAWAY frame's payload;
// anything after it is opaque additional debug data, streamed separately.
type GoAwayFields struct {
	LastStreamID uint32 // 31 bits
	ErrorCode    ErrorCode
}

const GoAwayFieldsSize = 8

func DecodeGoAwayFields(buf *DecodeBuffer) GoAwayFields {
	last := buf.DecodeUint31()
	code := buf.DecodeUint32()
	return GoAwayFields{LastStreamID: last, ErrorCode: ErrorCode(code)}
}

// WindowUpdateFields is the 4-byte structure carried by WINDOW_UPDATE
// frames.
type WindowUpdateFields struct {
	WindowSizeIncrement uint32 // 31 bits
}

const WindowUpdateFieldsSize = 4

func DecodeWindowUpdateFields(buf *DecodeBuffer) WindowUpdateFields {
	return WindowUpdateFields{WindowSizeIncrement: buf.DecodeUint31()}
}

// AltSvcFields is the 2-byte origin-length prefix of an ALTSVC frame's
// payload.
type AltSvcFields struct {
	OriginLength uint16
}

const AltSvcFieldsSize = 2

func DecodeAltSvcFields(buf *DecodeBuffer) AltSvcFields {
	return AltSvcFields{OriginLength: buf.DecodeUint16()}
}

// PriorityUpdateFields is the 4-byte prioritized-stream-id prefix of a
// PRIORITY_UPDATE frame's payload.
type PriorityUpdateFields struct {
	PrioritizedStreamID uint32 // 31 bits
}

const PriorityUpdateFieldsSize = 4

func DecodePriorityUpdateFields(buf *DecodeBuffer) PriorityUpdateFields {
	return PriorityUpdateFields{PrioritizedStreamID: buf.DecodeUint31()}
}
