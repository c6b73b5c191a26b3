package http2

import "fmt"

// SettingParameter is the 16-bit identifier of a SETTINGS parameter (RFC
// 7540 §6.5.2, plus RFC 9218's SETTINGS_ENABLE_CONNECT_PROTOCOL successor
// registrations).
type SettingParameter uint16

const (
	SettingHeaderTableSize      SettingParameter = 0x1
	SettingEnablePush           SettingParameter = 0x2
	SettingMaxConcurrentStreams SettingParameter = 0x3
	SettingInitialWindowSize    SettingParameter = 0x4
	SettingMaxFrameSize         SettingParameter = 0x5
	SettingMaxHeaderListSize    SettingParameter = 0x6
)

var settingParameterNames = map[SettingParameter]string{
	SettingHeaderTableSize:      "SETTINGS_HEADER_TABLE_SIZE",
	SettingEnablePush:           "SETTINGS_ENABLE_PUSH",
	SettingMaxConcurrentStreams: "SETTINGS_MAX_CONCURRENT_STREAMS",
	SettingInitialWindowSize:    "SETTINGS_INITIAL_WINDOW_SIZE",
	SettingMaxFrameSize:         "SETTINGS_MAX_FRAME_SIZE",
	SettingMaxHeaderListSize:    "SETTINGS_MAX_HEADER_LIST_SIZE",
}

func (p SettingParameter) String() string {
	if name, ok := settingParameterNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SETTINGS_UNKNOWN(0x%x)", uint16(p))
}

// settingsPayloadDecoder decodes a SETTINGS frame's payload (RFC 7540
// §6.5): zero or more 6-byte (parameter, value) records, or nothing at all
// for an ACK.
type settingsPayloadDecoder struct {
	acc              fixedAccumulator
	remainingContent int
}

func (d *settingsPayloadDecoder) Start(h Header, buf *DecodeBuffer, l Listener) Status {
	d.acc.reset()
	if h.Length()%SettingFieldsSize != 0 {
		l.OnFrameSizeError(h)
		return StatusError
	}
	if h.Has(FlagAck) {
		if h.Length() != 0 {
			l.OnFrameSizeError(h)
			return StatusError
		}
		l.OnSettingsAck(h)
		return StatusDone
	}
	d.remainingContent = int(h.Length())
	l.OnSettingsStart(h)
	return d.Resume(h, buf, l)
}

func (d *settingsPayloadDecoder) Resume(h Header, buf *DecodeBuffer, l Listener) Status {
	for d.remainingContent > 0 {
		if !d.acc.fill(buf, SettingFieldsSize) {
			return StatusInProgress
		}
		scratch := NewDecodeBuffer(d.acc.bytes(SettingFieldsSize))
		s := DecodeSettingFields(&scratch)
		l.OnSetting(h, s)
		d.remainingContent -= SettingFieldsSize
		d.acc.reset()
	}
	l.OnSettingsEnd(h)
	return StatusDone
}
