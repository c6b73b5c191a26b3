package http2

import "fmt"

// ErrorCode is the 32-bit HTTP/2 error code carried by RST_STREAM and
// GOAWAY frames (https://tools.ietf.org/html/rfc7540#section-7). Unknown
// values are preserved rather than rejected.
type ErrorCode uint32

const (
	NoError            ErrorCode = 0x0
	ProtocolError      ErrorCode = 0x1
	InternalError      ErrorCode = 0x2
	FlowControlError   ErrorCode = 0x3
	SettingsTimeout    ErrorCode = 0x4
	StreamClosedError  ErrorCode = 0x5
	FrameSizeErrorCode ErrorCode = 0x6
	RefusedStream      ErrorCode = 0x7
	Cancel             ErrorCode = 0x8
	CompressionError   ErrorCode = 0x9
	ConnectError       ErrorCode = 0xa
	EnhanceYourCalm    ErrorCode = 0xb
	InadequateSecurity ErrorCode = 0xc
	HTTP11Required     ErrorCode = 0xd
)

var errorCodeNames = map[ErrorCode]string{
	NoError:            "NO_ERROR",
	ProtocolError:      "PROTOCOL_ERROR",
	InternalError:      "INTERNAL_ERROR",
	FlowControlError:   "FLOW_CONTROL_ERROR",
	SettingsTimeout:    "SETTINGS_TIMEOUT",
	StreamClosedError:  "STREAM_CLOSED",
	FrameSizeErrorCode: "FRAME_SIZE_ERROR",
	RefusedStream:      "REFUSED_STREAM",
	Cancel:             "CANCEL",
	CompressionError:   "COMPRESSION_ERROR",
	ConnectError:       "CONNECT_ERROR",
	EnhanceYourCalm:    "ENHANCE_YOUR_CALM",
	InadequateSecurity: "INADEQUATE_SECURITY",
	HTTP11Required:     "HTTP_1_1_REQUIRED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_ERROR_CODE(0x%x)", uint32(c))
}

// FrameErrorKind classifies the decode-time errors the core itself can
// raise, as distinct from ErrorCode, which is wire data carried inside
// RST_STREAM/GOAWAY frames.
type FrameErrorKind int

const (
	// FrameSizeError is raised by any payload decoder whose declared length
	// cannot hold the structure(s) mandatory for that frame type.
	FrameSizeError FrameErrorKind = iota
	// PaddingTooLong is raised when Pad-Length+1 exceeds payload_length.
	PaddingTooLong
)

func (k FrameErrorKind) String() string {
	switch k {
	case FrameSizeError:
		return "FrameSizeError"
	case PaddingTooLong:
		return "PaddingTooLong"
	default:
		return "UnknownFrameErrorKind"
	}
}

// FrameError describes, as an error value, the frame-layer errors that are
// reported to the listener via on_frame_size_error / on_padding_too_long.
// The payload decoders and Http2FrameDecoder do not construct it: they
// report errors through the listener and return StatusError.
type FrameError struct {
	Kind    FrameErrorKind
	Header  Header
	Missing int // only meaningful for PaddingTooLong
}

func (e *FrameError) Error() string {
	switch e.Kind {
	case PaddingTooLong:
		return fmt.Sprintf("http2: frame type=%s stream=%d: padding too long, missing %d bytes",
			e.Header.Type(), e.Header.Stream(), e.Missing)
	default:
		return fmt.Sprintf("http2: frame type=%s stream=%d: frame size error", e.Header.Type(), e.Header.Stream())
	}
}

// ErrUnknownFrameType is never returned as a decoding error: per RFC 7540 an
// implementation MUST ignore frame types it doesn't understand. It exists so
// callers of the fixed-structure decoders can recognize the case without the
// core having to special-case it; the frame decoder itself routes unknown
// types through UnknownPayload rather than returning this.
var ErrUnknownFrameType = fmt.Errorf("http2: unknown frame type")
