package http2

import "fmt"

// recordingListener implements Listener by appending a short description
// of every callback to events, for assertions in table-driven tests. It
// embeds NoopListener so new callbacks added to the interface don't break
// existing tests that don't care about them.
type recordingListener struct {
	NoopListener
	events []string
}

func (r *recordingListener) OnFrameHeader(h Header) {
	r.events = append(r.events, fmt.Sprintf("header type=%s stream=%d len=%d flags=%#x", h.Type(), h.Stream(), h.Length(), uint8(h.Flags())))
}

func (r *recordingListener) OnFrameSizeError(h Header) {
	r.events = append(r.events, fmt.Sprintf("frame_size_error type=%s stream=%d", h.Type(), h.Stream()))
}

func (r *recordingListener) OnPaddingTooLong(h Header, missing int) {
	r.events = append(r.events, fmt.Sprintf("padding_too_long stream=%d missing=%d", h.Stream(), missing))
}

func (r *recordingListener) OnDataStart(h Header) {
	r.events = append(r.events, fmt.Sprintf("data_start stream=%d", h.Stream()))
}

func (r *recordingListener) OnDataPayload(h Header, data []byte) {
	r.events = append(r.events, fmt.Sprintf("data_payload stream=%d data=%q", h.Stream(), data))
}

func (r *recordingListener) OnDataEnd(h Header) {
	r.events = append(r.events, fmt.Sprintf("data_end stream=%d", h.Stream()))
}

func (r *recordingListener) OnHeadersStart(h Header) {
	r.events = append(r.events, fmt.Sprintf("headers_start stream=%d", h.Stream()))
}

func (r *recordingListener) OnHeadersPriority(h Header, p PriorityFields) {
	r.events = append(r.events, fmt.Sprintf("headers_priority stream=%d dep=%d excl=%v weight=%d", h.Stream(), p.StreamDependency, p.Exclusive, p.Weight))
}

func (r *recordingListener) OnHpackFragment(h Header, fragment []byte) {
	r.events = append(r.events, fmt.Sprintf("hpack_fragment stream=%d len=%d", h.Stream(), len(fragment)))
}

func (r *recordingListener) OnHeadersEnd(h Header) {
	r.events = append(r.events, fmt.Sprintf("headers_end stream=%d", h.Stream()))
}

func (r *recordingListener) OnPriorityFrame(h Header, p PriorityFields) {
	r.events = append(r.events, fmt.Sprintf("priority stream=%d dep=%d", h.Stream(), p.StreamDependency))
}

func (r *recordingListener) OnContinuationStart(h Header) {
	r.events = append(r.events, fmt.Sprintf("continuation_start stream=%d", h.Stream()))
}

func (r *recordingListener) OnContinuationEnd(h Header) {
	r.events = append(r.events, fmt.Sprintf("continuation_end stream=%d", h.Stream()))
}

func (r *recordingListener) OnRstStream(h Header, f RstStreamFields) {
	r.events = append(r.events, fmt.Sprintf("rst_stream stream=%d code=%s", h.Stream(), f.ErrorCode))
}

func (r *recordingListener) OnSettingsStart(h Header) {
	r.events = append(r.events, "settings_start")
}

func (r *recordingListener) OnSetting(h Header, s SettingFields) {
	r.events = append(r.events, fmt.Sprintf("setting %s=%d", s.Parameter, s.Value))
}

func (r *recordingListener) OnSettingsEnd(h Header) {
	r.events = append(r.events, "settings_end")
}

func (r *recordingListener) OnSettingsAck(h Header) {
	r.events = append(r.events, "settings_ack")
}

func (r *recordingListener) OnPushPromiseStart(h Header, f PushPromiseFields) {
	r.events = append(r.events, fmt.Sprintf("push_promise_start stream=%d promised=%d", h.Stream(), f.PromisedStreamID))
}

func (r *recordingListener) OnPushPromiseEnd(h Header) {
	r.events = append(r.events, fmt.Sprintf("push_promise_end stream=%d", h.Stream()))
}

func (r *recordingListener) OnPing(h Header, f PingFields) {
	r.events = append(r.events, fmt.Sprintf("ping %x", f.OpaqueData))
}

func (r *recordingListener) OnPingAck(h Header, f PingFields) {
	r.events = append(r.events, fmt.Sprintf("ping_ack %x", f.OpaqueData))
}

func (r *recordingListener) OnGoAwayStart(h Header, f GoAwayFields) {
	r.events = append(r.events, fmt.Sprintf("goaway_start last=%d code=%s", f.LastStreamID, f.ErrorCode))
}

func (r *recordingListener) OnGoAwayOpaqueData(h Header, data []byte) {
	r.events = append(r.events, fmt.Sprintf("goaway_opaque %q", data))
}

func (r *recordingListener) OnGoAwayEnd(h Header) {
	r.events = append(r.events, "goaway_end")
}

func (r *recordingListener) OnWindowUpdate(h Header, f WindowUpdateFields) {
	r.events = append(r.events, fmt.Sprintf("window_update stream=%d incr=%d", h.Stream(), f.WindowSizeIncrement))
}

func (r *recordingListener) OnPadLength(h Header, padLength uint8) {
	r.events = append(r.events, fmt.Sprintf("pad_length=%d", padLength))
}

func (r *recordingListener) OnPadding(h Header, padding []byte) {
	r.events = append(r.events, fmt.Sprintf("padding len=%d", len(padding)))
}
