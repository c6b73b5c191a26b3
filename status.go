package http2

// Status is the tri-state result returned by every Start/Resume pair in the
// decoder. Layers never block: they return Status to their caller instead.
type Status int

const (
	// StatusDone means the logical unit (structure, frame, payload) has been
	// fully decoded and the listener has received every callback for it.
	StatusDone Status = iota
	// StatusInProgress means the input was exhausted before the logical unit
	// completed; the buffer passed in is now empty and the caller must
	// invoke Resume with more bytes once they're available.
	StatusInProgress
	// StatusError means a decoding error was detected and reported to the
	// listener; the component has latched the error and will refuse further
	// work until reset onto a new logical unit.
	StatusError
)

// String implements fmt.Stringer for use in test failure messages and ad
// hoc debugging, mirroring the DebugString() methods the original decoder
// exposes on every small value type.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusInProgress:
		return "InProgress"
	case StatusError:
		return "Error"
	default:
		return "UnknownStatus"
	}
}
