package term

// Selector names one of the conventional standard streams. Callers never
// pass raw file descriptors or Windows handles; they pass a Selector to
// Handle and get back an opaque StreamId.
type Selector int

const (
	Stdin Selector = iota
	Stdout
	Stderr
)

func (s Selector) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// StreamId is an opaque identifier for an open standard stream. On POSIX it
// carries the file descriptor; on Windows it carries the console handle.
// It is comparable, so it can be used as the key of a map and as part of a
// modification's identity triple.
type StreamId struct {
	selector Selector
	fd       uintptr // posix: file descriptor. windows: console handle value.
}

// Selector returns the symbolic selector this StreamId was acquired with.
func (s StreamId) Selector() Selector { return s.selector }

// AxisKind selects which field of the driver state a modification targets.
type AxisKind int

const (
	AxisIn AxisKind = iota
	AxisOut
	AxisCtrl
	AxisLocal
	AxisCtrlChar
)

func (a AxisKind) String() string {
	switch a {
	case AxisIn:
		return "in"
	case AxisOut:
		return "out"
	case AxisCtrl:
		return "ctrl"
	case AxisLocal:
		return "local"
	case AxisCtrlChar:
		return "ctrlchar"
	default:
		return "unknown"
	}
}

// CCSlot names a symbolic control-character slot. These are the only slots
// the High-Level Operations and the external surface ever need; the POSIX
// adapter maps them onto the much larger termios cc array internally.
type CCSlot int

const (
	INTR CCSlot = iota
	QUIT
	XON
	XOFF
	VMIN  // non-canonical read byte-count threshold (POSIX only)
	VTIME // non-canonical read timeout, in deciseconds (POSIX only)
)

// Axis is the tagged selector that collapses the source's many
// axis-specific overloads behind one signature. CtrlChar slots are only
// meaningful together with AxisCtrlChar; the Slot field is ignored for
// every other Kind.
type Axis struct {
	Kind AxisKind
	Slot CCSlot
}

// In, Out, Ctrl and Local build the four POSIX flag axes. On Windows there
// is exactly one axis and the Kind is ignored by the adapter (the selector
// is accepted but has no effect, per spec: "on Windows there is exactly one
// axis and the selector is ignored").
func In() Axis    { return Axis{Kind: AxisIn} }
func Out() Axis   { return Axis{Kind: AxisOut} }
func Ctrl() Axis  { return Axis{Kind: AxisCtrl} }
func Local() Axis { return Axis{Kind: AxisLocal} }

// CtrlChar builds the control-character axis for the given symbolic slot.
// The Windows adapter rejects this axis with EnvNotSupportedOnPlatform,
// which AddFlag/SubFlag return to their caller.
func CtrlChar(slot CCSlot) Axis { return Axis{Kind: AxisCtrlChar, Slot: slot} }

// Timing selects when a POSIX state write takes effect; it is ignored on
// Windows. Immediate is the default used by every High-Level Operation.
type Timing int

const (
	Immediate Timing = iota
	Drain
	Flush
)

// FlagOp selects whether WriteFlag sets or clears bits.
type FlagOp int

const (
	OpSet FlagOp = iota
	OpClear
)

// ModValue is either an integer bit constant (flag axes) or a
// control-character specification (CtrlChar axes). Two ModValues compare
// equal with == , which is relied on for the (stream, value, axis) identity
// triple.
type ModValue struct {
	flag       int
	isCC       bool
	ccByte     byte
	ccDisabled bool
}

// Flag builds a ModValue carrying a flag-bit constant.
func Flag(bits int) ModValue { return ModValue{flag: bits} }

// CtrlCharByte builds a ModValue that sets a control-character slot to a
// specific byte (0x00-0x7F).
func CtrlCharByte(b byte) ModValue { return ModValue{isCC: true, ccByte: b & 0x7f} }

// CtrlCharDisabled builds a ModValue that disables a control-character
// slot (POSIX _POSIX_VDISABLE).
func CtrlCharDisabled() ModValue { return ModValue{isCC: true, ccDisabled: true} }

// Bits returns the flag-bit value this ModValue carries; it is zero for
// control-character values.
func (v ModValue) Bits() int { return v.flag }

// ccValue is the adapter-facing representation of a control character: a
// disabled slot, or a specific byte.
type ccValue struct {
	disabled bool
	b        byte
}

func (v ModValue) toCC() ccValue { return ccValue{disabled: v.ccDisabled, b: v.ccByte} }

// DriverState is an opaque, platform-dependent snapshot of a stream's
// driver state. Its concrete type is chosen by the active Adapter; callers
// never inspect it directly, only through ReadFlag/WriteFlag/ReadCC/WriteCC.
type DriverState interface{}

// modKey is the (stream, value, axis) identity triple ModRegistry
// deduplicates on (spec invariant I1).
type modKey struct {
	stream StreamId
	value  ModValue
	axis   Axis
}
