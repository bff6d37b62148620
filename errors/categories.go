package errors

// Category message heads used across the term package's platform adapters.
// Each is the "head" of a curated error and is meant to be matched with
// Is()/Has(), never string-compared directly by callers.
const (
	// EnvNotATerminal is produced when the driver rejects a state query or
	// write because the stream is not a TTY/console (piped, redirected, or
	// an emulated IDE console). This is the sole error class the Device
	// Error Guard treats as "inappropriate device".
	EnvNotATerminal = "stream is not a terminal"

	// EnvInvalidHandle is produced when a symbolic stream selector does not
	// resolve to a valid OS handle or file descriptor.
	EnvInvalidHandle = "invalid stream handle"

	// EnvApplyFailed is produced when the driver accepted a state query but
	// rejected the corresponding write.
	EnvApplyFailed = "failed to apply terminal state: %v"

	// EnvBuildTooOld is produced on Windows when the running build is older
	// than the threshold a requested feature needs.
	EnvBuildTooOld = "windows build %d is older than required build %d"

	// EnvNotSupportedOnPlatform is produced when an operation is meaningful
	// only on the other platform (for example CtrlChar axes on Windows).
	// AddFlag/SubFlag return it to their caller unchanged. No High-Level
	// Operation receives it: the POSIX no-op operations return a
	// Pseudo-Modification directly, and the Windows ones use no CtrlChar axis.
	EnvNotSupportedOnPlatform = "operation not supported on this platform"

	// DuplicateMod names the case of a (stream, value, axis) triple that
	// already exists in the modification registry. No code path produces
	// it: AddFlag/SubFlag return the existing item with a nil error instead.
	DuplicateMod = "modification already registered"
)
