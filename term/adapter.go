// This file is part of vtmode.
//
// vtmode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vtmode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vtmode.  If not, see <https://www.gnu.org/licenses/>.

package term

// Adapter is the only place where OS-specific vocabulary exists: no other
// component in this package mentions termios, console modes, or file
// descriptors. The POSIX implementation (adapter_unix.go) wraps an
// attribute tuple and the control-character array; the Windows
// implementation (adapter_windows.go) wraps a single console-mode bitmask
// per stream.
type Adapter interface {
	// Handle resolves a symbolic selector to a StreamId. Fails with
	// errors.EnvInvalidHandle if the OS reports no valid handle.
	Handle(sel Selector) (StreamId, error)

	// GetState reads the current driver state of stream. Fails with
	// errors.EnvNotATerminal if the driver rejects the query because the
	// stream is not a terminal (SetState reports the same class for a
	// rejected write).
	GetState(stream StreamId) (DriverState, error)

	// SetState writes state back to stream's driver. Fails with
	// errors.EnvApplyFailed if the driver rejects the write. timing is
	// ignored on Windows.
	SetState(stream StreamId, state DriverState, timing Timing) error

	// ReadFlag reads the current bits of the given flag axis out of state.
	ReadFlag(state DriverState, axis AxisKind) (int, error)

	// WriteFlag returns a copy of state with bits applied to axis according
	// to op, without calling SetState.
	WriteFlag(state DriverState, axis AxisKind, bits int, op FlagOp) (DriverState, error)

	// ReadCC reads the current value of a control-character slot out of
	// state. Returns errors.EnvNotSupportedOnPlatform on Windows.
	ReadCC(state DriverState, slot CCSlot) (ccValue, error)

	// WriteCC returns a copy of state with the control-character slot set
	// to v. On Windows it returns a sentinel "pseudo" state (the input
	// state, unchanged) and errors.EnvNotSupportedOnPlatform; AddFlag/SubFlag
	// return that error to their caller.
	WriteCC(state DriverState, slot CCSlot, v ccValue) (DriverState, error)

	// BuildCheck fails with errors.EnvBuildTooOld on Windows if the running
	// build is older than requiredBuild. No-op on POSIX.
	BuildCheck(requiredBuild int) error
}
