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

//go:build windows

package term

import (
	"golang.org/x/sys/windows"

	"github.com/srccircumflex/vtmode/errors"
)

// windowsState is the Windows concrete DriverState: a single console-mode
// bitmask per stream.
type windowsState struct {
	mode uint32
}

// windowsAdapter is the Windows Platform Adapter.
type windowsAdapter struct{}

func platformAdapter() Adapter { return windowsAdapter{} }

func stdHandleConst(sel Selector) uint32 {
	switch sel {
	case Stdin:
		return windows.STD_INPUT_HANDLE
	case Stdout:
		return windows.STD_OUTPUT_HANDLE
	case Stderr:
		return windows.STD_ERROR_HANDLE
	default:
		return 0
	}
}

// errorInvalidHandle is Windows error 6 (ERROR_INVALID_HANDLE). The Windows
// adapter treats this specific code as the "inappropriate device"
// condition (the POSIX adapter uses ENOTTY): a stream that is not a real
// console (redirected, piped, or an IDE-emulated console often reports
// this way).
const errorInvalidHandle = 6

func isInappropriateDevice(err error) bool {
	errno, ok := err.(windows.Errno)
	return ok && uint32(errno) == errorInvalidHandle
}

func (windowsAdapter) Handle(sel Selector) (StreamId, error) {
	h, err := windows.GetStdHandle(stdHandleConst(sel))
	if err != nil || h == windows.InvalidHandle {
		return StreamId{}, errors.Errorf(errors.EnvInvalidHandle)
	}
	return StreamId{selector: sel, fd: uintptr(h)}, nil
}

func (windowsAdapter) GetState(stream StreamId) (DriverState, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.fd), &mode); err != nil {
		if isInappropriateDevice(err) {
			return nil, errors.Errorf(errors.EnvNotATerminal)
		}
		return nil, errors.Errorf(errors.EnvApplyFailed, err)
	}
	return windowsState{mode: mode}, nil
}

func (windowsAdapter) SetState(stream StreamId, state DriverState, timing Timing) error {
	s, ok := state.(windowsState)
	if !ok {
		return errors.Errorf(errors.EnvApplyFailed, "not a windows driver state")
	}
	if err := windows.SetConsoleMode(windows.Handle(stream.fd), s.mode); err != nil {
		if isInappropriateDevice(err) {
			return errors.Errorf(errors.EnvNotATerminal)
		}
		return errors.Errorf(errors.EnvApplyFailed, err)
	}
	return nil
}

// ReadFlag ignores axis: Windows has exactly one axis per stream.
func (windowsAdapter) ReadFlag(state DriverState, axis AxisKind) (int, error) {
	s, ok := state.(windowsState)
	if !ok {
		return 0, errors.Errorf(errors.EnvApplyFailed, "not a windows driver state")
	}
	return int(s.mode), nil
}

// WriteFlag ignores axis for the same reason.
func (windowsAdapter) WriteFlag(state DriverState, axis AxisKind, bits int, op FlagOp) (DriverState, error) {
	s, ok := state.(windowsState)
	if !ok {
		return nil, errors.Errorf(errors.EnvApplyFailed, "not a windows driver state")
	}
	if op == OpSet {
		s.mode |= uint32(bits)
	} else {
		s.mode &^= uint32(bits)
	}
	return s, nil
}

// ReadCC always fails: control-character slots do not exist in the Windows
// console mode model.
func (windowsAdapter) ReadCC(state DriverState, slot CCSlot) (ccValue, error) {
	return ccValue{}, errors.Errorf(errors.EnvNotSupportedOnPlatform)
}

// WriteCC returns the input state unchanged as the "pseudo" sentinel
// alongside EnvNotSupportedOnPlatform. No Windows High-Level Operation
// uses a CtrlChar axis; a direct AddFlag/SubFlag call with one gets the
// error back.
func (windowsAdapter) WriteCC(state DriverState, slot CCSlot, v ccValue) (DriverState, error) {
	return state, errors.Errorf(errors.EnvNotSupportedOnPlatform)
}

func (windowsAdapter) BuildCheck(requiredBuild int) error {
	info := windows.RtlGetVersion()
	if int(info.BuildNumber) < requiredBuild {
		return errors.Errorf(errors.EnvBuildTooOld, info.BuildNumber, requiredBuild)
	}
	return nil
}

func platformWindowSize(stream StreamId) (cols, rows int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if e := windows.GetConsoleScreenBufferInfo(windows.Handle(stream.fd), &info); e != nil {
		if isInappropriateDevice(e) {
			return 0, 0, errors.Errorf(errors.EnvNotATerminal)
		}
		return 0, 0, errors.Errorf(errors.EnvApplyFailed, e)
	}
	cols = int(info.Window.Right-info.Window.Left) + 1
	rows = int(info.Window.Bottom-info.Window.Top) + 1
	return cols, rows, nil
}
