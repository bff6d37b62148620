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

//go:build linux || darwin

package term

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/srccircumflex/vtmode/errors"
)

// unixState is the POSIX concrete DriverState: the 4-axis flag tuple plus
// the control-character array, exactly as captured by tcgetattr. Input and
// output speed live inside the embedded termios but this package never
// mutates them; they are along for the ride so a Reset restores them too.
type unixState struct {
	termios unix.Termios
}

// unixAdapter is the POSIX Platform Adapter: an ioctl(2)-based termios
// wrapper grounded on the same family of API github.com/pkg/term/termios
// and github.com/daedaluz/goserial use, via golang.org/x/sys/unix instead
// of cgo or raw syscall numbers.
type unixAdapter struct{}

func platformAdapter() Adapter { return unixAdapter{} }

func stdFile(sel Selector) *os.File {
	switch sel {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

func (unixAdapter) Handle(sel Selector) (StreamId, error) {
	f := stdFile(sel)
	if f == nil {
		return StreamId{}, errors.Errorf(errors.EnvInvalidHandle)
	}
	fd := f.Fd()
	return StreamId{selector: sel, fd: fd}, nil
}

func (unixAdapter) GetState(stream StreamId) (DriverState, error) {
	t, err := unix.IoctlGetTermios(int(stream.fd), ioctlGetTermios)
	if err != nil {
		if err == unix.ENOTTY {
			return nil, errors.Errorf(errors.EnvNotATerminal)
		}
		return nil, errors.Errorf(errors.EnvApplyFailed, err)
	}
	return unixState{termios: *t}, nil
}

func (unixAdapter) SetState(stream StreamId, state DriverState, timing Timing) error {
	s, ok := state.(unixState)
	if !ok {
		return errors.Errorf(errors.EnvApplyFailed, "not a posix driver state")
	}
	req := ioctlSetTermios
	switch timing {
	case Drain:
		req = ioctlSetDrain
	case Flush:
		req = ioctlSetFlush
	}
	if err := unix.IoctlSetTermios(int(stream.fd), req, &s.termios); err != nil {
		if err == unix.ENOTTY {
			return errors.Errorf(errors.EnvNotATerminal)
		}
		return errors.Errorf(errors.EnvApplyFailed, err)
	}
	return nil
}

func flagPtr(t *unix.Termios, axis AxisKind) *uint32 {
	switch axis {
	case AxisIn:
		return &t.Iflag
	case AxisOut:
		return &t.Oflag
	case AxisCtrl:
		return &t.Cflag
	case AxisLocal:
		return &t.Lflag
	default:
		return nil
	}
}

func (unixAdapter) ReadFlag(state DriverState, axis AxisKind) (int, error) {
	s, ok := state.(unixState)
	if !ok {
		return 0, errors.Errorf(errors.EnvApplyFailed, "not a posix driver state")
	}
	p := flagPtr(&s.termios, axis)
	if p == nil {
		return 0, errors.Errorf(errors.EnvNotSupportedOnPlatform)
	}
	return int(*p), nil
}

func (unixAdapter) WriteFlag(state DriverState, axis AxisKind, bits int, op FlagOp) (DriverState, error) {
	s, ok := state.(unixState)
	if !ok {
		return nil, errors.Errorf(errors.EnvApplyFailed, "not a posix driver state")
	}
	p := flagPtr(&s.termios, axis)
	if p == nil {
		return nil, errors.Errorf(errors.EnvNotSupportedOnPlatform)
	}
	if op == OpSet {
		*p |= uint32(bits)
	} else {
		*p &^= uint32(bits)
	}
	return s, nil
}

func ccIndex(slot CCSlot) int {
	switch slot {
	case INTR:
		return unix.VINTR
	case QUIT:
		return unix.VQUIT
	case XON:
		return unix.VSTART
	case XOFF:
		return unix.VSTOP
	case VMIN:
		return unix.VMIN
	case VTIME:
		return unix.VTIME
	default:
		return -1
	}
}

func (unixAdapter) ReadCC(state DriverState, slot CCSlot) (ccValue, error) {
	s, ok := state.(unixState)
	if !ok {
		return ccValue{}, errors.Errorf(errors.EnvApplyFailed, "not a posix driver state")
	}
	idx := ccIndex(slot)
	if idx < 0 {
		return ccValue{}, errors.Errorf(errors.EnvNotSupportedOnPlatform)
	}
	b := s.termios.Cc[idx]
	if b == posixVDisable {
		return ccValue{disabled: true}, nil
	}
	return ccValue{b: b}, nil
}

func (unixAdapter) WriteCC(state DriverState, slot CCSlot, v ccValue) (DriverState, error) {
	s, ok := state.(unixState)
	if !ok {
		return nil, errors.Errorf(errors.EnvApplyFailed, "not a posix driver state")
	}
	idx := ccIndex(slot)
	if idx < 0 {
		return nil, errors.Errorf(errors.EnvNotSupportedOnPlatform)
	}
	if v.disabled {
		s.termios.Cc[idx] = posixVDisable
	} else {
		s.termios.Cc[idx] = v.b
	}
	return s, nil
}

func (unixAdapter) BuildCheck(requiredBuild int) error {
	return nil
}

// platformWindowSize returns the current terminal geometry for stream, the way
// easyterm.go's UpdateGeometry does via TIOCGWINSZ.
func platformWindowSize(stream StreamId) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(stream.fd), ioctlWindowSize)
	if err != nil {
		if err == unix.ENOTTY {
			return 0, 0, errors.Errorf(errors.EnvNotATerminal)
		}
		return 0, 0, errors.Errorf(errors.EnvApplyFailed, err)
	}
	return int(ws.Col), int(ws.Row), nil
}
