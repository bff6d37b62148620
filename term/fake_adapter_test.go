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

import (
	"sync"

	"github.com/srccircumflex/vtmode/errors"
)

// fakeState is the in-memory stand-in for a driver's state: four flag
// fields (mirroring the POSIX iflag/oflag/cflag/lflag axes) plus a small
// control-character array, so the same fake exercises both flag and
// control-character code paths without a real tty.
type fakeState struct {
	in, out, ctrl, local int
	cc                   [6]ccValue
}

// fakeAdapter is a minimal in-memory Adapter used to exercise the
// coordinator, ModItem and Composite machinery without a real terminal.
// Each field keyed by StreamId lets a test arrange a specific failure for
// one stream without affecting the others.
type fakeAdapter struct {
	mu sync.Mutex

	stored       map[StreamId]fakeState
	invalidSel   map[Selector]bool
	notATerminal map[StreamId]bool
	applyFails   map[StreamId]bool
	buildTooOld  bool
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		stored:       map[StreamId]fakeState{},
		invalidSel:   map[Selector]bool{},
		notATerminal: map[StreamId]bool{},
		applyFails:   map[StreamId]bool{},
	}
}

func (f *fakeAdapter) Handle(sel Selector) (StreamId, error) {
	if f.invalidSel[sel] {
		return StreamId{}, errors.Errorf(errors.EnvInvalidHandle)
	}
	return StreamId{selector: sel, fd: uintptr(sel) + 1}, nil
}

func (f *fakeAdapter) GetState(stream StreamId) (DriverState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notATerminal[stream] {
		return nil, errors.Errorf(errors.EnvNotATerminal)
	}
	return f.stored[stream], nil
}

func (f *fakeAdapter) SetState(stream StreamId, state DriverState, _ Timing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyFails[stream] {
		return errors.Errorf(errors.EnvApplyFailed, "fake rejected write")
	}
	f.stored[stream] = state.(fakeState)
	return nil
}

func (f *fakeAdapter) ReadFlag(state DriverState, axis AxisKind) (int, error) {
	s := state.(fakeState)
	switch axis {
	case AxisIn:
		return s.in, nil
	case AxisOut:
		return s.out, nil
	case AxisCtrl:
		return s.ctrl, nil
	case AxisLocal:
		return s.local, nil
	default:
		return 0, nil
	}
}

func (f *fakeAdapter) WriteFlag(state DriverState, axis AxisKind, bits int, op FlagOp) (DriverState, error) {
	s := state.(fakeState)
	cur, _ := f.ReadFlag(s, axis)
	next := cur
	if op == OpSet {
		next = cur | bits
	} else {
		next = cur &^ bits
	}
	switch axis {
	case AxisIn:
		s.in = next
	case AxisOut:
		s.out = next
	case AxisCtrl:
		s.ctrl = next
	case AxisLocal:
		s.local = next
	}
	return s, nil
}

func (f *fakeAdapter) ReadCC(state DriverState, slot CCSlot) (ccValue, error) {
	s := state.(fakeState)
	return s.cc[slot], nil
}

func (f *fakeAdapter) WriteCC(state DriverState, slot CCSlot, v ccValue) (DriverState, error) {
	s := state.(fakeState)
	s.cc[slot] = v
	return s, nil
}

func (f *fakeAdapter) BuildCheck(required int) error {
	if f.buildTooOld {
		return errors.Errorf(errors.EnvBuildTooOld, required-1, required)
	}
	return nil
}
