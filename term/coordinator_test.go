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
	"testing"

	"github.com/srccircumflex/vtmode/errors"
	"github.com/srccircumflex/vtmode/test"
)

const (
	bitEcho   = 1 << 0
	bitCanon  = 1 << 1
	bitSignal = 1 << 2
)

func newTestCoordinator() (*coordinator, *fakeAdapter, StreamId) {
	fa := newFakeAdapter()
	c := newCoordinator(fa)
	stream, _ := fa.Handle(Stdin)
	return c, fa, stream
}

// P1: the (stream, value, axis) identity triple dedups; constructing the
// same modification twice returns the same Item.
func TestConstructDedup(t *testing.T) {
	c, _, stream := newTestCoordinator()

	first, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, true, "echo", false)
	test.ExpectSuccess(t, err)

	second, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, true, "echo-again", false)
	test.ExpectSuccess(t, err)

	if first != second {
		t.Fatalf("expected duplicate construction to return the same *ModItem, got distinct pointers")
	}
}

// The snapshot registry captures a stream's baseline the first time it is
// touched, and never again, regardless of how many Items are later
// constructed against the same stream.
func TestBaselineCapturedOnce(t *testing.T) {
	c, fa, stream := newTestCoordinator()
	fa.stored[stream] = fakeState{local: bitEcho}

	if _, ok := c.baseline(stream); ok {
		t.Fatalf("expected no baseline before any construction")
	}

	_, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, false, "first", false)
	test.ExpectSuccess(t, err)

	snap, ok := c.baseline(stream)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, snap.(fakeState).local, bitEcho)

	// mutate the live driver directly, bypassing the coordinator, then
	// construct a second Item: the cached baseline must not change.
	fa.stored[stream] = fakeState{local: bitEcho | bitCanon}
	_, err = c.construct(stream, Flag(bitCanon), Local(), Immediate, false, "second", false)
	test.ExpectSuccess(t, err)

	snap, ok = c.baseline(stream)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, snap.(fakeState).local, bitEcho)
}

// Origin captures the baseline truthfully, and Reset restores it regardless
// of how many times AddFlag/SubFlag have flipped the bit since.
func TestOriginAndReset(t *testing.T) {
	c, fa, stream := newTestCoordinator()
	fa.stored[stream] = fakeState{local: bitEcho}

	item, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, false, "echo", false)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, item.Origin(), true)

	test.ExpectSuccess(t, item.AddFlag())
	got, err := item.Request()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, true)

	test.ExpectSuccess(t, item.SubFlag())
	got, err = item.Request()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, false)

	test.ExpectSuccess(t, item.Reset())
	got, err = item.Request()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, true)
}

// A control-character write goes through ReadCC/WriteCC, not ReadFlag/
// WriteFlag, and is tracked by the same registry/dedup machinery as a flag
// modification.
func TestControlCharacterChange(t *testing.T) {
	c, fa, stream := newTestCoordinator()
	fa.stored[stream] = fakeState{cc: [6]ccValue{INTR: {b: 0x03}}}

	item, err := c.construct(stream, CtrlCharByte(0x00), CtrlChar(VMIN), Immediate, false, "vmin", true)
	test.ExpectSuccess(t, err)

	got, err := item.Request()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, true)
}

// Disabling a control character whose baseline carried a real byte must
// report Origin()==true ("baseline had a value", not "baseline was already
// disabled"), and Reset must restore that exact byte, not merely flip the
// slot to disabled.
func TestControlCharacterResetRestoresBaselineByte(t *testing.T) {
	c, fa, stream := newTestCoordinator()
	fa.stored[stream] = fakeState{cc: [6]ccValue{INTR: {b: 0x03}}}

	item, err := c.construct(stream, CtrlCharDisabled(), CtrlChar(INTR), Immediate, false, "disable-intr", true)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, item.Origin(), true)

	got, err := item.Request()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, true)

	test.ExpectSuccess(t, item.Reset())

	st, err := fa.GetState(stream)
	test.ExpectSuccess(t, err)
	cc, err := fa.ReadCC(st, INTR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cc.disabled, false)
	test.ExpectEquality(t, cc.b, byte(0x03))
}

// Composite applies FIFO and reverts LIFO (spec §4.4).
func TestCompositeOrdering(t *testing.T) {
	c, _, stream := newTestCoordinator()

	var order []string

	first, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, false, "first", false)
	test.ExpectSuccess(t, err)
	first.AddBeforeResetAtExit(func() { order = append(order, "first") })

	second, err := c.construct(stream, Flag(bitCanon), Local(), Immediate, false, "second", false)
	test.ExpectSuccess(t, err)
	second.AddBeforeResetAtExit(func() { order = append(order, "second") })

	comp := newComposite(first, second)
	test.ExpectSuccess(t, comp.AddFlag())

	applied, err := comp.RequestAll()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, applied, []bool{true, true})

	test.ExpectSuccess(t, comp.Purge())
	test.ExpectEquality(t, order, []string{"second", "first"})
}

// GetState failing with EnvNotATerminal propagates unchanged out of
// construct, so a DeviceErrorGuard wrapping the caller can classify it.
func TestInappropriateDeviceIsClassifiable(t *testing.T) {
	c, fa, stream := newTestCoordinator()
	fa.notATerminal[stream] = true

	_, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, false, "echo", true)
	test.ExpectFailure(t, err)
	if !errors.Is(err, errors.EnvNotATerminal) {
		t.Fatalf("expected errors.Is(err, EnvNotATerminal), got %v", err)
	}
}

// exitRollback only purges Items registered with resetAtExit, in LIFO
// order, and never touches an Item a caller already purged manually.
func TestExitRollbackOrdering(t *testing.T) {
	c, _, stream := newTestCoordinator()

	tracked, err := c.construct(stream, Flag(bitEcho), Local(), Immediate, true, "tracked", true)
	test.ExpectSuccess(t, err)

	untracked, err := c.construct(stream, Flag(bitSignal), Local(), Immediate, false, "untracked", true)
	test.ExpectSuccess(t, err)

	manual, err := c.construct(stream, Flag(bitCanon), Local(), Immediate, true, "manual", true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, manual.Purge())

	c.exitRollback()

	trackedOrigin := tracked.Origin()
	test.ExpectEquality(t, trackedOrigin, false)

	// untracked was never registered for exit rollback, so it is still in
	// the registry and still active.
	if _, ok := c.registry.lookup(untracked.key()); !ok {
		t.Fatalf("expected untracked item to remain registered after exitRollback")
	}

	// a second rollback must be a no-op, not an error or a double-purge.
	c.exitRollback()
}
