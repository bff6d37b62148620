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

import "sync"

// ModItem is the unit of terminal mutation. It encapsulates a target
// stream, a value, and an axis, plus the bookkeeping needed to revert
// exactly the contribution this Item made: whether the value was already
// present at baseline ("origin"), an ordered stack of pre-rollback hooks,
// and whether the Item currently considers itself applied.
//
// ModItem satisfies Capability, so generic callers that received one from
// a High-Level Operation never need to know whether they are holding a
// ModItem, a Composite, or a Pseudo.
type ModItem struct {
	coord *coordinator

	stream StreamId
	value  ModValue
	axis   Axis
	timing Timing

	resetAtExit bool
	note        string

	mu       sync.Mutex
	origin   bool
	originCC ccValue
	hooks    []func()
	active   bool
	purged   bool
}

func (item *ModItem) key() modKey {
	return modKey{stream: item.stream, value: item.value, axis: item.axis}
}

// writeValue computes the driver state for the given direction.
// sub (clearing a modification) always clears the bit or disables the cc
// slot; add always sets/writes it.
func (item *ModItem) writeValue(state DriverState, adapter Adapter, set bool) (DriverState, error) {
	if item.axis.Kind == AxisCtrlChar {
		if !set {
			return adapter.WriteCC(state, item.axis.Slot, ccValue{disabled: true})
		}
		return adapter.WriteCC(state, item.axis.Slot, item.value.toCC())
	}
	op := OpClear
	if set {
		op = OpSet
	}
	return adapter.WriteFlag(state, item.axis.Kind, item.value.Bits(), op)
}

func (item *ModItem) readCurrent(state DriverState, adapter Adapter) (bool, error) {
	if item.axis.Kind == AxisCtrlChar {
		cc, err := adapter.ReadCC(state, item.axis.Slot)
		if err != nil {
			return false, err
		}
		if item.value.ccDisabled {
			return cc.disabled, nil
		}
		return !cc.disabled && cc.b == item.value.ccByte, nil
	}
	bits, err := adapter.ReadFlag(state, item.axis.Kind)
	if err != nil {
		return false, err
	}
	return bits&item.value.Bits() == item.value.Bits(), nil
}

// captureOrigin records the baseline this Item reverts to on Reset/Purge.
// For a flag axis, origin is "does the baseline already match item.value",
// exactly what readCurrent answers. For a CtrlChar axis the baseline is not
// a yes/no against item.value: the slot held some concrete byte (or was
// already disabled) regardless of what this Item's own value is, and that
// exact byte, not a set/clear boolean, is what Reset must write back. origin
// records only whether the slot carried a real byte at baseline (true) or
// was already disabled (false); originCC records the byte itself so Reset
// can restore it precisely.
func (item *ModItem) captureOrigin(state DriverState, adapter Adapter) error {
	if item.axis.Kind == AxisCtrlChar {
		cc, err := adapter.ReadCC(state, item.axis.Slot)
		if err != nil {
			return err
		}
		item.originCC = cc
		item.origin = !cc.disabled
		return nil
	}
	originSet, err := item.readCurrent(state, adapter)
	if err != nil {
		return err
	}
	item.origin = originSet
	return nil
}

// writeOrigin computes the driver state that restores this Item's baseline
// contribution. For a CtrlChar axis this writes the captured originCC byte
// (or disabled sentinel) directly, rather than re-deriving it from the
// origin boolean, which cannot distinguish "disabled" from "held 0x03".
func (item *ModItem) writeOrigin(state DriverState, adapter Adapter) (DriverState, error) {
	if item.axis.Kind == AxisCtrlChar {
		return adapter.WriteCC(state, item.axis.Slot, item.originCC)
	}
	op := OpClear
	if item.origin {
		op = OpSet
	}
	return adapter.WriteFlag(state, item.axis.Kind, item.value.Bits(), op)
}

// AddFlag applies the modification, even if it is already active: the
// write always goes through the adapter (idempotent with respect to
// driver state, not a local cache check). Sets active.
func (item *ModItem) AddFlag() error {
	item.mu.Lock()
	defer item.mu.Unlock()
	return item.coord.apply(item, true)
}

// SubFlag clears the modification's contribution. Clears active.
func (item *ModItem) SubFlag() error {
	item.mu.Lock()
	defer item.mu.Unlock()
	return item.coord.apply(item, false)
}

// Request asks the adapter whether the value is presently set. No caching.
func (item *ModItem) Request() (bool, error) {
	return item.coord.request(item)
}

// Origin returns the baseline bit captured at construction.
func (item *ModItem) Origin() bool {
	item.mu.Lock()
	defer item.mu.Unlock()
	return item.origin
}

// Reset restores this Item's contribution to its baseline. For a flag axis
// that means ensuring the bit is set or cleared according to origin; for a
// CtrlChar axis it means writing back the exact byte (or disabled
// sentinel) captured at construction. Reset is independent of the Item's
// current active state.
func (item *ModItem) Reset() error {
	return item.coord.resetToOrigin(item)
}

// Purge unregisters the Item from the Exit Coordinator, runs its
// pre-reset hooks in LIFO order, calls Reset, and removes it from the
// Modification Registry. Purge is idempotent: a second call is a no-op.
func (item *ModItem) Purge() error {
	item.mu.Lock()
	if item.purged {
		item.mu.Unlock()
		return nil
	}
	item.purged = true
	hooks := make([]func(), len(item.hooks))
	copy(hooks, item.hooks)
	item.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}

	err := item.Reset()
	item.coord.forget(item)
	return err
}

// AddBeforeResetAtExit pushes hook onto the pre-reset hook stack. Hooks run
// in LIFO order, immediately before Reset, whether Purge is called
// explicitly or from the Exit Coordinator's LIFO walk.
func (item *ModItem) AddBeforeResetAtExit(hook func()) {
	item.mu.Lock()
	defer item.mu.Unlock()
	item.hooks = append(item.hooks, hook)
}

// runAtExit is the Exit Coordinator's per-item exit routine: hooks then
// Reset, but only for Items registered with resetAtExit, and only once.
func (item *ModItem) runAtExit(log func(tag string, err error)) {
	item.mu.Lock()
	skip := !item.resetAtExit || item.purged
	item.mu.Unlock()
	if skip {
		return
	}
	if err := item.Purge(); err != nil && log != nil {
		log("term.exit", err)
	}
}
