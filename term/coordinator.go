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
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/srccircumflex/vtmode/logger"
)

// coordinator owns the singletons the source treats as module-level
// mutable state (SnapshotRegistry, ModRegistry, the exit hook) so that
// tests can construct an isolated instance with a fake Adapter instead of
// reaching through package-level globals (spec §9 Design Notes).
type coordinator struct {
	mu        sync.Mutex
	adapter   Adapter
	snapshots *SnapshotRegistry
	registry  *modRegistry
	log       *logger.Logger

	exitInstall sync.Once
	stopExit    chan struct{}
}

func newCoordinator(adapter Adapter) *coordinator {
	return &coordinator{
		adapter:   adapter,
		snapshots: newSnapshotRegistry(),
		registry:  newModRegistry(),
		log:       logger.NewLogger(256),
	}
}

// construct implements the ModItem construction sequence from spec §4.2.
// set chooses the "operation kind": true for the add_flag entry point,
// false for sub_flag.
func (c *coordinator) construct(stream StreamId, value ModValue, axis Axis, timing Timing, resetAtExit bool, note string, set bool) (*ModItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := modKey{stream: stream, value: value, axis: axis}
	if existing, ok := c.registry.lookup(key); ok {
		// DuplicateMod is a dedup signal only; it is never surfaced to the
		// caller (spec §9 Open Questions: "always dedup, never surface").
		return existing, nil
	}

	if _, err := c.snapshots.capture(c.adapter, stream); err != nil {
		return nil, err
	}

	live, err := c.adapter.GetState(stream)
	if err != nil {
		return nil, err
	}

	item := &ModItem{
		coord:       c,
		stream:      stream,
		value:       value,
		axis:        axis,
		timing:      timing,
		resetAtExit: resetAtExit,
		note:        note,
	}

	if err := item.captureOrigin(live, c.adapter); err != nil {
		return nil, err
	}

	post, err := item.writeValue(live, c.adapter, set)
	if err != nil {
		return nil, err
	}
	if err := c.adapter.SetState(stream, post, timing); err != nil {
		return nil, err
	}

	item.active = set
	c.registry.insert(item)
	return item, nil
}

// apply is shared by ModItem.AddFlag and ModItem.SubFlag:
// read the live state, compute the item's contribution in the requested
// direction, and write it back, all under the coordinator's lock (spec
// §5: "read current state, compute target, write target, under lock").
func (c *coordinator) apply(item *ModItem, set bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	live, err := c.adapter.GetState(item.stream)
	if err != nil {
		return err
	}
	post, err := item.writeValue(live, c.adapter, set)
	if err != nil {
		return err
	}
	if err := c.adapter.SetState(item.stream, post, item.timing); err != nil {
		return err
	}
	item.active = set
	return nil
}

// resetToOrigin restores item's baseline contribution exactly: writeOrigin,
// not writeValue, so a CtrlChar axis gets its captured byte (or disabled
// sentinel) back verbatim instead of a re-derived set/clear boolean.
func (c *coordinator) resetToOrigin(item *ModItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	live, err := c.adapter.GetState(item.stream)
	if err != nil {
		return err
	}
	post, err := item.writeOrigin(live, c.adapter)
	if err != nil {
		return err
	}
	if err := c.adapter.SetState(item.stream, post, item.timing); err != nil {
		return err
	}
	item.active = item.origin
	return nil
}

// request reads the live state without taking the coordinator lock: once
// an item is published, reading its current bit is lock-free (spec §5).
func (c *coordinator) request(item *ModItem) (bool, error) {
	state, err := c.adapter.GetState(item.stream)
	if err != nil {
		return false, err
	}
	return item.readCurrent(state, c.adapter)
}

// baseline returns the snapshot captured the first time stream was touched,
// and whether one has been captured at all.
func (c *coordinator) baseline(stream StreamId) (DriverState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshots.baseline(stream)
}

// forget removes item from the registry. Idempotent.
func (c *coordinator) forget(item *ModItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry.remove(item)
}

// cachePurge walks the registry LIFO and purges every item, on demand.
func (c *coordinator) cachePurge() {
	c.mu.Lock()
	items := c.registry.reverse()
	c.mu.Unlock()

	for _, item := range items {
		if err := item.Purge(); err != nil {
			c.log.Log(logger.Allow, "term.cachepurge", err)
		}
	}
}

// exitRollback is the Exit Coordinator's LIFO walk. Only items registered
// with resetAtExit actually purge; the rest are left exactly as the
// caller left them, per item.runAtExit.
func (c *coordinator) exitRollback() {
	c.mu.Lock()
	items := c.registry.reverse()
	c.mu.Unlock()

	for _, item := range items {
		item.runAtExit(func(tag string, err error) {
			c.log.Log(logger.Allow, tag, err)
		})
	}
}

// installExitHook arranges for exitRollback to run once, on the first of
// os.Interrupt/SIGTERM/SIGHUP. Go has no hook that runs on every process
// exit path (a bare `return` from main, or an unhandled panic, unwind
// without calling anything registered here); library code cannot install
// one on a caller's behalf. Callers that care about the normal-return path
// should additionally `defer term.CachePurge()` in main, same as any
// resource a library can't close for you automatically. This mirrors
// easyterm.go's own signal.Notify(syscall.SIGWINCH) idiom, applied to the
// signals that can reasonably be expected to reach an exit opportunity.
func (c *coordinator) installExitHook() {
	c.exitInstall.Do(func() {
		c.stopExit = make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		go func() {
			select {
			case <-sig:
				c.exitRollback()
				os.Exit(1)
			case <-c.stopExit:
			}
		}()
	})
}

var (
	defaultOnce  sync.Once
	defaultCoord *coordinator
)

func defaultCoordinator() *coordinator {
	defaultOnce.Do(func() {
		defaultCoord = newCoordinator(platformAdapter())
		defaultCoord.installExitHook()
	})
	return defaultCoord
}

// ModOption carries the keyword arguments the source's add_flag/sub_flag
// accept (axis, timing, reset_atexit, note), collapsed into one struct per
// spec §9's guidance to replace per-shape overloads with one signature.
type ModOption struct {
	Axis        Axis
	Timing      Timing
	ResetAtExit bool
	Note        string
}

// Handle resolves a symbolic selector to a StreamId using the process's
// default coordinator. Fails with errors.EnvInvalidHandle if the OS
// reports no valid handle.
func Handle(sel Selector) (StreamId, error) {
	return defaultCoordinator().adapter.Handle(sel)
}

// CheckBuild fails with errors.EnvBuildTooOld on Windows if the running
// build is older than min. No-op on POSIX.
func CheckBuild(min int) error {
	return defaultCoordinator().adapter.BuildCheck(min)
}

// AddFlag constructs (or, if one already exists for this identity triple,
// returns) a ModItem that sets value on stream along opt.Axis.
func AddFlag(stream StreamId, value ModValue, opt ModOption) (*ModItem, error) {
	return defaultCoordinator().construct(stream, value, opt.Axis, opt.Timing, opt.ResetAtExit, opt.Note, true)
}

// SubFlag constructs (or returns the existing) ModItem that clears value
// on stream along opt.Axis.
func SubFlag(stream StreamId, value ModValue, opt ModOption) (*ModItem, error) {
	return defaultCoordinator().construct(stream, value, opt.Axis, opt.Timing, opt.ResetAtExit, opt.Note, false)
}

// Request asks the adapter whether value is presently set on stream along
// axis, without constructing or registering a ModItem.
func Request(stream StreamId, value ModValue, axis Axis) (bool, error) {
	c := defaultCoordinator()
	state, err := c.adapter.GetState(stream)
	if err != nil {
		return false, err
	}
	probe := &ModItem{value: value, axis: axis}
	return probe.readCurrent(state, c.adapter)
}

// CachePurge reverts every currently registered modification in LIFO
// order, on demand (the same walk the Exit Coordinator performs at exit).
func CachePurge() {
	defaultCoordinator().cachePurge()
}

// Baseline reports the driver state captured the first time stream was
// touched by any modification, and whether one has been captured at all.
// It exists for introspection/diagnostics; ordinary callers revert through
// Reset/Purge rather than reading the baseline directly.
func Baseline(stream StreamId) (DriverState, bool) {
	return defaultCoordinator().baseline(stream)
}
