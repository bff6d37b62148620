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

// Composite is a small ordered bundle of ModItems treated as one logical
// modification (spec §4.4). High-Level Operations that need to toggle more
// than one flag as an atomic unit — non_block on Windows needs both echo
// and line-input off — return a Composite instead of a bare ModItem.
type Composite struct {
	items []*ModItem
}

func newComposite(items ...*ModItem) *Composite {
	return &Composite{items: items}
}

// Items returns a copy of the bundled ModItems in FIFO (construction)
// order.
func (c *Composite) Items() []*ModItem {
	out := make([]*ModItem, len(c.items))
	copy(out, c.items)
	return out
}

// OriginAll returns every item's Origin(), FIFO order.
func (c *Composite) OriginAll() []bool {
	out := make([]bool, len(c.items))
	for i, it := range c.items {
		out[i] = it.Origin()
	}
	return out
}

// RequestAll returns every item's Request(), FIFO order. The first error
// encountered short-circuits the remainder.
func (c *Composite) RequestAll() ([]bool, error) {
	out := make([]bool, len(c.items))
	for i, it := range c.items {
		v, err := it.Request()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Origin satisfies Capability: true only if every bundled item's baseline
// had the value set.
func (c *Composite) Origin() bool {
	for _, it := range c.items {
		if !it.Origin() {
			return false
		}
	}
	return true
}

// Request satisfies Capability: true only if every bundled item currently
// reports the value as set.
func (c *Composite) Request() (bool, error) {
	for _, it := range c.items {
		v, err := it.Request()
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// AddFlag applies every bundled item in FIFO order.
func (c *Composite) AddFlag() error {
	for _, it := range c.items {
		if err := it.AddFlag(); err != nil {
			return err
		}
	}
	return nil
}

// SubFlag clears every bundled item in LIFO order.
func (c *Composite) SubFlag() error {
	for i := len(c.items) - 1; i >= 0; i-- {
		if err := c.items[i].SubFlag(); err != nil {
			return err
		}
	}
	return nil
}

// Reset restores every bundled item's baseline contribution, LIFO.
func (c *Composite) Reset() error {
	for i := len(c.items) - 1; i >= 0; i-- {
		if err := c.items[i].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Purge purges every bundled item, LIFO.
func (c *Composite) Purge() error {
	for i := len(c.items) - 1; i >= 0; i-- {
		if err := c.items[i].Purge(); err != nil {
			return err
		}
	}
	return nil
}
