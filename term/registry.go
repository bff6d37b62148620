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

// modRegistry is the process-wide, ordered collection of all live
// ModItems. It enforces uniqueness on (stream, value, axis) (spec
// invariant I1) and drives exit-time rollback in reverse insertion order.
// Like SnapshotRegistry it is not self-locking; every access is made while
// the owning coordinator's lock is held.
type modRegistry struct {
	order []*ModItem
	index map[modKey]*ModItem
}

func newModRegistry() *modRegistry {
	return &modRegistry{index: make(map[modKey]*ModItem)}
}

// lookup returns the existing item for key, if any.
func (r *modRegistry) lookup(key modKey) (*ModItem, bool) {
	item, ok := r.index[key]
	return item, ok
}

// insert appends item to the registry. Callers must have already checked
// lookup for a duplicate.
func (r *modRegistry) insert(item *ModItem) {
	r.order = append(r.order, item)
	r.index[item.key()] = item
}

// remove deletes item from the registry. A no-op if item is not present
// (purge is idempotent).
func (r *modRegistry) remove(item *ModItem) {
	key := item.key()
	if _, ok := r.index[key]; !ok {
		return
	}
	delete(r.index, key)
	for i, it := range r.order {
		if it == item {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// reverse returns a copy of the registered items in reverse insertion
// order (LIFO), safe to walk without holding the lock.
func (r *modRegistry) reverse() []*ModItem {
	out := make([]*ModItem, len(r.order))
	for i, it := range r.order {
		out[len(r.order)-1-i] = it
	}
	return out
}
