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

// SnapshotRegistry is the process-wide ground truth for rollback: a
// mapping from StreamId to the driver state observed the first time that
// stream was touched. An entry is written once per key and never
// overwritten (spec invariant I2).
//
// SnapshotRegistry does not lock itself: per spec §5 every access to it is
// serialized by the same single mutex that guards the Modification
// Registry, held by the owning coordinator. This keeps "capture baseline,
// check for a duplicate, insert" atomic across both structures during
// ModItem construction.
type SnapshotRegistry struct {
	entries map[StreamId]DriverState
}

func newSnapshotRegistry() *SnapshotRegistry {
	return &SnapshotRegistry{entries: make(map[StreamId]DriverState)}
}

// capture returns the baseline state for stream, querying the adapter and
// storing it only if this is the first time stream has been seen (CAS:
// write-once-per-key). Callers must hold the owning coordinator's lock.
func (r *SnapshotRegistry) capture(adapter Adapter, stream StreamId) (DriverState, error) {
	if s, ok := r.entries[stream]; ok {
		return s, nil
	}
	s, err := adapter.GetState(stream)
	if err != nil {
		return nil, err
	}
	r.entries[stream] = s
	return s, nil
}

// baseline returns the stored baseline for stream and whether one exists.
// Callers must hold the owning coordinator's lock.
func (r *SnapshotRegistry) baseline(stream StreamId) (DriverState, bool) {
	s, ok := r.entries[stream]
	return s, ok
}
