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

// Pseudo is returned in place of a ModItem when a platform makes the
// requested operation a no-op — ansi_in on POSIX, for instance. It
// responds truthfully to every Capability-shaped query so generic callers
// remain polymorphic over the capability set regardless of platform (spec
// §4.7): Origin and Request report false, and AddFlag/SubFlag/Reset/Purge
// are no-ops that never fail.
type Pseudo struct{}

func (Pseudo) Origin() bool            { return false }
func (Pseudo) Request() (bool, error)  { return false, nil }
func (Pseudo) AddFlag() error          { return nil }
func (Pseudo) SubFlag() error          { return nil }
func (Pseudo) Reset() error            { return nil }
func (Pseudo) Purge() error            { return nil }
