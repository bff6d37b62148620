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

// Capability is the small surface every High-Level Operation's return
// value satisfies, whether it is a single ModItem, a Composite, or a
// Pseudo-Modification. Callers treat the return of AnsiIn/NoEcho/etc. as
// this capability and never need to type-switch on the concrete shape
// (spec §4.7, §9 "Polymorphism over Item vs Composite vs Pseudo").
type Capability interface {
	Origin() bool
	Request() (bool, error)
	AddFlag() error
	SubFlag() error
	Reset() error
	Purge() error
}

var (
	_ Capability = (*ModItem)(nil)
	_ Capability = (*Composite)(nil)
	_ Capability = Pseudo{}
)
