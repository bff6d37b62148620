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

//go:build windows

package term

// NotifyResize is a no-op on Windows: the console host has no SIGWINCH
// equivalent delivered to the process, and polling GetConsoleScreenBufferInfo
// is a caller-side concern, not this package's. The returned stop function
// is a no-op so callers can defer it unconditionally on every platform.
func NotifyResize(ch chan<- struct{}) (stop func()) {
	return func() {}
}
