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

// WindowSize returns the current width (columns) and height (rows) of
// stream, the way easyterm.go's UpdateGeometry does on POSIX (TIOCGWINSZ)
// and GetConsoleScreenBufferInfo does on Windows. It is advisory: nothing
// in this package caches the result, and a resize between the call and its
// use is the caller's problem, same as the original ioctl.
func WindowSize(stream StreamId) (cols, rows int, err error) {
	return platformWindowSize(stream)
}
