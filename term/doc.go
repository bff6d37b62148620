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

// Package term mutates the controlling terminal's driver state — input and
// output processing flags, echo, line buffering, control-character
// bindings, virtual-terminal-sequence processing — on both POSIX
// termios-style drivers and the Windows console API, behind one semantic
// surface.
//
// Every mutation performed through this package can be observed
// (Request/Origin), composed (Composite), introspected, and deterministically
// unwound: either explicitly (Purge/Reset/CachePurge) or at process exit
// (a signal handler reverts the items registered for exit rollback; see
// the note on DeviceErrorGuard for how "inappropriate device" conditions
// are handled as a recoverable condition rather than an opaque I/O error).
//
// The package does not parse ANSI sequences, model key events, or perform
// any buffered line editing; it only flips driver bits and tracks what it
// flipped.
package term
