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

//go:build linux || darwin

package term

import "golang.org/x/sys/unix"

// Symbolic POSIX flag-bit names, for callers who want to build their own
// ModValue instead of using a High-Level Operation. These mirror the names
// termios(3) uses, the same naming convention github.com/kylelemons/goat's
// termios package and github.com/daedaluz/goserial's Iflag/Oflag/Cflag/
// Lflag constants use.
const (
	ECHO   = unix.ECHO
	ICANON = unix.ICANON
	ISIG   = unix.ISIG
	IXON   = unix.IXON
	IEXTEN = unix.IEXTEN
	OPOST  = unix.OPOST
)
