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

//go:build linux

package term

import "golang.org/x/sys/unix"

// ioctl request numbers differ between Linux and Darwin; golang.org/x/term
// isolates them the same way, one file per GOOS.
const (
	ioctlGetTermios   = unix.TCGETS
	ioctlSetTermios   = unix.TCSETS
	ioctlSetDrain     = unix.TCSETSW
	ioctlSetFlush     = unix.TCSETSF
	ioctlWindowSize   = unix.TIOCGWINSZ
	platformIsWindows = false
	posixVDisable     = 0
)
