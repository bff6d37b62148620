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

// CMD_* console-mode bits, named and valued per the Win32 console API
// (ENABLE_* in wincon.h). Exposed under the CMD_ prefix per spec so
// callers never need to reach for golang.org/x/sys/windows directly.
const (
	CMD_PROCESSED_INPUT        = 0x0001
	CMD_LINE_INPUT             = 0x0002
	CMD_ECHO_INPUT             = 0x0004
	CMD_WINDOW_INPUT           = 0x0008
	CMD_MOUSE_INPUT            = 0x0010
	CMD_INSERT_MODE            = 0x0020
	CMD_QUICK_EDIT_MODE        = 0x0040
	CMD_EXTENDED_FLAGS         = 0x0080
	CMD_VIRTUAL_TERMINAL_INPUT = 0x0200

	CMD_PROCESSED_OUTPUT             = 0x0001
	CMD_WRAP_AT_EOL_OUTPUT           = 0x0002
	CMD_VIRTUAL_TERMINAL_PROCESSING  = 0x0004
	CMD_DISABLE_NEWLINE_AUTO_RETURN  = 0x0008
)

// ansiBuildThreshold is the Windows build number (Windows 10, version
// 1511, "TH2") at which ENABLE_VIRTUAL_TERMINAL_INPUT and
// ENABLE_VIRTUAL_TERMINAL_PROCESSING first became meaningful on the
// console host. AnsiIn/AnsiOut call BuildCheck with this before enabling
// either bit.
const ansiBuildThreshold = 10586
