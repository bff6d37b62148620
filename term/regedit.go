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

import "fmt"

// registryVTValue is the DWORD value installers write under
// HKCU\Console\VirtualTerminalLevel to make the classic console host start
// up with VT processing already enabled, sparing every new console window
// the AnsiIn/AnsiOut dance.
const registryVTValue = 1

// VTRegistryScript returns the reg.exe command line ancillary Windows
// installers run to toggle VirtualTerminalLevel, as a pure function of
// enable: no I/O, no registry access, just the shape of the command the
// caller is expected to run (or show the operator) themselves (spec §6).
func VTRegistryScript(enable bool) string {
	if enable {
		return fmt.Sprintf(
			`reg add "HKCU\Console" /v VirtualTerminalLevel /t REG_DWORD /d %d /f`,
			registryVTValue,
		)
	}
	return `reg delete "HKCU\Console" /v VirtualTerminalLevel /f`
}
