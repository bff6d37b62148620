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

import "github.com/srccircumflex/vtmode/errors"

// SuspendProcess has no Windows equivalent: the console host has no job
// control, and there is no parent process to signal. It reports
// EnvNotSupportedOnPlatform so callers can treat it the same way they treat
// a Pseudo-Modification's no-op, rather than crashing on an unsupported
// syscall.
func SuspendProcess() error {
	return errors.Errorf(errors.EnvNotSupportedOnPlatform)
}
