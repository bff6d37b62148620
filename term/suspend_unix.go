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

import (
	"os"
	"syscall"

	"github.com/srccircumflex/vtmode/errors"
)

// SuspendProcess sends SIGTSTP to the current process's parent, the same
// way a shell suspends a foreground job on Ctrl-Z. Useful for a program
// that put the terminal in raw mode and wants to honor a suspend request
// it caught as an ordinary key (NoProcess having disabled ISIG's automatic
// handling).
func SuspendProcess() error {
	p, err := os.FindProcess(os.Getppid())
	if err != nil {
		return errors.Errorf(errors.EnvApplyFailed, err)
	}
	if err := p.Signal(syscall.SIGTSTP); err != nil {
		return errors.Errorf(errors.EnvApplyFailed, err)
	}
	return nil
}
