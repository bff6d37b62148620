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

import "github.com/srccircumflex/vtmode/errors"

// DeviceErrorGuard is a scoped resource for callers that want to degrade
// gracefully when launched under a non-TTY (piped, redirected, or an
// IDE-emulated console). It intercepts errors.EnvNotATerminal from any
// operation in its body and dispatches them to OnInappropriateDevice,
// separately from every other error class, which goes to OnOther. Both
// default to re-raising (Run panics with the original error if the
// relevant handler is nil).
//
// Run recovers a panic carrying one of these error values the same way it
// handles a returned error, so dispatch happens on every exit path out of
// body, including an unwind triggered deeper in the call stack (spec §9:
// "guaranteed dispatch of its cleanup action on every exit path including
// panics/unwinding"). A panic carrying anything other than an error is not
// ours to interpret and is re-raised unchanged.
type DeviceErrorGuard[T any] struct {
	OnInappropriateDevice func(error) T
	OnOther               func(error) T
}

// Run executes body and returns whichever value the selected action
// returns (or body's own result, if it didn't fail).
func (g DeviceErrorGuard[T]) Run(body func() (T, error)) (result T) {
	var bodyErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					bodyErr = err
					return
				}
				panic(r)
			}
		}()
		result, bodyErr = body()
	}()

	if bodyErr == nil {
		return result
	}

	if errors.Is(bodyErr, errors.EnvNotATerminal) {
		if g.OnInappropriateDevice != nil {
			return g.OnInappropriateDevice(bodyErr)
		}
		panic(bodyErr)
	}

	if g.OnOther != nil {
		return g.OnOther(bodyErr)
	}
	panic(bodyErr)
}
