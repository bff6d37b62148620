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

import (
	"testing"

	"github.com/srccircumflex/vtmode/errors"
	"github.com/srccircumflex/vtmode/test"
)

func TestGuardRoutesInappropriateDevice(t *testing.T) {
	var gotInappropriate, gotOther bool

	guard := DeviceErrorGuard[int]{
		OnInappropriateDevice: func(err error) int { gotInappropriate = true; return -1 },
		OnOther:               func(err error) int { gotOther = true; return -2 },
	}

	result := guard.Run(func() (int, error) {
		return 0, errors.Errorf(errors.EnvNotATerminal)
	})

	test.ExpectEquality(t, result, -1)
	test.ExpectEquality(t, gotInappropriate, true)
	test.ExpectEquality(t, gotOther, false)
}

func TestGuardRoutesOtherErrors(t *testing.T) {
	var gotOther bool

	guard := DeviceErrorGuard[int]{
		OnOther: func(err error) int { gotOther = true; return -2 },
	}

	result := guard.Run(func() (int, error) {
		return 0, errors.Errorf(errors.EnvApplyFailed, "boom")
	})

	test.ExpectEquality(t, result, -2)
	test.ExpectEquality(t, gotOther, true)
}

func TestGuardPassesThroughSuccess(t *testing.T) {
	guard := DeviceErrorGuard[string]{}

	result := guard.Run(func() (string, error) {
		return "ok", nil
	})

	test.ExpectEquality(t, result, "ok")
}

func TestGuardRecoversPanicOfError(t *testing.T) {
	var gotOther bool
	guard := DeviceErrorGuard[int]{
		OnOther: func(err error) int { gotOther = true; return -3 },
	}

	result := guard.Run(func() (int, error) {
		panic(errors.Errorf(errors.EnvApplyFailed, "boom"))
	})

	test.ExpectEquality(t, result, -3)
	test.ExpectEquality(t, gotOther, true)
}

func TestGuardWithoutHandlerRePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Run to re-panic when no handler is installed")
		}
	}()

	guard := DeviceErrorGuard[int]{}
	guard.Run(func() (int, error) {
		return 0, errors.Errorf(errors.EnvNotATerminal)
	})
}
