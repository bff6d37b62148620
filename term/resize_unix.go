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
	"os/signal"
	"syscall"
)

// NotifyResize arranges for an empty struct to be sent on ch every time the
// controlling terminal's geometry changes (a notification is dropped if ch
// cannot accept it at that moment), and returns a stop function that
// tears the watcher down. Grounded on easyterm.go's own
// signal.Notify(syscall.SIGWINCH) handler, generalized so the caller
// supplies the channel instead of the package hard-wiring a geometry
// refresh.
func NotifyResize(ch chan<- struct{}) (stop func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sig:
				select {
				case ch <- struct{}{}:
				default:
				}
			case <-done:
				signal.Stop(sig)
				return
			}
		}
	}()

	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
	}
}
