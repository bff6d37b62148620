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

// Package logger implements a small central, in-process log. It is used by
// the term package to record per-item rollback failures during exit-time
// rollback without aborting the LIFO walk (spec: exit-time rollback
// swallows per-item errors, logging them).
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission decides whether a particular Log call is allowed to record an
// entry. Callers that never want to suppress logging pass Allow.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is a Permission that always allows logging.
var Allow Permission = allowPermission{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity ring of log entries. The zero value is not
// usable; construct with NewLogger.
type Logger struct {
	mu       sync.Mutex
	capacity int
	entries  []entry
}

// NewLogger creates a Logger that retains at most capacity entries, evicting
// the oldest entry once capacity is exceeded.
func NewLogger(capacity int) *Logger {
	if capacity < 1 {
		capacity = 1
	}
	return &Logger{capacity: capacity}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log appends one entry if perm allows logging.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, formatDetail(detail))
}

// Logf is like Log but formats detail with fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{tag: tag, detail: detail})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Clear discards all entries.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Write writes every retained entry, oldest first, to w.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
	}
	io.WriteString(w, b.String())
}

// Tail writes the last n entries, oldest first, to w. Asking for more
// entries than are retained is not an error; fewer or zero are also fine.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		return
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for _, e := range l.entries[start:] {
		b.WriteString(e.String())
	}
	io.WriteString(w, b.String())
}

var central = NewLogger(500)

// Log records an entry on the package-wide default Logger using Allow
// permission.
func Log(tag string, detail interface{}) { central.Log(Allow, tag, detail) }

// Logf is the formatted variant of the package-level Log.
func Logf(tag, format string, args ...interface{}) { central.Logf(Allow, tag, format, args...) }

// Write writes the package-wide default Logger's entries to w.
func Write(w io.Writer) { central.Write(w) }

// Tail writes the last n entries of the package-wide default Logger to w.
func Tail(w io.Writer, n int) { central.Tail(w, n) }

// Clear discards all entries in the package-wide default Logger.
func Clear() { central.Clear() }
