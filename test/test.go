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

// Package test provides small assertion helpers shared by the _test.go
// files in this module; a few checks there still call t.Fatalf directly.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectSuccess fails the test unless v represents success: a true bool, a
// nil error, or a nil or zero value of any other type.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	switch x := v.(type) {
	case bool:
		if !x {
			t.Errorf("expected success, got false")
		}
	case error:
		if x != nil {
			t.Errorf("expected success, got error: %v", x)
		}
	default:
		if v != nil && !reflect.ValueOf(v).IsZero() {
			t.Errorf("expected success, got %v", v)
		}
	}
}

// ExpectFailure fails the test unless v represents failure: a false bool, a
// non-nil error, or a non-nil, non-zero value of any other type.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	switch x := v.(type) {
	case bool:
		if x {
			t.Errorf("expected failure, got true")
		}
	case error:
		if x == nil {
			t.Errorf("expected failure, got nil error")
		}
	default:
		if v == nil || reflect.ValueOf(v).IsZero() {
			t.Errorf("expected failure, got %v", v)
		}
	}
}

// ExpectEquality fails the test unless got and want are equal.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected equality: got %v, want %v", got, want)
	}
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Errorf("expected inequality: got %v, want (not) %v", got, want)
	}
}

// ExpectApproximate fails the test unless got and want are within tolerance
// of one another.
func ExpectApproximate(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("expected approximate equality: got %v, want %v (+/- %v)", got, want, tolerance)
	}
}
