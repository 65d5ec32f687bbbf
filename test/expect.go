// This file is part of Scanterm.
//
// Scanterm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scanterm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scanterm.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// ExpectEquality tests the equality of two values of comparable type.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that two values of comparable type are different.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' equals '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// expect tests argument v for a success condition suitable for its type.
// supported types:
//
//	bool  -> true is success
//	error -> nil is success
func expect(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectSuccess tests argument v for a success value suitable for its type.
// See expect() for supported types.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success for type %T (%v)", v, v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure value suitable for its type.
// See expect() for supported types.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure for type %T", v)
		return false
	}
	return true
}
