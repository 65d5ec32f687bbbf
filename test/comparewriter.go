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

import "strings"

// CompareWriter is an io.Writer that collects everything written to it, so a
// test can hand it to code expecting an output writer and then compare the
// whole of the output in one step.
type CompareWriter struct {
	b strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.b.Write(p)
}

// Compare the collected output with the expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}
