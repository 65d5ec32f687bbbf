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

package logger_test

import (
	"strings"
	"testing"

	"github.com/softraster/scanterm/logger"
	"github.com/softraster/scanterm/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	logger.Log("test", "hello")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: hello\n")
}

func TestLoggerRepeats(t *testing.T) {
	logger.Clear()
	logger.Log("test", "hello")
	logger.Log("test", "hello")
	logger.Log("test", "world")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: hello (repeat x2)\ntest: world\n")

	s.Reset()
	logger.Tail(s, 1)
	test.ExpectEquality(t, s.String(), "test: world\n")
}
