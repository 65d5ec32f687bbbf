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

package serial_test

import (
	"testing"

	"github.com/softraster/scanterm/serial"
	"github.com/softraster/scanterm/test"
)

func TestQueue(t *testing.T) {
	q := serial.NewQueue(4)

	n, err := q.Write([]byte("ab"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	test.ExpectEquality(t, <-q.C(), 'a')
	test.ExpectEquality(t, <-q.C(), 'b')
	test.ExpectEquality(t, q.Dropped(), 0)
}

// a sender that outruns the queue loses bytes; it is never blocked and never
// told
func TestQueueOverflow(t *testing.T) {
	q := serial.NewQueue(2)

	n, err := q.Write([]byte("abcd"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, q.Dropped(), 2)

	test.ExpectEquality(t, <-q.C(), 'a')
	test.ExpectEquality(t, <-q.C(), 'b')
}

func TestQueueClose(t *testing.T) {
	q := serial.NewQueue(2)
	q.Send('x')
	q.Close()

	b, ok := <-q.C()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 'x')

	_, ok = <-q.C()
	test.ExpectFailure(t, ok)
}
