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

// Package serial delivers bytes to the terminal protocol parser. The core is
// agnostic about where bytes come from; anything that can write into a Queue
// is a byte input source. The package provides the Queue itself and a raw
// mode reader for an interactive tty.
package serial

import (
	"sync/atomic"
)

// Queue is the asynchronous hand-off between a byte input source and the
// run loop. The sending side never blocks; the run loop drains the other end
// during idle slots between scanlines.
type Queue struct {
	c       chan uint8
	dropped atomic.Int64
}

// NewQueue is the preferred method of initialisation of the Queue type.
// Depth is the number of bytes that can be in flight before Send() starts
// dropping.
func NewQueue(depth int) *Queue {
	return &Queue{
		c: make(chan uint8, depth),
	}
}

// Send offers one byte to the queue. If the queue is full the byte is
// dropped; a sender that outruns the idle time of the signal generator loses
// data rather than delaying the scanline path.
func (q *Queue) Send(b uint8) {
	select {
	case q.c <- b:
	default:
		q.dropped.Add(1)
	}
}

// Write implements the io.Writer interface. Bytes that do not fit in the
// queue are dropped, but the returned length is always len(p); there is no
// back-pressure channel to the sender.
func (q *Queue) Write(p []byte) (int, error) {
	for _, b := range p {
		q.Send(b)
	}
	return len(p), nil
}

// C is the receiving end of the queue.
func (q *Queue) C() <-chan uint8 {
	return q.c
}

// Close marks the end of the byte stream. Send() must not be called after
// Close().
func (q *Queue) Close() {
	close(q.c)
}

// Dropped returns the number of bytes dropped because the queue was full.
func (q *Queue) Dropped() int {
	return int(q.dropped.Load())
}
