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

// Package logger is the central log for the project. Log entries are stored
// in memory and written to an io.Writer on request; echoing of new entries to
// a writer can be turned on for interactive use.
//
// The logger is never called from the scanline hot path. Logging is for the
// setup and teardown stages and for the non-real-time side of the system.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry is a single line in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries kept by the central logger.
const maxEntries = 256

type central struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var log = central{
	entries: make([]Entry, 0, maxEntries),
}

// Log adds a new entry to the central logger. Consecutive identical entries
// are folded into one.
func Log(tag, detail string) {
	log.crit.Lock()
	defer log.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(log.entries) > 0 {
		e := &log.entries[len(log.entries)-1]
		if e.Tag == tag && e.Detail == detail {
			e.repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	log.entries = append(log.entries, Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	})

	if len(log.entries) > maxEntries {
		log.entries = log.entries[len(log.entries)-maxEntries:]
	}

	if log.echo != nil {
		io.WriteString(log.echo, log.entries[len(log.entries)-1].String())
	}
}

// Logf adds a new formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// SetEcho instructs the central logger to echo new entries to output. A nil
// writer turns echoing off.
func SetEcho(output io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.echo = output
}

// Write copies the entire log to output.
func Write(output io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()

	for i := range log.entries {
		io.WriteString(output, log.entries[i].String())
	}
}

// Tail copies the most recent entries to output, upto a maximum of number.
func Tail(output io.Writer, number int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	if number > len(log.entries) {
		number = len(log.entries)
	}

	for _, e := range log.entries[len(log.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// Clear all entries from the central logger.
func Clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.entries = log.entries[:0]
}
