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

package serial

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/logger"
)

// TTY is a byte input source reading from a file, usually stdin. When the
// file is an interactive terminal, Raw() places it in raw mode so that every
// keypress arrives as-is, one byte at a time, with no line buffering or
// echo. A non-terminal input (a pipe or a redirected file) is still a valid
// byte source; raw mode simply does not apply.
type TTY struct {
	input *os.File

	// false when the input is not a terminal. Raw() and Restore() are
	// no-ops in that case
	isTerm bool

	// terminal attributes on entry, restored by Restore()
	canAttr unix.Termios
	rawAttr unix.Termios
}

// NewTTY is the preferred method of initialisation of the TTY type. The
// terminal, if the input is one, is left in its original mode until Raw()
// is called.
func NewTTY(input *os.File) (*TTY, error) {
	if input == nil {
		return nil, curated.Errorf("serial: tty requires an input file")
	}

	tty := &TTY{input: input}

	// Tcgetattr fails with ENOTTY when the input has no terminal attached.
	// not an error: the input degrades to a plain byte stream
	if err := termios.Tcgetattr(input.Fd(), &tty.canAttr); err != nil {
		logger.Logf("serial", "input is not a terminal: %v", err)
		return tty, nil
	}

	tty.isTerm = true
	tty.rawAttr = tty.canAttr
	termios.Cfmakeraw(&tty.rawAttr)

	return tty, nil
}

// IsTerminal returns false when the input is a pipe or a redirected file
// rather than an interactive terminal.
func (tty *TTY) IsTerminal() bool {
	return tty.isTerm
}

// Raw puts the terminal into raw mode. A no-op for a non-terminal input.
func (tty *TTY) Raw() error {
	if !tty.isTerm {
		return nil
	}
	if err := termios.Tcsetattr(tty.input.Fd(), termios.TCSANOW, &tty.rawAttr); err != nil {
		return curated.Errorf("serial: %v", err)
	}
	return nil
}

// Restore returns the terminal to the mode it was in when the TTY was
// created. A no-op for a non-terminal input.
func (tty *TTY) Restore() error {
	if !tty.isTerm {
		return nil
	}
	if err := termios.Tcsetattr(tty.input.Fd(), termios.TCSANOW, &tty.canAttr); err != nil {
		return curated.Errorf("serial: %v", err)
	}
	return nil
}

// Feed reads bytes from the terminal and sends them to the queue until the
// input reaches EOF or fails, at which point the queue is closed. Feed is
// expected to be run as a goroutine alongside the run loop.
func (tty *TTY) Feed(q *Queue) {
	buf := make([]byte, 1)
	for {
		n, err := tty.input.Read(buf)
		if n > 0 {
			q.Send(buf[0])
		}
		if err != nil {
			logger.Logf("serial", "tty: %v", err)
			q.Close()
			return
		}
	}
}
