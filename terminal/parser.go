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

// Package terminal implements the character-stream protocol that turns an
// incoming byte stream into frame buffer mutations. One byte, one state
// transition. The parser owns the write cursor and only ever touches the
// frame buffer; it knows nothing of scanlines, porches or the raster
// position.
//
// Malformed input is absorbed silently. There is no channel to report a
// protocol error to the sender, so an unrecognised escape command or an
// out-of-range cursor target degrades to a no-op and the parser returns to
// the normal state.
package terminal

import (
	"github.com/softraster/scanterm/hardware/framebuffer"
)

// Control bytes recognised in the normal state.
const (
	LineFeed       = 0x0a
	FormFeed       = 0x0c
	CarriageReturn = 0x0d
	Escape         = 0x1b
)

// Command bytes recognised immediately after Escape.
const (
	CmdClearScreen = 0x01
	CmdClearToEOL  = 0x02
	CmdGotoXY      = 0x03
)

// parser states. one transition per received byte
type parseState int

const (
	stateNormal parseState = iota
	stateEscapeSeen
	stateAwaitingX
	stateAwaitingY
)

// Parser is the byte-oriented state machine that mutates the frame buffer on
// behalf of the byte input source. Created once at startup; persists for the
// process lifetime.
type Parser struct {
	fb *framebuffer.Buffer

	// write cursor
	row int
	col int

	state parseState

	// X coordinate gathered during a goto sequence, zero-relative. held
	// until the Y coordinate arrives
	pendingX int
}

// NewParser is the preferred method of initialisation of the Parser type.
// The cursor starts at the origin.
func NewParser(fb *framebuffer.Buffer) *Parser {
	return &Parser{fb: fb}
}

// Position returns the current write cursor as row and column.
func (p *Parser) Position() (int, int) {
	return p.row, p.col
}

// Consume performs one state transition for one received byte.
func (p *Parser) Consume(b uint8) {
	switch p.state {
	case stateNormal:
		p.consumeNormal(b)

	case stateEscapeSeen:
		p.state = stateNormal
		switch b {
		case CmdClearScreen:
			p.fb.Clear()
			p.row = 0
			p.col = 0
		case CmdClearToEOL:
			p.fb.ClearRange(p.row, p.col)
		case CmdGotoXY:
			p.state = stateAwaitingX
		default:
			// unrecognised command, silently ignored
		}

	case stateAwaitingX:
		// coordinates arrive one-relative so that they avoid the byte values
		// claimed by the control codes
		p.pendingX = int(b) - 1
		p.state = stateAwaitingY

	case stateAwaitingY:
		y := int(b) - 1
		if p.pendingX >= 0 && p.pendingX < p.fb.Cols() && y >= 0 && y < p.fb.Rows() {
			p.row = y
			p.col = p.pendingX
		}
		p.state = stateNormal
	}
}

func (p *Parser) consumeNormal(b uint8) {
	switch b {
	case Escape:
		p.state = stateEscapeSeen

	case CarriageReturn:
		p.col = 0

	case LineFeed:
		p.col = 0
		p.advanceRow()

	case FormFeed:
		p.fb.Clear()
		p.row = 0
		p.col = 0

	default:
		// write, then wrap-check, then scroll. a character written to the
		// last cell of the last row lands before the scroll it causes
		p.fb.SetCell(p.row, p.col, b)
		p.col++
		if p.col == p.fb.Cols() {
			p.col = 0
			p.advanceRow()
		}
	}
}

// advanceRow is the transition shared by line-feed and column wrap: move the
// cursor down one row, scrolling the buffer when the cursor is already on
// the last row.
func (p *Parser) advanceRow() {
	p.row++
	if p.row == p.fb.Rows() {
		p.row = p.fb.Rows() - 1
		p.fb.Scroll()
	}
}

// Write implements the io.Writer interface. A convenience for feeding the
// parser startup content; never used on the byte input path.
func (p *Parser) Write(content []byte) (int, error) {
	for _, b := range content {
		p.Consume(b)
	}
	return len(content), nil
}
