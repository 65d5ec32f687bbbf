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

// Package framebuffer implements the fixed-size grid of cells that is the
// sole shared structure between the scanline path and the terminal protocol
// path. A cell is one byte: a character code in the character variant or a
// raw intensity value in the bitmap variant. The package does not care which;
// the renderer decides how a cell becomes signal.
//
// The grid is allocated once, backed by a single slice, and never resized.
// Row() returns a precomputed subslice so the read path performs no
// arithmetic beyond the row index and never allocates.
//
// There is no locking. The scanline path and the protocol path share a
// single execution context (see the hardware package) so mutations can never
// tear a concurrent read. Scroll() is nonetheless ordered top-to-bottom so
// that a read falling between its steps observes stale rows, never
// duplicated or missing ones.
package framebuffer

import (
	"strings"

	"github.com/softraster/scanterm/curated"
)

// Buffer is the fixed-size cell grid. Use NewBuffer() to create a valid
// instance.
type Buffer struct {
	rows  int
	cols  int
	blank uint8

	// single backing array for every cell in the grid. the rows field below
	// holds one precomputed subslice per row
	cells []uint8
	row   [][]uint8
}

// NewBuffer is the preferred method of initialisation of the Buffer type.
// The extent and the blank value are fixed for the lifetime of the buffer.
// Every cell starts at the blank value.
func NewBuffer(rows, cols int, blank uint8) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, curated.Errorf("framebuffer: extent must be positive (%dx%d)", cols, rows)
	}

	fb := &Buffer{
		rows:  rows,
		cols:  cols,
		blank: blank,
		cells: make([]uint8, rows*cols),
		row:   make([][]uint8, rows),
	}

	for i := 0; i < rows; i++ {
		fb.row[i] = fb.cells[i*cols : (i+1)*cols : (i+1)*cols]
	}

	fb.Clear()

	return fb, nil
}

// Rows returns the fixed number of rows in the buffer.
func (fb *Buffer) Rows() int {
	return fb.rows
}

// Cols returns the fixed number of cells in every row.
func (fb *Buffer) Cols() int {
	return fb.cols
}

// Blank returns the value a cleared cell holds.
func (fb *Buffer) Blank() uint8 {
	return fb.blank
}

// Row returns the cell sequence for the indexed row. This is the read path
// used once per scanline; it is O(1) and does not allocate. The returned
// slice aliases the buffer; the scanline path must treat it as read-only.
func (fb *Buffer) Row(idx int) []uint8 {
	return fb.row[idx]
}

// Cell returns the value at the given position. Out-of-range positions
// return the blank value.
func (fb *Buffer) Cell(row, col int) uint8 {
	if row < 0 || row >= fb.rows || col < 0 || col >= fb.cols {
		return fb.blank
	}
	return fb.row[row][col]
}

// SetCell sets the value at the given position. Out-of-range positions are
// ignored.
func (fb *Buffer) SetCell(row, col int, v uint8) {
	if row < 0 || row >= fb.rows || col < 0 || col >= fb.cols {
		return
	}
	fb.row[row][col] = v
}

// ClearRange blanks the cells of a row from column from (inclusive) to the
// end of the row. Out-of-range arguments are clamped.
func (fb *Buffer) ClearRange(row, from int) {
	if row < 0 || row >= fb.rows {
		return
	}
	if from < 0 {
		from = 0
	}
	r := fb.row[row]
	for i := from; i < fb.cols; i++ {
		r[i] = fb.blank
	}
}

// Clear blanks every cell in the buffer.
func (fb *Buffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = fb.blank
	}
}

// Scroll shifts every row up by one and blanks the newly exposed last row.
// Cell values are preserved bit-for-bit except for the shift. The shift runs
// top-to-bottom and completes before the last row is blanked.
func (fb *Buffer) Scroll() {
	copy(fb.cells[:(fb.rows-1)*fb.cols], fb.cells[fb.cols:])
	fb.ClearRange(fb.rows-1, 0)
}

// String returns the buffer contents with rows separated by newlines. Only
// sensible for the character variant; intended for test failures and
// debugging.
func (fb *Buffer) String() string {
	s := strings.Builder{}
	for i := 0; i < fb.rows; i++ {
		s.Write(fb.row[i])
		s.WriteString("\n")
	}
	return s.String()
}
