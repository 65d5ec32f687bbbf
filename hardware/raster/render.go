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

package raster

import (
	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware/raster/specification"
)

// Port is the output port the renderers write signal to. On the target
// hardware this is a byte-wide register feeding the shift stage; writes have
// known constant latency and no error path. Implementations must not block.
type Port interface {
	Write(v uint8)
}

// Renderer turns one buffer row into one scanline of signal. RenderLine() is
// called once per active horizontal period with the mapped row and the
// scanline index within the row's band. Exactly Cols values are written to
// the port, strictly left-to-right, followed by one blanking value to stop
// the last cell bleeding into the front porch.
type Renderer interface {
	RenderLine(row []uint8, subline int)
}

// the value written to the port after the last cell of every scanline. zero
// intensity, and the all-background glyph slice in the character variant
const blanking = 0x00

// Bitmap renders rows of raw intensity bytes. Each cell is emitted to the
// port unchanged.
type Bitmap struct {
	port Port
}

// NewBitmap is the preferred method of initialisation of the Bitmap type.
func NewBitmap(port Port) (*Bitmap, error) {
	if port == nil {
		return nil, curated.Errorf("render: a port is required")
	}
	return &Bitmap{port: port}, nil
}

// RenderLine implements the Renderer interface.
func (rnd *Bitmap) RenderLine(row []uint8, _ int) {
	for i := 0; i < len(row); i++ {
		rnd.port.Write(row[i])
	}
	rnd.port.Write(blanking)
}

// Text renders rows of character cells. Each cell is emitted as the glyph
// slice for the current scanline: one byte, eight horizontal pixels, shifted
// out by the port hardware.
type Text struct {
	port Port
	font *Font

	// number of consecutive scanlines each glyph line is repeated over
	// (vertical doubling). derived from the specification's row height
	stretch int
}

// NewText is the preferred method of initialisation of the Text type. The
// specification's row height must be a whole multiple of the font height.
func NewText(port Port, font *Font, spec specification.Spec) (*Text, error) {
	if port == nil {
		return nil, curated.Errorf("render: a port is required")
	}
	if font == nil {
		font = DefaultFont
	}
	if spec.RowHeight%font.Height != 0 {
		return nil, curated.Errorf("render: row height %d is not a multiple of font height %d",
			spec.RowHeight, font.Height)
	}
	return &Text{
		port:    port,
		font:    font,
		stretch: spec.RowHeight / font.Height,
	}, nil
}

// RenderLine implements the Renderer interface.
//
// The glyph line is decided once, outside the loop. Inside the loop there is
// one masked table lookup and one port write per cell. Character codes with
// the high bit set alias the low half of the table.
func (rnd *Text) RenderLine(row []uint8, subline int) {
	glyphs := &rnd.font.Glyphs
	gl := subline / rnd.stretch
	for i := 0; i < len(row); i++ {
		rnd.port.Write(glyphs[row[i]&0x7f][gl])
	}
	rnd.port.Write(blanking)
}
