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

package raster_test

import (
	"testing"

	"github.com/softraster/scanterm/hardware/raster"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/test"
)

// capture implements raster.Port, recording everything written to it
type capture struct {
	vals []uint8
}

func (c *capture) Write(v uint8) {
	c.vals = append(c.vals, v)
}

func TestBitmapRenderer(t *testing.T) {
	port := &capture{}
	rnd, err := raster.NewBitmap(port)
	test.ExpectSuccess(t, err)

	rnd.RenderLine([]uint8{0x10, 0xff, 0x33}, 0)

	// one value per cell, left-to-right, then the blanking value
	test.ExpectEquality(t, len(port.vals), 4)
	test.ExpectEquality(t, port.vals[0], 0x10)
	test.ExpectEquality(t, port.vals[1], 0xff)
	test.ExpectEquality(t, port.vals[2], 0x33)
	test.ExpectEquality(t, port.vals[3], 0x00)

	_, err = raster.NewBitmap(nil)
	test.ExpectFailure(t, err)
}

func TestTextRenderer(t *testing.T) {
	spec := specification.SpecVGA60

	port := &capture{}
	rnd, err := raster.NewText(port, nil, spec)
	test.ExpectSuccess(t, err)

	row := []uint8("AB")
	rnd.RenderLine(row, 0)

	test.ExpectEquality(t, len(port.vals), 3)
	test.ExpectEquality(t, port.vals[0], raster.DefaultFont.Glyphs['A'][0])
	test.ExpectEquality(t, port.vals[1], raster.DefaultFont.Glyphs['B'][0])
	test.ExpectEquality(t, port.vals[2], 0x00)
}

// row height of 16 with an 8 line font means every glyph line is emitted
// twice
func TestTextRendererStretch(t *testing.T) {
	spec := specification.SpecVGA60
	test.ExpectEquality(t, spec.RowHeight, 16)

	port := &capture{}
	rnd, err := raster.NewText(port, nil, spec)
	test.ExpectSuccess(t, err)

	row := []uint8("Z")
	for subline := 0; subline < spec.RowHeight; subline++ {
		rnd.RenderLine(row, subline)
	}

	// stride of two per scanline: glyph byte and blanking byte
	for subline := 0; subline < spec.RowHeight; subline++ {
		test.ExpectEquality(t, port.vals[subline*2], raster.DefaultFont.Glyphs['Z'][subline/2])
	}
}

// character codes with the high bit set alias the low half of the glyph
// table rather than indexing out of range
func TestTextRendererHighBit(t *testing.T) {
	spec := specification.SpecVGA60

	port := &capture{}
	rnd, err := raster.NewText(port, nil, spec)
	test.ExpectSuccess(t, err)

	rnd.RenderLine([]uint8{'A' | 0x80}, 0)
	test.ExpectEquality(t, port.vals[0], raster.DefaultFont.Glyphs['A'][0])
}

func TestTextRendererFontFit(t *testing.T) {
	spec := specification.SpecVGA60
	spec.RowHeight = 12

	_, err := raster.NewText(&capture{}, nil, spec)
	test.ExpectFailure(t, err)
}
