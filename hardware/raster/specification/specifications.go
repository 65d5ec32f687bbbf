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

// Package specification defines the raster formats the signal generator can
// produce. A specification fixes the vertical timing of a frame (total lines,
// back porch, active window) and the shape of the frame buffer that is
// scanned out (rows, columns, scanlines per row).
//
// The specification is chosen once at startup and is fixed for the life of
// the process. Validate() enforces the configuration invariants; an invalid
// specification is a fatal startup fault, never a runtime one.
package specification

import (
	"strings"
	"time"

	"github.com/softraster/scanterm/curated"
)

// SpecList is the list of specification IDs that the signal generator
// supports.
var SpecList = []string{"VGA60", "PAL50"}

// Spec defines the fixed raster format produced by the signal generator.
type Spec struct {
	ID string

	// the number of frames (vertical refreshes) per second
	RefreshRate float32

	// vertical timing. the sum of the back porch, the active window and the
	// front porch equals TotalLines; the front porch is whatever remains
	// after the active window ends
	TotalLines     int
	BackPorchLines int
	ActiveLines    int

	// the number of consecutive scanlines a single buffer row is repeated
	// over. for the character variant this is the font height multiplied by
	// any vertical doubling
	RowHeight int

	// frame buffer extent
	Rows int
	Cols int

	// the value a cleared cell holds. the space character for the character
	// variant; zero intensity for the bitmap variant
	Blank uint8

	// periods derived from RefreshRate and TotalLines
	FramePeriod time.Duration
	LinePeriod  time.Duration
}

// SpecVGA60 approximates the vertical timing of the 640x480@60Hz VGA mode.
// 525 total lines of which 480 are active. 30 rows of 40 characters, each
// row spanning 16 scanlines (8 pixel font, line doubled).
var SpecVGA60 Spec

// SpecPAL50 is the 50Hz variant. 312 total lines with a 256 line active
// window. 16 rows of 40 characters.
var SpecPAL50 Spec

func init() {
	SpecVGA60 = Spec{
		ID:             "VGA60",
		RefreshRate:    60.0,
		TotalLines:     525,
		BackPorchLines: 35,
		ActiveLines:    480,
		RowHeight:      16,
		Rows:           30,
		Cols:           40,
		Blank:          ' ',
	}
	SpecVGA60.FramePeriod = time.Duration(float32(time.Second) / SpecVGA60.RefreshRate)
	SpecVGA60.LinePeriod = SpecVGA60.FramePeriod / time.Duration(SpecVGA60.TotalLines)

	SpecPAL50 = Spec{
		ID:             "PAL50",
		RefreshRate:    50.0,
		TotalLines:     312,
		BackPorchLines: 45,
		ActiveLines:    256,
		RowHeight:      16,
		Rows:           16,
		Cols:           40,
		Blank:          ' ',
	}
	SpecPAL50.FramePeriod = time.Duration(float32(time.Second) / SpecPAL50.RefreshRate)
	SpecPAL50.LinePeriod = SpecPAL50.FramePeriod / time.Duration(SpecPAL50.TotalLines)
}

// GetSpec returns the specification with the given ID. The ID is not case
// sensitive.
func GetSpec(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "VGA60":
		return SpecVGA60, nil
	case "PAL50":
		return SpecPAL50, nil
	}
	return Spec{}, curated.Errorf("specification: unsupported spec (%s)", id)
}

// Validate checks the specification for configuration faults. Every fault
// returned by Validate is fatal; the timing state machine assumes a valid
// specification and performs no further checks of its own.
func (spec Spec) Validate() error {
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return curated.Errorf("specification: %s: buffer extent must be positive", spec.ID)
	}
	if spec.RowHeight <= 0 {
		return curated.Errorf("specification: %s: row height must be positive", spec.ID)
	}
	if spec.ActiveLines <= 0 {
		return curated.Errorf("specification: %s: active line count must be positive", spec.ID)
	}
	if spec.BackPorchLines < 0 {
		return curated.Errorf("specification: %s: back porch count must not be negative", spec.ID)
	}
	if spec.BackPorchLines >= spec.TotalLines {
		return curated.Errorf("specification: %s: back porch meets or exceeds total lines", spec.ID)
	}
	if spec.BackPorchLines+spec.ActiveLines > spec.TotalLines {
		return curated.Errorf("specification: %s: active window overflows the frame", spec.ID)
	}
	if spec.ActiveLines > spec.Rows*spec.RowHeight {
		return curated.Errorf("specification: %s: active window exceeds buffer extent", spec.ID)
	}
	return nil
}
