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

	"github.com/softraster/scanterm/hardware/framebuffer"
	"github.com/softraster/scanterm/hardware/raster"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/test"
)

// a small specification that keeps the arithmetic in the tests legible
func testSpec() specification.Spec {
	return specification.Spec{
		ID:             "TEST",
		RefreshRate:    60.0,
		TotalLines:     20,
		BackPorchLines: 4,
		ActiveLines:    12,
		RowHeight:      3,
		Rows:           4,
		Cols:           5,
		Blank:          ' ',
	}
}

// tracer records every render invocation
type tracer struct {
	rows     []string
	sublines []int
}

func (trc *tracer) RenderLine(row []uint8, subline int) {
	trc.rows = append(trc.rows, string(row))
	trc.sublines = append(trc.sublines, subline)
}

func newTestSequencer(t *testing.T, spec specification.Spec) (*raster.Sequencer, *framebuffer.Buffer, *tracer) {
	t.Helper()

	fb, err := framebuffer.NewBuffer(spec.Rows, spec.Cols, spec.Blank)
	if err != nil {
		t.Fatal(err)
	}

	trc := &tracer{}
	seq, err := raster.NewSequencer(spec, fb, trc)
	if err != nil {
		t.Fatal(err)
	}

	return seq, fb, trc
}

func TestNewSequencer(t *testing.T) {
	spec := testSpec()
	seq, _, _ := newTestSequencer(t, spec)
	test.ExpectEquality(t, seq.State(), raster.AwaitingFrame)

	// invalid specification is a fatal configuration fault
	bad := spec
	bad.BackPorchLines = bad.TotalLines
	fb, err := framebuffer.NewBuffer(bad.Rows, bad.Cols, bad.Blank)
	test.ExpectSuccess(t, err)
	_, err = raster.NewSequencer(bad, fb, &tracer{})
	test.ExpectFailure(t, err)

	// buffer extent must match the specification
	small, err := framebuffer.NewBuffer(2, 2, spec.Blank)
	test.ExpectSuccess(t, err)
	_, err = raster.NewSequencer(spec, small, &tracer{})
	test.ExpectFailure(t, err)

	_, err = raster.NewSequencer(spec, fb, nil)
	test.ExpectFailure(t, err)
}

func TestFrameCycle(t *testing.T) {
	spec := testSpec()
	seq, _, trc := newTestSequencer(t, spec)

	// line triggers before the first frame trigger are consumed without
	// effect
	seq.LineStart()
	seq.LineStart()
	test.ExpectEquality(t, seq.State(), raster.AwaitingFrame)
	test.ExpectEquality(t, len(trc.rows), 0)

	for frame := 1; frame <= 3; frame++ {
		seq.FrameStart()
		test.ExpectEquality(t, seq.State(), raster.InBackPorch)
		test.ExpectEquality(t, seq.Position().Frame, frame)

		rendered := len(trc.rows)
		for i := 0; i < spec.TotalLines; i++ {
			seq.LineStart()
		}

		// the porch consumed its share of triggers, the active window its
		// share, and the remainder fell in the front porch
		test.ExpectEquality(t, seq.State(), raster.FrontPorch)
		test.ExpectEquality(t, len(trc.rows)-rendered, spec.ActiveLines)
	}

	// the count of line triggers consumed over the previous frame is the
	// configured total
	seq.FrameStart()
	test.ExpectEquality(t, seq.LinesLastFrame(), spec.TotalLines)
}

// for any back porch count the first rendered row occurs exactly that many
// horizontal periods after the frame trigger
func TestBackPorchCounts(t *testing.T) {
	spec := testSpec()

	for _, porch := range []int{0, 1, 4, 7} {
		sp := spec
		sp.BackPorchLines = porch
		seq, _, trc := newTestSequencer(t, sp)

		seq.FrameStart()
		for i := 0; i < porch; i++ {
			seq.LineStart()
			test.ExpectEquality(t, len(trc.rows), 0)
		}

		seq.LineStart()
		test.ExpectEquality(t, len(trc.rows), 1)
	}
}

func TestRowMapping(t *testing.T) {
	spec := testSpec()
	seq, fb, trc := newTestSequencer(t, spec)

	// make each row distinguishable in the trace
	for row := 0; row < fb.Rows(); row++ {
		for col := 0; col < fb.Cols(); col++ {
			fb.SetCell(row, col, uint8('a'+row))
		}
	}

	seq.FrameStart()
	for i := 0; i < spec.TotalLines; i++ {
		seq.LineStart()
	}

	// every buffer row is repeated over RowHeight consecutive scanlines
	test.ExpectEquality(t, len(trc.rows), spec.ActiveLines)
	for i := 0; i < spec.ActiveLines; i++ {
		row := i / spec.RowHeight
		test.ExpectEquality(t, trc.rows[i][0], uint8('a'+row))
		test.ExpectEquality(t, trc.sublines[i], i%spec.RowHeight)
	}
}

// an early frame trigger abandons the current frame and restarts the porch
// countdown
func TestShortFrame(t *testing.T) {
	spec := testSpec()
	seq, _, trc := newTestSequencer(t, spec)

	seq.FrameStart()
	for i := 0; i < spec.BackPorchLines+5; i++ {
		seq.LineStart()
	}
	test.ExpectEquality(t, len(trc.rows), 5)

	seq.FrameStart()
	test.ExpectEquality(t, seq.State(), raster.InBackPorch)
	test.ExpectEquality(t, seq.LinesLastFrame(), spec.BackPorchLines+5)
	test.ExpectEquality(t, seq.Position().Scanline, 0)
	test.ExpectEquality(t, seq.Position().Row, 0)
}
