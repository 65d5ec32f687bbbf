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

package hardware_test

import (
	"testing"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware"
	"github.com/softraster/scanterm/hardware/clock"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/serial"
	"github.com/softraster/scanterm/test"
)

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

// renderer that counts invocations
type countingRenderer struct {
	lines int
}

func (rnd *countingRenderer) RenderLine(_ []uint8, _ int) {
	rnd.lines++
}

// frame trigger that records the completed frame numbers
type countingTrigger struct {
	frames []int
	fail   bool
}

func (ct *countingTrigger) NewFrame(frameNum int) error {
	if ct.fail {
		return curated.Errorf("countingTrigger: deliberate failure")
	}
	ct.frames = append(ct.frames, frameNum)
	return nil
}

// step the manual clock through n complete frames
func stepFrames(clk *clock.Manual, spec specification.Spec, n int) {
	for i := 0; i < n; i++ {
		clk.StepFrame()
		for j := 0; j < spec.TotalLines; j++ {
			clk.StepLine()
		}
	}
}

func TestEngineRun(t *testing.T) {
	spec := testSpec()
	clk := clock.NewManual()
	q := serial.NewQueue(16)
	rnd := &countingRenderer{}

	eng, err := hardware.NewEngine(spec, clk, rnd, q.C())
	test.ExpectSuccess(t, err)

	done := make(chan error)
	go func() {
		done <- eng.Run(nil)
	}()

	// bytes arrive while the generator is running and are applied between
	// scanlines
	q.Write([]byte("AB\n"))
	stepFrames(clk, spec, 2)

	// closing the byte stream ends the run once the queue has drained
	q.Close()
	test.ExpectSuccess(t, <-done)

	test.ExpectEquality(t, string(eng.FB.Row(0)), "AB   ")
	row, col := eng.Parser.Position()
	test.ExpectEquality(t, row, 1)
	test.ExpectEquality(t, col, 0)

	// every active line of every frame was rendered
	test.ExpectEquality(t, rnd.lines, 2*spec.ActiveLines)
	test.ExpectEquality(t, eng.Seq.LinesLastFrame(), spec.TotalLines)
}

func TestEngineFrameTriggers(t *testing.T) {
	spec := testSpec()
	clk := clock.NewManual()

	eng, err := hardware.NewEngine(spec, clk, &countingRenderer{}, nil)
	test.ExpectSuccess(t, err)

	ct := &countingTrigger{}
	eng.AddFrameTrigger(ct)

	quit := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- eng.Run(quit)
	}()

	stepFrames(clk, spec, 3)
	close(quit)
	test.ExpectSuccess(t, <-done)

	// the trigger sees the number of the frame that has just completed
	test.ExpectEquality(t, len(ct.frames), 3)
	test.ExpectEquality(t, ct.frames[0], 0)
	test.ExpectEquality(t, ct.frames[2], 2)
}

func TestEngineFrameTriggerError(t *testing.T) {
	spec := testSpec()
	clk := clock.NewManual()

	eng, err := hardware.NewEngine(spec, clk, &countingRenderer{}, nil)
	test.ExpectSuccess(t, err)
	eng.AddFrameTrigger(&countingTrigger{fail: true})

	done := make(chan error)
	go func() {
		done <- eng.Run(nil)
	}()

	clk.StepFrame()
	test.ExpectFailure(t, <-done)
}

func TestNewEngineFaults(t *testing.T) {
	spec := testSpec()

	_, err := hardware.NewEngine(spec, nil, &countingRenderer{}, nil)
	test.ExpectFailure(t, err)

	bad := spec
	bad.BackPorchLines = bad.TotalLines + 1
	_, err = hardware.NewEngine(bad, clock.NewManual(), &countingRenderer{}, nil)
	test.ExpectFailure(t, err)
}
