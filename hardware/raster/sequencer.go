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
	"fmt"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware/framebuffer"
	"github.com/softraster/scanterm/hardware/raster/specification"
)

// State records where the sequencer is in the frame cycle.
type State int

// List of valid State values. The sequencer cycles InBackPorch ->
// ActiveVideo -> FrontPorch once per frame. AwaitingFrame occurs only
// between creation/reset and the first FRAME-START trigger.
const (
	AwaitingFrame State = iota
	InBackPorch
	ActiveVideo
	FrontPorch
)

func (s State) String() string {
	switch s {
	case AwaitingFrame:
		return "awaiting frame"
	case InBackPorch:
		return "in back porch"
	case ActiveVideo:
		return "active video"
	case FrontPorch:
		return "front porch"
	}
	return "unknown"
}

// Position is the raster position state. It is recreated at the start of
// every frame and mutated once per LINE-START trigger.
type Position struct {
	// frame count since the sequencer was created
	Frame int

	// index of the current scanline within the active window. counts only
	// lines on which the renderer has been invoked
	Scanline int

	// the buffer row the current scanline maps to and the scanline index
	// within that row's band
	Row     int
	Subline int

	// LINE-START triggers still to be consumed before active video begins
	backPorch int
}

func (pos Position) String() string {
	return fmt.Sprintf("frame %d scanline %d (row %d +%d)", pos.Frame, pos.Scanline, pos.Row, pos.Subline)
}

// Sequencer is the state machine that paces a frame. It is driven by the two
// clock triggers and invokes the renderer once for every scanline in the
// active window.
type Sequencer struct {
	spec  specification.Spec
	fb    *framebuffer.Buffer
	rend  Renderer
	state State
	pos   Position

	// LINE-START triggers seen since the most recent FRAME-START and the
	// final count for the previous frame
	lineCount      int
	linesLastFrame int
}

// NewSequencer is the preferred method of initialisation of the Sequencer
// type. The specification is validated here, once; an invalid specification
// or a buffer that does not match it is a fatal configuration fault.
func NewSequencer(spec specification.Spec, fb *framebuffer.Buffer, rend Renderer) (*Sequencer, error) {
	if err := spec.Validate(); err != nil {
		return nil, curated.Errorf("raster: %v", err)
	}
	if fb.Rows() != spec.Rows || fb.Cols() != spec.Cols {
		return nil, curated.Errorf("raster: buffer extent %dx%d does not match spec %s",
			fb.Cols(), fb.Rows(), spec.ID)
	}
	if rend == nil {
		return nil, curated.Errorf("raster: a renderer is required")
	}

	return &Sequencer{
		spec:  spec,
		fb:    fb,
		rend:  rend,
		state: AwaitingFrame,
	}, nil
}

// State returns the current frame-cycle state.
func (seq *Sequencer) State() State {
	return seq.state
}

// Position returns a copy of the current raster position.
func (seq *Sequencer) Position() Position {
	return seq.pos
}

// LinesLastFrame returns the number of LINE-START triggers consumed during
// the previous complete frame.
func (seq *Sequencer) LinesLastFrame() int {
	return seq.linesLastFrame
}

// FrameStart is called on every FRAME-START trigger. The raster position is
// created fresh and the porch countdown begins. A frame that arrives early
// abandons the remainder of the previous frame; there is nothing to clean
// up because all per-frame state lives in Position.
func (seq *Sequencer) FrameStart() {
	seq.linesLastFrame = seq.lineCount
	seq.lineCount = 0

	seq.pos = Position{
		Frame:     seq.pos.Frame + 1,
		backPorch: seq.spec.BackPorchLines,
	}

	if seq.pos.backPorch == 0 {
		seq.state = ActiveVideo
	} else {
		seq.state = InBackPorch
	}
}

// LineStart is called on every LINE-START trigger. During active video this
// is the entry to the hot path: the current buffer row is rendered before
// the position advances.
func (seq *Sequencer) LineStart() {
	seq.lineCount++

	switch seq.state {
	case AwaitingFrame:
		// line triggers before the first frame trigger are consumed without
		// effect. the display is showing noise at this point anyway

	case InBackPorch:
		seq.pos.backPorch--
		if seq.pos.backPorch == 0 {
			seq.state = ActiveVideo
		}

	case ActiveVideo:
		seq.rend.RenderLine(seq.fb.Row(seq.pos.Row), seq.pos.Subline)

		seq.pos.Scanline++
		seq.pos.Subline++
		if seq.pos.Subline == seq.spec.RowHeight {
			seq.pos.Subline = 0
			seq.pos.Row++
		}

		if seq.pos.Scanline == seq.spec.ActiveLines {
			seq.state = FrontPorch
		}

	case FrontPorch:
		// nothing to do until the next FRAME-START
	}
}
