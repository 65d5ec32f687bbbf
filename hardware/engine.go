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

package hardware

import (
	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware/clock"
	"github.com/softraster/scanterm/hardware/framebuffer"
	"github.com/softraster/scanterm/hardware/raster"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/logger"
	"github.com/softraster/scanterm/terminal"
)

// FrameTrigger implementations listen for the start of every frame. The
// argument is the number of the frame that has just completed. Output
// backends use the event to present or fingerprint the frame they have
// accumulated.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// Engine is the assembled signal generator.
type Engine struct {
	Spec   specification.Spec
	FB     *framebuffer.Buffer
	Seq    *raster.Sequencer
	Parser *terminal.Parser

	clk   clock.Clock
	input <-chan uint8

	frameTriggers []FrameTrigger
}

// NewEngine is the preferred method of initialisation of the Engine type.
// The frame buffer and parser are created here, shaped by the
// specification. The input channel may be nil for a generator with no byte
// source attached.
func NewEngine(spec specification.Spec, clk clock.Clock, rend raster.Renderer, input <-chan uint8) (*Engine, error) {
	fb, err := framebuffer.NewBuffer(spec.Rows, spec.Cols, spec.Blank)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	seq, err := raster.NewSequencer(spec, fb, rend)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	if clk == nil {
		return nil, curated.Errorf("hardware: a clock is required")
	}

	logger.Logf("hardware", "%s: %d lines, %dx%d cells", spec.ID, spec.TotalLines, spec.Cols, spec.Rows)

	return &Engine{
		Spec:   spec,
		FB:     fb,
		Seq:    seq,
		Parser: terminal.NewParser(fb),
		clk:    clk,
		input:  input,
	}, nil
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (eng *Engine) AddFrameTrigger(ft FrameTrigger) {
	eng.frameTriggers = append(eng.frameTriggers, ft)
}

// newFrame runs the frame triggers for the completed frame and restarts the
// sequencer.
func (eng *Engine) newFrame() error {
	num := eng.Seq.Position().Frame
	for _, ft := range eng.frameTriggers {
		if err := ft.NewFrame(num); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}
	eng.Seq.FrameStart()
	return nil
}

// Run drives the signal generator until the quit channel yields, the input
// channel is closed, or a frame trigger returns an error.
//
// Trigger priority is strict: the outer select consumes only clock triggers
// and a byte is read in the inner select only when the outer select found
// nothing pending. A continuous byte stream therefore cannot starve the
// scanline path, while bytes are drained one per idle slot.
func (eng *Engine) Run(quit <-chan struct{}) error {
	for {
		select {
		case <-quit:
			return nil

		case <-eng.clk.Frame():
			if err := eng.newFrame(); err != nil {
				return err
			}

		case <-eng.clk.Line():
			eng.Seq.LineStart()

		default:
			select {
			case <-quit:
				return nil

			case <-eng.clk.Frame():
				if err := eng.newFrame(); err != nil {
					return err
				}

			case <-eng.clk.Line():
				eng.Seq.LineStart()

			case b, ok := <-eng.input:
				if !ok {
					// end of the byte stream
					return nil
				}
				eng.Parser.Consume(b)
			}
		}
	}
}
