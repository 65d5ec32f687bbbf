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

// Package clock provides the two periodic triggers that pace the signal
// generator: FRAME-START at the vertical refresh rate and LINE-START at the
// horizontal line rate. The two triggers are independent; neither is derived
// from the other and no drift correction is applied. The instant a trigger
// fires is authoritative.
//
// The Wall clock is backed by time.Ticker and paces the generator against
// real time. The Manual clock is stepped explicitly and is used by tests and
// by the performance mode, where the generator runs as fast as the host
// allows.
package clock

import (
	"time"

	"github.com/softraster/scanterm/hardware/raster/specification"
)

// Clock provides the two periodic triggers consumed by the run loop.
type Clock interface {
	// Frame yields a value at the start of every vertical period.
	Frame() <-chan time.Time

	// Line yields a value at the start of every horizontal period.
	Line() <-chan time.Time

	// Stop the triggers. The clock cannot be restarted.
	Stop()
}

// Wall is a Clock backed by two independent time.Tickers running at the
// periods given by the specification.
type Wall struct {
	frame *time.Ticker
	line  *time.Ticker
}

// NewWall is the preferred method of initialisation of the Wall type.
func NewWall(spec specification.Spec) *Wall {
	return &Wall{
		frame: time.NewTicker(spec.FramePeriod),
		line:  time.NewTicker(spec.LinePeriod),
	}
}

// Frame implements the Clock interface.
func (clk *Wall) Frame() <-chan time.Time {
	return clk.frame.C
}

// Line implements the Clock interface.
func (clk *Wall) Line() <-chan time.Time {
	return clk.line.C
}

// Stop implements the Clock interface.
func (clk *Wall) Stop() {
	clk.frame.Stop()
	clk.line.Stop()
}

// Manual is a Clock that fires only when stepped. StepFrame() and StepLine()
// block until the trigger has been consumed, so the caller and the run loop
// proceed in lockstep.
type Manual struct {
	frame chan time.Time
	line  chan time.Time
}

// NewManual is the preferred method of initialisation of the Manual type.
func NewManual() *Manual {
	return &Manual{
		frame: make(chan time.Time),
		line:  make(chan time.Time),
	}
}

// Frame implements the Clock interface.
func (clk *Manual) Frame() <-chan time.Time {
	return clk.frame
}

// Line implements the Clock interface.
func (clk *Manual) Line() <-chan time.Time {
	return clk.line
}

// Stop implements the Clock interface.
func (clk *Manual) Stop() {
}

// StepFrame fires the FRAME-START trigger once.
func (clk *Manual) StepFrame() {
	clk.frame <- time.Time{}
}

// StepLine fires the LINE-START trigger once.
func (clk *Manual) StepLine() {
	clk.line <- time.Time{}
}
