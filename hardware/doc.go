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

// Package hardware assembles the signal generator: clock, sync sequencer,
// frame buffer, renderer and terminal parser, bound together by the run
// loop.
//
// The run loop is where the concurrency model of the system lives. On the
// target hardware the two timer interrupts preempt whatever the processor is
// doing; here the same discipline is expressed as a single goroutine with a
// prioritised select. The two clock triggers are always taken first and an
// incoming byte is consumed only when neither trigger is pending - the
// software equivalent of servicing the serial line in the idle time between
// scanlines. Because everything happens on the one goroutine, the frame
// buffer needs no lock and the parser can never tear a row mid-render.
package hardware
