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

// Package raster is the time-critical half of the signal generator: the sync
// sequencer that tracks where the beam is in the frame and the scanline
// renderers that turn one buffer row into signal.
//
// The sequencer is driven from the outside by the two clock triggers,
// FrameStart() and LineStart(). It cycles through the porch and active-video
// states once per frame for the life of the process; it has no terminal
// state. The sequencer reads the frame buffer and never writes to it.
//
// The renderers are the hot path. RenderLine() must complete within the
// active-video portion of one horizontal period; everything it needs is
// precomputed at construction and the per-cell loop contains no branching
// beyond the loop counter. Failure to meet the deadline is not a reportable
// error, it is malformed signal; the renderers are written so that it cannot
// happen rather than so that it is detected.
package raster
