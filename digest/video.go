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

// Package digest fingerprints the generated signal. The Video type collects
// every value emitted to the port over a frame and folds it into a SHA-1
// hash at the frame boundary. Fingerprints are chained: the previous frame's
// hash is prepended to the new frame's signal data, so a digest taken after
// N frames identifies the whole sequence, not just the last picture.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/softraster/scanterm/hardware/raster/specification"
)

// Video is both a raster.Port and a hardware.FrameTrigger. Registering it
// with the engine and attaching it as the renderer's port captures the
// complete signal stream.
type Video struct {
	digest [sha1.Size]byte

	// signal values for the current frame, prefixed by the previous digest.
	// the cursor walks the slice as values arrive
	signal []byte
	cursor int
}

// NewVideo is the preferred method of initialisation of the Video type.
func NewVideo(spec specification.Spec) *Video {
	dig := &Video{}

	// one value per cell plus the blanking value, for every active line
	l := sha1.Size
	l += (spec.Cols + 1) * spec.ActiveLines

	dig.signal = make([]byte, l)
	dig.cursor = sha1.Size

	return dig
}

// Hash returns the chained fingerprint as a printable string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest breaks the fingerprint chain.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Write implements the raster.Port interface.
func (dig *Video) Write(v uint8) {
	if dig.cursor < len(dig.signal) {
		dig.signal[dig.cursor] = v
		dig.cursor++
	}
}

// NewFrame implements the hardware.FrameTrigger interface. The completed
// frame is folded into the fingerprint chain.
func (dig *Video) NewFrame(_ int) error {
	copy(dig.signal, dig.digest[:])
	dig.digest = sha1.Sum(dig.signal)
	dig.cursor = sha1.Size
	return nil
}
