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

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/digest"
	"github.com/softraster/scanterm/hardware"
	"github.com/softraster/scanterm/hardware/clock"
	"github.com/softraster/scanterm/hardware/raster"
	"github.com/softraster/scanterm/hardware/raster/specification"
)

// leadtime before measurement begins, allowing the frame rate to settle.
const leadtime = 2 * time.Second

// frameCounter counts completed frames. safe to read while the engine is
// running.
type frameCounter struct {
	frames atomic.Int64
}

func (fc *frameCounter) NewFrame(_ int) error {
	fc.frames.Add(1)
	return nil
}

// Check the performance of the signal engine.
//
// The engine runs headless for the specified duration, rendering into a video
// digest so that the full render path is exercised. With uncapped set, the
// engine is driven as fast as the host allows rather than at the
// specification's line rate.
func Check(output io.Writer, profile bool, specID string, uncapped bool, duration string) error {
	spec, err := specification.GetSpec(specID)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dig := digest.NewVideo(spec)

	rend, err := raster.NewText(dig, nil, spec)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var clk clock.Clock
	var man *clock.Manual
	if uncapped {
		man = clock.NewManual()
		clk = man
	} else {
		clk = clock.NewWall(spec)
	}
	defer clk.Stop()

	// the engine's input line is held open and silent for the whole
	// measurement
	input := make(chan uint8)

	eng, err := hardware.NewEngine(spec, clk, rend, input)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	eng.AddFrameTrigger(dig)

	counter := &frameCounter{}
	eng.AddFrameTrigger(counter)

	var startFrames int64
	var endFrames int64

	runner := func() error {
		quit := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			done <- eng.Run(quit)
		}()

		// the uncapped driver steps the manual clock as fast as the engine
		// will take the triggers. it checks for shutdown only between
		// frames, so every step it makes is consumed before the engine is
		// told to quit
		var stopDriving chan struct{}
		var driverDone chan struct{}
		if man != nil {
			stopDriving = make(chan struct{})
			driverDone = make(chan struct{})
			go func() {
				defer close(driverDone)
				for {
					select {
					case <-stopDriving:
						return
					default:
					}
					man.StepFrame()
					for i := 0; i < spec.TotalLines; i++ {
						man.StepLine()
					}
				}
			}()
		}

		time.Sleep(leadtime)
		startFrames = counter.frames.Load()
		time.Sleep(dur)
		endFrames = counter.frames.Load()

		if man != nil {
			close(stopDriving)
			<-driverDone
		}
		close(quit)

		return <-done
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := int(endFrames - startFrames)
	fps, accuracy := CalcFPS(spec, numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
