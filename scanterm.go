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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware"
	"github.com/softraster/scanterm/hardware/clock"
	"github.com/softraster/scanterm/hardware/raster"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/logger"
	"github.com/softraster/scanterm/modalflag"
	"github.com/softraster/scanterm/performance"
	"github.com/softraster/scanterm/screen"
	"github.com/softraster/scanterm/serial"
	"github.com/softraster/scanterm/statsview"
	"github.com/softraster/scanterm/version"
)

// depth of the input queue between the reader goroutine and the engine. bytes
// arriving while the queue is full are dropped, the same as a real wire with
// no flow control.
const inputQueueDepth = 1024

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	specID := md.AddString("spec", "VGA60", "signal specification: VGA60, PAL50")
	mode := md.AddString("mode", "text", "render mode: text, bitmap")
	scale := md.AddInt("scale", 2, "pixel scale of the display window")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server")
	banner := md.AddBool("banner", true, "show startup banner on the display")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	spec, err := specification.GetSpec(*specID)
	if err != nil {
		return err
	}

	var scrMode screen.Mode
	switch strings.ToLower(*mode) {
	case "text":
		scrMode = screen.ModeText
	case "bitmap":
		scrMode = screen.ModeBitmap
	default:
		return curated.Errorf("unrecognised render mode: %s", *mode)
	}

	scr, err := screen.NewScreen(spec, scrMode, *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	var rend raster.Renderer
	switch scrMode {
	case screen.ModeText:
		rend, err = raster.NewText(scr, nil, spec)
	case screen.ModeBitmap:
		rend, err = raster.NewBitmap(scr)
	}
	if err != nil {
		return err
	}

	clk := clock.NewWall(spec)
	defer clk.Stop()

	q := serial.NewQueue(inputQueueDepth)

	eng, err := hardware.NewEngine(spec, clk, rend, q.C())
	if err != nil {
		return err
	}
	eng.AddFrameTrigger(scr)

	// keystrokes go straight onto the wire. a non-terminal stdin (a pipe,
	// say) still works: the run ends when the input is exhausted
	tty, err := serial.NewTTY(os.Stdin)
	if err != nil {
		return err
	}
	if err := tty.Raw(); err == nil {
		defer tty.Restore()
	}
	go tty.Feed(q)

	if *banner {
		ver, _, _ := version.Version()
		fmt.Fprintf(q, "%s %s\r\n", version.ApplicationName, ver)
	}

	// ctrl-c at the terminal arrives as a byte once the tty is raw, so the
	// interrupt signal matters only for non-terminal input
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	quit := make(chan struct{})
	go func() {
		select {
		case <-intChan:
		case <-scr.Quit():
		}
		close(quit)
	}()

	// the engine runs on this goroutine. it must: the screen's SDL window
	// can only be serviced from the thread it was created on
	return eng.Run(quit)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	specID := md.AddString("spec", "VGA60", "signal specification: VGA60, PAL50")
	uncapped := md.AddBool("uncapped", false, "run as fast as the host allows")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	duration := md.AddDuration("duration", 0, "run duration, not counting leadtime (default 5s)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	dur := "5s"
	if *duration > 0 {
		dur = duration.String()
	}

	return performance.Check(os.Stdout, *profile, *specID, *uncapped, dur)
}
