package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/johncohn/alia-blinky/blinky"
	"github.com/johncohn/alia-blinky/config"
	"github.com/johncohn/alia-blinky/effects"
	"github.com/johncohn/alia-blinky/host/serial"
	"github.com/johncohn/alia-blinky/host/strip"
)

var (
	device  = flag.String("device", "", "Serial device of the LED bridge (empty = render to terminal)")
	baud    = flag.Int("baud", 115200, "Baud rate for the LED bridge")
	cfgPath = flag.String("config", "", "Path to a JSON config file (empty = defaults)")
	tick    = flag.Duration("tick", 5*time.Millisecond, "Animation tick interval")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frame, cleanup, err := openSink()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	nav := blinky.NewNavBlinker(cfg.NavBlinkPeriodMs)

	cycle := effects.NewAutoCycle(
		blinky.NewSequencer(cfg.Brightness),
		effects.NewRainbow(cfg.Brightness, cfg.RainbowDurationMs, cfg.RainbowFramePeriodMs),
		effects.NewRunningLights(cfg.Brightness, cfg.RunningLightsDurationMs, cfg.RunningLightsFramePeriodMs),
		effects.NewTheaterChase(cfg.Brightness, cfg.TheaterChaseDurationMs, cfg.TheaterChaseFramePeriodMs),
	)

	killchan := make(chan os.Signal, 1)
	signal.Notify(killchan, os.Interrupt)

	start := time.Now()
	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	fmt.Fprintf(os.Stderr, "alia-sim: running (first effect %q), ctrl-c to quit\n", cycle.Active().Name())

	for {
		select {
		case <-killchan:
			// Let the active effect reset cleanly, blank the strip, leave.
			cycle.Interrupt()
			now := time.Since(start).Milliseconds()
			if err := cycle.Tick(now, frame, nav); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			frame.Clear()
			if err := frame.Commit(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			fmt.Fprintln(os.Stderr, "\nalia-sim: bye")
			return
		case <-ticker.C:
			now := time.Since(start).Milliseconds()
			if err := cycle.Tick(now, frame, nav); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.Load(data)
}

// openSink picks the frame sink: a serial LED bridge when -device is
// given, the terminal renderer otherwise.
func openSink() (blinky.FrameSink, func(), error) {
	if *device == "" {
		return strip.NewTermStrip(os.Stdout), func() {}, nil
	}
	scfg := serial.DefaultConfig(*device)
	scfg.Baud = *baud
	port, err := serial.Open(scfg)
	if err != nil {
		return nil, nil, err
	}
	return strip.NewSerialStrip(port), func() { port.Close() }, nil
}
