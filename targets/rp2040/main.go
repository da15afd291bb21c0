//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/johncohn/alia-blinky/blinky"
	"github.com/johncohn/alia-blinky/config"
	"github.com/johncohn/alia-blinky/effects"
)

const version = "1.0.0"

func main() {
	// Disable the watchdog on boot to clear any state left over from a
	// previous reset.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	// Give USB serial a moment to enumerate before logging.
	time.Sleep(2 * time.Second)
	println("alia-blinky", version, "- eVTOL light controller (rp2040)")

	cfg := config.Default()

	strip := NewStrip(pinByName(cfg.StripPin))
	nav := NewNavLights(
		[3]machine.Pin{
			pinByName(cfg.NavPins[0]),
			pinByName(cfg.NavPins[1]),
			pinByName(cfg.NavPins[2]),
		},
		cfg.NavBlinkPeriodMs,
	)

	cycle := effects.NewAutoCycle(
		blinky.NewSequencer(cfg.Brightness),
		effects.NewRainbow(cfg.Brightness, cfg.RainbowDurationMs, cfg.RainbowFramePeriodMs),
		effects.NewRunningLights(cfg.Brightness, cfg.RunningLightsDurationMs, cfg.RunningLightsFramePeriodMs),
		effects.NewTheaterChase(cfg.Brightness, cfg.TheaterChaseDurationMs, cfg.TheaterChaseFramePeriodMs),
	)

	err = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 500})
	if err != nil {
		println("watchdog configure failed:", err.Error())
	} else {
		machine.Watchdog.Start()
	}

	println("entering animation loop")
	for {
		now := millis()
		if err := cycle.Tick(now, strip, nav); err != nil {
			println("strip write failed:", err.Error())
		}
		nav.Update(now)
		machine.Watchdog.Update()
		time.Sleep(time.Millisecond)
	}
}
