//go:build rp2350

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
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	time.Sleep(2 * time.Second)
	println("alia-blinky", version, "- eVTOL light controller (rp2350)")

	cfg := config.Default()

	strip, err := NewStrip(pinByName(cfg.StripPin))
	if err != nil {
		// Without a strip there is nothing to animate; flash the onboard
		// LED to signal the fault.
		led := machine.LED
		led.Configure(machine.PinConfig{Mode: machine.PinOutput})
		for {
			led.High()
			time.Sleep(100 * time.Millisecond)
			led.Low()
			time.Sleep(100 * time.Millisecond)
		}
	}
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

	start := time.Now()
	println("entering animation loop")
	for {
		now := time.Since(start).Milliseconds()
		if err := cycle.Tick(now, strip, nav); err != nil {
			println("strip write failed:", err.Error())
		}
		nav.Update(now)
		machine.Watchdog.Update()
		time.Sleep(time.Millisecond)
	}
}
