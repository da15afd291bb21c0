// Package config loads the controller configuration from JSON and fills
// in defaults for anything omitted. The topology (41 pixels, four props,
// one tail) is fixed at build time and is deliberately not configurable.
package config

import "encoding/json"

// Config holds the tunable parameters of the light controller.
type Config struct {
	// Brightness is the channel value used for the shared white pattern
	// color and as the peak intensity of the simple effects.
	Brightness uint8 `json:"brightness"`

	// NavBlinkPeriodMs is the nav-light half-period in blinking mode.
	NavBlinkPeriodMs int64 `json:"nav_blink_period_ms"`

	// Dwell times for the simple effects, milliseconds per run.
	RainbowDurationMs       int64 `json:"rainbow_duration_ms"`
	RunningLightsDurationMs int64 `json:"running_lights_duration_ms"`
	TheaterChaseDurationMs  int64 `json:"theater_chase_duration_ms"`

	// Frame periods for the simple effects.
	RainbowFramePeriodMs       int64 `json:"rainbow_frame_period_ms"`
	RunningLightsFramePeriodMs int64 `json:"running_lights_frame_period_ms"`
	TheaterChaseFramePeriodMs  int64 `json:"theater_chase_frame_period_ms"`

	// StripPin names the GPIO driving the WS2812 data line, e.g. "gpio16".
	StripPin string `json:"strip_pin"`

	// NavPins names the three nav-light GPIOs.
	NavPins [3]string `json:"nav_pins"`
}

// Load parses a JSON configuration and applies defaults.
func Load(jsonData []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no JSON is supplied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in missing configuration values with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Brightness == 0 {
		cfg.Brightness = 32
	}
	if cfg.NavBlinkPeriodMs == 0 {
		cfg.NavBlinkPeriodMs = 500
	}
	if cfg.RainbowDurationMs == 0 {
		cfg.RainbowDurationMs = 15000
	}
	if cfg.RunningLightsDurationMs == 0 {
		cfg.RunningLightsDurationMs = 10000
	}
	if cfg.TheaterChaseDurationMs == 0 {
		cfg.TheaterChaseDurationMs = 10000
	}
	if cfg.RainbowFramePeriodMs == 0 {
		cfg.RainbowFramePeriodMs = 20
	}
	if cfg.RunningLightsFramePeriodMs == 0 {
		cfg.RunningLightsFramePeriodMs = 50
	}
	if cfg.TheaterChaseFramePeriodMs == 0 {
		cfg.TheaterChaseFramePeriodMs = 100
	}
	if cfg.StripPin == "" {
		cfg.StripPin = "gpio16"
	}
	if cfg.NavPins[0] == "" {
		cfg.NavPins = [3]string{"gpio17", "gpio18", "gpio19"}
	}
}
