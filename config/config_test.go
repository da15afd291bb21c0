package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Brightness != 32 {
		t.Errorf("Brightness = %d, want 32", cfg.Brightness)
	}
	if cfg.NavBlinkPeriodMs != 500 {
		t.Errorf("NavBlinkPeriodMs = %d, want 500", cfg.NavBlinkPeriodMs)
	}
	if cfg.StripPin != "gpio16" {
		t.Errorf("StripPin = %q, want gpio16", cfg.StripPin)
	}
	if cfg.NavPins[2] != "gpio19" {
		t.Errorf("NavPins = %v", cfg.NavPins)
	}
}

func TestLoadPartialJSONKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte(`{"brightness": 100, "strip_pin": "gpio2"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Brightness != 100 {
		t.Errorf("Brightness = %d, want 100", cfg.Brightness)
	}
	if cfg.StripPin != "gpio2" {
		t.Errorf("StripPin = %q, want gpio2", cfg.StripPin)
	}
	if cfg.RainbowDurationMs != 15000 {
		t.Errorf("RainbowDurationMs = %d, want default 15000", cfg.RainbowDurationMs)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	if _, err := Load([]byte(`{brightness:}`)); err == nil {
		t.Error("Load accepted malformed JSON")
	}
}
