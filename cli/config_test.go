package cli

import (
	"testing"

	"al1905d/config"
)

func TestApplyOverridesOnlySetsProvidedFields(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SystemName = "original"

	trueVal := true
	opts := Options{
		ALMACAddress:    "02:11:22:33:44:55",
		MapWholeNetwork: &trueVal,
		MaxAgeSeconds:   75,
	}
	ApplyOverrides(&cfg, opts)

	if cfg.SystemName != "original" {
		t.Errorf("SystemName overridden unexpectedly: %q", cfg.SystemName)
	}
	if cfg.ALMACAddress != opts.ALMACAddress {
		t.Errorf("ALMACAddress = %q, want %q", cfg.ALMACAddress, opts.ALMACAddress)
	}
	if !cfg.MapWholeNetwork {
		t.Error("MapWholeNetwork not applied")
	}
	if cfg.MaxAgeSeconds != 75 {
		t.Errorf("MaxAgeSeconds = %d, want 75", cfg.MaxAgeSeconds)
	}
	if cfg.DiscoveryThresholdMS != config.DefaultConfig().DiscoveryThresholdMS {
		t.Error("DiscoveryThresholdMS should be untouched when not overridden")
	}
}

func TestApplyOverridesNoLogDisablesLogging(t *testing.T) {
	cfg := config.DefaultConfig()
	if !cfg.LoggingEnabled {
		t.Fatal("expected logging enabled by default")
	}

	ApplyOverrides(&cfg, Options{NoLog: true})
	if cfg.LoggingEnabled {
		t.Error("NoLog should disable logging")
	}
}

func TestApplyOverridesInterfaceName(t *testing.T) {
	cfg := config.DefaultConfig()
	ApplyOverrides(&cfg, Options{InterfaceName: "eth1"})
	if cfg.CaptureInterface != "eth1" {
		t.Errorf("CaptureInterface = %q, want eth1", cfg.CaptureInterface)
	}
}
