package cli

import "al1905d/config"

// ApplyOverrides applies CLI flag overrides to the config.
func ApplyOverrides(cfg *config.Config, opts Options) {
	if opts.SystemName != "" {
		cfg.SystemName = opts.SystemName
	}
	if opts.ALMACAddress != "" {
		cfg.ALMACAddress = opts.ALMACAddress
	}
	if opts.RegistrarMAC != "" {
		cfg.RegistrarMACAddress = opts.RegistrarMAC
	}
	if opts.MapWholeNetwork != nil {
		cfg.MapWholeNetwork = *opts.MapWholeNetwork
	}

	if opts.DiscoveryThresholdMS > 0 {
		cfg.DiscoveryThresholdMS = opts.DiscoveryThresholdMS
	}
	if opts.MaxAgeSeconds > 0 {
		cfg.MaxAgeSeconds = opts.MaxAgeSeconds
	}
	if opts.GCMaxAgeSeconds > 0 {
		cfg.GCMaxAgeSeconds = opts.GCMaxAgeSeconds
	}
	if opts.GCIntervalSeconds > 0 {
		cfg.GCIntervalSeconds = opts.GCIntervalSeconds
	}

	if opts.InterfaceName != "" {
		cfg.CaptureInterface = opts.InterfaceName
	}

	if opts.NoLog {
		cfg.LoggingEnabled = false
	}
	if opts.LogDirectory != "" {
		cfg.LogDirectory = opts.LogDirectory
	}
}
