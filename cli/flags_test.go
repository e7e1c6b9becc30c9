package cli

import (
	"os"
	"testing"
)

func withArgs(t *testing.T, args []string, fn func()) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"al1905d"}, args...)
	defer func() { os.Args = old }()
	fn()
}

func TestParseArgsDefaults(t *testing.T) {
	withArgs(t, nil, func() {
		opts := ParseArgs()
		if opts.ShowHelp || opts.ShowVersion || opts.ListInterfaces {
			t.Errorf("unexpected flags set on empty args: %+v", opts)
		}
		if opts.MapWholeNetwork != nil {
			t.Error("MapWholeNetwork should be nil (unset) by default")
		}
	})
}

func TestParseArgsInterfaceName(t *testing.T) {
	withArgs(t, []string{"eth0"}, func() {
		opts := ParseArgs()
		if opts.InterfaceName != "eth0" {
			t.Errorf("InterfaceName = %q, want eth0", opts.InterfaceName)
		}
	})
}

func TestParseArgsIdentityFlags(t *testing.T) {
	withArgs(t, []string{"--al-mac", "02:11:22:33:44:55", "--registrar-mac=02:00:00:00:00:01", "--map-whole-network"}, func() {
		opts := ParseArgs()
		if opts.ALMACAddress != "02:11:22:33:44:55" {
			t.Errorf("ALMACAddress = %q", opts.ALMACAddress)
		}
		if opts.RegistrarMAC != "02:00:00:00:00:01" {
			t.Errorf("RegistrarMAC = %q", opts.RegistrarMAC)
		}
		if opts.MapWholeNetwork == nil || !*opts.MapWholeNetwork {
			t.Error("MapWholeNetwork should be true")
		}
	})
}

func TestParseArgsTimingFlags(t *testing.T) {
	withArgs(t, []string{"--discovery-threshold-ms=60000", "--max-age-seconds", "30"}, func() {
		opts := ParseArgs()
		if opts.DiscoveryThresholdMS != 60000 {
			t.Errorf("DiscoveryThresholdMS = %d", opts.DiscoveryThresholdMS)
		}
		if opts.MaxAgeSeconds != 30 {
			t.Errorf("MaxAgeSeconds = %d", opts.MaxAgeSeconds)
		}
	})
}

func TestParseArgsNoMapWholeNetwork(t *testing.T) {
	withArgs(t, []string{"--no-map-whole-network"}, func() {
		opts := ParseArgs()
		if opts.MapWholeNetwork == nil || *opts.MapWholeNetwork {
			t.Error("MapWholeNetwork should be false")
		}
	})
}

func TestParseArgsListAllInterfaces(t *testing.T) {
	withArgs(t, []string{"--list-all-interfaces"}, func() {
		opts := ParseArgs()
		if !opts.ListAllInterfaces {
			t.Error("ListAllInterfaces should be true")
		}
	})
}
