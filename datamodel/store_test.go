package datamodel

import (
	"fmt"
	"strings"
	"testing"
)

// TestAtMostOneDevicePerALMac is P1 from spec.md §8.
func TestAtMostOneDevicePerALMac(t *testing.T) {
	s := New()
	d := mac(0xD0)

	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})
	s.UpdateDiscoveryTimestamps(mustInterface(t, s, "eth0", mac(1)), d, mac(2), TimestampTopologyDiscovery)

	s.mu.Lock()
	n := 0
	for _, m := range s.deviceOrder {
		if m == d {
			n++
		}
	}
	s.mu.Unlock()
	if n != 1 {
		t.Fatalf("deviceOrder contains %d entries for %v, want exactly 1", n, d)
	}
}

func mustInterface(t *testing.T, s *Store, name string, m MAC) MAC {
	t.Helper()
	if r := s.InsertInterface(name, m); r != InsertOK && r != InsertDuplicate {
		t.Fatalf("InsertInterface(%q) = %v", name, r)
	}
	return m
}

func TestDumpNetworkDevices(t *testing.T) {
	s := New()
	s.UpdateNetworkDeviceInfo(mac(0xD0), DeviceInfoUpdate{})

	var out strings.Builder
	s.DumpNetworkDevices(func(format string, args ...any) {
		fmt.Fprintf(&out, format, args...)
	})

	if !strings.Contains(out.String(), "devices: 1") {
		t.Fatalf("dump output = %q, want it to mention 1 device", out.String())
	}
}

func TestLocalIdentityDefaultsAndSetters(t *testing.T) {
	s := New()
	if got := s.ALMacGet(); got != (MAC{}) {
		t.Fatalf("ALMacGet before set = %v, want zero sentinel", got)
	}
	if s.MapWholeNetworkGet() {
		t.Fatalf("MapWholeNetworkGet before set = true, want false")
	}

	al := mac(0xAA)
	s.ALMacSet(al)
	s.RegistrarMacSet(mac(0xBB))
	s.MapWholeNetworkSet(true)

	if got := s.ALMacGet(); got != al {
		t.Fatalf("ALMacGet = %v, want %v", got, al)
	}
	if got := s.RegistrarMacGet(); got != mac(0xBB) {
		t.Fatalf("RegistrarMacGet = %v, want %v", got, mac(0xBB))
	}
	if !s.MapWholeNetworkGet() {
		t.Fatalf("MapWholeNetworkGet = false, want true")
	}
}
