package datamodel

import "testing"

// TestGCEvictionCascade is scenario 5 from spec.md §8.
func TestGCEvictionCascade(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)

	d := mac(0xD0)
	dIface := mac(0xD1)

	clock.set(0)
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})
	s.UpdateDiscoveryTimestamps(eth0, d, dIface, TimestampTopologyDiscovery)

	clock.set(95_000)
	if n := s.RunGarbageCollector(); n != 1 {
		t.Fatalf("RunGarbageCollector() = %d, want 1", n)
	}

	if links := s.ListInterfaceNeighbors("eth0"); len(links) != 0 {
		t.Fatalf("neighbors after GC = %v, want empty (links to evicted device must be dropped)", links)
	}
	if _, ok := s.MacToAlMac(dIface); ok {
		t.Fatalf("MacToAlMac(evicted device's interface) found, want not found")
	}
}

func TestGCExemptsSelf(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)
	al := mac(0xAA)
	s.ALMacSet(al)
	// Self is registered as a device too (e.g. via an update call for
	// itself), so it must survive GC indefinitely.
	clock.set(0)
	s.UpdateNetworkDeviceInfo(al, DeviceInfoUpdate{})

	clock.set(1_000_000)
	s.RunGarbageCollector()

	if _, ok := s.MacToAlMac(al); !ok {
		t.Fatalf("self device evicted by GC, want exempt")
	}
}

func TestGCKeepsFreshDevices(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)
	d := mac(0xD0)

	clock.set(0)
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})

	clock.set(DefaultGCMaxAgeMS - 1)
	if n := s.RunGarbageCollector(); n != 0 {
		t.Fatalf("RunGarbageCollector just under GCMaxAge = %d, want 0", n)
	}

	clock.set(DefaultGCMaxAgeMS + 1)
	if n := s.RunGarbageCollector(); n != 1 {
		t.Fatalf("RunGarbageCollector just over GCMaxAge = %d, want 1", n)
	}
}
