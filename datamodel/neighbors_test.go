package datamodel

import "testing"

// TestBridgeDetectionWindow is scenario 1 from spec.md §8.
func TestBridgeDetectionWindow(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)

	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)

	al := mac(0xA0)
	iface := mac(0xB0)

	// Timestamps start at t=1000ms rather than 0 so the first real reading
	// doesn't collide with the "never seen" zero sentinel.
	clock.set(1_000)
	if r, _ := s.UpdateDiscoveryTimestamps(eth0, al, iface, TimestampTopologyDiscovery); r != TimestampNew {
		t.Fatalf("first topology discovery = %v, want NEW", r)
	}

	clock.set(101_000)
	if r, _ := s.UpdateDiscoveryTimestamps(eth0, al, iface, TimestampBridgeDiscovery); r != TimestampUpdated {
		t.Fatalf("first bridge discovery = %v, want UPDATED", r)
	}

	if !s.IsLinkBridged("eth0", al, iface) {
		t.Fatalf("IsLinkBridged = false at delta=100000ms, want true (< 120000ms threshold)")
	}
	if !s.IsNeighborBridged("eth0", al) {
		t.Fatalf("IsNeighborBridged = false, want true")
	}
	if !s.IsInterfaceBridged("eth0") {
		t.Fatalf("IsInterfaceBridged = false, want true")
	}

	clock.set(231_000)
	if r, elapsed := s.UpdateDiscoveryTimestamps(eth0, al, iface, TimestampTopologyDiscovery); r != TimestampUpdated || elapsed != 230_000 {
		t.Fatalf("second topology discovery = (%v, %d), want (UPDATED, 230000)", r, elapsed)
	}

	if s.IsLinkBridged("eth0", al, iface) {
		t.Fatalf("IsLinkBridged = true at delta=130000ms, want false (>= 120000ms threshold)")
	}
}

func TestUpdateDiscoveryTimestampsUnknownInterface(t *testing.T) {
	s := New()
	if r, _ := s.UpdateDiscoveryTimestamps(mac(0x99), mac(0xA0), mac(0xB0), TimestampTopologyDiscovery); r != TimestampFail {
		t.Fatalf("unknown local interface MAC = %v, want FAIL", r)
	}
}

func TestUpdateDiscoveryTimestampsCreatesDevice(t *testing.T) {
	s := New()
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)
	al := mac(0xA0)

	s.UpdateDiscoveryTimestamps(eth0, al, mac(0xB0), TimestampTopologyDiscovery)

	if got, ok := s.MacToAlMac(al); !ok || got != al {
		t.Fatalf("MacToAlMac(al) after first discovery = (%v, %v), want (%v, true): a Device must exist", got, ok, al)
	}
}

// TestMultiPathNeighbor is scenario 2 from spec.md §8: A sees B via two
// links and C via one.
func TestMultiPathNeighbor(t *testing.T) {
	s := New()
	eth0 := mac(0x01)
	eth1 := mac(0x02)
	s.InsertInterface("eth0", eth0)
	s.InsertInterface("eth1", eth1)

	bAL := mac(0xB0)
	bEth0 := mac(0xB1)
	bEth1 := mac(0xB2)
	cAL := mac(0xC0)
	cEth0 := mac(0xC1)

	s.UpdateDiscoveryTimestamps(eth0, bAL, bEth0, TimestampTopologyDiscovery)
	s.UpdateDiscoveryTimestamps(eth1, bAL, bEth1, TimestampTopologyDiscovery)
	s.UpdateDiscoveryTimestamps(eth1, cAL, cEth0, TimestampTopologyDiscovery)

	linksB := s.ListLinksWithNeighbor(bAL)
	wantB := []Link{{"eth0", bEth0}, {"eth1", bEth1}}
	if !linksEqual(linksB, wantB) {
		t.Fatalf("ListLinksWithNeighbor(B) = %v, want %v", linksB, wantB)
	}

	linksC := s.ListLinksWithNeighbor(cAL)
	wantC := []Link{{"eth1", cEth0}}
	if !linksEqual(linksC, wantC) {
		t.Fatalf("ListLinksWithNeighbor(C) = %v, want %v", linksC, wantC)
	}

	all := s.ListAllNeighbors()
	if len(all) != 2 {
		t.Fatalf("ListAllNeighbors = %v, want 2 distinct neighbors", all)
	}
}

func linksEqual(a, b []Link) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListInterfaceNeighborsNoDuplicates(t *testing.T) {
	s := New()
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)
	al := mac(0xA0)

	// Same neighbor AL reachable via two distinct remote interfaces on the
	// same local interface (hub case) must only be counted once.
	s.UpdateDiscoveryTimestamps(eth0, al, mac(0xB1), TimestampTopologyDiscovery)
	s.UpdateDiscoveryTimestamps(eth0, al, mac(0xB2), TimestampTopologyDiscovery)

	neighbors := s.ListInterfaceNeighbors("eth0")
	if len(neighbors) != 1 {
		t.Fatalf("ListInterfaceNeighbors = %v, want exactly one de-duplicated entry (P5)", neighbors)
	}
}

func TestRemoveALNeighborFromInterface(t *testing.T) {
	s := New()
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)
	al := mac(0xA0)
	s.UpdateDiscoveryTimestamps(eth0, al, mac(0xB0), TimestampTopologyDiscovery)

	s.RemoveALNeighborFromInterface(al, "eth0")

	if got := s.ListInterfaceNeighbors("eth0"); len(got) != 0 {
		t.Fatalf("ListInterfaceNeighbors after removal = %v, want empty", got)
	}
	// The Device record itself must survive removal; only GC evicts it.
	if _, ok := s.MacToAlMac(al); !ok {
		t.Fatalf("MacToAlMac(al) after link removal = not found, want still present (only GC evicts Devices)")
	}
}
