package datamodel

import (
	"testing"

	"al1905d/tlvs"
)

// TestSingletonVsMultisetReplacement is scenario 3 from spec.md §8.
func TestSingletonVsMultisetReplacement(t *testing.T) {
	s := New()
	d := mac(0xD0)

	x1 := &tlvs.DeviceInformation{ALMACAddress: d}
	br1 := tlvs.BridgingCapability{Tuples: []tlvs.BridgingTuple{{InterfaceMACs: []MAC{mac(1)}}}}
	br2 := tlvs.BridgingCapability{Tuples: []tlvs.BridgingTuple{{InterfaceMACs: []MAC{mac(2)}}}}

	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{
		DeviceInfo:           Update[tlvs.DeviceInformation]{Apply: true, Value: x1},
		BridgingCapabilities: MultiUpdate[tlvs.BridgingCapability]{Apply: true, Values: []tlvs.BridgingCapability{br1, br2}},
	})

	x2 := &tlvs.DeviceInformation{ALMACAddress: d, Interfaces: []tlvs.LocalInterfaceEntry{{MACAddress: mac(9)}}}
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{
		DeviceInfo: Update[tlvs.DeviceInformation]{Apply: true, Value: x2},
		// BridgingCapabilities omitted: Apply defaults to false, must be untouched.
	})

	snap := s.deviceSnapshot(t, d)
	if snap.Slots.DeviceInfo != x2 {
		t.Fatalf("DeviceInfo = %v, want the second update's value", snap.Slots.DeviceInfo)
	}
	if len(snap.Slots.BridgingCapabilities) != 2 {
		t.Fatalf("BridgingCapabilities = %v, want untouched 2-element list from the first call", snap.Slots.BridgingCapabilities)
	}
}

func TestClearSingletonSlot(t *testing.T) {
	s := New()
	d := mac(0xD1)
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{
		ControlURL: Update[tlvs.ControlURL]{Apply: true, Value: &tlvs.ControlURL{URL: "http://x"}},
	})
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{
		ControlURL: Update[tlvs.ControlURL]{Apply: true, Value: nil},
	})
	if snap := s.deviceSnapshot(t, d); snap.Slots.ControlURL != nil {
		t.Fatalf("ControlURL after clearing update = %v, want nil", snap.Slots.ControlURL)
	}
}

// TestMetricAccumulation is scenario 4 from spec.md §8.
func TestMetricAccumulation(t *testing.T) {
	s := New()
	dOrigin := mac(0xD0)
	eTarget := mac(0xE0)

	m1 := &tlvs.TransmitterLinkMetric{LocalALAddress: dOrigin, NeighborALAddress: eTarget, Entries: []tlvs.TxLinkMetricEntry{{PacketErrors: 1}}}
	s.UpdateNetworkDeviceMetrics(m1)

	m2 := &tlvs.ReceiverLinkMetric{LocalALAddress: dOrigin, NeighborALAddress: eTarget, Entries: []tlvs.RxLinkMetricEntry{{PacketErrors: 2}}}
	s.UpdateNetworkDeviceMetrics(m2)

	m3 := &tlvs.TransmitterLinkMetric{LocalALAddress: dOrigin, NeighborALAddress: eTarget, Entries: []tlvs.TxLinkMetricEntry{{PacketErrors: 3}}}
	s.UpdateNetworkDeviceMetrics(m3)

	snap := s.deviceSnapshot(t, dOrigin)
	if len(snap.Metrics) != 2 {
		t.Fatalf("len(Metrics) = %d, want 2 (tx overwritten, rx kept)", len(snap.Metrics))
	}
	txKey := metricKey{origin: dOrigin, target: eTarget, direction: tlvs.DirectionTx}
	got, ok := snap.Metrics[txKey]
	if !ok {
		t.Fatalf("tx metric missing")
	}
	if got.(*tlvs.TransmitterLinkMetric) != m3 {
		t.Fatalf("tx metric = %v, want the latest (m3) value", got)
	}
}

// TestSelfResolution is scenario 6 from spec.md §8.
func TestSelfResolution(t *testing.T) {
	s := New()
	al := mac(0xAA)
	s.ALMacSet(al)
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)

	if got, ok := s.MacToAlMac(al); !ok || got != al {
		t.Fatalf("MacToAlMac(self AL) = (%v, %v), want (%v, true)", got, ok, al)
	}
	if got, ok := s.MacToAlMac(eth0); !ok || got != al {
		t.Fatalf("MacToAlMac(local iface mac) = (%v, %v), want (%v, true)", got, ok, al)
	}
	if _, ok := s.MacToAlMac(mac(0x99)); ok {
		t.Fatalf("MacToAlMac(unknown) = found, want not found")
	}
}

func TestMacToAlMacViaRemoteDeviceInfo(t *testing.T) {
	s := New()
	remoteAL := mac(0xB0)
	remoteIface := mac(0xB1)

	s.UpdateNetworkDeviceInfo(remoteAL, DeviceInfoUpdate{
		DeviceInfo: Update[tlvs.DeviceInformation]{Apply: true, Value: &tlvs.DeviceInformation{
			ALMACAddress: remoteAL,
			Interfaces:   []tlvs.LocalInterfaceEntry{{MACAddress: remoteIface}},
		}},
	})

	if got, ok := s.MacToAlMac(remoteIface); !ok || got != remoteAL {
		t.Fatalf("MacToAlMac(remote iface) = (%v, %v), want (%v, true)", got, ok, remoteAL)
	}
}

func TestNetworkDeviceInfoNeedsUpdate(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)
	d := mac(0xD0)

	if !s.NetworkDeviceInfoNeedsUpdate(d) {
		t.Fatalf("needs-update for unknown device = false, want true")
	}

	clock.set(1000)
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})

	clock.set(1000 + DefaultMaxAgeMS - 1)
	if s.NetworkDeviceInfoNeedsUpdate(d) {
		t.Fatalf("needs-update just under MaxAge = true, want false")
	}

	clock.set(1000 + DefaultMaxAgeMS)
	if !s.NetworkDeviceInfoNeedsUpdate(d) {
		t.Fatalf("needs-update at MaxAge = false, want true")
	}
}

// deviceSnapshot is a test-only helper that reaches past the store's lock
// to inspect a Device's current state directly.
func (s *Store) deviceSnapshot(t *testing.T, alMAC MAC) Device {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.devices[alMAC]
	if !ok {
		t.Fatalf("no device for %v", alMAC)
	}
	return *d
}
