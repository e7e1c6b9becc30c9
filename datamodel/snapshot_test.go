package datamodel

import (
	"testing"

	"al1905d/tlvs"
)

func TestSnapshot(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock)
	eth0 := mac(0x01)
	s.InsertInterface("eth0", eth0)

	al := mac(0xA0)
	iface := mac(0xB0)

	clock.set(1_000)
	s.UpdateDiscoveryTimestamps(eth0, al, iface, TimestampTopologyDiscovery)
	s.UpdateNetworkDeviceInfo(al, DeviceInfoUpdate{
		DeviceInfo: Update[tlvs.DeviceInformation]{Apply: true, Value: &tlvs.DeviceInformation{ALMACAddress: al}},
	})

	clock.set(101_000)
	s.UpdateDiscoveryTimestamps(eth0, al, iface, TimestampBridgeDiscovery)

	devices, links := s.Snapshot()
	if len(devices) != 1 {
		t.Fatalf("Snapshot() devices = %v, want 1", devices)
	}
	if devices[0].ALMAC != al {
		t.Errorf("devices[0].ALMAC = %v, want %v", devices[0].ALMAC, al)
	}
	if devices[0].SlotCount != 1 {
		t.Errorf("devices[0].SlotCount = %d, want 1", devices[0].SlotCount)
	}

	if len(links) != 1 {
		t.Fatalf("Snapshot() links = %v, want 1", links)
	}
	if !links[0].Bridged {
		t.Errorf("links[0].Bridged = false, want true at delta=100000ms")
	}
}

func TestTLVSlotsCount(t *testing.T) {
	var slots TLVSlots
	if got := slots.count(); got != 0 {
		t.Fatalf("count() on empty slots = %d, want 0", got)
	}

	slots.DeviceInfo = &tlvs.DeviceInformation{}
	slots.BridgingCapabilities = []tlvs.BridgingCapability{{}}
	if got := slots.count(); got != 2 {
		t.Fatalf("count() = %d, want 2", got)
	}
}
