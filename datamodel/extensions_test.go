package datamodel

import (
	"testing"

	"al1905d/tlvs"
)

func TestExtensionsAccessors(t *testing.T) {
	s := New()
	d := mac(0xD0)
	s.UpdateNetworkDeviceInfo(d, DeviceInfoUpdate{})

	ext, ok := s.ExtensionsGet(d)
	if !ok {
		t.Fatalf("ExtensionsGet on known device = not found, want found")
	}

	ext.Push(tlvs.VendorSpecific{OUI: [3]byte{1, 2, 3}, Data: []byte("a")})
	ext.Push(tlvs.VendorSpecific{OUI: [3]byte{4, 5, 6}, Data: []byte("b")})
	if n := ext.Count(); n != 2 {
		t.Fatalf("Count() = %d, want 2", n)
	}

	ext.ReplaceAt(0, tlvs.VendorSpecific{OUI: [3]byte{9, 9, 9}, Data: []byte("c")})
	all := ext.All()
	if string(all[0].Data) != "c" {
		t.Fatalf("ReplaceAt(0) didn't take effect: %v", all)
	}

	ext.RemoveAt(0)
	if n := ext.Count(); n != 1 {
		t.Fatalf("Count() after RemoveAt = %d, want 1", n)
	}
}

func TestExtensionsGetUnknownDevice(t *testing.T) {
	s := New()
	if _, ok := s.ExtensionsGet(mac(0xFF)); ok {
		t.Fatalf("ExtensionsGet on unknown device = found, want not found")
	}
}
