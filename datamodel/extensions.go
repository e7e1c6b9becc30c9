package datamodel

import "al1905d/tlvs"

// Extensions is the interior-mutable handle to one Device's vendor-
// extension slot (spec.md §4.4, design note on the vendor-extension slot).
// A raw pointer-to-pointer, as the original C API used, isn't idiomatic
// Go; a handle plus accessor methods gives third-party extenders the same
// append/replace/remove capability without exposing the Device's storage
// directly. The handle is valid only until the owning Device is evicted by
// the garbage collector.
type Extensions struct {
	store *Store
	alMAC MAC
}

// ExtensionsGet returns the vendor-extension handle for alMAC. The bool is
// false if no Device exists for alMAC.
func (s *Store) ExtensionsGet(alMAC MAC) (Extensions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.devices[alMAC]; !ok {
		return Extensions{}, false
	}
	return Extensions{store: s, alMAC: alMAC}, true
}

// Count returns the number of vendor-specific TLVs currently attached.
func (e Extensions) Count() int {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	if d, ok := e.store.devices[e.alMAC]; ok {
		return len(d.VendorExtensions)
	}
	return 0
}

// All returns a snapshot of the current vendor-specific TLVs.
func (e Extensions) All() []tlvs.VendorSpecific {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	d, ok := e.store.devices[e.alMAC]
	if !ok {
		return nil
	}
	out := make([]tlvs.VendorSpecific, len(d.VendorExtensions))
	copy(out, d.VendorExtensions)
	return out
}

// Push appends a vendor-specific TLV to the slot.
func (e Extensions) Push(tlv tlvs.VendorSpecific) {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	d, ok := e.store.devices[e.alMAC]
	if !ok {
		return
	}
	d.VendorExtensions = append(d.VendorExtensions, tlv)
}

// ReplaceAt overwrites the TLV at index idx. It is a no-op if idx is out of
// range.
func (e Extensions) ReplaceAt(idx int, tlv tlvs.VendorSpecific) {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	d, ok := e.store.devices[e.alMAC]
	if !ok || idx < 0 || idx >= len(d.VendorExtensions) {
		return
	}
	d.VendorExtensions[idx] = tlv
}

// RemoveAt removes the TLV at index idx. It is a no-op if idx is out of
// range.
func (e Extensions) RemoveAt(idx int) {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	d, ok := e.store.devices[e.alMAC]
	if !ok || idx < 0 || idx >= len(d.VendorExtensions) {
		return
	}
	d.VendorExtensions = append(d.VendorExtensions[:idx], d.VendorExtensions[idx+1:]...)
}
