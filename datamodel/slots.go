package datamodel

import "al1905d/tlvs"

// Update is a singleton-slot update instruction: Apply tells the store
// whether this call touches the slot at all, and Value nil (with Apply
// true) clears it. This collapses the original C API's "update boolean +
// value" pair into one optional instruction per slot (spec.md §9).
type Update[T any] struct {
	Apply bool
	Value *T
}

// MultiUpdate is a multiset-slot update instruction: Apply tells the store
// whether this call replaces the slot's contents; Values entirely replaces
// the prior list (a nil or empty Values with Apply true clears the slot).
type MultiUpdate[T any] struct {
	Apply  bool
	Values []T
}

// TLVSlots is the heterogeneous bundle of protocol TLVs a Device holds:
// eight singleton slots and five multiset slots, per spec.md §3.
type TLVSlots struct {
	DeviceInfo       *tlvs.DeviceInformation
	GenericPhy       *tlvs.GenericPhyDeviceInformation
	ProfileVersion   *tlvs.X1905ProfileVersion
	Identification   *tlvs.DeviceIdentification
	ControlURL       *tlvs.ControlURL
	IPv4             *tlvs.IPv4
	IPv6             *tlvs.IPv6
	SupportedService *tlvs.SupportedService

	BridgingCapabilities []tlvs.BridgingCapability
	Non1905Neighbors     []tlvs.Non1905NeighborDeviceList
	X1905Neighbors       []tlvs.NeighborDeviceList
	PowerOffInterfaces   []tlvs.PowerOffInterface
	L2Neighbors          []tlvs.L2NeighborDevice
}

// DeviceInfoUpdate bundles one update instruction per TLV slot for
// UpdateNetworkDeviceInfo. A zero-value field (Apply: false) leaves that
// slot untouched.
type DeviceInfoUpdate struct {
	DeviceInfo       Update[tlvs.DeviceInformation]
	GenericPhy       Update[tlvs.GenericPhyDeviceInformation]
	ProfileVersion   Update[tlvs.X1905ProfileVersion]
	Identification   Update[tlvs.DeviceIdentification]
	ControlURL       Update[tlvs.ControlURL]
	IPv4             Update[tlvs.IPv4]
	IPv6             Update[tlvs.IPv6]
	SupportedService Update[tlvs.SupportedService]

	BridgingCapabilities MultiUpdate[tlvs.BridgingCapability]
	Non1905Neighbors     MultiUpdate[tlvs.Non1905NeighborDeviceList]
	X1905Neighbors       MultiUpdate[tlvs.NeighborDeviceList]
	PowerOffInterfaces   MultiUpdate[tlvs.PowerOffInterface]
	L2Neighbors          MultiUpdate[tlvs.L2NeighborDevice]
}

// applySingleton installs u into *slot if u.Apply is set. The prior value,
// if any, is simply dropped — Go's GC reclaims it, which is this port's
// equivalent of the original's explicit free() (spec.md invariant 3).
func applySingleton[T any](slot **T, u Update[T]) {
	if !u.Apply {
		return
	}
	*slot = u.Value
}

// applyMulti installs u into *slot if u.Apply is set.
func applyMulti[T any](slot *[]T, u MultiUpdate[T]) {
	if !u.Apply {
		return
	}
	*slot = u.Values
}

// count returns the number of non-empty slots, singleton and multiset alike.
func (t *TLVSlots) count() int {
	n := 0
	for _, set := range []bool{
		t.DeviceInfo != nil,
		t.GenericPhy != nil,
		t.ProfileVersion != nil,
		t.Identification != nil,
		t.ControlURL != nil,
		t.IPv4 != nil,
		t.IPv6 != nil,
		t.SupportedService != nil,
		len(t.BridgingCapabilities) > 0,
		len(t.Non1905Neighbors) > 0,
		len(t.X1905Neighbors) > 0,
		len(t.PowerOffInterfaces) > 0,
		len(t.L2Neighbors) > 0,
	} {
		if set {
			n++
		}
	}
	return n
}

func (t *TLVSlots) apply(u DeviceInfoUpdate) {
	applySingleton(&t.DeviceInfo, u.DeviceInfo)
	applySingleton(&t.GenericPhy, u.GenericPhy)
	applySingleton(&t.ProfileVersion, u.ProfileVersion)
	applySingleton(&t.Identification, u.Identification)
	applySingleton(&t.ControlURL, u.ControlURL)
	applySingleton(&t.IPv4, u.IPv4)
	applySingleton(&t.IPv6, u.IPv6)
	applySingleton(&t.SupportedService, u.SupportedService)

	applyMulti(&t.BridgingCapabilities, u.BridgingCapabilities)
	applyMulti(&t.Non1905Neighbors, u.Non1905Neighbors)
	applyMulti(&t.X1905Neighbors, u.X1905Neighbors)
	applyMulti(&t.PowerOffInterfaces, u.PowerOffInterfaces)
	applyMulti(&t.L2Neighbors, u.L2Neighbors)
}
