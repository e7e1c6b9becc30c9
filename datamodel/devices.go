package datamodel

import "al1905d/tlvs"

// Device is one entry of the global device registry (C4), keyed by AL MAC.
type Device struct {
	ALMAC        MAC
	LastUpdateTS int64
	Slots        TLVSlots
	Metrics      map[metricKey]tlvs.MetricTLV

	// VendorExtensions is the opaque, third-party-owned extension slot
	// (spec.md §4.4 extensions_get). Unlike the other slots it's not
	// replaced atomically by UpdateNetworkDeviceInfo — extenders append,
	// replace, and remove entries directly via the accessors in
	// extensions.go.
	VendorExtensions []tlvs.VendorSpecific
}

type metricKey struct {
	origin    MAC
	target    MAC
	direction tlvs.Direction
}

// UpdateResult is the outcome of UpdateNetworkDeviceInfo and
// UpdateNetworkDeviceMetrics.
type UpdateResult int

const (
	// UpdateOK indicates the call succeeded.
	UpdateOK UpdateResult = iota
	// UpdateFail indicates the call could not be applied. The store is
	// left unchanged.
	UpdateFail
)

func (r UpdateResult) String() string {
	if r == UpdateOK {
		return "OK"
	}
	return "FAIL"
}

// ensureDeviceLocked returns the Device for mac, creating it (with
// LastUpdateTS set to now so it doesn't look instantly stale to the
// garbage collector) if it doesn't already exist. Callers must hold s.mu.
func (s *Store) ensureDeviceLocked(mac MAC, now int64) *Device {
	if d, ok := s.devices[mac]; ok {
		return d
	}
	d := &Device{
		ALMAC:        mac,
		LastUpdateTS: now,
		Metrics:      make(map[metricKey]tlvs.MetricTLV),
	}
	s.devices[mac] = d
	s.deviceOrder = append(s.deviceOrder, mac)
	return d
}

// UpdateNetworkDeviceInfo locates or creates the Device for alMAC, stamps
// its LastUpdateTS to now, and replaces every TLV slot named in u whose
// Apply flag is set. Slots with Apply false are left untouched (spec.md
// §4.4, invariant 2/3/4).
//
// The only failure mode in this port is unreachable (device creation here
// can't fail the way a C malloc can) but UpdateFail is kept in the
// signature to preserve the original's error-code contract for callers
// that switch on the result.
func (s *Store) UpdateNetworkDeviceInfo(alMAC MAC, u DeviceInfoUpdate) UpdateResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	d := s.ensureDeviceLocked(alMAC, now)
	d.LastUpdateTS = now
	d.Slots.apply(u)
	return UpdateOK
}

// UpdateNetworkDeviceMetrics applies a transmitter or receiver link metric
// TLV. The TLV carries its own origin/target/direction key (spec.md §4.4):
// if a metric with that key already exists in the origin Device's metrics
// set it is replaced, otherwise it's appended (invariant 5).
func (s *Store) UpdateNetworkDeviceMetrics(metric tlvs.MetricTLV) UpdateResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin, target, direction := metric.MetricKey()
	now := s.now()
	d := s.ensureDeviceLocked(origin, now)
	key := metricKey{origin: origin, target: target, direction: direction}
	d.Metrics[key] = metric
	return UpdateOK
}

// NetworkDeviceInfoNeedsUpdate reports whether the caller should re-issue a
// topology query for alMAC: true if the Device doesn't exist yet, or if its
// last update is at least the configured max age old.
func (s *Store) NetworkDeviceInfoNeedsUpdate(alMAC MAC) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[alMAC]
	if !ok {
		return true
	}
	return s.now()-d.LastUpdateTS >= s.maxAgeMS
}

// MacToAlMac resolves any interface MAC to the AL MAC of the 1905 device
// that owns it, scanning in this order: the local AL MAC, the local
// interface table, then every known Device in device-insertion order,
// matching first the Device's own AL MAC and then its device_info interface
// list (spec.md §4.4). The bool is false if no owner was found.
func (s *Store) MacToAlMac(mac MAC) (MAC, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mac == s.identity.ALMAC && !mac.IsZero() {
		return mac, true
	}
	if _, ok := s.ifaceByMAC[mac]; ok {
		return s.identity.ALMAC, true
	}
	for _, alMAC := range s.deviceOrder {
		d := s.devices[alMAC]
		if d.ALMAC == mac {
			return d.ALMAC, true
		}
		if d.Slots.DeviceInfo == nil {
			continue
		}
		for _, iface := range d.Slots.DeviceInfo.Interfaces {
			if iface.MACAddress == mac {
				return d.ALMAC, true
			}
		}
	}
	return MAC{}, false
}

// DumpNetworkDevices writes a human-readable snapshot of the device
// registry through write, a caller-supplied printf-style sink (spec.md
// §4.4, §6).
func (s *Store) DumpNetworkDevices(write func(format string, args ...any)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	write("devices: %d\n", len(s.deviceOrder))
	for _, alMAC := range s.deviceOrder {
		d := s.devices[alMAC]
		write("  %s  last_update=%dms  metrics=%d  extensions=%d\n",
			d.ALMAC, d.LastUpdateTS, len(d.Metrics), len(d.VendorExtensions))
		if d.Slots.DeviceInfo != nil {
			write("    interfaces: %d\n", len(d.Slots.DeviceInfo.Interfaces))
		}
		write("    bridging_caps=%d non1905_neighbors=%d x1905_neighbors=%d power_off=%d l2_neighbors=%d\n",
			len(d.Slots.BridgingCapabilities), len(d.Slots.Non1905Neighbors),
			len(d.Slots.X1905Neighbors), len(d.Slots.PowerOffInterfaces), len(d.Slots.L2Neighbors))
	}
}
