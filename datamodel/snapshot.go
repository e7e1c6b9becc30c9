package datamodel

// DeviceSnapshot is a read-only projection of one Device, for consumers
// outside the package (logger, dashboard) that shouldn't reach into the
// store's internals the way DumpNetworkDevices's printf sink does.
type DeviceSnapshot struct {
	ALMAC          MAC
	LastUpdateTS   int64
	SlotCount      int
	MetricCount    int
	ExtensionCount int
	NeedsUpdate    bool
}

// LinkSnapshot is a read-only projection of one NeighborLink.
type LinkSnapshot struct {
	LocalInterfaceName   string
	NeighborALMAC        MAC
	NeighborInterfaceMAC MAC
	TSTopologyDiscovery  int64
	TSBridgeDiscovery    int64
	Bridged              bool
}

// Snapshot returns a consistent point-in-time copy of the device registry
// and neighbor link table, in insertion order.
func (s *Store) Snapshot() ([]DeviceSnapshot, []LinkSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.NowMS()

	devices := make([]DeviceSnapshot, 0, len(s.deviceOrder))
	for _, mac := range s.deviceOrder {
		d := s.devices[mac]
		devices = append(devices, DeviceSnapshot{
			ALMAC:          d.ALMAC,
			LastUpdateTS:   d.LastUpdateTS,
			SlotCount:      d.Slots.count(),
			MetricCount:    len(d.Metrics),
			ExtensionCount: len(d.VendorExtensions),
			NeedsUpdate:    now-d.LastUpdateTS >= s.maxAgeMS,
		})
	}

	links := make([]LinkSnapshot, 0, len(s.linkOrder))
	for _, key := range s.linkOrder {
		l := s.links[key]
		links = append(links, LinkSnapshot{
			LocalInterfaceName:   l.LocalInterfaceName,
			NeighborALMAC:        l.NeighborALMAC,
			NeighborInterfaceMAC: l.NeighborInterfaceMAC,
			TSTopologyDiscovery:  l.TSTopologyDiscovery,
			TSBridgeDiscovery:    l.TSBridgeDiscovery,
			Bridged:              s.bridged(l),
		})
	}

	return devices, links
}
