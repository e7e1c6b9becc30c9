package datamodel

// NeighborLink is one edge between a local interface and a remote
// interface on a 1905 neighbor (spec.md §3). Its uniqueness key is the
// triple (LocalInterfaceName, NeighborALMAC, NeighborInterfaceMAC).
type NeighborLink struct {
	LocalInterfaceName   string
	NeighborALMAC        MAC
	NeighborInterfaceMAC MAC

	TSTopologyDiscovery int64 // ms, monotonic; zero if never seen
	TSBridgeDiscovery   int64
}

type linkKey struct {
	localInterfaceName   string
	neighborALMAC        MAC
	neighborInterfaceMAC MAC
}

// TimestampResult is the outcome of UpdateDiscoveryTimestamps.
type TimestampResult int

const (
	// TimestampNew indicates the (local-interface, neighbor-AL,
	// neighbor-interface) triple did not exist and was created.
	TimestampNew TimestampResult = iota
	// TimestampUpdated indicates an existing link had one timestamp
	// refreshed.
	TimestampUpdated
	// TimestampFail indicates local_iface_mac did not resolve to a known
	// local interface.
	TimestampFail
)

func (r TimestampResult) String() string {
	switch r {
	case TimestampNew:
		return "NEW"
	case TimestampUpdated:
		return "UPDATED"
	default:
		return "FAIL"
	}
}

// UpdateDiscoveryTimestamps records receipt of a discovery frame on
// localIfaceMAC from neighborALMAC/neighborIfaceMAC. kind selects which of
// the link's two timestamps is refreshed to "now".
//
// On a brand-new triple, the other timestamp is left at zero and elapsedMS
// is unspecified (spec.md §9, open question): the caller should not read it
// unless the result is TimestampUpdated. A Device entry for neighborALMAC
// is created if one doesn't already exist, so later TLV updates and GC have
// somewhere to land.
func (s *Store) UpdateDiscoveryTimestamps(localIfaceMAC, neighborALMAC, neighborIfaceMAC MAC, kind TimestampKind) (result TimestampResult, elapsedMS int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.ifaceByMAC[localIfaceMAC]
	if !ok {
		return TimestampFail, 0
	}
	localName := s.interfaces[idx].Name

	key := linkKey{localInterfaceName: localName, neighborALMAC: neighborALMAC, neighborInterfaceMAC: neighborIfaceMAC}
	now := s.now()

	link, exists := s.links[key]
	if !exists {
		link = &NeighborLink{
			LocalInterfaceName:   localName,
			NeighborALMAC:        neighborALMAC,
			NeighborInterfaceMAC: neighborIfaceMAC,
		}
		s.setLinkTimestamp(link, kind, now)
		s.links[key] = link
		s.linkOrder = append(s.linkOrder, key)
		s.ensureDeviceLocked(neighborALMAC, now)
		return TimestampNew, 0
	}

	old := s.linkTimestamp(link, kind)
	elapsed := now - old
	s.setLinkTimestamp(link, kind, now)
	return TimestampUpdated, elapsed
}

func (s *Store) linkTimestamp(l *NeighborLink, kind TimestampKind) int64 {
	if kind == TimestampBridgeDiscovery {
		return l.TSBridgeDiscovery
	}
	return l.TSTopologyDiscovery
}

func (s *Store) setLinkTimestamp(l *NeighborLink, kind TimestampKind, v int64) {
	if kind == TimestampBridgeDiscovery {
		l.TSBridgeDiscovery = v
	} else {
		l.TSTopologyDiscovery = v
	}
}

// bridged reports whether a link is in the BRIDGED state: both timestamps
// non-zero and within the discovery threshold of each other (spec.md §4.3,
// IEEE 1905.1-2013 §8.1).
func (s *Store) bridged(l *NeighborLink) bool {
	if l.TSTopologyDiscovery == 0 || l.TSBridgeDiscovery == 0 {
		return false
	}
	delta := l.TSTopologyDiscovery - l.TSBridgeDiscovery
	if delta < 0 {
		delta = -delta
	}
	return delta < s.discoveryThresholdMS
}

// IsLinkBridged reports whether the specific link identified by
// (localIface, neighborAL, neighborIface) is BRIDGED. Returns false if no
// such link exists.
func (s *Store) IsLinkBridged(localIface string, neighborAL, neighborIface MAC) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.links[linkKey{localIface, neighborAL, neighborIface}]
	if !ok {
		return false
	}
	return s.bridged(l)
}

// IsNeighborBridged reports whether any link to neighborAL on localIface is
// BRIDGED.
func (s *Store) IsNeighborBridged(localIface string, neighborAL MAC) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.linkOrder {
		if key.localInterfaceName != localIface || key.neighborALMAC != neighborAL {
			continue
		}
		if s.bridged(s.links[key]) {
			return true
		}
	}
	return false
}

// IsInterfaceBridged reports whether any neighbor reachable via localIface
// is bridged.
func (s *Store) IsInterfaceBridged(localIface string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.linkOrder {
		if key.localInterfaceName != localIface {
			continue
		}
		if s.bridged(s.links[key]) {
			return true
		}
	}
	return false
}

// ListInterfaceNeighbors returns the de-duplicated list of AL MACs
// reachable via localIface, in first-seen order.
func (s *Store) ListInterfaceNeighbors(localIface string) []MAC {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []MAC
	seen := make(map[MAC]bool)
	for _, key := range s.linkOrder {
		if key.localInterfaceName != localIface {
			continue
		}
		if seen[key.neighborALMAC] {
			continue
		}
		seen[key.neighborALMAC] = true
		out = append(out, key.neighborALMAC)
	}
	return out
}

// ListAllNeighbors returns the de-duplicated union of neighbors across
// every local interface, in first-seen order.
func (s *Store) ListAllNeighbors() []MAC {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []MAC
	seen := make(map[MAC]bool)
	for _, key := range s.linkOrder {
		if seen[key.neighborALMAC] {
			continue
		}
		seen[key.neighborALMAC] = true
		out = append(out, key.neighborALMAC)
	}
	return out
}

// Link is one reachability path reported by ListLinksWithNeighbor.
type Link struct {
	LocalInterfaceName   string
	NeighborInterfaceMAC MAC
}

// ListLinksWithNeighbor returns every distinct reachability path to
// neighborAL: one entry per (local interface, neighbor interface MAC) pair,
// in insertion order. See spec.md §4.3's A/B/C topology example.
func (s *Store) ListLinksWithNeighbor(neighborAL MAC) []Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Link
	for _, key := range s.linkOrder {
		if key.neighborALMAC != neighborAL {
			continue
		}
		out = append(out, Link{LocalInterfaceName: key.localInterfaceName, NeighborInterfaceMAC: key.neighborInterfaceMAC})
	}
	return out
}

// RemoveALNeighborFromInterface drops every NeighborLink matching
// (alMAC, interfaceName). It does not remove the Device record itself —
// that's the garbage collector's job.
func (s *Store) RemoveALNeighborFromInterface(alMAC MAC, interfaceName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.linkOrder[:0]
	for _, key := range s.linkOrder {
		if key.localInterfaceName == interfaceName && key.neighborALMAC == alMAC {
			delete(s.links, key)
			continue
		}
		kept = append(kept, key)
	}
	s.linkOrder = kept
}

// removeLinksForDevice drops every NeighborLink whose neighbor AL MAC is
// mac. Called by the garbage collector when evicting a Device.
func (s *Store) removeLinksForDevice(mac MAC) {
	kept := s.linkOrder[:0]
	for _, key := range s.linkOrder {
		if key.neighborALMAC == mac {
			delete(s.links, key)
			continue
		}
		kept = append(kept, key)
	}
	s.linkOrder = kept
}
