package datamodel

// ALMacSet stores the AL entity's own AL MAC. Must be called once during
// startup before ALMacGet is meaningfully consulted elsewhere.
func (s *Store) ALMacSet(mac MAC) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.ALMAC = mac
}

// ALMacGet returns the AL entity's own AL MAC, or the all-zero sentinel if
// ALMacSet has not been called yet.
func (s *Store) ALMacGet() MAC {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.ALMAC
}

// RegistrarMacSet stores the MAC of the designated network registrar. It
// may equal the local AL MAC or any remote MAC; the data model attaches no
// structural meaning to it.
func (s *Store) RegistrarMacSet(mac MAC) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.RegistrarMAC = mac
}

// RegistrarMacGet returns the registrar MAC, or the all-zero sentinel if
// unset.
func (s *Store) RegistrarMacGet() MAC {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.RegistrarMAC
}

// MapWholeNetworkSet stores whether the AL entity should map the whole
// network or only its direct neighbors.
func (s *Store) MapWholeNetworkSet(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.MapWholeNetwork = v
}

// MapWholeNetworkGet returns the map-whole-network flag, false if unset.
func (s *Store) MapWholeNetworkGet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.MapWholeNetwork
}
