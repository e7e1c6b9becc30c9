package datamodel

import (
	"context"
	"time"
)

// RunGarbageCollector scans every Device and evicts any whose LastUpdateTS
// is older than the configured GC max age, except the local device itself
// (spec.md §4.5). Eviction removes every NeighborLink referencing the
// evicted device and then the Device record. It returns the number of
// devices evicted.
func (s *Store) RunGarbageCollector() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.deviceOrder[:0]
	evicted := 0
	for _, mac := range s.deviceOrder {
		d := s.devices[mac]
		if mac == s.identity.ALMAC && !mac.IsZero() {
			kept = append(kept, mac)
			continue
		}
		if now-d.LastUpdateTS <= s.gcMaxAgeMS {
			kept = append(kept, mac)
			continue
		}
		s.removeLinksForDevice(mac)
		delete(s.devices, mac)
		evicted++
	}
	s.deviceOrder = kept
	return evicted
}

// StartGC launches a goroutine that calls RunGarbageCollector every
// interval until ctx is canceled. The contract (spec.md §4.5) only
// requires GC to run more often than 1/GCMaxAge; callers that want to
// drive GC from their own scheduler instead can simply call
// RunGarbageCollector directly and skip StartGC.
func (s *Store) StartGC(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunGarbageCollector()
			}
		}
	}()
}
