// Package datamodel implements the IEEE 1905.1/1a Abstraction Layer
// topology database: the local identity, local interface table, neighbor
// link table, and device registry every other AL component (discovery
// handlers, metric collectors, message builders, CLIs) reads and writes.
//
// The store assumes a single logical owner serializing all reads and
// writes (spec.md §5); Store's exported methods take an internal mutex so
// a Go port — unlike the single-threaded original — stays safe if called
// from more than one goroutine, but no per-entity fine-grained locking is
// attempted: the working set is small and every operation is a short,
// bounded scan.
package datamodel

import (
	"sync"

	"al1905d/tlvs"
)

// MAC re-exports tlvs.MAC so callers of this package don't need to import
// tlvs just to name an address.
type MAC = tlvs.MAC

// LocalIdentity is the C1 singleton: the AL entity's own MAC, the MAC of
// the designated registrar, and whether the AL entity maps the whole
// network or only direct neighbors.
type LocalIdentity struct {
	ALMAC           MAC
	RegistrarMAC    MAC
	MapWholeNetwork bool
}

// Store is the full topology database. The zero value is not usable; build
// one with New.
type Store struct {
	mu sync.Mutex

	clock  Clock
	lastMS int64

	identity LocalIdentity

	interfaces  []LocalInterface
	ifaceByName map[string]int
	ifaceByMAC  map[MAC]int

	links     map[linkKey]*NeighborLink
	linkOrder []linkKey

	devices     map[MAC]*Device
	deviceOrder []MAC

	discoveryThresholdMS int64
	maxAgeMS             int64
	gcMaxAgeMS           int64
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithThresholds overrides the discovery-bridged-window, device-freshness,
// and GC-eviction thresholds (all in milliseconds). config.Config plugs its
// (validated) values in here; callers that don't need non-default timing
// can omit this option entirely.
func WithThresholds(discoveryThresholdMS, maxAgeMS, gcMaxAgeMS int64) Option {
	return func(s *Store) {
		s.discoveryThresholdMS = discoveryThresholdMS
		s.maxAgeMS = maxAgeMS
		s.gcMaxAgeMS = gcMaxAgeMS
	}
}

// New creates an empty Store using the system clock. This corresponds to
// the original DMinit(): it must be called before any other operation.
func New(opts ...Option) *Store {
	return NewWithClock(newSystemClock(), opts...)
}

// NewWithClock creates an empty Store using the given Clock, for tests that
// need to control time.
func NewWithClock(clock Clock, opts ...Option) *Store {
	s := &Store{
		clock:                clock,
		ifaceByName:          make(map[string]int),
		ifaceByMAC:           make(map[MAC]int),
		links:                make(map[linkKey]*NeighborLink),
		devices:              make(map[MAC]*Device),
		discoveryThresholdMS: DefaultDiscoveryThresholdMS,
		maxAgeMS:             DefaultMaxAgeMS,
		gcMaxAgeMS:           DefaultGCMaxAgeMS,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
