package datamodel

// Normative constants from spec.md §6. New and NewWithClock copy the
// defaults below into each Store; the WithThresholds option overrides them
// per Store (main passes the config package's validated values there).
const (
	// DefaultDiscoveryThresholdMS is the maximum gap, in milliseconds,
	// between a link's topology-discovery and bridge-discovery timestamps
	// for the link to be considered BRIDGED (spec.md §4.3).
	DefaultDiscoveryThresholdMS = 120_000

	// DefaultMaxAgeMS is how long a Device's info is considered fresh
	// before NetworkDeviceInfoNeedsUpdate starts returning true. Must stay
	// below the 60s IEEE 1905 rediscovery period.
	DefaultMaxAgeMS = 50_000

	// DefaultGCMaxAgeMS is how long a Device may go without an
	// UpdateNetworkDeviceInfo call before the garbage collector evicts it.
	// Must exceed the 60s rediscovery period.
	DefaultGCMaxAgeMS = 90_000
)

// TimestampKind selects which of a NeighborLink's two timestamps an
// UpdateDiscoveryTimestamps call refreshes.
type TimestampKind int

const (
	// TimestampTopologyDiscovery marks receipt of a 1905 topology
	// discovery message.
	TimestampTopologyDiscovery TimestampKind = iota
	// TimestampBridgeDiscovery marks receipt of an LLDP bridge discovery
	// message.
	TimestampBridgeDiscovery
)
