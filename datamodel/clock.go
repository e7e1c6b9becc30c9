package datamodel

import "time"

// Clock supplies the monotonic millisecond timestamps the store stamps onto
// NeighborLinks and Devices. The store never reads the wall clock directly
// so tests can substitute a fake one.
type Clock interface {
	NowMS() int64
}

// systemClock is the production Clock, backed by time.Now()'s monotonic
// reading. Go's time.Now() already carries a monotonic component that
// survives wall-clock adjustments, so no extra bookkeeping is needed beyond
// the non-decreasing clamp the store applies in now().
type systemClock struct {
	start time.Time
}

func newSystemClock() systemClock {
	return systemClock{start: time.Now()}
}

func (c systemClock) NowMS() int64 {
	return time.Since(c.start).Milliseconds()
}

// now returns the current time in milliseconds, clamped to never regress
// relative to the previous call. spec.md §5 requires successive timestamp
// reads to be non-decreasing; systemClock already guarantees this via
// time.Since's monotonic reading, but the clamp is kept so a Clock
// implementation backed by a plain wall clock (as the original C
// implementation was) stays safe too.
func (s *Store) now() int64 {
	t := s.clock.NowMS()
	if t < s.lastMS {
		t = s.lastMS
	}
	s.lastMS = t
	return t
}
