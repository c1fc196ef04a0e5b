package accountcache

/*
Stats is a point-in-time snapshot of cache activity.

- Hits             → Get calls that found the id
- Misses           → Get calls that did not
- Puts             → Put calls, new and overwriting alike
- Evictions        → entries dropped by the LRU policy
- Notifications    → listener calls that returned normally
- ListenerFailures → listener calls that panicked

The first four are mutated under the Cache lock by the store. The last
two are owned by the notification dispatcher and read atomically, so they
may run ahead of or behind the others by whatever is still queued.
*/
type Stats struct {
	Hits             uint64
	Misses           uint64
	Puts             uint64
	Evictions        uint64
	Notifications    uint64
	ListenerFailures uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 when no lookups happened.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
