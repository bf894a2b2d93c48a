package selectors

// Stats is a point-in-time snapshot of a selector's cache activity.
// Counters accumulate over the instance lifetime and survive Reset.
type Stats struct {
	// Hits counts evaluations answered from cache without running the
	// selector function.
	Hits uint64
	// Misses counts evaluations that ran the selector function.
	Misses uint64
	// Evictions counts entries dropped from a bounded table to make room.
	Evictions uint64
	// Kept counts recomputations whose result was discarded in favor of the
	// previous shallow-equal one. Only Stable derived selectors produce it.
	Kept uint64
}
