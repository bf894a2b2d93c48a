package selectors

import "sync"

// DefaultMaxEntries is the bounded-table capacity used when WithMaxEntries
// is not given.
const DefaultMaxEntries = 10

// KeyedOption configures a Keyed selector at construction time.
type KeyedOption func(*keyedConfig)

type keyedConfig struct {
	maxEntries int
}

// WithMaxEntries overrides the bounded-table capacity.
func WithMaxEntries(n int) KeyedOption {
	return func(c *keyedConfig) { c.maxEntries = n }
}

type keyedEntry[S comparable, R any] struct {
	state  S
	result R
}

// Keyed memoizes a parameterized selector: one (state, result) pair per
// parameter value, held in a bounded table. Insertion order is tracked in an
// explicit queue; when the table is full, the oldest-inserted key is evicted.
// Refreshing a stale entry keeps the key's original queue position.
//
// Staleness is detected lazily: a key's entry is validated against the state
// reference only when that key is evaluated again. There is no proactive
// cross-key invalidation, so entries for parameters that are never requested
// again simply age out through eviction.
type Keyed[S comparable, P comparable, R any] struct {
	mu      sync.Mutex
	name    string
	fn      func(S, P) R
	max     int
	entries map[P]keyedEntry[S, R]
	order   []P
	stats   Stats
}

// NewKeyed builds a parameterized memoized selector around fn.
// Panics if fn is nil or the configured capacity is not positive.
func NewKeyed[S comparable, P comparable, R any](fn func(S, P) R, opts ...KeyedOption) *Keyed[S, P, R] {
	if fn == nil {
		panic("selectors: selector function should not be nil")
	}
	cfg := keyedConfig{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEntries < 1 {
		panic("selectors: max entries should be greater than 0")
	}
	return &Keyed[S, P, R]{
		fn:      fn,
		max:     cfg.maxEntries,
		entries: make(map[P]keyedEntry[S, R], cfg.maxEntries),
	}
}

// WithName attaches a stable name for stats and logging. Returns the receiver.
func (k *Keyed[S, P, R]) WithName(name string) *Keyed[S, P, R] {
	k.name = name
	return k
}

// Name returns the name set via WithName, or "".
func (k *Keyed[S, P, R]) Name() string { return k.name }

// Eval returns fn(state, param), invoking fn only when the table holds no
// entry for param computed against this exact state reference. Any recompute
// stores the fresh pair, evicting the oldest-inserted key first when the
// table is at capacity. The evicted key may be param itself; it then rejoins
// the queue at the back.
func (k *Keyed[S, P, R]) Eval(state S, param P) R {
	k.mu.Lock()
	defer k.mu.Unlock()
	if e, ok := k.entries[param]; ok && e.state == state {
		k.stats.Hits++
		return e.result
	}
	k.stats.Misses++
	result := k.fn(state, param)
	if len(k.entries) >= k.max {
		oldest := k.order[0]
		k.order = k.order[1:]
		delete(k.entries, oldest)
		k.stats.Evictions++
	}
	if _, queued := k.entries[param]; !queued {
		k.order = append(k.order, param)
	}
	k.entries[param] = keyedEntry[S, R]{state: state, result: result}
	return result
}

// Len returns the number of cached entries.
func (k *Keyed[S, P, R]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// Reset drops every cached entry and the queue. Stats survive.
func (k *Keyed[S, P, R]) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.entries = make(map[P]keyedEntry[S, R], k.max)
	k.order = nil
}

// Stats returns a snapshot of the cache counters.
func (k *Keyed[S, P, R]) Stats() Stats {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.stats
}
