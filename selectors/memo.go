package selectors

import "sync"

// Memo caches the single most recent (state, result) pair of a selector
// function. Evaluating against the same state reference returns the cached
// result without invoking the function; evaluating against any other state
// overwrites the pair. History depth is exactly one.
type Memo[S comparable, R any] struct {
	mu         sync.Mutex
	name       string
	fn         func(S) R
	primed     bool
	lastState  S
	lastResult R
	stats      Stats
}

// NewMemo builds a memoized selector around fn. Panics if fn is nil.
func NewMemo[S comparable, R any](fn func(S) R) *Memo[S, R] {
	if fn == nil {
		panic("selectors: selector function should not be nil")
	}
	return &Memo[S, R]{fn: fn}
}

// WithName attaches a stable name for stats and logging. Returns the receiver.
func (m *Memo[S, R]) WithName(name string) *Memo[S, R] {
	m.name = name
	return m
}

// Name returns the name set via WithName, or "".
func (m *Memo[S, R]) Name() string { return m.name }

// Eval returns fn(state), invoking fn only when state differs from the most
// recently evaluated one. A panic inside fn propagates unmodified and leaves
// the previously cached pair in place.
func (m *Memo[S, R]) Eval(state S) R {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.primed && m.lastState == state {
		m.stats.Hits++
		return m.lastResult
	}
	m.stats.Misses++
	result := m.fn(state)
	m.lastState = state
	m.lastResult = result
	m.primed = true
	return result
}

// Reset drops the cached pair so the next Eval recomputes. Stats survive.
func (m *Memo[S, R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zeroS S
	var zeroR R
	m.primed = false
	m.lastState = zeroS
	m.lastResult = zeroR
}

// Stats returns a snapshot of the cache counters.
func (m *Memo[S, R]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
