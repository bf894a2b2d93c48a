package selectors

import "sync"

// Derived recomputes a combination of dependency results only when at least
// one dependency stopped being the Same. Dependencies are evaluated on every
// Eval; the combiner is the guarded part. Use the Derive1..Derive6
// constructors, which keep the dependency and combiner types aligned.
type Derived[S comparable, R any] struct {
	mu         sync.Mutex
	name       string
	deps       []func(S) any
	combine    func(args ...any) R
	same       SamenessFunc
	primed     bool
	snapshot   []any
	lastResult R
	stats      Stats
}

func newDerived[S comparable, R any](deps []func(S) any, combine func(args ...any) R) *Derived[S, R] {
	if combine == nil {
		panic("selectors: combiner should not be nil")
	}
	for _, dep := range deps {
		if dep == nil {
			panic("selectors: dependency should not be nil")
		}
	}
	return &Derived[S, R]{deps: deps, combine: combine, same: Same}
}

// WithName attaches a stable name for stats and logging. Returns the receiver.
func (d *Derived[S, R]) WithName(name string) *Derived[S, R] {
	d.name = name
	return d
}

// Name returns the name set via WithName, or "".
func (d *Derived[S, R]) Name() string { return d.name }

// WithSameness replaces the dependency comparison, Same by default.
// Panics if fn is nil. Returns the receiver.
func (d *Derived[S, R]) WithSameness(fn SamenessFunc) *Derived[S, R] {
	if fn == nil {
		panic("selectors: sameness function should not be nil")
	}
	d.same = fn
	return d
}

// Eval evaluates every dependency against state, then returns the cached
// combination when each result is still the Same as in the previous
// snapshot. Otherwise it runs the combiner and stores the new snapshot.
// Two different state references that yield an identical dependency tuple
// share one combination.
func (d *Derived[S, R]) Eval(state S) R {
	d.mu.Lock()
	defer d.mu.Unlock()
	args := make([]any, len(d.deps))
	for i, dep := range d.deps {
		args[i] = dep(state)
	}
	if d.primed && d.sameSnapshot(args) {
		d.stats.Hits++
		return d.lastResult
	}
	d.stats.Misses++
	result := d.combine(args...)
	d.snapshot = args
	d.lastResult = result
	d.primed = true
	return result
}

func (d *Derived[S, R]) sameSnapshot(args []any) bool {
	for i, arg := range args {
		if !d.same(d.snapshot[i], arg) {
			return false
		}
	}
	return true
}

// Reset drops the snapshot and cached combination. Stats survive.
func (d *Derived[S, R]) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zeroR R
	d.primed = false
	d.snapshot = nil
	d.lastResult = zeroR
}

// Stats returns a snapshot of the cache counters.
func (d *Derived[S, R]) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Derive1 builds a Derived selector over one dependency.
func Derive1[S comparable, D1, R any](
	dep1 func(S) D1,
	combine func(D1) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1))
		},
	)
}

// Derive2 builds a Derived selector over two dependencies.
func Derive2[S comparable, D1, D2, R any](
	dep1 func(S) D1,
	dep2 func(S) D2,
	combine func(D1, D2) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
			func(s S) any { return dep2(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1), args[1].(D2))
		},
	)
}

// Derive3 builds a Derived selector over three dependencies.
func Derive3[S comparable, D1, D2, D3, R any](
	dep1 func(S) D1,
	dep2 func(S) D2,
	dep3 func(S) D3,
	combine func(D1, D2, D3) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
			func(s S) any { return dep2(s) },
			func(s S) any { return dep3(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1), args[1].(D2), args[2].(D3))
		},
	)
}

// Derive4 builds a Derived selector over four dependencies.
func Derive4[S comparable, D1, D2, D3, D4, R any](
	dep1 func(S) D1,
	dep2 func(S) D2,
	dep3 func(S) D3,
	dep4 func(S) D4,
	combine func(D1, D2, D3, D4) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
			func(s S) any { return dep2(s) },
			func(s S) any { return dep3(s) },
			func(s S) any { return dep4(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1), args[1].(D2), args[2].(D3), args[3].(D4))
		},
	)
}

// Derive5 builds a Derived selector over five dependencies.
func Derive5[S comparable, D1, D2, D3, D4, D5, R any](
	dep1 func(S) D1,
	dep2 func(S) D2,
	dep3 func(S) D3,
	dep4 func(S) D4,
	dep5 func(S) D5,
	combine func(D1, D2, D3, D4, D5) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
			func(s S) any { return dep2(s) },
			func(s S) any { return dep3(s) },
			func(s S) any { return dep4(s) },
			func(s S) any { return dep5(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1), args[1].(D2), args[2].(D3), args[3].(D4), args[4].(D5))
		},
	)
}

// Derive6 builds a Derived selector over six dependencies, the widest arity
// the catalog needs.
func Derive6[S comparable, D1, D2, D3, D4, D5, D6, R any](
	dep1 func(S) D1,
	dep2 func(S) D2,
	dep3 func(S) D3,
	dep4 func(S) D4,
	dep5 func(S) D5,
	dep6 func(S) D6,
	combine func(D1, D2, D3, D4, D5, D6) R,
) *Derived[S, R] {
	return newDerived(
		[]func(S) any{
			func(s S) any { return dep1(s) },
			func(s S) any { return dep2(s) },
			func(s S) any { return dep3(s) },
			func(s S) any { return dep4(s) },
			func(s S) any { return dep5(s) },
			func(s S) any { return dep6(s) },
		},
		func(args ...any) R {
			return combine(args[0].(D1), args[1].(D2), args[2].(D3), args[3].(D4), args[4].(D5), args[5].(D6))
		},
	)
}
