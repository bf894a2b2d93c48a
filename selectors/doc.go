// Package selectors provides a minimal and idiomatic memoization layer for
// derived state in Go.
//
// Select-ive Go introduces the Selector Pattern to isolate and reuse derived
// computations — filtering, aggregation, projection — over an immutable state
// tree, while keeping the computations themselves pure, testable, and cheap
// to repeat.
//
// # What is a Selector?
//
// A selector is any function that:
//   - reads from a state value it does not own,
//   - derives a result without mutating anything,
//   - and is referentially transparent for a fixed state reference.
//
// # Why use Select-ive Go?
//
// Go doesn’t ship reference-equality caches or dependency-tracked derivation,
// but it does offer generics, comparable constraints, and method values.
// Select-ive Go leverages these idioms to implement explicit, owned,
// resettable memoization for state projections.
//
// Benefits include:
//   - Recomputation only when the observed state actually changed
//   - Stable result references for downstream reference-equality checks
//   - Bounded caches for parameterized lookups
//   - Explicit cache ownership and lifecycle (Reset is a method, not a hack)
//
// # How does it work?
//
// Selectors are built once via `NewMemo`, `NewKeyed`, `Derive1..Derive6`, or
// `StableDerive1..StableDerive6`, then evaluated with `Eval(state)`.
// A Memo caches the single most recent (state, result) pair. A Keyed selector
// keeps one such pair per parameter in a bounded FIFO table. A Derived
// selector re-runs its combiner only when at least one dependency result is
// no longer the same value, and a Stable derived selector additionally keeps
// returning the previous result pointer while the freshly combined record is
// shallow-equal to it.
//
// All evaluation is synchronous on the caller's goroutine: no internal
// scheduling, no background invalidation. Instances serialize access with a
// mutex, so sharing them between goroutines is safe as long as the state
// values themselves are treated as immutable. Dependencies form a DAG by
// construction, which keeps the per-instance locks acquisition-ordered.
//
// Selector functions must be pure with respect to their arguments. A selector
// that reads the wall clock memoizes its own staleness; take the instant as a
// parameter instead.
//
// Example:
//
//	active := selectors.NewMemo(func(s *apps.State) []apps.User {
//	    out := make([]apps.User, 0, len(s.Users))
//	    for _, u := range s.Users {
//	        if u.Active {
//	            out = append(out, u)
//	        }
//	    }
//	    return out
//	})
//
//	users := active.Eval(state)   // computed
//	users = active.Eval(state)    // cached, same slice
package selectors
