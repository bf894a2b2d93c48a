package selectors

import (
	"math"
	"reflect"
)

// SamenessFunc decides whether two dependency results are interchangeable.
// Returning true means the cached combination may be reused.
type SamenessFunc func(a, b any) bool

// Same is the default SamenessFunc: value identity rather than deep equality.
//
//   - nil is the same as nil only
//   - values of different dynamic types are never the same
//   - pointers, maps, and channels are the same iff they reference the same object
//   - funcs are compared by code pointer
//   - slices are the same iff they share the backing array and length
//   - NaN is the same as NaN, so a cached NaN does not thrash the cache
//   - every other comparable kind falls back to ==
//
// Uncomparable kinds with no reference identity (none in practice) report false.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Float32, reflect.Float64:
		fa, fb := ra.Float(), rb.Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	default:
		if !ra.Comparable() {
			return false
		}
		return a == b
	}
}

// ShallowEqual reports one-level equality of two flat records held as maps:
// the same key set, with each value the Same. It never recurses into values.
//
// Flat records shaped as comparable structs don't need this; Go's == on such
// structs is already field-wise one-level comparison, which is what the
// Stable derived selectors rely on.
func ShallowEqual[K comparable, V any](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Same(av, bv) {
			return false
		}
	}
	return true
}
