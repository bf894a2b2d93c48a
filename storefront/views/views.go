// Package views is the selector catalog of the storefront: named, read-only
// projections of the four state slices, memoized with package selectors.
//
// Every view is either a plain accessor (cheap enough to recompute on every
// call) or the bound Eval of a selector instance. Instances register
// themselves in a package-level catalog so tests can reset every cache
// between cases and hosts can export cache counters.
//
// All views take the state tree explicitly; none of them reads ambient
// process state. The only wall-clock reads in the package live in the
// ...Today conveniences, which are documented as impure.
package views

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/select_ive_go/selectors"
)

// Cache is the management surface shared by every selector instance in the
// catalog.
type Cache interface {
	Name() string
	Reset()
	Stats() selectors.Stats
}

// registry holds every instance built at package init. It is append-only
// after init, so reads need no locking.
var registry []Cache

func register[C Cache](c C) C {
	registry = append(registry, c)
	return c
}

// Caches returns every registered selector instance, in registration order.
func Caches() []Cache {
	return append([]Cache(nil), registry...)
}

// ResetCaches drops the cached state of every registered instance. Tests use
// it to isolate cases; counters survive.
func ResetCaches() {
	for _, c := range registry {
		c.Reset()
	}
}

// CacheStats snapshots the counters of every registered instance by name.
func CacheStats() map[string]selectors.Stats {
	out := make(map[string]selectors.Stats, len(registry))
	for _, c := range registry {
		out[c.Name()] = c.Stats()
	}
	return out
}

// ExpiryWindow keys the time-window views: the day the question is asked and
// how many days ahead to look. Taking the day as data keeps the views pure;
// the ...Today conveniences fill it from the wall clock.
type ExpiryWindow struct {
	AsOf date.Date
	Days int
}

// End is the last day inside the window.
func (w ExpiryWindow) End() date.Date {
	return w.AsOf + date.Date(w.Days)
}

var hundred = decimal.MustParse("100")

// Money arithmetic inside combiners panics on coefficient overflow, same
// stance as the storefront reducers.

func addMoney(a, b decimal.Decimal) decimal.Decimal {
	sum, err := a.Add(b)
	if err != nil {
		panic(fmt.Errorf("views: money addition failed: %w", err))
	}
	return sum
}

func subMoney(a, b decimal.Decimal) decimal.Decimal {
	diff, err := a.Sub(b)
	if err != nil {
		panic(fmt.Errorf("views: money subtraction failed: %w", err))
	}
	return diff
}

func mulMoney(a, b decimal.Decimal) decimal.Decimal {
	product, err := a.Mul(b)
	if err != nil {
		panic(fmt.Errorf("views: money multiplication failed: %w", err))
	}
	return product
}
