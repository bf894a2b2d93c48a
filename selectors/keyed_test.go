package selectors_test

import (
	"testing"

	"github.com/on-the-ground/select_ive_go/selectors"

	"github.com/stretchr/testify/assert"
)

func TestKeyed_CachesPerParam(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, idx int) string {
		count++
		return s.items[idx]
	})

	s := &todoState{items: []string{"a", "b"}}
	assert.Equal(t, "a", sel.Eval(s, 0))
	assert.Equal(t, "b", sel.Eval(s, 1))
	assert.Equal(t, "a", sel.Eval(s, 0)) // cached
	assert.Equal(t, "b", sel.Eval(s, 1)) // cached
	assert.Equal(t, 2, count)
}

func TestKeyed_DefaultCapacityIsTen(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return s.done + p
	})

	s := &todoState{done: 100}
	for p := 0; p < 10; p++ {
		sel.Eval(s, p)
	}
	for p := 0; p < 10; p++ {
		sel.Eval(s, p) // all cached
	}
	assert.Equal(t, 10, count)
	assert.Equal(t, 10, sel.Len())

	sel.Eval(s, 10) // eleventh key evicts the oldest
	sel.Eval(s, 0)
	assert.Equal(t, 12, count)
	assert.Equal(t, 10, sel.Len())
}

func TestKeyed_EvictsOldestInserted(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return p * s.done
	}, selectors.WithMaxEntries(3))

	s := &todoState{done: 2}
	sel.Eval(s, 0)
	sel.Eval(s, 1)
	sel.Eval(s, 2)
	assert.Equal(t, 3, count)

	sel.Eval(s, 3) // evicts 0
	assert.Equal(t, 4, count)
	assert.Equal(t, 3, sel.Len())

	sel.Eval(s, 1) // survived
	sel.Eval(s, 2)
	sel.Eval(s, 3)
	assert.Equal(t, 4, count)

	sel.Eval(s, 0) // evicted earlier, recomputed like never seen
	assert.Equal(t, 5, count)
	assert.Equal(t, uint64(2), sel.Stats().Evictions)
}

func TestKeyed_LazyStalenessPerKey(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return s.done + p
	})

	s1 := &todoState{done: 10}
	sel.Eval(s1, 1)
	sel.Eval(s1, 2)

	s2 := &todoState{done: 20}
	assert.Equal(t, 21, sel.Eval(s2, 1)) // only key 1 is revalidated
	assert.Equal(t, 3, count)

	// key 2 still holds its pair against s1
	assert.Equal(t, 12, sel.Eval(s1, 2))
	assert.Equal(t, 3, count)
}

func TestKeyed_RefreshKeepsOriginalQueuePosition(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return s.done + p
	}, selectors.WithMaxEntries(3))

	s1 := &todoState{done: 10}
	sel.Eval(s1, 1)
	sel.Eval(s1, 2)

	s2 := &todoState{done: 20}
	sel.Eval(s2, 1) // refreshed in place, still the oldest insertion
	sel.Eval(s2, 3)
	assert.Equal(t, 4, count)

	sel.Eval(s2, 4) // at capacity: evicts 1, not 2
	assert.Equal(t, 5, count)

	sel.Eval(s2, 3) // cached
	assert.Equal(t, 5, count)
	sel.Eval(s2, 1) // gone
	assert.Equal(t, 6, count)
}

func TestKeyed_RefreshAtCapacityMayEvictItself(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return s.done + p
	}, selectors.WithMaxEntries(2))

	s1 := &todoState{done: 10}
	sel.Eval(s1, 1)
	sel.Eval(s1, 2)

	s2 := &todoState{done: 20}
	assert.Equal(t, 21, sel.Eval(s2, 1)) // oldest is 1 itself; evicted and re-enqueued at the back
	assert.Equal(t, 3, count)
	assert.Equal(t, 2, sel.Len())

	sel.Eval(s2, 1) // cached against s2 now
	assert.Equal(t, 3, count)

	sel.Eval(s2, 3) // evicts 2, the queue front after the refresh
	sel.Eval(s2, 1)
	assert.Equal(t, 4, count)
}

func TestKeyed_Reset(t *testing.T) {
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, p int) int {
		count++
		return p
	})

	s := &todoState{}
	sel.Eval(s, 1)
	sel.Reset()
	assert.Equal(t, 0, sel.Len())
	sel.Eval(s, 1)
	assert.Equal(t, 2, count)
}

func TestKeyed_NonPositiveCapacityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on non-positive capacity")
		}
	}()
	selectors.NewKeyed(func(s *todoState, p int) int { return p }, selectors.WithMaxEntries(0))
}

func TestKeyed_CompositeParam(t *testing.T) {
	type window struct {
		from, days int
	}
	count := 0
	sel := selectors.NewKeyed(func(s *todoState, w window) int {
		count++
		return s.done + w.from + w.days
	})

	s := &todoState{done: 1}
	assert.Equal(t, 9, sel.Eval(s, window{from: 1, days: 7}))
	assert.Equal(t, 9, sel.Eval(s, window{from: 1, days: 7})) // equal struct params share the entry
	assert.Equal(t, 11, sel.Eval(s, window{from: 3, days: 7}))
	assert.Equal(t, 2, count)
}
