package selectors_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/select_ive_go/selectors"

	"github.com/stretchr/testify/assert"
)

func TestDerive2_SkipsCombinerWhenDepsUnchanged(t *testing.T) {
	combines := 0
	items := selectors.NewMemo(func(s *todoState) []string { return s.items })
	done := selectors.NewMemo(func(s *todoState) int { return s.done })
	view := selectors.Derive2(items.Eval, done.Eval, func(it []string, d int) string {
		combines++
		return fmt.Sprintf("%d/%d", d, len(it))
	})

	s1 := &todoState{items: []string{"a", "b"}, done: 1}
	assert.Equal(t, "1/2", view.Eval(s1))
	assert.Equal(t, "1/2", view.Eval(s1)) // cached
	assert.Equal(t, 1, combines)

	// a new root that shares both leaves: the dependency tuple is unchanged
	s2 := &todoState{items: s1.items, done: 1}
	assert.Equal(t, "1/2", view.Eval(s2))
	assert.Equal(t, 1, combines)

	// one leaf changed
	s3 := &todoState{items: s1.items, done: 2}
	assert.Equal(t, "2/2", view.Eval(s3))
	assert.Equal(t, 2, combines)
}

func TestDerive1_RecomputesWhenDepChanges(t *testing.T) {
	combines := 0
	view := selectors.Derive1(
		func(s *todoState) []string { return s.items },
		func(items []string) int {
			combines++
			return len(items)
		},
	)

	s1 := &todoState{items: []string{"a"}}
	assert.Equal(t, 1, view.Eval(s1))
	s2 := &todoState{items: []string{"a", "b"}}
	assert.Equal(t, 2, view.Eval(s2))
	assert.Equal(t, 2, combines)
}

func TestDerive6_CombinesSixDependencies(t *testing.T) {
	combines := 0
	dep := func(n int) func(*todoState) int {
		return func(s *todoState) int { return s.done * n }
	}
	view := selectors.Derive6(
		dep(1), dep(2), dep(3), dep(4), dep(5), dep(6),
		func(a, b, c, d, e, f int) int {
			combines++
			return a + b + c + d + e + f
		},
	)

	s := &todoState{done: 1}
	assert.Equal(t, 21, view.Eval(s))
	assert.Equal(t, 21, view.Eval(s))
	assert.Equal(t, 1, combines)

	assert.Equal(t, 42, view.Eval(&todoState{done: 2}))
	assert.Equal(t, 2, combines)
}

func TestDerived_ResultReferenceIsStableWhileCached(t *testing.T) {
	items := selectors.NewMemo(func(s *todoState) []string { return s.items })
	view := selectors.Derive1(items.Eval, func(it []string) []string {
		picked := make([]string, 0, len(it))
		for _, v := range it {
			if v != "" {
				picked = append(picked, v)
			}
		}
		return picked
	})

	s := &todoState{items: []string{"a", "", "b"}}
	r1 := view.Eval(s)
	r2 := view.Eval(&todoState{items: s.items}) // different root, same leaf
	assert.True(t, selectors.Same(r1, r2))
}

func TestDerived_WithSameness(t *testing.T) {
	combines := 0
	view := selectors.Derive1(
		func(s *todoState) []string { return s.items },
		func(items []string) int {
			combines++
			return len(items)
		},
	).WithSameness(func(a, b any) bool {
		return len(a.([]string)) == len(b.([]string))
	})

	assert.Equal(t, 2, view.Eval(&todoState{items: []string{"a", "b"}}))
	assert.Equal(t, 2, view.Eval(&todoState{items: []string{"x", "y"}})) // same length, judged interchangeable
	assert.Equal(t, 1, combines)

	assert.Equal(t, 3, view.Eval(&todoState{items: []string{"x", "y", "z"}}))
	assert.Equal(t, 2, combines)
}

func TestDerived_CombinerPanicLeavesCacheUntouched(t *testing.T) {
	combines := 0
	view := selectors.Derive1(
		func(s *todoState) int { return s.done },
		func(d int) int {
			combines++
			if d < 0 {
				panic("negative count")
			}
			return d * 10
		},
	)

	s1 := &todoState{done: 3}
	assert.Equal(t, 30, view.Eval(s1))

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected the combiner panic to propagate")
			}
		}()
		view.Eval(&todoState{done: -1})
	}()

	assert.Equal(t, 30, view.Eval(s1))
	assert.Equal(t, 2, combines) // the failed combination cached nothing
}

func TestDerived_NilDependencyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on nil dependency")
		}
	}()
	selectors.Derive1[*todoState, int, int](nil, func(d int) int { return d })
}

func TestDerived_Reset(t *testing.T) {
	combines := 0
	view := selectors.Derive1(
		func(s *todoState) int { return s.done },
		func(d int) int {
			combines++
			return d
		},
	)

	s := &todoState{done: 1}
	view.Eval(s)
	view.Reset()
	view.Eval(s)
	assert.Equal(t, 2, combines)
}
