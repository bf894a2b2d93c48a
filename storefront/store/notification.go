package store

import (
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/select_ive_go/storefront"
)

// TimeSpan is the wall-clock window stamped on observations.
type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// nowSpan returns a ±1ms window around now, acknowledging clock granularity
// instead of pretending to an instant.
func nowSpan() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// TimeBounded is satisfied by observations that carry their emission window.
type TimeBounded interface {
	TimeSpan() TimeSpan
}

var _ TimeBounded = Change{}

// Change is one state transition as seen on the change feed.
type Change struct {
	Action  storefront.Action
	Version uint64
	State   *storefront.State
	Span    TimeSpan
}

// TimeSpan returns the window in which the transition was committed.
func (c Change) TimeSpan() TimeSpan { return c.Span }
