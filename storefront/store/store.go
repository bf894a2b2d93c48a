// Package store owns a storefront state tree over time: it applies actions
// through the reducers, hands out the current root for selector evaluation,
// and tells observers when the root actually changed.
//
// Dispatch is synchronous. Subscribers run on the dispatching goroutine,
// outside the store lock, so a subscriber may itself dispatch; the nested
// transition completes before the outer Dispatch returns. The change feed is
// the asynchronous side: a bounded channel that never blocks a dispatch,
// dropping the notification instead when nobody drains it in time.
package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/select_ive_go/internal/fingerprint"
	"github.com/on-the-ground/select_ive_go/storefront"
)

// DefaultChangeBuffer is the change feed capacity used when WithChangeBuffer
// is not given.
const DefaultChangeBuffer = 16

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger attaches a zap logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(st *Store) {
		if logger != nil {
			st.logger = logger
		}
	}
}

// WithChangeBuffer overrides the change feed capacity. Non-positive values
// keep the default.
func WithChangeBuffer(n int) Option {
	return func(st *Store) {
		if n > 0 {
			st.bufLen = n
		}
	}
}

type subscription struct {
	id string
	fn func(prev, next *storefront.State)
}

// Store holds the current state tree and its transition machinery.
// All methods are safe for concurrent use.
type Store struct {
	id     string
	logger *zap.Logger
	bufLen int

	mu      sync.Mutex
	state   *storefront.State
	version uint64
	subs    []subscription
	sink    chan Change
	closed  bool
	dropped uint64
}

// New builds a store over the given initial tree. A nil initial tree starts
// an empty session.
func New(initial *storefront.State, opts ...Option) *Store {
	if initial == nil {
		initial = storefront.NewState()
	}
	st := &Store{
		id:     uuid.New().String(),
		logger: zap.NewNop(),
		bufLen: DefaultChangeBuffer,
		state:  initial,
	}
	for _, opt := range opts {
		opt(st)
	}
	st.sink = make(chan Change, st.bufLen)
	st.logger.Debug("store created", zap.String("store_id", st.id))
	return st
}

// State returns the current root. The tree is read-only; evaluate selectors
// against it.
func (st *Store) State() *storefront.State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Version returns the number of state-changing dispatches so far.
func (st *Store) Version() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.version
}

// Dispatch applies the action and reports whether the root changed.
// No-op transitions produce no version bump, no subscriber calls, and no
// change feed entry. Panics from reducers propagate to the caller with the
// store state unchanged.
func (st *Store) Dispatch(a storefront.Action) bool {
	if a == nil {
		panic("store: action should not be nil")
	}

	st.mu.Lock()
	prev := st.state
	next := storefront.Reduce(prev, a)
	if next == prev {
		st.mu.Unlock()
		st.logger.Debug("action left state unchanged",
			zap.String("store_id", st.id),
			zap.String("action", a.Kind()),
		)
		return false
	}
	st.state = next
	st.version++
	change := Change{Action: a, Version: st.version, State: next, Span: nowSpan()}
	if !st.closed {
		select {
		case st.sink <- change:
		default:
			st.dropped++
		}
	}
	subs := append([]subscription(nil), st.subs...)
	st.mu.Unlock()

	st.logger.Info("action dispatched",
		zap.String("store_id", st.id),
		zap.String("action", a.Kind()),
		zap.Uint64("version", change.Version),
	)
	if ce := st.logger.Check(zap.DebugLevel, "state fingerprint"); ce != nil {
		ce.Write(
			zap.String("store_id", st.id),
			zap.Uint64("version", change.Version),
			zap.String("fingerprint", fingerprint.MustSum(next)),
		)
	}

	for _, sub := range subs {
		sub.fn(prev, next)
	}
	return true
}

// Subscribe registers a synchronous listener called after every
// state-changing dispatch, in registration order. The returned cancel
// function removes the listener; calling it more than once is harmless.
func (st *Store) Subscribe(fn func(prev, next *storefront.State)) func() {
	if fn == nil {
		panic("store: subscriber should not be nil")
	}
	sub := subscription{id: uuid.New().String(), fn: fn}

	st.mu.Lock()
	st.subs = append(st.subs, sub)
	st.mu.Unlock()
	st.logger.Debug("subscriber registered",
		zap.String("store_id", st.id),
		zap.String("subscription_id", sub.id),
	)

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.subs {
			if st.subs[i].id != sub.id {
				continue
			}
			st.subs = append(st.subs[:i:i], st.subs[i+1:]...)
			st.logger.Debug("subscriber removed",
				zap.String("store_id", st.id),
				zap.String("subscription_id", sub.id),
			)
			return
		}
	}
}

// Changes returns the bounded change feed. Entries appear in dispatch order;
// when the buffer is full the entry is dropped rather than blocking the
// dispatcher. The channel closes on Close.
func (st *Store) Changes() <-chan Change {
	return st.sink
}

// Dropped returns how many change feed entries were discarded because the
// buffer was full.
func (st *Store) Dropped() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.dropped
}

// Close ends the change feed. The store itself stays usable: Dispatch keeps
// reducing and notifying subscribers. Closing twice is harmless.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.closed = true
	close(st.sink)
	st.logger.Debug("change feed closed",
		zap.String("store_id", st.id),
		zap.Uint64("dropped", st.dropped),
	)
}
