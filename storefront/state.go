package storefront

// State is the root of the session tree. All four slices are non-nil on any
// State produced by NewState, the fixtures, or a reducer; code reading a
// State may rely on that.
//
// A State and everything reachable from it must be treated as read-only.
// Transitions go through Reduce, which preserves the identity of every
// untouched slice.
type State struct {
	Company   *CompanyState
	Quotes    *QuotesState
	Approvals *ApprovalsState
	Cart      *CartState
}

// NewState returns an empty session: no company loaded, no quotes, no
// pending approvals, an empty cart, and the default quote filter.
func NewState() *State {
	return &State{
		Company:   &CompanyState{},
		Quotes:    &QuotesState{Filter: DefaultQuoteFilter()},
		Approvals: &ApprovalsState{},
		Cart:      &CartState{},
	}
}
