package views

import (
	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"

	"github.com/on-the-ground/select_ive_go/selectors"
	"github.com/on-the-ground/select_ive_go/storefront"
)

// Approvals returns every request in the approval queue.
func Approvals(s *storefront.State) []storefront.ApprovalRequest {
	return s.Approvals.Requests
}

// ApprovalCount returns the size of the approval queue, decided included.
func ApprovalCount(s *storefront.State) int {
	return len(s.Approvals.Requests)
}

var approvalsByStatus = register(selectors.NewKeyed(
	func(s *storefront.State, st storefront.ApprovalStatus) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.Status == st {
				out = append(out, r)
			}
		}
		return out
	},
	selectors.WithMaxEntries(3),
).WithName("approvals.by_status"))

// ApprovalsByStatus returns the requests sitting in the given workflow
// status.
var ApprovalsByStatus = approvalsByStatus.Eval

var pendingApprovals = register(selectors.Derive1(
	Approvals,
	func(all []storefront.ApprovalRequest) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(all))
		for _, r := range all {
			if r.Status == storefront.ApprovalPending {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.pending"))

// PendingApprovals returns the requests still awaiting a decision.
var PendingApprovals = pendingApprovals.Eval

// ApprovedApprovals returns the requests that were granted.
func ApprovedApprovals(s *storefront.State) []storefront.ApprovalRequest {
	return approvalsByStatus.Eval(s, storefront.ApprovalApproved)
}

// RejectedApprovals returns the requests that were declined.
func RejectedApprovals(s *storefront.State) []storefront.ApprovalRequest {
	return approvalsByStatus.Eval(s, storefront.ApprovalRejected)
}

// ApprovalByID returns the request with the given ID, or nil.
var ApprovalByID = register(selectors.NewKeyed(
	func(s *storefront.State, id string) *storefront.ApprovalRequest {
		for i := range s.Approvals.Requests {
			if s.Approvals.Requests[i].ID == id {
				r := s.Approvals.Requests[i]
				return &r
			}
		}
		return nil
	},
).WithName("approvals.by_id")).Eval

// ApprovalsByKind returns the requests authorizing the given kind of change.
var ApprovalsByKind = register(selectors.NewKeyed(
	func(s *storefront.State, kind storefront.ApprovalKind) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.Kind == kind {
				out = append(out, r)
			}
		}
		return out
	},
	selectors.WithMaxEntries(3),
).WithName("approvals.by_kind")).Eval

// ApprovalsByPriority returns the requests filed at the given urgency.
var ApprovalsByPriority = register(selectors.NewKeyed(
	func(s *storefront.State, p storefront.Priority) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.Priority == p {
				out = append(out, r)
			}
		}
		return out
	},
	selectors.WithMaxEntries(4),
).WithName("approvals.by_priority")).Eval

// ApprovalsAssignedTo returns the requests waiting on the given employee.
var ApprovalsAssignedTo = register(selectors.NewKeyed(
	func(s *storefront.State, employeeID string) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.AssignedTo == employeeID {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.assigned_to")).Eval

// ApprovalsRequestedBy returns the requests filed by the given employee.
var ApprovalsRequestedBy = register(selectors.NewKeyed(
	func(s *storefront.State, employeeID string) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.RequestedBy == employeeID {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.requested_by")).Eval

// ApprovalCountsByStatus returns how many requests sit in each workflow
// status. Statuses with no requests are absent from the map.
var ApprovalCountsByStatus = register(selectors.Derive1(
	Approvals,
	func(all []storefront.ApprovalRequest) map[storefront.ApprovalStatus]int {
		out := make(map[storefront.ApprovalStatus]int, len(storefront.ApprovalStatuses()))
		for _, r := range all {
			out[r.Status]++
		}
		return out
	},
).WithName("approvals.counts_by_status")).Eval

// HighPriorityPendingApprovals returns the undecided requests in the urgent
// band.
var HighPriorityPendingApprovals = register(selectors.Derive1(
	pendingApprovals.Eval,
	func(pending []storefront.ApprovalRequest) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(pending))
		for _, r := range pending {
			if r.Priority.IsHigh() {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.high_priority_pending")).Eval

// OverdueApprovals returns the undecided requests whose due day already
// passed on asOf.
var OverdueApprovals = register(selectors.NewKeyed(
	func(s *storefront.State, asOf date.Date) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.Status == storefront.ApprovalPending && r.DueBy < asOf {
				out = append(out, r)
			}
		}
		return out
	},
	selectors.WithMaxEntries(4),
).WithName("approvals.overdue")).Eval

// OverdueApprovalsToday is OverdueApprovals against the wall clock. Impure
// on purpose: repeated calls with an identical state may differ once
// midnight passes.
func OverdueApprovalsToday(s *storefront.State) []storefront.ApprovalRequest {
	return OverdueApprovals(s, date.Today())
}

// ApprovalsDueWithin returns the undecided requests whose due day falls
// inside the window.
var ApprovalsDueWithin = register(selectors.NewKeyed(
	func(s *storefront.State, w ExpiryWindow) []storefront.ApprovalRequest {
		out := make([]storefront.ApprovalRequest, 0, len(s.Approvals.Requests))
		for _, r := range s.Approvals.Requests {
			if r.Status == storefront.ApprovalPending && w.AsOf <= r.DueBy && r.DueBy <= w.End() {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.due_within")).Eval

// PendingApprovalAmount returns the total money awaiting authorization.
var PendingApprovalAmount = register(selectors.Derive1(
	pendingApprovals.Eval,
	func(pending []storefront.ApprovalRequest) decimal.Decimal {
		total := decimal.Decimal{}
		for _, r := range pending {
			total = addMoney(total, r.Amount)
		}
		return total
	},
).WithName("approvals.pending_amount")).Eval

// OldestPendingApproval returns the undecided request waiting longest, or
// nil.
var OldestPendingApproval = register(selectors.Derive1(
	pendingApprovals.Eval,
	func(pending []storefront.ApprovalRequest) *storefront.ApprovalRequest {
		var oldest *storefront.ApprovalRequest
		for i := range pending {
			if oldest == nil || pending[i].CreatedAt.Before(oldest.CreatedAt) {
				r := pending[i]
				oldest = &r
			}
		}
		return oldest
	},
).WithName("approvals.oldest_pending")).Eval

// LargestPendingApproval returns the undecided request over the most money,
// or nil.
var LargestPendingApproval = register(selectors.Derive1(
	pendingApprovals.Eval,
	func(pending []storefront.ApprovalRequest) *storefront.ApprovalRequest {
		var largest *storefront.ApprovalRequest
		for i := range pending {
			if largest == nil || pending[i].Amount.Cmp(largest.Amount) > 0 {
				r := pending[i]
				largest = &r
			}
		}
		return largest
	},
).WithName("approvals.largest_pending")).Eval

// MyPendingApprovals returns the undecided requests waiting on the acting
// employee. Nil employee reads as none.
var MyPendingApprovals = register(selectors.Derive2(
	pendingApprovals.Eval,
	CurrentEmployee,
	func(pending []storefront.ApprovalRequest, e *storefront.Employee) []storefront.ApprovalRequest {
		if e == nil {
			return nil
		}
		out := make([]storefront.ApprovalRequest, 0, len(pending))
		for _, r := range pending {
			if r.AssignedTo == e.ID {
				out = append(out, r)
			}
		}
		return out
	},
).WithName("approvals.my_pending")).Eval

// ApprovalTally is the flat queue summary shown on the dashboard.
type ApprovalTally struct {
	Pending      int
	Approved     int
	Rejected     int
	HighPriority int
}

// ApprovalSummary returns the queue summary as a stable record: the
// returned pointer only changes when a count actually changes, however the
// queue slice churns underneath.
var ApprovalSummary = register(selectors.StableDerive1(
	Approvals,
	func(all []storefront.ApprovalRequest) ApprovalTally {
		var t ApprovalTally
		for _, r := range all {
			switch r.Status {
			case storefront.ApprovalPending:
				t.Pending++
				if r.Priority.IsHigh() {
					t.HighPriority++
				}
			case storefront.ApprovalApproved:
				t.Approved++
			case storefront.ApprovalRejected:
				t.Rejected++
			}
		}
		return t
	},
).WithName("approvals.summary")).Eval
