package storefront

import (
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
)

// ApprovalsState is the approval-queue slice: every request routed through
// the company's approval workflow.
type ApprovalsState struct {
	Requests []ApprovalRequest
}

// ApprovalRequest is one pending or decided authorization: an order above
// somebody's limit, a quote acceptance, or a credit change.
type ApprovalRequest struct {
	ID          string
	Kind        ApprovalKind
	Subject     string
	RequestedBy string
	AssignedTo  string
	Status      ApprovalStatus
	Priority    Priority
	Amount      decimal.Decimal
	CreatedAt   time.Time
	DueBy       date.Date
	Note        string
}

// ApprovalKind is what an approval request authorizes.
type ApprovalKind string

const (
	ApproveOrder  ApprovalKind = "order"
	ApproveQuote  ApprovalKind = "quote"
	ApproveCredit ApprovalKind = "credit"
)

// ApprovalStatus is a request's position in the approval workflow.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ApprovalStatuses lists every status in workflow order.
func ApprovalStatuses() []ApprovalStatus {
	return []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected}
}

// Priority is the urgency of an approval request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsHigh reports whether the priority belongs to the urgent band.
func (p Priority) IsHigh() bool {
	return p == PriorityHigh || p == PriorityUrgent
}
