package storefront

import (
	"github.com/govalues/decimal"
)

// Action is a sealed description of one state transition. Reducers consume
// actions; nothing else in the module interprets them.
type Action interface {
	// Kind returns a stable snake_case identifier for logging and metrics.
	Kind() string
	sealedInterfaceAction()
}

var _ Action = SessionStarted{}

// SessionStarted loads the account slice for a signed-in employee. It
// replaces whatever company data the session held before.
type SessionStarted struct {
	Company     *Company
	Employee    *Employee
	Employees   []Employee
	Addresses   []Address
	CostCenters []CostCenter
}

func (SessionStarted) Kind() string           { return "session_started" }
func (SessionStarted) sealedInterfaceAction() {}

var _ Action = EmployeeSwitched{}

// EmployeeSwitched changes the acting employee to another member of the
// loaded company. Unknown IDs leave the state unchanged.
type EmployeeSwitched struct {
	EmployeeID string
}

func (EmployeeSwitched) Kind() string           { return "employee_switched" }
func (EmployeeSwitched) sealedInterfaceAction() {}

var _ Action = CreditConsumed{}

// CreditConsumed books Amount against the company's credit line.
type CreditConsumed struct {
	Amount decimal.Decimal
}

func (CreditConsumed) Kind() string           { return "credit_consumed" }
func (CreditConsumed) sealedInterfaceAction() {}

var _ Action = CreditReleased{}

// CreditReleased returns Amount to the company's credit line.
type CreditReleased struct {
	Amount decimal.Decimal
}

func (CreditReleased) Kind() string           { return "credit_released" }
func (CreditReleased) sealedInterfaceAction() {}

var _ Action = CostCenterSpendRecorded{}

// CostCenterSpendRecorded books Amount as spent on the cost center with the
// given code. Unknown codes leave the state unchanged.
type CostCenterSpendRecorded struct {
	Code   string
	Amount decimal.Decimal
}

func (CostCenterSpendRecorded) Kind() string           { return "cost_center_spend_recorded" }
func (CostCenterSpendRecorded) sealedInterfaceAction() {}

var _ Action = QuotesLoaded{}

// QuotesLoaded replaces the quote list, e.g. after a refresh.
type QuotesLoaded struct {
	Quotes []Quote
}

func (QuotesLoaded) Kind() string           { return "quotes_loaded" }
func (QuotesLoaded) sealedInterfaceAction() {}

var _ Action = QuoteUpserted{}

// QuoteUpserted inserts the quote, or replaces the one sharing its ID.
type QuoteUpserted struct {
	Quote Quote
}

func (QuoteUpserted) Kind() string           { return "quote_upserted" }
func (QuoteUpserted) sealedInterfaceAction() {}

var _ Action = QuoteStatusChanged{}

// QuoteStatusChanged moves a quote to a new workflow status.
type QuoteStatusChanged struct {
	ID     string
	Status QuoteStatus
}

func (QuoteStatusChanged) Kind() string           { return "quote_status_changed" }
func (QuoteStatusChanged) sealedInterfaceAction() {}

var _ Action = QuoteFilterChanged{}

// QuoteFilterChanged replaces the whole quote list filter.
type QuoteFilterChanged struct {
	Filter QuoteFilter
}

func (QuoteFilterChanged) Kind() string           { return "quote_filter_changed" }
func (QuoteFilterChanged) sealedInterfaceAction() {}

var _ Action = QuoteSearchChanged{}

// QuoteSearchChanged updates the free-text query and rewinds to page one.
type QuoteSearchChanged struct {
	Query string
}

func (QuoteSearchChanged) Kind() string           { return "quote_search_changed" }
func (QuoteSearchChanged) sealedInterfaceAction() {}

var _ Action = QuotePageChanged{}

// QuotePageChanged turns the quote list to the given 1-based page.
type QuotePageChanged struct {
	Page int
}

func (QuotePageChanged) Kind() string           { return "quote_page_changed" }
func (QuotePageChanged) sealedInterfaceAction() {}

var _ Action = ActiveQuoteSelected{}

// ActiveQuoteSelected opens a quote in detail view; an empty ID closes it.
type ActiveQuoteSelected struct {
	ID string
}

func (ActiveQuoteSelected) Kind() string           { return "active_quote_selected" }
func (ActiveQuoteSelected) sealedInterfaceAction() {}

var _ Action = ApprovalsLoaded{}

// ApprovalsLoaded replaces the approval queue.
type ApprovalsLoaded struct {
	Requests []ApprovalRequest
}

func (ApprovalsLoaded) Kind() string           { return "approvals_loaded" }
func (ApprovalsLoaded) sealedInterfaceAction() {}

var _ Action = ApprovalRequested{}

// ApprovalRequested appends a fresh request to the queue.
type ApprovalRequested struct {
	Request ApprovalRequest
}

func (ApprovalRequested) Kind() string           { return "approval_requested" }
func (ApprovalRequested) sealedInterfaceAction() {}

var _ Action = ApprovalDecided{}

// ApprovalDecided resolves a pending request. Requests already decided stay
// as they are.
type ApprovalDecided struct {
	ID       string
	Approved bool
	Note     string
}

func (ApprovalDecided) Kind() string           { return "approval_decided" }
func (ApprovalDecided) sealedInterfaceAction() {}

var _ Action = CartItemAdded{}

// CartItemAdded puts a line into the cart; an existing line with the same
// SKU absorbs the added quantity instead of duplicating.
type CartItemAdded struct {
	Item CartItem
}

func (CartItemAdded) Kind() string           { return "cart_item_added" }
func (CartItemAdded) sealedInterfaceAction() {}

var _ Action = CartQuantitySet{}

// CartQuantitySet sets a line's quantity; zero or negative removes the line.
type CartQuantitySet struct {
	SKU      string
	Quantity int
}

func (CartQuantitySet) Kind() string           { return "cart_quantity_set" }
func (CartQuantitySet) sealedInterfaceAction() {}

var _ Action = CartItemRemoved{}

// CartItemRemoved drops the line with the given SKU.
type CartItemRemoved struct {
	SKU string
}

func (CartItemRemoved) Kind() string           { return "cart_item_removed" }
func (CartItemRemoved) sealedInterfaceAction() {}

var _ Action = CartImported{}

// CartImported replaces the whole cart content with a bulk order, the
// quick-order and CSV upload path.
type CartImported struct {
	Items []CartItem
}

func (CartImported) Kind() string           { return "cart_imported" }
func (CartImported) sealedInterfaceAction() {}

var _ Action = CartCleared{}

// CartCleared resets the cart slice to its initial empty state.
type CartCleared struct{}

func (CartCleared) Kind() string           { return "cart_cleared" }
func (CartCleared) sealedInterfaceAction() {}

var _ Action = PONumberSet{}

// PONumberSet records the purchase order number for checkout.
type PONumberSet struct {
	Value string
}

func (PONumberSet) Kind() string           { return "po_number_set" }
func (PONumberSet) sealedInterfaceAction() {}

var _ Action = CostCenterSelected{}

// CostCenterSelected books the upcoming order against a cost center.
type CostCenterSelected struct {
	ID string
}

func (CostCenterSelected) Kind() string           { return "cost_center_selected" }
func (CostCenterSelected) sealedInterfaceAction() {}

var _ Action = ShippingAddressSelected{}

// ShippingAddressSelected picks the delivery address for checkout.
type ShippingAddressSelected struct {
	ID string
}

func (ShippingAddressSelected) Kind() string           { return "shipping_address_selected" }
func (ShippingAddressSelected) sealedInterfaceAction() {}

var _ Action = CartNotesSet{}

// CartNotesSet attaches free-text delivery notes to the order.
type CartNotesSet struct {
	Value string
}

func (CartNotesSet) Kind() string           { return "cart_notes_set" }
func (CartNotesSet) sealedInterfaceAction() {}
