package storefront

import (
	"github.com/govalues/decimal"
)

// Reduce applies one action and returns the resulting root. The returned
// pointer is s itself whenever no slice changed, so callers can detect
// no-op transitions by identity alone. s is never modified.
func Reduce(s *State, a Action) *State {
	company := reduceCompany(s.Company, a)
	quotes := reduceQuotes(s.Quotes, a)
	approvals := reduceApprovals(s.Approvals, a)
	cart := reduceCart(s.Cart, a)
	if company == s.Company && quotes == s.Quotes && approvals == s.Approvals && cart == s.Cart {
		return s
	}
	return &State{Company: company, Quotes: quotes, Approvals: approvals, Cart: cart}
}

func reduceCompany(cs *CompanyState, a Action) *CompanyState {
	switch a := a.(type) {
	case SessionStarted:
		return &CompanyState{
			Company:     a.Company,
			Employee:    a.Employee,
			Employees:   append([]Employee(nil), a.Employees...),
			Addresses:   append([]Address(nil), a.Addresses...),
			CostCenters: append([]CostCenter(nil), a.CostCenters...),
		}
	case EmployeeSwitched:
		for i := range cs.Employees {
			if cs.Employees[i].ID != a.EmployeeID {
				continue
			}
			picked := cs.Employees[i]
			next := *cs
			next.Employee = &picked
			return &next
		}
		return cs
	case CreditConsumed:
		return adjustCredit(cs, a.Amount, mustAdd)
	case CreditReleased:
		return adjustCredit(cs, a.Amount, mustSub)
	case CostCenterSpendRecorded:
		for i := range cs.CostCenters {
			if cs.CostCenters[i].Code != a.Code {
				continue
			}
			centers := append([]CostCenter(nil), cs.CostCenters...)
			centers[i].Spent = mustAdd(centers[i].Spent, a.Amount)
			next := *cs
			next.CostCenters = centers
			return &next
		}
		return cs
	default:
		return cs
	}
}

func adjustCredit(cs *CompanyState, amount decimal.Decimal, apply func(a, b decimal.Decimal) decimal.Decimal) *CompanyState {
	if cs.Company == nil || amount.IsZero() {
		return cs
	}
	company := *cs.Company
	company.CreditUsed = apply(company.CreditUsed, amount)
	next := *cs
	next.Company = &company
	return &next
}

func reduceQuotes(qs *QuotesState, a Action) *QuotesState {
	switch a := a.(type) {
	case QuotesLoaded:
		next := *qs
		next.Quotes = append([]Quote(nil), a.Quotes...)
		return &next
	case QuoteUpserted:
		next := *qs
		for i := range qs.Quotes {
			if qs.Quotes[i].ID == a.Quote.ID {
				quotes := append([]Quote(nil), qs.Quotes...)
				quotes[i] = a.Quote
				next.Quotes = quotes
				return &next
			}
		}
		next.Quotes = append(append([]Quote(nil), qs.Quotes...), a.Quote)
		return &next
	case QuoteStatusChanged:
		for i := range qs.Quotes {
			if qs.Quotes[i].ID != a.ID || qs.Quotes[i].Status == a.Status {
				continue
			}
			quotes := append([]Quote(nil), qs.Quotes...)
			quotes[i].Status = a.Status
			next := *qs
			next.Quotes = quotes
			return &next
		}
		return qs
	case QuoteFilterChanged:
		if qs.Filter == a.Filter {
			return qs
		}
		next := *qs
		next.Filter = a.Filter
		return &next
	case QuoteSearchChanged:
		if qs.Filter.Query == a.Query {
			return qs
		}
		next := *qs
		next.Filter.Query = a.Query
		next.Filter.Page = 1
		return &next
	case QuotePageChanged:
		page := a.Page
		if page < 1 {
			page = 1
		}
		if qs.Filter.Page == page {
			return qs
		}
		next := *qs
		next.Filter.Page = page
		return &next
	case ActiveQuoteSelected:
		if qs.ActiveID == a.ID {
			return qs
		}
		next := *qs
		next.ActiveID = a.ID
		return &next
	default:
		return qs
	}
}

func reduceApprovals(as *ApprovalsState, a Action) *ApprovalsState {
	switch a := a.(type) {
	case ApprovalsLoaded:
		return &ApprovalsState{Requests: append([]ApprovalRequest(nil), a.Requests...)}
	case ApprovalRequested:
		return &ApprovalsState{Requests: append(append([]ApprovalRequest(nil), as.Requests...), a.Request)}
	case ApprovalDecided:
		for i := range as.Requests {
			if as.Requests[i].ID != a.ID || as.Requests[i].Status != ApprovalPending {
				continue
			}
			requests := append([]ApprovalRequest(nil), as.Requests...)
			if a.Approved {
				requests[i].Status = ApprovalApproved
			} else {
				requests[i].Status = ApprovalRejected
			}
			if a.Note != "" {
				requests[i].Note = a.Note
			}
			return &ApprovalsState{Requests: requests}
		}
		return as
	default:
		return as
	}
}

func reduceCart(cs *CartState, a Action) *CartState {
	switch a := a.(type) {
	case CartItemAdded:
		next := *cs
		for i := range cs.Items {
			if cs.Items[i].SKU == a.Item.SKU {
				items := append([]CartItem(nil), cs.Items...)
				items[i].Quantity += a.Item.Quantity
				next.Items = items
				return &next
			}
		}
		next.Items = append(append([]CartItem(nil), cs.Items...), a.Item)
		return &next
	case CartQuantitySet:
		for i := range cs.Items {
			if cs.Items[i].SKU != a.SKU {
				continue
			}
			next := *cs
			if a.Quantity <= 0 {
				next.Items = append(append([]CartItem(nil), cs.Items[:i]...), cs.Items[i+1:]...)
				return &next
			}
			if cs.Items[i].Quantity == a.Quantity {
				return cs
			}
			items := append([]CartItem(nil), cs.Items...)
			items[i].Quantity = a.Quantity
			next.Items = items
			return &next
		}
		return cs
	case CartItemRemoved:
		for i := range cs.Items {
			if cs.Items[i].SKU != a.SKU {
				continue
			}
			next := *cs
			next.Items = append(append([]CartItem(nil), cs.Items[:i]...), cs.Items[i+1:]...)
			return &next
		}
		return cs
	case CartImported:
		next := *cs
		next.Items = append([]CartItem(nil), a.Items...)
		return &next
	case CartCleared:
		return &CartState{}
	case PONumberSet:
		if cs.PONumber == a.Value {
			return cs
		}
		next := *cs
		next.PONumber = a.Value
		return &next
	case CostCenterSelected:
		if cs.CostCenterID == a.ID {
			return cs
		}
		next := *cs
		next.CostCenterID = a.ID
		return &next
	case ShippingAddressSelected:
		if cs.ShippingAddressID == a.ID {
			return cs
		}
		next := *cs
		next.ShippingAddressID = a.ID
		return &next
	case CartNotesSet:
		if cs.Notes == a.Value {
			return cs
		}
		next := *cs
		next.Notes = a.Value
		return &next
	default:
		return cs
	}
}
